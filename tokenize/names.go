package tokenize

import "unicode"

// Identifier and comment sub-lexers.

// Category sets for identifier scalars. These are the strict category-based
// predicates; scalars carrying only the Other_ID_Start / Other_ID_Continue
// properties are not recognized.
var (
	idStart    = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl}
	idContinue = []*unicode.RangeTable{unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc}
)

func isNameStart(c rune) bool {
	return c == '_' || unicode.IsOneOf(idStart, c)
}

func isNamePart(c rune) bool {
	return isNameStart(c) || unicode.IsOneOf(idContinue, c)
}

// lexName greedily matches one ID_Start scalar followed by any number of
// ID_Continue scalars. Keywords are not distinguished here; they surface as
// NAME and downstream stages tell them apart.
func lexName(sc *scanner) bool {
	s := sc.peek(1)
	if len(s) != 1 || !isNameStart(s[0]) {
		sc.revert()
		return false
	}
	for {
		s := sc.peek(1)
		if len(s) != 1 || !isNamePart(s[0]) {
			sc.hide(1)
			return true
		}
	}
}

// lexComment matches a '#' and everything up to, but not including, the
// next newline.
func lexComment(sc *scanner) bool {
	s := sc.peek(1)
	if len(s) != 1 || s[0] != '#' {
		sc.revert()
		return false
	}
	for {
		s := sc.peek(1)
		if len(s) != 1 || s[0] == '\n' {
			sc.hide(1)
			return true
		}
	}
}
