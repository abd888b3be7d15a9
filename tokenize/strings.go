package tokenize

// The string sub-lexer. It runs before the identifier sub-lexer so that
// prefix directives like rb"..." bind to the string rather than lexing as a
// name.

// isStringPrefix reports whether c may appear in a string prefix.
func isStringPrefix(c rune) bool {
	switch c {
	case 'b', 'B', 'f', 'F', 'r', 'R', 'u', 'U':
		return true
	}
	return false
}

func lowerASCII(c rune) rune { return c | ('a' - 'A') }

// validPrefixPair reports whether two prefix scalars may combine: r pairs
// with b or f in either order and any casing; u only ever stands alone, and
// b and f never combine with each other.
func validPrefixPair(a, b rune) bool {
	a, b = lowerASCII(a), lowerASCII(b)
	if a == 'r' {
		return b == 'b' || b == 'f'
	}
	if b == 'r' {
		return a == 'b' || a == 'f'
	}
	return false
}

// lexString attempts to match a string literal at the lookahead: an
// optional one- or two-scalar prefix, then a single- or triple-quoted body.
// A backslash escapes the scalar after it, scanned left to right, so a
// doubled backslash protects nothing further.
//
// Outcomes: a match (lookahead at the closing quote); a revert when nothing
// string-shaped starts here, including an unterminated single-quoted body,
// which the driver retokenizes from the opening scalar onward; or a fatal
// error for an unterminated triple-quoted body.
func lexString(sc *scanner) (bool, error) {
	s := sc.peek(1)
	if len(s) != 1 {
		sc.revert()
		return false, nil
	}
	var quote rune
	switch c := s[0]; {
	case isStringPrefix(c):
		s2 := sc.peek(1)
		if len(s2) != 1 || !isStringPrefix(s2[0]) || !validPrefixPair(c, s2[0]) {
			sc.hide(1)
		}
		q := sc.peek(1)
		if len(q) != 1 || (q[0] != '"' && q[0] != '\'') {
			sc.revert()
			return false, nil
		}
		quote = q[0]
	case c == '"' || c == '\'':
		quote = c
	default:
		sc.revert()
		return false, nil
	}

	// triple quote: exactly three matching quote scalars open a
	// multi-line string
	pair := sc.peek(2)
	if len(pair) == 2 && pair[0] == quote && pair[1] == quote {
		return lexTripleString(sc, quote)
	}
	sc.hide(2)
	return lexSingleString(sc, quote)
}

// lexSingleString consumes a single-quoted body whose opening quote has
// been read. A physical newline or end-of-input before the closing quote is
// not a terminator; the whole speculative match is abandoned.
func lexSingleString(sc *scanner, quote rune) (bool, error) {
	for {
		s := sc.peek(1)
		if len(s) != 1 || s[0] == '\n' {
			sc.revert()
			return false, nil
		}
		switch s[0] {
		case quote:
			return true, nil
		case '\\':
			sc.peek(1)
		}
	}
}

// lexTripleString consumes a triple-quoted body whose opening run has been
// read. Running out of input before the closing run is fatal.
func lexTripleString(sc *scanner, quote rune) (bool, error) {
	for {
		s := sc.peek(1)
		if len(s) != 1 {
			return false, &TokenizeError{Msg: "EOF in multi-line string", Pos: sc.pos()}
		}
		switch s[0] {
		case '\\':
			sc.peek(1)
		case quote:
			pair := sc.peek(2)
			if len(pair) == 2 && pair[0] == quote && pair[1] == quote {
				return true, nil
			}
			sc.hide(2)
		}
	}
}
