// Package parser holds the grammar-rule harness for literal atoms. It
// classifies single integer, float, imaginary, and name atoms against
// standalone grammar rules, independently of the tokenizer, so the two
// recognizers can be checked against each other. Whole-program parsing is
// deliberately absent.
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	atomLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "Imag", Pattern: `(?:(?:(?:[0-9](?:_?[0-9])*)?\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*\.|[0-9](?:_?[0-9])*)[eE][-+]?[0-9](?:_?[0-9])*|(?:[0-9](?:_?[0-9])*)?\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*\.?)[jJ]`},
		{Name: "Float", Pattern: `(?:(?:[0-9](?:_?[0-9])*)?\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*\.|[0-9](?:_?[0-9])*)[eE][-+]?[0-9](?:_?[0-9])*|(?:[0-9](?:_?[0-9])*)?\.[0-9](?:_?[0-9])*|[0-9](?:_?[0-9])*\.`},
		{Name: "Int", Pattern: `0[bB](?:_?[01])+|0[oO](?:_?[0-7])+|0[xX](?:_?[0-9a-fA-F])+|[1-9](?:_?[0-9])*|0(?:_?0)*`},
		{Name: "Name", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	})

	atomParser = participle.MustBuild[Atom](
		participle.Lexer(atomLexer),
		participle.Elide("Whitespace"),
	)
)

// Atom is one literal atom recognized by the harness grammar.
type Atom struct {
	Imag  *string `  @Imag`
	Float *string `| @Float`
	Int   *string `| @Int`
	Name  *string `| @Name`
}

// ParseAtom parses source as exactly one atom.
func ParseAtom(source string) (*Atom, error) {
	return atomParser.ParseString("", source)
}

func matchAtom(source string, pick func(*Atom) *string) bool {
	atom, err := ParseAtom(source)
	if err != nil {
		return false
	}
	v := pick(atom)
	return v != nil && *v == source
}

// MatchInt reports whether source is exactly one integer atom.
func MatchInt(source string) bool {
	return matchAtom(source, func(a *Atom) *string { return a.Int })
}

// MatchFloat reports whether source is exactly one float atom.
func MatchFloat(source string) bool {
	return matchAtom(source, func(a *Atom) *string { return a.Float })
}

// MatchImaginary reports whether source is exactly one imaginary atom.
func MatchImaginary(source string) bool {
	return matchAtom(source, func(a *Atom) *string { return a.Imag })
}

// MatchName reports whether source is exactly one name atom.
func MatchName(source string) bool {
	return matchAtom(source, func(a *Atom) *string { return a.Name })
}
