package tokenize

import (
	"io"
	"sync"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ucodery/rye/tokens"
)

// Definition adapts the tokenizer to participle's lexer.Definition
// interface so grammars can be built directly over rye tokens. ENDMARKER is
// surfaced as participle's EOF; every other kind keeps its coarse name, so
// grammars refer to @NAME, @NUMBER, @OP and elide COMMENT or NL as needed.
type Definition struct{}

var (
	symbolsOnce   sync.Once
	cachedSymbols map[string]lexer.TokenType
)

// symbolType maps a token type onto participle's negative custom range.
func symbolType(t tokens.TokenType) lexer.TokenType {
	if t == tokens.ENDMARKER {
		return lexer.EOF
	}
	return lexer.EOF - 1 - lexer.TokenType(t)
}

// Symbols implements lexer.Definition, caching the result.
func (Definition) Symbols() map[string]lexer.TokenType {
	symbolsOnce.Do(func() {
		cachedSymbols = make(map[string]lexer.TokenType, len(tokens.Symbols)+1)
		cachedSymbols["EOF"] = lexer.EOF
		for t, name := range tokens.Symbols {
			cachedSymbols[name] = symbolType(t)
		}
	})
	return cachedSymbols
}

// Lex implements lexer.Definition.
func (d Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(input))
}

// LexString implements lexer.Definition.
func (Definition) LexString(filename, input string) (lexer.Lexer, error) {
	return &streamLexer{ts: New(input), name: filename, line: 1, col: 1}, nil
}

// LexBytes implements lexer.Definition.
func (d Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

// streamLexer feeds a TokenStream into participle, tracking line/column
// positions as it goes.
type streamLexer struct {
	ts   *TokenStream
	name string
	pos  int
	line int
	col  int
}

// advanceTo walks the input up to offset, keeping line/column current.
func (l *streamLexer) advanceTo(offset int) {
	in := l.ts.scan.input
	for ; l.pos < offset && l.pos < len(in); l.pos++ {
		if in[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
	}
}

func (l *streamLexer) position(offset int) lexer.Position {
	l.advanceTo(offset)
	return lexer.Position{Filename: l.name, Offset: offset, Line: l.line, Column: l.col}
}

// Next implements lexer.Lexer. Fatal tokenization errors surface as lexer
// errors; ENDMARKER arrives as the EOF token.
func (l *streamLexer) Next() (lexer.Token, error) {
	tok, err := l.ts.Next()
	if err == io.EOF {
		return lexer.Token{Type: lexer.EOF, Pos: l.position(l.ts.scan.size())}, nil
	}
	if err != nil {
		return lexer.Token{}, err
	}
	return lexer.Token{
		Type:  symbolType(tok.Type),
		Value: tok.Contents,
		Pos:   l.position(tok.ColStart),
	}, nil
}
