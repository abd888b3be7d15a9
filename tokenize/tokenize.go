// Package tokenize turns source text into the token stream defined by
// package tokens: names, numbers, strings, operators, comments, significant
// and insignificant newlines, and INDENT/DEDENT markers, always terminated
// by a single ENDMARKER.
//
// The tokenizer is a pull-based producer over an immutable buffer of
// Unicode scalar values. Sub-lexers speculate through a commit/revert
// scanner and are tried in a fixed priority order; a driver owns the line
// state, the indentation stack, and a small queue for the steps that
// produce several tokens at once.
package tokenize

import (
	"io"

	"github.com/ucodery/rye/tokens"
)

// TokenStream produces the tokens of one source text, one pull at a time.
// A TokenStream is not safe for concurrent use.
type TokenStream struct {
	scan            *scanner
	withinStatement bool  // a non-trivial token has been emitted on this logical line
	atLineStart     bool  // the cursor rests on the first scalar of a physical line
	depth           int   // open (, [, { brackets
	indents         []int // open indentation widths, strictly increasing, bottom 0
	pending         []tokens.Token
	ended           bool
}

// New creates a TokenStream over input, a sequence of Unicode scalar
// values. Encoding detection has already happened by the time input exists.
func New(input string) *TokenStream {
	return &TokenStream{
		scan:        newScanner(input),
		atLineStart: true,
		indents:     []int{0},
	}
}

// Tokenize runs a TokenStream over input to completion, returning every
// token up to and including ENDMARKER. On a fatal error the tokens already
// produced are returned alongside it.
func Tokenize(input string) ([]tokens.Token, error) {
	ts := New(input)
	var toks []tokens.Token
	for {
		tok, err := ts.Next()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
}

// Next returns the next token. The final token of every healthy stream is
// ENDMARKER; after it, and after a fatal *TokenizeError has been returned
// once, Next reports io.EOF forever.
func (ts *TokenStream) Next() (tokens.Token, error) {
	if len(ts.pending) > 0 {
		return ts.popPending(), nil
	}
	if ts.ended {
		return tokens.Token{}, io.EOF
	}

	sc := ts.scan
	for {
		if sc.atEnd() {
			return ts.drain(), nil
		}

		if !ts.withinStatement && ts.atLineStart {
			ts.atLineStart = false
			dents, err := ts.measureIndentation()
			if err != nil {
				ts.ended = true
				return tokens.Token{}, err
			}
			if len(dents) > 0 {
				ts.withinStatement = true
				ts.pending = append(ts.pending, dents[1:]...)
				return dents[0], nil
			}
			continue
		}

		ts.skipInsignificant()
		if sc.atEnd() {
			continue
		}

		s := sc.peek(1)
		if s[0] == '\n' {
			pos := sc.pos()
			sc.commit()
			ts.atLineStart = true
			kind := tokens.NL
			if ts.depth == 0 && ts.withinStatement {
				kind = tokens.NEWLINE
				ts.withinStatement = false
			}
			return tokens.Token{Type: kind, ExactType: kind, Contents: "\n", ColStart: pos, ColEnd: pos + 1}, nil
		}
		sc.hide(1)

		if exact, ok := lexNumber(sc); ok {
			return ts.emit(tokens.NUMBER, exact), nil
		}
		if exact, ok := lexOp(sc); ok {
			tok := ts.emit(tokens.OP, exact)
			if tokens.IsOpenBracket(exact) {
				ts.depth++
			} else if tokens.IsCloseBracket(exact) && ts.depth > 0 {
				ts.depth--
			}
			return tok, nil
		}
		matched, err := lexString(sc)
		if err != nil {
			ts.ended = true
			return tokens.Token{}, err
		}
		if matched {
			return ts.emit(tokens.STRING, tokens.STRING), nil
		}
		if lexName(sc) {
			return ts.emit(tokens.NAME, tokens.NAME), nil
		}
		if lexComment(sc) {
			// comments never open a statement
			return ts.capture(tokens.COMMENT, tokens.COMMENT), nil
		}

		// nothing claims this scalar; hand it back as a one-scalar
		// ERRORTOKEN and keep going
		sc.peek(1)
		return ts.emit(tokens.ERRORTOKEN, tokens.ERRORTOKEN), nil
	}
}

// lexOp attempts the longest operator match within the next three scalars.
func lexOp(sc *scanner) (tokens.TokenType, bool) {
	window := sc.peek(3)
	exact, size, ok := tokens.GetOp(window)
	if !ok {
		sc.revert()
		return 0, false
	}
	sc.hide(3 - size)
	return exact, true
}

// capture commits the speculated scalars into a token.
func (ts *TokenStream) capture(coarse, exact tokens.TokenType) tokens.Token {
	start := ts.scan.pos()
	contents := ts.scan.peeked()
	ts.scan.commit()
	return tokens.Token{
		Type:      coarse,
		ExactType: exact,
		Contents:  contents,
		ColStart:  start,
		ColEnd:    ts.scan.pos(),
	}
}

// emit is capture for the tokens that open a statement.
func (ts *TokenStream) emit(coarse, exact tokens.TokenType) tokens.Token {
	tok := ts.capture(coarse, exact)
	ts.withinStatement = true
	return tok
}

func (ts *TokenStream) popPending() tokens.Token {
	tok := ts.pending[0]
	ts.pending = ts.pending[1:]
	return tok
}

// drain closes the stream at end-of-input: a synthetic NEWLINE when a
// statement is still open, one DEDENT per open indent, then ENDMARKER.
func (ts *TokenStream) drain() tokens.Token {
	end := ts.scan.size()
	if ts.withinStatement {
		ts.withinStatement = false
		ts.pending = append(ts.pending, tokens.Token{
			Type: tokens.NEWLINE, ExactType: tokens.NEWLINE,
			Contents: "\n", ColStart: end, ColEnd: end + 1,
		})
	}
	for len(ts.indents) > 1 {
		ts.indents = ts.indents[:len(ts.indents)-1]
		ts.pending = append(ts.pending, tokens.Token{
			Type: tokens.DEDENT, ExactType: tokens.DEDENT,
			ColStart: end + 1, ColEnd: end + 1,
		})
	}
	ts.pending = append(ts.pending, tokens.Token{
		Type: tokens.ENDMARKER, ExactType: tokens.ENDMARKER,
		ColStart: end + 1, ColEnd: end + 1,
	})
	ts.ended = true
	return ts.popPending()
}

// skipInsignificant consumes inter-token whitespace and explicit line
// joins. Neither produces a token and neither ends the logical line.
func (ts *TokenStream) skipInsignificant() {
	sc := ts.scan
	for {
		s := sc.peek(1)
		if len(s) != 1 {
			sc.hide(1)
			return
		}
		switch s[0] {
		case ' ', '\t', '\f':
			sc.commit()
		case '\\':
			s2 := sc.peek(1)
			if len(s2) == 1 && s2[0] == '\n' {
				sc.commit()
			} else {
				sc.hide(2)
				return
			}
		default:
			sc.hide(1)
			return
		}
	}
}

// measureIndentation runs on the first scalar of a physical line outside
// any statement. It measures the width of the leading whitespace (spaces
// count 1, tabs advance to the next multiple of 8, form feeds count 0) and
// compares it against the stack of open indents, producing zero or more
// INDENT/DEDENT tokens. A line holding no code leaves the stack untouched.
func (ts *TokenStream) measureIndentation() ([]tokens.Token, error) {
	sc := ts.scan
	start := sc.pos()
	width := 0
	for {
		s := sc.peek(1)
		if len(s) == 1 {
			switch s[0] {
			case ' ':
				width++
				continue
			case '\t':
				width += 8 - width%8
				continue
			case '\f':
				continue
			}
		}
		sc.hide(1)
		break
	}
	leading := sc.peeked()
	sc.commit()

	s := sc.peek(1)
	sc.hide(1)
	if len(s) != 1 || s[0] == '\n' || s[0] == '\\' || s[0] == '#' {
		// blank for indentation purposes
		return nil, nil
	}

	top := ts.indents[len(ts.indents)-1]
	switch {
	case width == top:
		return nil, nil
	case width > top:
		ts.indents = append(ts.indents, width)
		return []tokens.Token{{
			Type: tokens.INDENT, ExactType: tokens.INDENT,
			Contents: leading, ColStart: start, ColEnd: sc.pos(),
		}}, nil
	}

	var dents []tokens.Token
	for {
		ts.indents = ts.indents[:len(ts.indents)-1]
		dents = append(dents, tokens.Token{
			Type: tokens.DEDENT, ExactType: tokens.DEDENT,
			ColStart: sc.pos(), ColEnd: sc.pos(),
		})
		top = ts.indents[len(ts.indents)-1]
		if top == width {
			return dents, nil
		}
		if top < width {
			return nil, &TokenizeError{
				Msg: "unindent does not match any outer indentation level",
				Pos: sc.pos(),
			}
		}
	}
}
