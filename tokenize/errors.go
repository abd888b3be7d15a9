package tokenize

import "fmt"

// TokenizeError is a fatal tokenization failure. Once a TokenStream has
// returned one, it stays exhausted; recoverable problems surface as
// ERRORTOKEN tokens instead.
type TokenizeError struct {
	Msg string
	Pos int // scalar offset of the offending input
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Pos)
}
