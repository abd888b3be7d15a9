// Package rye exposes the one-shot entry points of the rye toolchain.
package rye

import (
	"github.com/ucodery/rye/tokenize"
	"github.com/ucodery/rye/tokens"
)

// Tokenize turns source into its complete token sequence, ending with
// ENDMARKER. On a fatal tokenization error the tokens produced up to that
// point are returned alongside the error.
func Tokenize(source string) ([]tokens.Token, error) {
	return tokenize.Tokenize(source)
}
