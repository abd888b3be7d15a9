package tokenize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ucodery/rye/tokens"
)

func checkNumber(t *testing.T, source string, exact tokens.TokenType) {
	t.Helper()
	tok := checkSingleTokenStatement(t, source)
	assert.Equal(t, tokens.NUMBER, tok.Type)
	assert.Equal(t, exact, tok.ExactType, "%q lexed as %s", source, tok.ExactType)
}

func TestIntegerTokens(t *testing.T) {
	for _, source := range []string{
		"1", "0", "9", "0000", "1234", "1_2_3", "0_00_0", "1_000",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.INTEGER) })
	}
}

func TestBinIntTokens(t *testing.T) {
	for _, source := range []string{
		"0b0", "0b000", "0b1", "0B111", "0B0101", "0B101", "0b00_11_0",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.BININT) })
	}
}

func TestOctIntTokens(t *testing.T) {
	for _, source := range []string{
		"0o0", "0o000", "0O1", "0O720", "0O0_020_0", "0o777", "0o04_50_2",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.OCTINT) })
	}
}

func TestHexIntTokens(t *testing.T) {
	for _, source := range []string{
		"0x0", "0x000", "0x1", "0xABC", "0xfFfF", "0X0_18D_0f", "0X100",
		"0x0b1_050_e3", "0xb101",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.HEXINT) })
	}
}

func TestFloatTokens(t *testing.T) {
	for _, source := range []string{
		"0.", "00.", "0.0", ".0", ".00", "000.000", "1.", "01.", "1.2",
		".2", ".10", "00_2.34_0", "1_234.", ".1_2_3", "0123.456", "0.e1",
		"00.e1", "0.0e1", "0e0", "010.23", "0000.0000e0000", "0123e456",
		"1.2_34e5_6_78", "09e050", "098.765e43", "1.e+234", ".1e-234",
		"1e+23_4", "1e-0_2",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.FLOAT) })
	}
}

func TestImaginaryTokens(t *testing.T) {
	for _, source := range []string{
		"0j", "00J", "1j", "001J", "000_123_4j", "123.45e+6j", "1.j", ".01j",
	} {
		t.Run(source, func(t *testing.T) { checkNumber(t, source, tokens.IMAGINARY) })
	}
}

// Numbers that run on into something else split into two tokens: the
// longest valid number, then whatever the rest lexes as.
func TestRunOnNumberTokens(t *testing.T) {
	tests := []struct {
		source     string
		split      int
		exact      tokens.TokenType
		runonType  tokens.TokenType
		runonExact tokens.TokenType
	}{
		{"123_4_", 5, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"0_", 1, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"00_", 2, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"0e", 1, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"00e", 2, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"000e", 3, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"123__4", 3, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"123eyr", 3, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"000123", 3, tokens.INTEGER, tokens.NUMBER, tokens.INTEGER},
		{"010234", 1, tokens.INTEGER, tokens.NUMBER, tokens.INTEGER},
		{"0_12_3", 1, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"123.e", 4, tokens.FLOAT, tokens.NAME, tokens.NAME},
		{"12jeep", 3, tokens.IMAGINARY, tokens.NAME, tokens.NAME},
		{"0b", 1, tokens.INTEGER, tokens.NAME, tokens.NAME},
		{"0x_ff", 1, tokens.INTEGER, tokens.NAME, tokens.NAME},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			src := []rune(tt.source)
			size := len(src)
			toks := sourceToTokens(t, tt.source)
			diff := cmp.Diff([]tokens.Token{
				{
					Type: tokens.NUMBER, ExactType: tt.exact,
					Contents: string(src[:tt.split]), ColStart: 0, ColEnd: tt.split,
				},
				{
					Type: tt.runonType, ExactType: tt.runonExact,
					Contents: string(src[tt.split:]), ColStart: tt.split, ColEnd: size,
				},
				{
					Type: tokens.NEWLINE, ExactType: tokens.NEWLINE,
					Contents: "\n", ColStart: size, ColEnd: size + 1,
				},
			}, toks)
			require.Empty(t, diff)
		})
	}
}

func TestMultipleRunOnNumberTokens(t *testing.T) {
	toks := sourceToTokens(t, "0012eyr")
	diff := cmp.Diff([]tokens.Token{
		{Type: tokens.NUMBER, ExactType: tokens.INTEGER, Contents: "00", ColStart: 0, ColEnd: 2},
		{Type: tokens.NUMBER, ExactType: tokens.INTEGER, Contents: "12", ColStart: 2, ColEnd: 4},
		{Type: tokens.NAME, ExactType: tokens.NAME, Contents: "eyr", ColStart: 4, ColEnd: 7},
		{Type: tokens.NEWLINE, ExactType: tokens.NEWLINE, Contents: "\n", ColStart: 7, ColEnd: 8},
	}, toks)
	require.Empty(t, diff)
}

func TestAdjacentFloats(t *testing.T) {
	// an exponent cannot hold a fraction; the dot starts a second number
	toks := sourceToTokens(t, "1e2.3")
	diff := cmp.Diff([]tokens.Token{
		{Type: tokens.NUMBER, ExactType: tokens.FLOAT, Contents: "1e2", ColStart: 0, ColEnd: 3},
		{Type: tokens.NUMBER, ExactType: tokens.FLOAT, Contents: ".3", ColStart: 3, ColEnd: 5},
		{Type: tokens.NEWLINE, ExactType: tokens.NEWLINE, Contents: "\n", ColStart: 5, ColEnd: 6},
	}, toks)
	require.Empty(t, diff)
}

func TestDotWithoutDigitIsAnOperator(t *testing.T) {
	toks := sourceToTokens(t, "1..")
	require.Len(t, toks, 3)
	assert.Equal(t, tokens.FLOAT, toks[0].ExactType)
	assert.Equal(t, "1.", toks[0].Contents)
	assert.Equal(t, tokens.DOT, toks[1].ExactType)
}

func TestRadixImaginaryNotRecognized(t *testing.T) {
	// only decimal integers and floats take the imaginary suffix
	toks := sourceToTokens(t, "0xb101j")
	require.Equal(t,
		[]tokens.TokenType{tokens.NUMBER, tokens.NAME, tokens.NEWLINE},
		kindsOf(toks))
	assert.Equal(t, tokens.HEXINT, toks[0].ExactType)
	assert.Equal(t, "0xb101", toks[0].Contents)
	assert.Equal(t, "j", toks[1].Contents)
}

func TestNumberBeforeOperatorPriority(t *testing.T) {
	// .5 must lex as a float, not DOT then NUMBER
	toks := sourceToTokens(t, "x.5")
	require.Equal(t,
		[]tokens.TokenType{tokens.NAME, tokens.NUMBER, tokens.NEWLINE},
		kindsOf(toks))
	assert.Equal(t, ".5", toks[1].Contents)
	assert.Equal(t, tokens.FLOAT, toks[1].ExactType)
}
