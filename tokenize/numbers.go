package tokenize

import "github.com/ucodery/rye/tokens"

// The number sub-lexer. It has the highest priority of all sub-lexers so
// that a leading dot followed by a digit lexes as FLOAT rather than as the
// DOT operator.

func isDecimal(c rune) bool { return '0' <= c && c <= '9' }
func isBinary(c rune) bool  { return c == '0' || c == '1' }
func isOctal(c rune) bool   { return '0' <= c && c <= '7' }
func isZero(c rune) bool    { return c == '0' }

func isHex(c rune) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

// consumeDigitRunCont continues an in-progress digit run: ( digit | '_'
// digit )*. A single underscore is allowed between two digits; a doubled or
// trailing underscore ends the run before it. Returns the scalars consumed.
func consumeDigitRunCont(sc *scanner, valid func(rune) bool) int {
	n := 0
	for {
		s := sc.peek(1)
		if len(s) == 1 && valid(s[0]) {
			n++
			continue
		}
		if len(s) == 1 && s[0] == '_' {
			s2 := sc.peek(1)
			if len(s2) == 1 && valid(s2[0]) {
				n += 2
				continue
			}
			sc.hide(2)
			return n
		}
		sc.hide(1)
		return n
	}
}

// consumeDigitRun consumes digit ( ['_'] digit )*, or nothing when the next
// scalar is not a digit of the class. Returns the scalars consumed.
func consumeDigitRun(sc *scanner, valid func(rune) bool) int {
	s := sc.peek(1)
	if len(s) != 1 || !valid(s[0]) {
		sc.hide(1)
		return 0
	}
	return 1 + consumeDigitRunCont(sc, valid)
}

// consumeFraction consumes '.' followed by an optional decimal run. Returns
// 0 when the next scalar is not a dot.
func consumeFraction(sc *scanner) int {
	s := sc.peek(1)
	if len(s) != 1 || s[0] != '.' {
		sc.hide(1)
		return 0
	}
	return 1 + consumeDigitRun(sc, isDecimal)
}

// consumeExponent consumes e/E, an optional sign, and a mandatory decimal
// run. When the run is missing the whole attempt is un-read and 0 is
// returned; the e belongs to whatever follows the number.
func consumeExponent(sc *scanner) int {
	s := sc.peek(1)
	if len(s) != 1 || (s[0] != 'e' && s[0] != 'E') {
		sc.hide(1)
		return 0
	}
	sign := 0
	s2 := sc.peek(1)
	if len(s2) == 1 && (s2[0] == '+' || s2[0] == '-') {
		sign = 1
	} else {
		sc.hide(1)
	}
	digits := consumeDigitRun(sc, isDecimal)
	if digits == 0 {
		sc.hide(1 + sign)
		return 0
	}
	return 1 + sign + digits
}

// consumeImaginary consumes a j/J suffix, if present.
func consumeImaginary(sc *scanner) int {
	s := sc.peek(1)
	if len(s) == 1 && (s[0] == 'j' || s[0] == 'J') {
		return 1
	}
	sc.hide(1)
	return 0
}

// decimalTail finishes a decimal number whose integer part has been
// consumed: optional fraction, optional exponent, optional imaginary
// suffix.
func decimalTail(sc *scanner) tokens.TokenType {
	frac := consumeFraction(sc)
	exp := consumeExponent(sc)
	if consumeImaginary(sc) > 0 {
		return tokens.IMAGINARY
	}
	if frac > 0 || exp > 0 {
		return tokens.FLOAT
	}
	return tokens.INTEGER
}

// lexNumber attempts to match a numeric literal at the lookahead. On a
// match it leaves the lookahead at the end of the literal and reports the
// exact kind; otherwise it reverts.
func lexNumber(sc *scanner) (tokens.TokenType, bool) {
	// radix-prefixed integers
	s := sc.peek(2)
	if len(s) == 2 && s[0] == '0' {
		var valid func(rune) bool
		var kind tokens.TokenType
		switch s[1] {
		case 'b', 'B':
			valid, kind = isBinary, tokens.BININT
		case 'o', 'O':
			valid, kind = isOctal, tokens.OCTINT
		case 'x', 'X':
			valid, kind = isHex, tokens.HEXINT
		}
		// the prefix only binds when a digit follows it directly
		if valid != nil && consumeDigitRun(sc, valid) > 0 {
			return kind, true
		}
	}
	sc.revert()

	s = sc.peek(1)
	if len(s) != 1 {
		sc.revert()
		return 0, false
	}
	switch c := s[0]; {
	case c == '.':
		// fraction-only float: the dot must be followed by a digit
		d := sc.peek(1)
		if len(d) != 1 || !isDecimal(d[0]) {
			sc.revert()
			return 0, false
		}
		sc.hide(1)
		consumeDigitRun(sc, isDecimal)
		consumeExponent(sc)
		if consumeImaginary(sc) > 0 {
			return tokens.IMAGINARY, true
		}
		return tokens.FLOAT, true
	case c == '0':
		sc.hide(1)
		return lexZeroDecimal(sc), true
	case isDecimal(c):
		sc.hide(1)
		consumeDigitRun(sc, isDecimal)
		return decimalTail(sc), true
	default:
		sc.revert()
		return 0, false
	}
}

// lexZeroDecimal handles decimal forms that start with a zero. Non-zero
// decimal integers must not carry leading zeros, so the scan first takes
// the run of zeros, then decides: a fraction, exponent, or imaginary suffix
// extends the whole span into one FLOAT/IMAGINARY; a run-on of non-zero
// digits that ends plainly is rolled back to the zeros, leaving the rest of
// the digits to form a separate NUMBER token.
func lexZeroDecimal(sc *scanner) tokens.TokenType {
	consumeDigitRun(sc, isZero)

	s := sc.peek(1)
	if len(s) != 1 {
		sc.hide(1)
		return tokens.INTEGER
	}
	switch c := s[0]; {
	case c == '.':
		sc.hide(1)
		consumeFraction(sc)
		consumeExponent(sc)
		if consumeImaginary(sc) > 0 {
			return tokens.IMAGINARY
		}
		return tokens.FLOAT
	case c == 'e' || c == 'E':
		sc.hide(1)
		if consumeExponent(sc) > 0 {
			if consumeImaginary(sc) > 0 {
				return tokens.IMAGINARY
			}
			return tokens.FLOAT
		}
		return tokens.INTEGER
	case c == 'j' || c == 'J':
		return tokens.IMAGINARY
	case isDecimal(c):
		// a non-zero digit directly after the zeros
		tail := 1 + consumeDigitRunCont(sc, isDecimal)
		return zeroRunOn(sc, tail)
	case c == '_':
		// the zeros run stopped before an underscore bridging into a
		// non-zero digit
		d := sc.peek(1)
		if len(d) == 1 && isDecimal(d[0]) {
			tail := 2 + consumeDigitRunCont(sc, isDecimal)
			return zeroRunOn(sc, tail)
		}
		sc.hide(2)
		return tokens.INTEGER
	default:
		sc.hide(1)
		return tokens.INTEGER
	}
}

// zeroRunOn decides a leading-zeros number whose tentative decimal tail of
// tail scalars has been consumed. A fraction, exponent, or imaginary ending
// keeps the whole span; otherwise the tail is un-read and only the zeros
// form an INTEGER.
func zeroRunOn(sc *scanner, tail int) tokens.TokenType {
	frac := consumeFraction(sc)
	exp := consumeExponent(sc)
	if consumeImaginary(sc) > 0 {
		return tokens.IMAGINARY
	}
	if frac > 0 || exp > 0 {
		return tokens.FLOAT
	}
	sc.hide(tail)
	return tokens.INTEGER
}
