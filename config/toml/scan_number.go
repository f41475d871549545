// File: scan_number.go
// Title: Number and Symbolic Value Scanning
// Description: Implements scanning of integers in four radices, floats with
//              fraction and exponent, underscore digit-group separators and
//              the symbolic values true, false, inf and nan. Digit runs that
//              could still become a date or time hand over to the date/time
//              scanning in scan_datetime.go.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation of numeric scanning
// - 2025-08-14 v0.1.1: Leading-zero check extended to float literals

package toml

import (
	"math"
	"strconv"
	"strings"
)

// scanSymbolic scans the keyword values true, false, inf and nan
func (s *Scanner) scanSymbolic(pos Position) Token {
	start := s.pos
	for isLetter(s.peek()) {
		s.advance()
	}
	word := s.input[start:s.pos]

	if !isValueTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeInvalidValue, quoted(word+displayChar(s.peek())))
		s.advance()
		return Token{Kind: TokenError, Pos: pos}
	}

	switch word {
	case "true":
		return Token{Kind: TokenValue, Pos: pos, Value: BooleanValue(true)}
	case "false":
		return Token{Kind: TokenValue, Pos: pos, Value: BooleanValue(false)}
	case "inf":
		return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(math.Inf(1))}
	case "nan":
		return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(math.NaN())}
	default:
		s.diags.errorAt(pos, CodeInvalidValue, quoted(word))
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanSigned scans a value starting with an explicit sign. Signed literals
// can only be numbers, inf or nan; dates and radix-prefixed integers must
// be unsigned.
func (s *Scanner) scanSigned(pos Position, sign rune) Token {
	s.advance() // sign
	r := s.peek()
	switch {
	case isLetter(r):
		start := s.pos
		for isLetter(s.peek()) {
			s.advance()
		}
		word := s.input[start:s.pos]
		if !isValueTerminator(s.peek()) {
			s.diags.errorAt(s.position(), CodeInvalidValue, quoted(string(sign)+word+displayChar(s.peek())))
			s.advance()
			return Token{Kind: TokenError, Pos: pos}
		}
		switch word {
		case "inf":
			if sign == '-' {
				return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(math.Inf(-1))}
			}
			return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(math.Inf(1))}
		case "nan":
			return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(math.NaN())}
		default:
			s.diags.errorAt(pos, CodeInvalidValue, quoted(string(sign)+word))
			return Token{Kind: TokenError, Pos: pos}
		}
	case isDigit(r):
		if r == '0' {
			if nxt := s.peekAt(1); nxt == 'b' || nxt == 'o' || nxt == 'x' {
				s.diags.errorAt(pos, CodeInvalidNumChar, quoted(string(nxt)))
				s.advance()
				s.advance()
				return Token{Kind: TokenError, Pos: pos}
			}
		}
		return s.scanNumeric(pos, sign)
	default:
		s.diags.errorAt(pos, CodeInvalidNumChar, quoted(displayChar(r)))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanNumeric scans a literal starting with a digit: an integer, a float,
// or the beginning of a date or time. sign is 0 for unsigned literals.
func (s *Scanner) scanNumeric(pos Position, sign rune) Token {
	if sign == 0 && s.peek() == '0' {
		switch s.peekAt(1) {
		case 'b':
			return s.scanRadixInt(pos, 2, 'b')
		case 'o':
			return s.scanRadixInt(pos, 8, 'o')
		case 'x':
			return s.scanRadixInt(pos, 16, 'x')
		}
		if nxt := s.peekAt(1); isLetter(nxt) && nxt != 'e' && nxt != 'E' {
			s.advance()
			s.diags.errorAt(s.position(), CodeInvalidRadixPrefix, quoted(string(nxt)))
			s.advance()
			return Token{Kind: TokenError, Pos: pos}
		}
	}

	digits, raw, ok := s.scanDigitRun()
	if !ok {
		return Token{Kind: TokenError, Pos: pos}
	}
	hasUnderscore := len(raw) != len(digits)
	r := s.peek()

	// only unsigned, underscore-free digit runs can become dates or times
	if sign == 0 && !hasUnderscore {
		switch r {
		case '-':
			if len(digits) == 4 {
				return s.scanDateTail(pos, digits)
			}
			s.diags.errorAt(pos, CodeFourDigitYearRequired, quoted(digits))
			return Token{Kind: TokenError, Pos: pos}
		case ':':
			if len(digits) == 2 {
				s.advance()
				return s.scanClockAfterHour(pos, digits)
			}
			s.diags.errorAt(pos, CodeTwoDigitHourRequired, quoted(digits))
			return Token{Kind: TokenError, Pos: pos}
		}
	}

	switch {
	case r == '.' || r == 'e' || r == 'E':
		if digits[0] == '0' && len(digits) > 1 {
			s.diags.errorAt(pos, CodeLeadingZeroNotAllowed, quoted(raw))
			return Token{Kind: TokenError, Pos: pos}
		}
		return s.scanFloatTail(pos, sign, digits, r)
	case isValueTerminator(r):
		if digits[0] == '0' && len(digits) > 1 {
			s.diags.errorAt(pos, CodeLeadingZeroNotAllowed, quoted(raw))
			return Token{Kind: TokenError, Pos: pos}
		}
		text := digits
		if sign != 0 {
			text = string(sign) + digits
		}
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			s.diags.errorAt(pos, CodeInvalidValue, quoted(text))
			return Token{Kind: TokenError, Pos: pos}
		}
		return Token{Kind: TokenValue, Pos: pos, Value: IntegerValue(n)}
	default:
		code := CodeInvalidNumChar
		if sign == 0 && !hasUnderscore {
			code = CodeInvalidNumDateTimeChar
		}
		s.diags.errorAt(s.position(), code, quoted(displayChar(r)))
		s.advance()
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanDigitRun consumes a run of decimal digits with embedded underscore
// separators. digits is the underscore-free text, raw the source text.
func (s *Scanner) scanDigitRun() (digits string, raw string, ok bool) {
	var d, r strings.Builder
	for {
		c := s.peek()
		if isDigit(c) {
			d.WriteRune(c)
			r.WriteRune(c)
			s.advance()
			continue
		}
		if c == '_' {
			// separators must sit strictly between two digits
			if d.Len() == 0 || !isDigit(s.peekAt(1)) {
				s.diags.errorAt(s.position(), CodeDigitDelimiterNotEmbedded)
				s.advance()
				return "", "", false
			}
			r.WriteRune('_')
			s.advance()
			continue
		}
		break
	}
	return d.String(), r.String(), true
}

// scanRadixInt scans a binary, octal or hex integer after its 0b/0o/0x prefix
func (s *Scanner) scanRadixInt(pos Position, base int, prefix rune) Token {
	s.advance() // '0'
	s.advance() // prefix

	validDigit := func(r rune) bool {
		switch base {
		case 2:
			return r == '0' || r == '1'
		case 8:
			return r >= '0' && r <= '7'
		default:
			return isHexDigit(r)
		}
	}

	if !validDigit(s.peek()) {
		if s.peek() == '_' {
			s.diags.errorAt(s.position(), CodeDigitDelimiterNotEmbedded)
		} else {
			s.diags.errorAt(s.position(), CodeDigitExpected, quoted(displayChar(s.peek())))
		}
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}

	var digits, raw strings.Builder
	for {
		c := s.peek()
		if validDigit(c) {
			digits.WriteRune(c)
			raw.WriteRune(c)
			s.advance()
			continue
		}
		if c == '_' {
			if !validDigit(s.peekAt(1)) {
				s.diags.errorAt(s.position(), CodeDigitDelimiterNotEmbedded)
				s.advance()
				return Token{Kind: TokenError, Pos: pos}
			}
			raw.WriteRune('_')
			s.advance()
			continue
		}
		break
	}

	if !isValueTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeInvalidNumChar, quoted(displayChar(s.peek())))
		s.advance()
		return Token{Kind: TokenError, Pos: pos}
	}

	n, err := strconv.ParseInt(digits.String(), base, 64)
	if err != nil {
		s.diags.errorAt(pos, CodeInvalidValue, quoted("0"+string(prefix)+raw.String()))
		return Token{Kind: TokenError, Pos: pos}
	}
	return Token{Kind: TokenValue, Pos: pos, Value: IntegerValue(n)}
}

// scanFloatTail scans fraction and exponent after the integer digit run
func (s *Scanner) scanFloatTail(pos Position, sign rune, intDigits string, r rune) Token {
	var frac, exp string

	if r == '.' {
		s.advance()
		if !isDigit(s.peek()) {
			s.diags.errorAt(s.position(), CodeEmptyFloatFract)
			s.skipInvalid()
			return Token{Kind: TokenError, Pos: pos}
		}
		fracDigits, _, ok := s.scanDigitRun()
		if !ok {
			return Token{Kind: TokenError, Pos: pos}
		}
		frac = fracDigits
		r = s.peek()
	}

	if r == 'e' || r == 'E' {
		s.advance()
		expSign := ""
		if s.peek() == '+' || s.peek() == '-' {
			expSign = string(s.advance())
		}
		if !isDigit(s.peek()) {
			s.diags.errorAt(s.position(), CodeInvalidFloatExp, quoted(displayChar(s.peek())))
			s.skipInvalid()
			return Token{Kind: TokenError, Pos: pos}
		}
		expDigits, _, ok := s.scanDigitRun()
		if !ok {
			return Token{Kind: TokenError, Pos: pos}
		}
		exp = "e" + expSign + expDigits
	}

	if !isValueTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeInvalidNumChar, quoted(displayChar(s.peek())))
		s.advance()
		return Token{Kind: TokenError, Pos: pos}
	}

	text := intDigits
	if sign != 0 {
		text = string(sign) + text
	}
	if frac != "" {
		text += "." + frac
	}
	text += exp

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.diags.errorAt(pos, CodeInvalidValue, quoted(text))
		return Token{Kind: TokenError, Pos: pos}
	}
	return Token{Kind: TokenValue, Pos: pos, Value: FloatValue(f)}
}
