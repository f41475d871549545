// File: scan_string.go
// Title: String Scanning
// Description: Implements scanning of the four string flavors: basic and
//              literal single-line strings and their multiline variants.
//              Basic strings process escape sequences inline, literal strings
//              are copied verbatim. Multiline strings trim one opening line
//              terminator and disambiguate closing delimiters by counting
//              consecutive delimiter characters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation of all four string flavors
// - 2025-08-14 v0.1.1: Delimiter run counting for up to two literal quotes

package toml

import "strings"

// scanString scans a string value. The opening delimiter run length selects
// the flavor: one delimiter starts a single-line string, two form the empty
// string, three start a multiline string.
func (s *Scanner) scanString(pos Position, delim rune) Token {
	s.advance() // first delimiter
	if s.peek() == delim {
		s.advance()
		if s.peek() == delim {
			s.advance()
			return s.scanMultiline(pos, delim)
		}
		return Token{Kind: TokenValue, Pos: pos, Value: StringValue("")}
	}
	body, ok := s.scanSingleLineBody(pos, delim)
	if !ok {
		return Token{Kind: TokenError, Pos: pos}
	}
	return Token{Kind: TokenValue, Pos: pos, Value: StringValue(body)}
}

// scanSingleLineBody scans the content of a single-line string after the
// opening delimiter. Escape processing happens only for basic strings.
func (s *Scanner) scanSingleLineBody(pos Position, delim rune) (string, bool) {
	var sb strings.Builder
	for {
		r := s.peek()
		switch {
		case r == eof, r == '\n', r == '\r':
			s.diags.errorAt(pos, CodeUnterminatedString, quoted(sb.String()))
			return "", false
		case r == delim:
			s.advance()
			return sb.String(), true
		case delim == '"' && r == '\\':
			if !s.scanEscape(&sb, pos, false) {
				return "", false
			}
		case r < 0x20 && r != '\t':
			s.diags.errorAt(s.position(), CodeInvalidControlChar, quoted(displayChar(r)))
			s.advance()
			return "", false
		default:
			sb.WriteRune(s.advance())
		}
	}
}

// scanMultiline scans a multiline string after the three opening delimiters
func (s *Scanner) scanMultiline(pos Position, delim rune) Token {
	// one line terminator directly after the opening delimiter is trimmed
	if s.peek() == '\r' && s.peekAt(1) == '\n' {
		s.advance()
		s.advance()
	} else if s.peek() == '\n' {
		s.advance()
	}

	var sb strings.Builder
	for {
		r := s.peek()
		switch {
		case r == eof:
			s.diags.errorAt(pos, CodeUnterminatedString, quoted(sb.String()))
			return Token{Kind: TokenError, Pos: pos}
		case r == delim:
			runPos := s.position()
			n := 0
			for s.peek() == delim {
				s.advance()
				n++
			}
			switch {
			case n < 3:
				sb.WriteString(strings.Repeat(string(delim), n))
			case n == 3:
				return Token{Kind: TokenValue, Pos: pos, Value: StringValue(sb.String())}
			case n == 4:
				sb.WriteRune(delim)
				return Token{Kind: TokenValue, Pos: pos, Value: StringValue(sb.String())}
			case n == 5:
				sb.WriteRune(delim)
				sb.WriteRune(delim)
				return Token{Kind: TokenValue, Pos: pos, Value: StringValue(sb.String())}
			default:
				s.diags.errorAt(runPos, CodeTooManyQuotes)
				return Token{Kind: TokenError, Pos: pos}
			}
		case delim == '"' && r == '\\':
			if !s.scanEscape(&sb, pos, true) {
				return Token{Kind: TokenError, Pos: pos}
			}
		case r == '\r':
			s.advance()
			if s.peek() != '\n' {
				s.diags.errorAt(s.position(), CodeInvalidControlChar, quoted("\\r"))
				return Token{Kind: TokenError, Pos: pos}
			}
			s.advance()
			sb.WriteByte('\n')
		case r == '\n':
			s.advance()
			sb.WriteByte('\n')
		case r < 0x20 && r != '\t':
			s.diags.errorAt(s.position(), CodeInvalidControlChar, quoted(displayChar(r)))
			s.advance()
			return Token{Kind: TokenError, Pos: pos}
		default:
			sb.WriteRune(s.advance())
		}
	}
}

// scanEscape processes one escape sequence in a basic string. strPos is the
// position of the enclosing string for unterminated-string diagnostics.
func (s *Scanner) scanEscape(sb *strings.Builder, strPos Position, multiline bool) bool {
	escPos := s.position()
	s.advance() // backslash
	r := s.peek()
	switch r {
	case 'b':
		s.advance()
		sb.WriteByte('\b')
	case 't':
		s.advance()
		sb.WriteByte('\t')
	case 'n':
		s.advance()
		sb.WriteByte('\n')
	case 'f':
		s.advance()
		sb.WriteByte('\f')
	case 'r':
		s.advance()
		sb.WriteByte('\r')
	case '"':
		s.advance()
		sb.WriteByte('"')
	case '\\':
		s.advance()
		sb.WriteByte('\\')
	case 'u':
		s.advance()
		return s.scanUnicodeEscape(sb, escPos, 4)
	case 'U':
		s.advance()
		return s.scanUnicodeEscape(sb, escPos, 8)
	case '\n', '\r':
		if !multiline {
			s.diags.errorAt(escPos, CodeLineTermInSingleLine)
			return false
		}
		return s.scanLineEndingBackslash(escPos)
	case eof:
		s.diags.errorAt(strPos, CodeUnterminatedString, quoted(sb.String()))
		return false
	default:
		s.advance()
		s.diags.errorAt(escPos, CodeInvalidEscapeChar, quoted(displayChar(r)))
		return false
	}
	return true
}

// scanLineEndingBackslash handles a backslash directly followed by a line
// terminator inside a multiline basic string: the backslash, the terminator
// and all subsequent whitespace and line terminators are removed from the
// value, so long literals can be wrapped across source lines.
func (s *Scanner) scanLineEndingBackslash(escPos Position) bool {
	if s.peek() == '\r' {
		s.advance()
		if s.peek() != '\n' {
			s.diags.errorAt(escPos, CodeInvalidLineEndingEscape)
			return false
		}
	}
	s.advance() // '\n'
	for {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.advance()
		default:
			return true
		}
	}
}

// scanUnicodeEscape decodes a \u or \U escape with exactly n hex digits
func (s *Scanner) scanUnicodeEscape(sb *strings.Builder, escPos Position, n int) bool {
	value := 0
	for i := 0; i < n; i++ {
		r := s.peek()
		if !isHexDigit(r) {
			s.diags.errorAt(escPos, CodeInvalidUnicodeEscapeChar, quoted(displayChar(r)))
			return false
		}
		value = value*16 + hexValue(r)
		s.advance()
	}
	if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
		s.diags.errorAt(escPos, CodeInvalidUnicodeEscapeSeq, quoted(hexLiteral(value, n)))
		return false
	}
	sb.WriteRune(rune(value))
	return true
}

// hexValue returns the numeric value of a hex digit
func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

// hexLiteral renders a code point the way it appeared in the escape
func hexLiteral(value, digits int) string {
	const hex = "0123456789ABCDEF"
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = hex[value&0x0f]
		value >>= 4
	}
	if digits == 8 {
		return "\\U" + string(buf)
	}
	return "\\u" + string(buf)
}
