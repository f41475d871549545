// File: scanner.go
// Title: Configuration Scanner
// Description: Implements the hand-written tokenizer for the configuration
//              language. The scanner walks the complete in-memory buffer one
//              rune at a time, tracks exact line/column positions and decodes
//              literal payloads inline. Key/value disambiguation is driven by
//              the caller: at top-of-statement the parser requests key tokens,
//              inside a value position it requests value tokens.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation with keys, punctuation, comments
// - 2025-08-14 v0.1.1: Bracket doubling restricted to key positions

package toml

import "unicode/utf8"

// eof marks the end of the input buffer
const eof = rune(-1)

// Scanner converts a configuration text buffer into a token sequence
type Scanner struct {
	input string
	pos   int // byte offset of the next rune
	line  int
	col   int
	diags *collector
}

// NewScanner creates a scanner over the given buffer. The collector is
// shared with the parser so diagnostics stay in source order.
func NewScanner(input string, diags *collector) *Scanner {
	return &Scanner{
		input: input,
		line:  1,
		col:   1,
		diags: diags,
	}
}

// peek returns the next rune without consuming it
func (s *Scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

// peekAt returns the rune n positions ahead without consuming anything
func (s *Scanner) peekAt(n int) rune {
	pos := s.pos
	for i := 0; i <= n; i++ {
		if pos >= len(s.input) {
			return eof
		}
		r, size := utf8.DecodeRuneInString(s.input[pos:])
		if i == n {
			return r
		}
		pos += size
	}
	return eof
}

// advance consumes the next rune and updates the line/column tracking.
// Columns count characters, not bytes.
func (s *Scanner) advance() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// position returns the position of the next rune
func (s *Scanner) position() Position {
	return Position{Line: s.line, Column: s.col}
}

// Next returns the next token. With expectKey the scanner treats words as
// key candidates and recognizes doubled brackets for array-of-tables
// headers; otherwise words are scanned as values and brackets stay single.
func (s *Scanner) Next(expectKey bool) Token {
	for {
		r := s.peek()
		if r == ' ' || r == '\t' {
			s.advance()
			continue
		}
		if r == '#' {
			if tok := s.skipComment(); tok != nil {
				return *tok
			}
			continue
		}
		break
	}

	pos := s.position()
	r := s.peek()

	switch r {
	case eof:
		return Token{Kind: TokenEndOfInput, Pos: pos}
	case '\n':
		s.advance()
		return Token{Kind: TokenLineBreak, Pos: pos}
	case '\r':
		s.advance()
		if s.peek() == '\n' {
			s.advance()
			return Token{Kind: TokenLineBreak, Pos: pos}
		}
		s.diags.errorAt(pos, CodeInvalidChar, quoted("\\r"))
		return Token{Kind: TokenError, Pos: pos}
	case '=':
		s.advance()
		return Token{Kind: TokenEqual, Pos: pos, Text: "="}
	case '.':
		s.advance()
		return Token{Kind: TokenDot, Pos: pos, Text: "."}
	case ',':
		s.advance()
		return Token{Kind: TokenComma, Pos: pos, Text: ","}
	case '{':
		s.advance()
		return Token{Kind: TokenLeftBrace, Pos: pos, Text: "{"}
	case '}':
		s.advance()
		return Token{Kind: TokenRightBrace, Pos: pos, Text: "}"}
	case '[':
		s.advance()
		if expectKey && s.peek() == '[' {
			s.advance()
			return Token{Kind: TokenDoubleLeftBracket, Pos: pos, Text: "[["}
		}
		return Token{Kind: TokenLeftBracket, Pos: pos, Text: "["}
	case ']':
		s.advance()
		if expectKey && s.peek() == ']' {
			s.advance()
			return Token{Kind: TokenDoubleRightBracket, Pos: pos, Text: "]]"}
		}
		return Token{Kind: TokenRightBracket, Pos: pos, Text: "]"}
	}

	if expectKey {
		return s.scanKey(pos, r)
	}
	return s.scanValue(pos, r)
}

// SkipLine discards the remainder of the current source line including its
// terminator. The parser calls it to resynchronize after an error.
func (s *Scanner) SkipLine() {
	for {
		r := s.peek()
		if r == eof {
			return
		}
		if s.advance() == '\n' {
			return
		}
	}
}

// skipInvalid consumes the offending rune after a diagnostic unless it is
// a line terminator, which must remain for statement resynchronization
func (s *Scanner) skipInvalid() {
	switch s.peek() {
	case eof, '\n', '\r':
		return
	}
	s.advance()
}

// skipComment consumes a comment up to the line terminator. A control
// character inside the comment yields an error token.
func (s *Scanner) skipComment() *Token {
	s.advance() // '#'
	for {
		r := s.peek()
		if r == eof || r == '\n' || r == '\r' {
			return nil
		}
		if r < 0x20 && r != '\t' {
			pos := s.position()
			s.diags.errorAt(pos, CodeInvalidControlChar, quoted(displayChar(r)))
			s.advance()
			return &Token{Kind: TokenError, Pos: pos}
		}
		s.advance()
	}
}

// scanKey scans a bare or quoted key segment
func (s *Scanner) scanKey(pos Position, r rune) Token {
	switch {
	case r == '"' || r == '\'':
		return s.scanQuotedKey(pos, r)
	case r == '+':
		s.advance()
		s.diags.errorAt(pos, CodeInvalidKeyStart, quoted("+"))
		return Token{Kind: TokenError, Pos: pos}
	case isBareKeyRune(r):
		return s.scanBareKey(pos)
	default:
		s.advance()
		s.diags.errorAt(pos, CodeInvalidChar, quoted(displayChar(r)))
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanBareKey scans a run of bare-key characters and checks that the key
// ends on a legal terminator
func (s *Scanner) scanBareKey(pos Position) Token {
	start := s.pos
	for isBareKeyRune(s.peek()) {
		s.advance()
	}
	text := s.input[start:s.pos]

	if !isKeyTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeUnexpectedKeyToken, quoted(displayChar(s.peek())))
		s.advance()
		return Token{Kind: TokenError, Pos: pos}
	}
	return Token{Kind: TokenKey, Pos: pos, Text: text}
}

// scanQuotedKey scans a key written as a single-line basic or literal string
func (s *Scanner) scanQuotedKey(pos Position, delim rune) Token {
	s.advance() // opening delimiter
	if s.peek() == delim {
		// empty quoted key
		s.advance()
		return Token{Kind: TokenKey, Pos: pos, Text: ""}
	}
	text, ok := s.scanSingleLineBody(pos, delim)
	if !ok {
		return Token{Kind: TokenError, Pos: pos}
	}
	return Token{Kind: TokenKey, Pos: pos, Text: text}
}

// scanValue dispatches on the first character of a value literal
func (s *Scanner) scanValue(pos Position, r rune) Token {
	switch {
	case r == '"' || r == '\'':
		return s.scanString(pos, r)
	case r >= '0' && r <= '9':
		return s.scanNumeric(pos, 0)
	case r == '+' || r == '-':
		return s.scanSigned(pos, r)
	case isLetter(r):
		return s.scanSymbolic(pos)
	default:
		s.advance()
		s.diags.errorAt(pos, CodeInvalidChar, quoted(displayChar(r)))
		return Token{Kind: TokenError, Pos: pos}
	}
}

// isKeyTerminator reports whether r may legally follow a bare key
func isKeyTerminator(r rune) bool {
	switch r {
	case eof, ' ', '\t', '\n', '\r', '.', '=', '[', ']', '{', '}', ',', '#':
		return true
	default:
		return false
	}
}

// isValueTerminator reports whether r may legally follow a value literal
func isValueTerminator(r rune) bool {
	switch r {
	case eof, ' ', '\t', '\n', '\r', ',', ']', '}', '#':
		return true
	default:
		return false
	}
}

// isLetter reports whether r is an ASCII letter
func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isDigit reports whether r is an ASCII digit
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isHexDigit reports whether r is a hexadecimal digit
func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// displayChar renders a rune for use in diagnostic arguments
func displayChar(r rune) string {
	switch r {
	case eof:
		return "end of input"
	case '\n', '\r':
		return "line break"
	case '\t':
		return "\\t"
	default:
		if r < 0x20 {
			return string([]rune{'\\', 'x', hexUpper(byte(r) >> 4), hexUpper(byte(r) & 0x0f)})
		}
		return string(r)
	}
}

// hexUpper returns the uppercase hex digit for a nibble
func hexUpper(b byte) rune {
	const digits = "0123456789ABCDEF"
	return rune(digits[b&0x0f])
}
