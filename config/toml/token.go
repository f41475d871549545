// File: token.go
// Title: Token and Position Definitions
// Description: Defines the token kinds produced by the configuration scanner
//              together with the source position attached to every token.
//              Positions are 1-based line/column pairs pointing at the first
//              character of the token.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation

package toml

import "fmt"

// Position identifies a location in the configuration source
type Position struct {
	Line   int // 1-based
	Column int // 1-based, counted in characters
}

// String returns the position as "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenKind classifies a scanned token
type TokenKind int

const (
	// TokenKey is a bare or quoted key segment
	TokenKey TokenKind = iota

	// TokenValue is a decoded value literal
	TokenValue

	// TokenEqual is the assignment operator between key and value
	TokenEqual

	// TokenDot separates segments of a dotted key
	TokenDot

	// TokenComma separates array items and inline table entries
	TokenComma

	// TokenLeftBrace opens an inline table
	TokenLeftBrace

	// TokenRightBrace closes an inline table
	TokenRightBrace

	// TokenLeftBracket opens an array or a table header
	TokenLeftBracket

	// TokenRightBracket closes an array or a table header
	TokenRightBracket

	// TokenDoubleLeftBracket opens an array-of-tables header
	TokenDoubleLeftBracket

	// TokenDoubleRightBracket closes an array-of-tables header
	TokenDoubleRightBracket

	// TokenLineBreak is a significant line terminator
	TokenLineBreak

	// TokenEndOfInput marks the end of the source buffer
	TokenEndOfInput

	// TokenError stands in for a token that could not be scanned; the
	// lexical diagnostic has already been recorded when it is returned
	TokenError
)

// String returns a readable name for the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenKey:
		return "key"
	case TokenValue:
		return "value"
	case TokenEqual:
		return "'='"
	case TokenDot:
		return "'.'"
	case TokenComma:
		return "','"
	case TokenLeftBrace:
		return "'{'"
	case TokenRightBrace:
		return "'}'"
	case TokenLeftBracket:
		return "'['"
	case TokenRightBracket:
		return "']'"
	case TokenDoubleLeftBracket:
		return "'[['"
	case TokenDoubleRightBracket:
		return "']]'"
	case TokenLineBreak:
		return "line break"
	case TokenEndOfInput:
		return "end of input"
	case TokenError:
		return "invalid token"
	default:
		return "unknown"
	}
}

// Token is a single lexical unit of the configuration source
type Token struct {
	Kind TokenKind
	Pos  Position

	// Text holds the decoded key text for TokenKey and the raw source
	// text for punctuation and error tokens
	Text string

	// Value holds the decoded payload for TokenValue
	Value *Value
}

// display returns the token text suitable for diagnostic arguments
func (t Token) display() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
