// File: parser.go
// Title: Configuration Parser
// Description: Implements the recursive-descent parser that folds the token
//              stream into a Document. Top-level statements are key-value
//              pairs, table headers and array-of-tables headers. A structural
//              error aborts the statement in progress; the parser then
//              resynchronizes at the next line terminator and keeps
//              accumulating diagnostics for the rest of the input.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation
// - 2025-08-15 v0.1.1: Per-statement resynchronization after failures

package toml

import coalogerror "github.com/msto63/coalog/core/error"

// Parser folds the token stream into a Document
type Parser struct {
	scanner *Scanner
	diags   *collector
	doc     *Document
}

// Parse scans and parses a complete configuration buffer. It always returns
// a document, possibly partial; callers decide whether error diagnostics
// render it unusable.
func Parse(input string) (*Document, []Diagnostic) {
	diags := &collector{}
	p := &Parser{
		scanner: NewScanner(input, diags),
		diags:   diags,
		doc:     NewDocument(),
	}
	p.run()
	return p.doc, diags.diags
}

// ParseBytes parses a raw UTF-8 buffer
func ParseBytes(input []byte) (*Document, []Diagnostic) {
	return Parse(string(input))
}

// run processes top-level statements until end of input
func (p *Parser) run() {
	for {
		tok := p.scanner.Next(true)
		switch tok.Kind {
		case TokenLineBreak:
			continue
		case TokenEndOfInput:
			return
		case TokenLeftBracket:
			if !p.tableHeader(tok.Pos, false) {
				p.resync()
			}
		case TokenDoubleLeftBracket:
			if !p.tableHeader(tok.Pos, true) {
				p.resync()
			}
		case TokenKey:
			if !p.keyValuePair(tok) {
				p.resync()
			}
		case TokenError:
			p.resync()
		default:
			p.diags.errorAt(tok.Pos, CodeKeyOrTableExpected, quoted(tok.display()))
			p.resync()
		}
	}
}

// resync discards input to the next statement boundary
func (p *Parser) resync() {
	p.scanner.SkipLine()
}

// keyValuePair parses key '=' value and binds it relative to the table
// selected by the last header
func (p *Parser) keyValuePair(first Token) bool {
	key, ok := p.key(first, TokenEqual)
	if !ok {
		return false
	}

	tok := p.scanner.Next(false)
	v, ok := p.value(tok)
	if !ok {
		return false
	}

	if code, arg := p.doc.setValue(key, v, key.Pos.Line); code != "" {
		p.diags.errorAt(key.Pos, code, quoted(arg))
		return false
	}

	end := p.scanner.Next(true)
	switch end.Kind {
	case TokenLineBreak, TokenEndOfInput:
		return true
	case TokenError:
		return false
	default:
		p.diags.errorAt(end.Pos, CodeNoLineBreakAfterKeyValue, quoted(end.display()))
		return false
	}
}

// key collects dotted key segments up to the given terminator token,
// enforcing strict segment/dot alternation
func (p *Parser) key(first Token, terminator TokenKind) (Key, bool) {
	if first.Kind != TokenKey {
		p.diags.errorAt(first.Pos, CodeKeyExpected, quoted(first.display()))
		return Key{}, false
	}

	key := Key{Segments: []string{first.Text}, Pos: first.Pos}
	afterDot := false
	for {
		tok := p.scanner.Next(true)
		switch tok.Kind {
		case terminator:
			if afterDot {
				p.diags.errorAt(tok.Pos, CodeTrailingDotInKey, quoted(key.String()))
				return Key{}, false
			}
			return key, true
		case TokenDot:
			if afterDot {
				p.diags.errorAt(tok.Pos, CodeTwoDotsWithinKey, quoted(key.String()))
				return Key{}, false
			}
			afterDot = true
		case TokenKey:
			if !afterDot {
				p.diags.errorAt(tok.Pos, CodeUnseparatedKeyParts, quoted(tok.Text))
				return Key{}, false
			}
			key.Segments = append(key.Segments, tok.Text)
			afterDot = false
		case TokenLineBreak, TokenEndOfInput:
			if terminator == TokenEqual {
				p.diags.errorAt(tok.Pos, CodeEqualExpected, quoted(key.String()))
			} else {
				p.diags.errorAt(tok.Pos, CodeClosingBracketExpected, quoted(key.String()))
			}
			return Key{}, false
		case TokenError:
			return Key{}, false
		default:
			// a single bracket closing an array header, or the reverse
			if terminator != TokenEqual &&
				(tok.Kind == TokenRightBracket || tok.Kind == TokenDoubleRightBracket) {
				p.diags.errorAt(tok.Pos, CodeClosingBracketExpected, quoted(tok.display()))
				return Key{}, false
			}
			p.diags.errorAt(tok.Pos, CodeInvalidKeyTermination, quoted(tok.display()))
			return Key{}, false
		}
	}
}

// tableHeader parses a [path] or [[path]] header and applies it to the
// document
func (p *Parser) tableHeader(pos Position, isArray bool) bool {
	first := p.scanner.Next(true)
	switch first.Kind {
	case TokenKey:
		// header key follows
	case TokenLeftBracket:
		// "[ [" reads as a blank between the brackets of an array header
		p.diags.errorAt(first.Pos, CodeWhitespaceBetweenBrackets)
		return false
	case TokenError:
		return false
	default:
		p.diags.errorAt(first.Pos, CodeKeyExpected, quoted(first.display()))
		return false
	}

	terminator := TokenRightBracket
	if isArray {
		terminator = TokenDoubleRightBracket
	}
	key, ok := p.key(first, terminator)
	if !ok {
		return false
	}

	var code coalogerror.Code
	var arg string
	if isArray {
		code, arg = p.doc.appendArrayTable(key, pos.Line)
	} else {
		code, arg = p.doc.openTable(key, pos.Line)
	}
	if code != "" {
		p.diags.errorAt(key.Pos, code, quoted(arg))
		return false
	}

	end := p.scanner.Next(true)
	switch end.Kind {
	case TokenLineBreak, TokenEndOfInput:
		return true
	case TokenError:
		return false
	default:
		p.diags.errorAt(end.Pos, CodeNoLineBreakAfterHeader, quoted(end.display()))
		return false
	}
}

// value parses one value: a literal, an array or an inline table
func (p *Parser) value(tok Token) (*Value, bool) {
	switch tok.Kind {
	case TokenValue:
		return tok.Value, true
	case TokenLeftBracket:
		return p.array(tok.Pos)
	case TokenLeftBrace:
		return p.inlineTable(tok.Pos)
	case TokenDot:
		p.diags.errorAt(tok.Pos, CodeInvalidValueStart, quoted("."))
		return nil, false
	case TokenError:
		return nil, false
	case TokenLineBreak, TokenEndOfInput:
		p.diags.errorAt(tok.Pos, CodeValueExpected)
		return nil, false
	default:
		p.diags.errorAt(tok.Pos, CodeValueExpected, quoted(tok.display()))
		return nil, false
	}
}

// array parses a [ ... ] value. Items may be of mixed kinds, a trailing
// comma is permitted and line terminators are insignificant inside the
// brackets.
func (p *Parser) array(pos Position) (*Value, bool) {
	var items []*Value
	hadItem := false
	lastWasComma := false
	for {
		tok := p.scanner.Next(false)
		switch tok.Kind {
		case TokenLineBreak:
			continue
		case TokenRightBracket:
			return ArrayValue(items), true
		case TokenComma:
			if !hadItem {
				p.diags.errorAt(tok.Pos, CodeLeadingSeparator, quoted(","))
				return nil, false
			}
			if lastWasComma {
				p.diags.errorAt(tok.Pos, CodeDuplicateSeparatorToken, quoted(","))
				return nil, false
			}
			lastWasComma = true
		case TokenEndOfInput:
			p.diags.errorAt(pos, CodeUnterminatedArray)
			return nil, false
		case TokenValue, TokenLeftBracket, TokenLeftBrace:
			if hadItem && !lastWasComma {
				p.diags.errorAt(tok.Pos, CodeUnseparatedArrayItems)
				return nil, false
			}
			v, ok := p.value(tok)
			if !ok {
				return nil, false
			}
			items = append(items, v)
			hadItem = true
			lastWasComma = false
		case TokenError:
			return nil, false
		default:
			p.diags.errorAt(tok.Pos, CodeInvalidArrayToken, quoted(tok.display()))
			return nil, false
		}
	}
}

// inline table parsing states
const (
	inlineStart = iota
	inlineAfterEntry
	inlineAfterComma
)

// inlineTable parses a { ... } value. The resulting table is stored as a
// plain value binding, which freezes it: later statements cannot extend it.
func (p *Parser) inlineTable(pos Position) (*Value, bool) {
	tbl := NewTable()
	state := inlineStart
	for {
		tok := p.scanner.Next(true)
		switch tok.Kind {
		case TokenRightBrace:
			if state == inlineAfterComma {
				p.diags.errorAt(tok.Pos, CodeTrailingSeparator, quoted(","))
				return nil, false
			}
			return TableValue(tbl), true
		case TokenComma:
			switch state {
			case inlineStart:
				p.diags.errorAt(tok.Pos, CodeLeadingSeparator, quoted(","))
				return nil, false
			case inlineAfterComma:
				p.diags.errorAt(tok.Pos, CodeDuplicateSeparatorToken, quoted(","))
				return nil, false
			}
			state = inlineAfterComma
		case TokenKey:
			if state == inlineAfterEntry {
				p.diags.errorAt(tok.Pos, CodeCommaExpected, quoted(tok.Text))
				return nil, false
			}
			key, ok := p.key(tok, TokenEqual)
			if !ok {
				return nil, false
			}
			vtok := p.scanner.Next(false)
			v, ok := p.value(vtok)
			if !ok {
				return nil, false
			}
			if code, arg := tbl.setValue(key, v, key.Pos.Line); code != "" {
				p.diags.errorAt(key.Pos, code, quoted(arg))
				return nil, false
			}
			state = inlineAfterEntry
		case TokenLineBreak, TokenEndOfInput:
			p.diags.errorAt(pos, CodeUnterminatedInlineTable)
			return nil, false
		case TokenError:
			return nil, false
		default:
			p.diags.errorAt(tok.Pos, CodeCommaOrRBraceExpected, quoted(tok.display()))
			return nil, false
		}
	}
}
