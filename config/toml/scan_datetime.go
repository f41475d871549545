// File: scan_datetime.go
// Title: Date and Time Scanning
// Description: Implements scanning of calendar dates, times of day and
//              datetimes with optional fractional seconds and timezone
//              offsets. Component digit counts are exact: four-digit years,
//              two-digit months, days, hours, minutes and seconds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation

package toml

import (
	"fmt"
	"strconv"
	"time"
)

// clockParts holds a scanned time of day
type clockParts struct {
	hour, min, sec, nanos int
	frac                  bool
}

// readDigits consumes a run of plain decimal digits
func (s *Scanner) readDigits() string {
	start := s.pos
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.input[start:s.pos]
}

// scanDateTail scans month and day after a four-digit year, and an optional
// time suffix introduced by 'T' or a blank followed by a digit
func (s *Scanner) scanDateTail(pos Position, year string) Token {
	s.advance() // '-'

	month := s.readDigits()
	if len(month) != 2 {
		s.diags.errorAt(pos, CodeTwoDigitMonthRequired, quoted(month))
		return Token{Kind: TokenError, Pos: pos}
	}
	if s.peek() != '-' {
		s.diags.errorAt(pos, CodeTwoDigitDayRequired, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
	s.advance() // '-'

	day := s.readDigits()
	if len(day) != 2 {
		s.diags.errorAt(pos, CodeTwoDigitDayRequired, quoted(day))
		return Token{Kind: TokenError, Pos: pos}
	}

	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		s.diags.errorAt(pos, CodeInvalidDate, quoted(year+"-"+month+"-"+day))
		return Token{Kind: TokenError, Pos: pos}
	}

	r := s.peek()
	switch {
	case r == 'T':
		s.advance()
		return s.scanDateTimeClock(pos, y, mo, d)
	case r == ' ' && isDigit(s.peekAt(1)):
		s.advance()
		return s.scanDateTimeClock(pos, y, mo, d)
	case isValueTerminator(r):
		return Token{Kind: TokenValue, Pos: pos, Value: DateValue(time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC))}
	default:
		s.diags.errorAt(s.position(), CodeInvalidNumDateTimeChar, quoted(displayChar(r)))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanClockAfterHour scans a standalone time of day; the hour digits and
// the first colon have already been consumed
func (s *Scanner) scanClockAfterHour(pos Position, hourStr string) Token {
	parts, ok := s.scanClockParts(pos, hourStr)
	if !ok {
		return Token{Kind: TokenError, Pos: pos}
	}
	if !isValueTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
	t := time.Date(0, 1, 1, parts.hour, parts.min, parts.sec, parts.nanos, time.UTC)
	return Token{Kind: TokenValue, Pos: pos, Value: TimeValue(t)}
}

// scanDateTimeClock scans the time part of a datetime, optionally followed
// by fractional seconds and a timezone offset
func (s *Scanner) scanDateTimeClock(pos Position, y, mo, d int) Token {
	hourStr := s.readDigits()
	if len(hourStr) != 2 {
		s.diags.errorAt(pos, CodeTwoDigitHourRequired, quoted(hourStr))
		return Token{Kind: TokenError, Pos: pos}
	}
	if s.peek() != ':' {
		s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
	s.advance()

	parts, ok := s.scanClockParts(pos, hourStr)
	if !ok {
		return Token{Kind: TokenError, Pos: pos}
	}

	r := s.peek()
	switch {
	case r == 'Z':
		s.advance()
		if !isValueTerminator(s.peek()) {
			s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
			s.skipInvalid()
			return Token{Kind: TokenError, Pos: pos}
		}
		t := time.Date(y, time.Month(mo), d, parts.hour, parts.min, parts.sec, parts.nanos, time.UTC)
		return Token{Kind: TokenValue, Pos: pos, Value: DateTimeValue(t, true)}
	case r == '+' || r == '-':
		return s.scanTimezoneOffset(pos, y, mo, d, parts, r)
	case isValueTerminator(r):
		t := time.Date(y, time.Month(mo), d, parts.hour, parts.min, parts.sec, parts.nanos, time.UTC)
		return Token{Kind: TokenValue, Pos: pos, Value: DateTimeValue(t, false)}
	default:
		// after whole seconds either a timezone marker or fractional
		// seconds must follow
		if parts.frac {
			s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(r)))
		} else {
			s.diags.errorAt(s.position(), CodeTimezoneOrMillisExpected, quoted(displayChar(r)))
		}
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
}

// scanClockParts scans minutes, seconds and an optional fraction after the
// hour and its colon
func (s *Scanner) scanClockParts(pos Position, hourStr string) (clockParts, bool) {
	var parts clockParts
	parts.hour, _ = strconv.Atoi(hourStr)
	if parts.hour > 23 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(hourStr))
		return parts, false
	}

	minStr := s.readDigits()
	if len(minStr) != 2 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(minStr))
		return parts, false
	}
	parts.min, _ = strconv.Atoi(minStr)
	if parts.min > 59 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(minStr))
		return parts, false
	}

	if s.peek() != ':' {
		s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return parts, false
	}
	s.advance()

	secStr := s.readDigits()
	if len(secStr) != 2 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(secStr))
		return parts, false
	}
	parts.sec, _ = strconv.Atoi(secStr)
	if parts.sec > 59 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(secStr))
		return parts, false
	}

	if s.peek() == '.' {
		s.advance()
		frac := s.readDigits()
		if len(frac) == 0 {
			s.diags.errorAt(s.position(), CodeDigitExpected, quoted(displayChar(s.peek())))
			s.skipInvalid()
			return parts, false
		}
		if len(frac) > 9 {
			frac = frac[:9]
		}
		for len(frac) < 9 {
			frac += "0"
		}
		parts.nanos, _ = strconv.Atoi(frac)
		parts.frac = true
	}
	return parts, true
}

// scanTimezoneOffset scans a +HH:MM or -HH:MM timezone suffix
func (s *Scanner) scanTimezoneOffset(pos Position, y, mo, d int, parts clockParts, sign rune) Token {
	s.advance() // sign

	ohStr := s.readDigits()
	if len(ohStr) != 2 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(ohStr))
		return Token{Kind: TokenError, Pos: pos}
	}
	if s.peek() != ':' {
		s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}
	s.advance()
	omStr := s.readDigits()
	if len(omStr) != 2 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(omStr))
		return Token{Kind: TokenError, Pos: pos}
	}

	oh, _ := strconv.Atoi(ohStr)
	om, _ := strconv.Atoi(omStr)
	if oh > 23 || om > 59 {
		s.diags.errorAt(pos, CodeInvalidTime, quoted(string(sign)+ohStr+":"+omStr))
		return Token{Kind: TokenError, Pos: pos}
	}
	if !isValueTerminator(s.peek()) {
		s.diags.errorAt(s.position(), CodeInvalidTime, quoted(displayChar(s.peek())))
		s.skipInvalid()
		return Token{Kind: TokenError, Pos: pos}
	}

	secs := oh*3600 + om*60
	if sign == '-' {
		secs = -secs
	}
	loc := time.FixedZone(fmt.Sprintf("UTC%c%s:%s", sign, ohStr, omStr), secs)
	t := time.Date(y, time.Month(mo), d, parts.hour, parts.min, parts.sec, parts.nanos, loc)
	return Token{Kind: TokenValue, Pos: pos, Value: DateTimeValue(t, true)}
}
