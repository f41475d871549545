// File: codes.go
// Title: Diagnostic Code Definitions
// Description: Defines the stable diagnostic codes emitted by the
//              configuration scanner and parser. The codes are
//              language-independent identifiers; message catalogs map each
//              code to a localized template with positional placeholders.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial implementation with the full code taxonomy

package toml

import coalogerror "github.com/msto63/coalog/core/error"

// Lexical diagnostic codes, emitted by the scanner
const (
	CodeDigitDelimiterNotEmbedded coalogerror.Code = "E-Cfg-Toml-DigitDelimiterNotEmbedded"
	CodeDigitExpected             coalogerror.Code = "E-Cfg-Toml-DigitExpected"
	CodeEmptyFloatFract           coalogerror.Code = "E-Cfg-Toml-EmptyFloatFract"
	CodeFourDigitYearRequired     coalogerror.Code = "E-Cfg-Toml-FourDigitYearRequired"
	CodeInvalidChar               coalogerror.Code = "E-Cfg-Toml-InvalidChar"
	CodeInvalidControlChar        coalogerror.Code = "E-Cfg-Toml-InvalidControlChar"
	CodeInvalidDate               coalogerror.Code = "E-Cfg-Toml-InvalidDate"
	CodeInvalidEscapeChar         coalogerror.Code = "E-Cfg-Toml-InvalidEscapeChar"
	CodeInvalidFloatExp           coalogerror.Code = "E-Cfg-Toml-InvalidFloatExp"
	CodeInvalidKeyStart           coalogerror.Code = "E-Cfg-Toml-InvalidKeyStart"
	CodeInvalidLineEndingEscape   coalogerror.Code = "E-Cfg-Toml-InvalidLineEndingEscape"
	CodeInvalidNumChar            coalogerror.Code = "E-Cfg-Toml-InvalidNumChar"
	CodeInvalidNumDateTimeChar    coalogerror.Code = "E-Cfg-Toml-InvalidNumDateTimeChar"
	CodeInvalidRadixPrefix        coalogerror.Code = "E-Cfg-Toml-InvalidRadixPrefix"
	CodeInvalidTime               coalogerror.Code = "E-Cfg-Toml-InvalidTime"
	CodeInvalidUnicodeEscapeChar  coalogerror.Code = "E-Cfg-Toml-InvalidUnicodeEscapeChar"
	CodeInvalidUnicodeEscapeSeq   coalogerror.Code = "E-Cfg-Toml-InvalidUnicodeEscapeSeq"
	CodeInvalidValue              coalogerror.Code = "E-Cfg-Toml-InvalidValue"
	CodeLeadingZeroNotAllowed     coalogerror.Code = "E-Cfg-Toml-LeadingZeroNotAllowed"
	CodeLineTermInSingleLine      coalogerror.Code = "E-Cfg-Toml-LineTermInSingleLineString"
	CodeTimezoneOrMillisExpected  coalogerror.Code = "E-Cfg-Toml-TimezoneOrMillisExpected"
	CodeTooManyQuotes             coalogerror.Code = "E-Cfg-Toml-TooManyQuotes"
	CodeTwoDigitDayRequired       coalogerror.Code = "E-Cfg-Toml-TwoDigitDayRequired"
	CodeTwoDigitHourRequired      coalogerror.Code = "E-Cfg-Toml-TwoDigitHourRequired"
	CodeTwoDigitMonthRequired     coalogerror.Code = "E-Cfg-Toml-TwoDigitMonthRequired"
	CodeUnexpectedKeyToken        coalogerror.Code = "E-Cfg-Toml-UnexpectedKeyToken"
	CodeUnterminatedString        coalogerror.Code = "E-Cfg-Toml-UnterminatedString"
)

// Structural diagnostic codes, emitted by the parser
const (
	CodeClosingBracketExpected    coalogerror.Code = "E-Cfg-Toml-ClosingBracketExpected"
	CodeCommaExpected             coalogerror.Code = "E-Cfg-Toml-CommaExpected"
	CodeCommaOrRBraceExpected     coalogerror.Code = "E-Cfg-Toml-CommaOrRBraceExpected"
	CodeDuplicateSeparatorToken   coalogerror.Code = "E-Cfg-Toml-DuplicateSeparatorToken"
	CodeEqualExpected             coalogerror.Code = "E-Cfg-Toml-EqualExpected"
	CodeInvalidArrayToken         coalogerror.Code = "E-Cfg-Toml-InvalidArrayToken"
	CodeInvalidKeyTermination     coalogerror.Code = "E-Cfg-Toml-InvalidKeyTermination"
	CodeInvalidValueStart         coalogerror.Code = "E-Cfg-Toml-InvalidValueStart"
	CodeKeyAlreadyInUse           coalogerror.Code = "E-Cfg-Toml-KeyAlreadyInUse"
	CodeKeyExpected               coalogerror.Code = "E-Cfg-Toml-KeyExpected"
	CodeKeyOrTableExpected        coalogerror.Code = "E-Cfg-Toml-KeyOrTableExpected"
	CodeKeyUsedForArrayOfTables   coalogerror.Code = "E-Cfg-Toml-KeyUsedForArrayOfTables"
	CodeKeyUsedForSimpleValue     coalogerror.Code = "E-Cfg-Toml-KeyUsedForSimpleValue"
	CodeKeyUsedForTable           coalogerror.Code = "E-Cfg-Toml-KeyUsedForTable"
	CodeKeyUsedForValueArray      coalogerror.Code = "E-Cfg-Toml-KeyUsedForValueArray"
	CodeLeadingSeparator          coalogerror.Code = "E-Cfg-Toml-LeadingSeparator"
	CodeNoLineBreakAfterHeader    coalogerror.Code = "E-Cfg-Toml-NoLineBreakAfterHeader"
	CodeNoLineBreakAfterKeyValue  coalogerror.Code = "E-Cfg-Toml-NoLineBreakAfterKeyValuePair"
	CodeNotATable                 coalogerror.Code = "E-Cfg-Toml-NotATable"
	CodeTableExists               coalogerror.Code = "E-Cfg-Toml-TableExists"
	CodeTrailingDotInKey          coalogerror.Code = "E-Cfg-Toml-TrailingDotInKey"
	CodeTrailingSeparator         coalogerror.Code = "E-Cfg-Toml-TrailingSeparator"
	CodeTwoDotsWithinKey          coalogerror.Code = "E-Cfg-Toml-TwoDotsWithinKey"
	CodeUnseparatedArrayItems     coalogerror.Code = "E-Cfg-Toml-UnseparatedArrayItems"
	CodeUnseparatedKeyParts       coalogerror.Code = "E-Cfg-Toml-UnseparatedKeyParts"
	CodeUnterminatedArray         coalogerror.Code = "E-Cfg-Toml-UnterminatedArray"
	CodeUnterminatedInlineTable   coalogerror.Code = "E-Cfg-Toml-UnterminatedInlineTable"
	CodeValueExpected             coalogerror.Code = "E-Cfg-Toml-ValueExpected"
	CodeWhitespaceBetweenBrackets coalogerror.Code = "E-Cfg-Toml-WhitespaceBetweenBrackets"
)

// AllCodes returns every diagnostic code the scanner and parser can
// emit. Message catalogs are validated against this list.
func AllCodes() []coalogerror.Code {
	return []coalogerror.Code{
		CodeDigitDelimiterNotEmbedded,
		CodeDigitExpected,
		CodeEmptyFloatFract,
		CodeFourDigitYearRequired,
		CodeInvalidChar,
		CodeInvalidControlChar,
		CodeInvalidDate,
		CodeInvalidEscapeChar,
		CodeInvalidFloatExp,
		CodeInvalidKeyStart,
		CodeInvalidLineEndingEscape,
		CodeInvalidNumChar,
		CodeInvalidNumDateTimeChar,
		CodeInvalidRadixPrefix,
		CodeInvalidTime,
		CodeInvalidUnicodeEscapeChar,
		CodeInvalidUnicodeEscapeSeq,
		CodeInvalidValue,
		CodeLeadingZeroNotAllowed,
		CodeLineTermInSingleLine,
		CodeTimezoneOrMillisExpected,
		CodeTooManyQuotes,
		CodeTwoDigitDayRequired,
		CodeTwoDigitHourRequired,
		CodeTwoDigitMonthRequired,
		CodeUnexpectedKeyToken,
		CodeUnterminatedString,
		CodeClosingBracketExpected,
		CodeCommaExpected,
		CodeCommaOrRBraceExpected,
		CodeDuplicateSeparatorToken,
		CodeEqualExpected,
		CodeInvalidArrayToken,
		CodeInvalidKeyTermination,
		CodeInvalidValueStart,
		CodeKeyAlreadyInUse,
		CodeKeyExpected,
		CodeKeyOrTableExpected,
		CodeKeyUsedForArrayOfTables,
		CodeKeyUsedForSimpleValue,
		CodeKeyUsedForTable,
		CodeKeyUsedForValueArray,
		CodeLeadingSeparator,
		CodeNoLineBreakAfterHeader,
		CodeNoLineBreakAfterKeyValue,
		CodeNotATable,
		CodeTableExists,
		CodeTrailingDotInKey,
		CodeTrailingSeparator,
		CodeTwoDotsWithinKey,
		CodeUnseparatedArrayItems,
		CodeUnseparatedKeyParts,
		CodeUnterminatedArray,
		CodeUnterminatedInlineTable,
		CodeValueExpected,
		CodeWhitespaceBetweenBrackets,
	}
}
