// File: codes.go
// Title: Configuration Warning Codes
// Description: Stable W-Cfg-* codes emitted by the configuration model
//              builder. These never stop a load; they report values that
//              were ignored or replaced by defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-19
// Modified: 2025-08-19
//
// Change History:
// - 2025-08-19 v0.1.0: Initial implementation

package config

import coalogerror "github.com/msto63/coalog/core/error"

// Warning codes of the configuration model builder. The message
// catalogs in core/i18n map each code to localized text.
const (
	// CodeUnknownSection flags a top-level table the model does not know.
	CodeUnknownSection coalogerror.Code = "W-Cfg-UnknownSection"

	// CodeUnknownKey flags an unrecognized key inside a known section.
	CodeUnknownKey coalogerror.Code = "W-Cfg-UnknownKey"

	// CodeWrongValueType flags a key bound to a value of the wrong kind.
	CodeWrongValueType coalogerror.Code = "W-Cfg-WrongValueType"

	// CodeInvalidLevel flags an unparseable log level name.
	CodeInvalidLevel coalogerror.Code = "W-Cfg-InvalidLevel"

	// CodeInvalidTriggerChar flags an unknown character in a trigger set.
	CodeInvalidTriggerChar coalogerror.Code = "W-Cfg-InvalidTriggerChar"

	// CodeInvalidFormatVar flags an unknown $-variable in a format pattern.
	CodeInvalidFormatVar coalogerror.Code = "W-Cfg-InvalidFormatVar"

	// CodeDuplicateResource flags a resource name defined twice.
	CodeDuplicateResource coalogerror.Code = "W-Cfg-DuplicateResource"

	// CodeResourceWithoutTarget flags a file resource with no target path.
	CodeResourceWithoutTarget coalogerror.Code = "W-Cfg-ResourceWithoutTarget"

	// CodeValueOutOfRange flags a numeric value outside its valid range.
	CodeValueOutOfRange coalogerror.Code = "W-Cfg-ValueOutOfRange"

	// CodeUnknownRolloverUnit flags an unrecognized rollover unit.
	CodeUnknownRolloverUnit coalogerror.Code = "W-Cfg-UnknownRolloverUnit"
)

// WarningCodes returns every configuration warning code. Message
// catalogs are validated against this list.
func WarningCodes() []coalogerror.Code {
	return []coalogerror.Code{
		CodeUnknownSection,
		CodeUnknownKey,
		CodeWrongValueType,
		CodeInvalidLevel,
		CodeInvalidTriggerChar,
		CodeInvalidFormatVar,
		CodeDuplicateResource,
		CodeResourceWithoutTarget,
		CodeValueOutOfRange,
		CodeUnknownRolloverUnit,
	}
}
