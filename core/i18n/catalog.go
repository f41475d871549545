// File: catalog.go
// Title: Built-in Message Catalogs
// Description: Defines the English and German catalogs that ship with the
//              library. Every stable code of the configuration parser, the
//              configuration model and the logging runtime has an entry in
//              both locales; catalog files can override single entries.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package i18n

// builtinCatalogs returns fresh copies of the embedded catalogs so that
// file overrides never mutate the originals
func builtinCatalogs() map[string]Catalog {
	return map[string]Catalog{
		"en": copyCatalog(catalogEN),
		"de": copyCatalog(catalogDE),
	}
}

// copyCatalog clones a catalog
func copyCatalog(src Catalog) Catalog {
	dst := make(Catalog, len(src))
	for key, template := range src {
		dst[key] = template
	}
	return dst
}

var catalogEN = Catalog{
	keySeverityError:   "error",
	keySeverityWarning: "warning",

	// generic runtime codes
	"E-Unknown":              "unknown error",
	"E-Internal":             "internal error %s",
	"E-Cfg-FileNotRead":      "configuration file %s could not be read",
	"E-Cfg-Toml-ParseFailed": "configuration could not be parsed",
	"E-Cfg-FoundIssues":      "configuration contains %s issue(s)",
	"E-Res-OpenFailed":       "output resource %s could not be opened",
	"E-Res-WriteFailed":      "write to resource %s failed",
	"E-Res-Closed":           "resource %s is already closed",
	"E-Rovr-Failed":          "rollover of %s failed",
	"E-Msg-CatalogNotRead":   "message catalog %s could not be read",
	"E-Msg-UnknownLocale":    "no catalog for locale %s",
	"E-Msg-UnknownCode":      "no message for code %s",
	"E-Val-Failed":           "validation failed for %s",

	// lexical diagnostics
	"E-Cfg-Toml-InvalidChar":                "invalid character %s",
	"E-Cfg-Toml-InvalidControlChar":         "control character %s is not allowed here",
	"E-Cfg-Toml-InvalidKeyStart":            "a key must not start with %s",
	"E-Cfg-Toml-UnexpectedKeyToken":         "unexpected %s after key",
	"E-Cfg-Toml-UnterminatedString":         "string %s is not terminated",
	"E-Cfg-Toml-TooManyQuotes":              "too many quotes at the end of the multiline string",
	"E-Cfg-Toml-InvalidEscapeChar":          "invalid escape character %s",
	"E-Cfg-Toml-LineTermInSingleLineString": "escaped line break inside a single-line string",
	"E-Cfg-Toml-InvalidLineEndingEscape":    "line-ending backslash must be followed by a line feed",
	"E-Cfg-Toml-InvalidUnicodeEscapeChar":   "invalid character %s in unicode escape",
	"E-Cfg-Toml-InvalidUnicodeEscapeSeq":    "escape %s is not a valid unicode code point",
	"E-Cfg-Toml-DigitDelimiterNotEmbedded":  "underscore separators must sit between two digits",
	"E-Cfg-Toml-DigitExpected":              "digit expected, found %s",
	"E-Cfg-Toml-EmptyFloatFract":            "fraction of a float must contain at least one digit",
	"E-Cfg-Toml-InvalidFloatExp":            "invalid exponent, found %s",
	"E-Cfg-Toml-InvalidNumChar":             "invalid character %s in number",
	"E-Cfg-Toml-InvalidNumDateTimeChar":     "invalid character %s in number or datetime",
	"E-Cfg-Toml-InvalidRadixPrefix":         "unknown radix prefix %s",
	"E-Cfg-Toml-LeadingZeroNotAllowed":      "number %s must not start with a zero",
	"E-Cfg-Toml-InvalidValue":               "invalid value %s",
	"E-Cfg-Toml-FourDigitYearRequired":      "year must have four digits, found %s",
	"E-Cfg-Toml-TwoDigitMonthRequired":      "month must have two digits, found %s",
	"E-Cfg-Toml-TwoDigitDayRequired":        "day must have two digits, found %s",
	"E-Cfg-Toml-TwoDigitHourRequired":       "hour must have two digits, found %s",
	"E-Cfg-Toml-InvalidDate":                "date %s is out of range",
	"E-Cfg-Toml-InvalidTime":                "invalid time component %s",
	"E-Cfg-Toml-TimezoneOrMillisExpected":   "timezone or fractional seconds expected, found %s",

	// structural diagnostics
	"E-Cfg-Toml-ClosingBracketExpected":       "closing bracket expected, found %s",
	"E-Cfg-Toml-CommaExpected":                "comma expected before %s",
	"E-Cfg-Toml-CommaOrRBraceExpected":        "comma or closing brace expected, found %s",
	"E-Cfg-Toml-DuplicateSeparatorToken":      "duplicate separator %s",
	"E-Cfg-Toml-EqualExpected":                "equals sign expected after key %s",
	"E-Cfg-Toml-InvalidArrayToken":            "unexpected %s inside array",
	"E-Cfg-Toml-InvalidKeyTermination":        "unexpected %s after key",
	"E-Cfg-Toml-InvalidValueStart":            "a value must not start with %s",
	"E-Cfg-Toml-KeyAlreadyInUse":              "key %s is already in use",
	"E-Cfg-Toml-KeyExpected":                  "key expected, found %s",
	"E-Cfg-Toml-KeyOrTableExpected":           "key or table header expected, found %s",
	"E-Cfg-Toml-KeyUsedForArrayOfTables":      "key %s is already used for an array of tables",
	"E-Cfg-Toml-KeyUsedForSimpleValue":        "key %s is already used for a simple value",
	"E-Cfg-Toml-KeyUsedForTable":              "key %s is already used for a table",
	"E-Cfg-Toml-KeyUsedForValueArray":         "key %s is already used for a value array",
	"E-Cfg-Toml-LeadingSeparator":             "separator %s must not open the list",
	"E-Cfg-Toml-NoLineBreakAfterHeader":       "line break expected after table header, found %s",
	"E-Cfg-Toml-NoLineBreakAfterKeyValuePair": "line break expected after key-value pair, found %s",
	"E-Cfg-Toml-NotATable":                    "key %s does not name a table",
	"E-Cfg-Toml-TableExists":                  "table %s is already defined",
	"E-Cfg-Toml-TrailingDotInKey":             "key %s must not end with a dot",
	"E-Cfg-Toml-TrailingSeparator":            "separator %s must not close the list",
	"E-Cfg-Toml-TwoDotsWithinKey":             "key %s contains two consecutive dots",
	"E-Cfg-Toml-UnseparatedArrayItems":        "array items must be separated by a comma",
	"E-Cfg-Toml-UnseparatedKeyParts":          "key parts before %s must be separated by a dot",
	"E-Cfg-Toml-UnterminatedArray":            "array is not terminated",
	"E-Cfg-Toml-UnterminatedInlineTable":      "inline table is not terminated",
	"E-Cfg-Toml-ValueExpected":                "value expected",
	"E-Cfg-Toml-WhitespaceBetweenBrackets":    "blank between the brackets of an array-of-tables header",

	// configuration model warnings
	"W-Cfg-UnknownSection":        "unknown configuration section %s ignored",
	"W-Cfg-UnknownKey":            "unknown configuration key %s ignored",
	"W-Cfg-WrongValueType":        "configuration key %s has the wrong type, expected %s",
	"W-Cfg-InvalidLevel":          "unknown log level %s, keeping %s",
	"W-Cfg-InvalidTriggerChar":    "unknown trigger character %s ignored",
	"W-Cfg-InvalidFormatVar":      "unknown format variable %s",
	"W-Cfg-DuplicateResource":     "duplicate resource name %s ignored",
	"W-Cfg-ResourceWithoutTarget": "resource %s has no target and was ignored",
	"W-Cfg-ValueOutOfRange":       "value for %s is out of range, keeping %s",
	"W-Cfg-UnknownRolloverUnit":   "unknown rollover unit %s",
}

var catalogDE = Catalog{
	keySeverityError:   "Fehler",
	keySeverityWarning: "Warnung",

	// generic runtime codes
	"E-Unknown":              "unbekannter Fehler",
	"E-Internal":             "interner Fehler %s",
	"E-Cfg-FileNotRead":      "Konfigurationsdatei %s konnte nicht gelesen werden",
	"E-Cfg-Toml-ParseFailed": "Konfiguration konnte nicht geparst werden",
	"E-Cfg-FoundIssues":      "Konfiguration enthaelt %s Problem(e)",
	"E-Res-OpenFailed":       "Ausgaberessource %s konnte nicht geoeffnet werden",
	"E-Res-WriteFailed":      "Schreiben auf Ressource %s fehlgeschlagen",
	"E-Res-Closed":           "Ressource %s ist bereits geschlossen",
	"E-Rovr-Failed":          "Rollover von %s fehlgeschlagen",
	"E-Msg-CatalogNotRead":   "Nachrichtenkatalog %s konnte nicht gelesen werden",
	"E-Msg-UnknownLocale":    "kein Katalog fuer Locale %s",
	"E-Msg-UnknownCode":      "keine Nachricht fuer Code %s",
	"E-Val-Failed":           "Validierung fuer %s fehlgeschlagen",

	// lexical diagnostics
	"E-Cfg-Toml-InvalidChar":                "ungueltiges Zeichen %s",
	"E-Cfg-Toml-InvalidControlChar":         "Steuerzeichen %s ist hier nicht erlaubt",
	"E-Cfg-Toml-InvalidKeyStart":            "ein Schluessel darf nicht mit %s beginnen",
	"E-Cfg-Toml-UnexpectedKeyToken":         "unerwartetes %s nach Schluessel",
	"E-Cfg-Toml-UnterminatedString":         "Zeichenkette %s ist nicht abgeschlossen",
	"E-Cfg-Toml-TooManyQuotes":              "zu viele Anfuehrungszeichen am Ende der mehrzeiligen Zeichenkette",
	"E-Cfg-Toml-InvalidEscapeChar":          "ungueltiges Escape-Zeichen %s",
	"E-Cfg-Toml-LineTermInSingleLineString": "maskierter Zeilenumbruch in einzeiliger Zeichenkette",
	"E-Cfg-Toml-InvalidLineEndingEscape":    "auf einen Zeilenende-Backslash muss ein Zeilenvorschub folgen",
	"E-Cfg-Toml-InvalidUnicodeEscapeChar":   "ungueltiges Zeichen %s in Unicode-Escape",
	"E-Cfg-Toml-InvalidUnicodeEscapeSeq":    "Escape %s ist kein gueltiger Unicode-Codepunkt",
	"E-Cfg-Toml-DigitDelimiterNotEmbedded":  "Unterstrich-Trenner muessen zwischen zwei Ziffern stehen",
	"E-Cfg-Toml-DigitExpected":              "Ziffer erwartet, gefunden %s",
	"E-Cfg-Toml-EmptyFloatFract":            "Nachkommateil einer Gleitkommazahl braucht mindestens eine Ziffer",
	"E-Cfg-Toml-InvalidFloatExp":            "ungueltiger Exponent, gefunden %s",
	"E-Cfg-Toml-InvalidNumChar":             "ungueltiges Zeichen %s in Zahl",
	"E-Cfg-Toml-InvalidNumDateTimeChar":     "ungueltiges Zeichen %s in Zahl oder Datumsangabe",
	"E-Cfg-Toml-InvalidRadixPrefix":         "unbekanntes Basis-Praefix %s",
	"E-Cfg-Toml-LeadingZeroNotAllowed":      "Zahl %s darf nicht mit einer Null beginnen",
	"E-Cfg-Toml-InvalidValue":               "ungueltiger Wert %s",
	"E-Cfg-Toml-FourDigitYearRequired":      "Jahr braucht vier Ziffern, gefunden %s",
	"E-Cfg-Toml-TwoDigitMonthRequired":      "Monat braucht zwei Ziffern, gefunden %s",
	"E-Cfg-Toml-TwoDigitDayRequired":        "Tag braucht zwei Ziffern, gefunden %s",
	"E-Cfg-Toml-TwoDigitHourRequired":       "Stunde braucht zwei Ziffern, gefunden %s",
	"E-Cfg-Toml-InvalidDate":                "Datum %s liegt ausserhalb des gueltigen Bereichs",
	"E-Cfg-Toml-InvalidTime":                "ungueltige Zeitkomponente %s",
	"E-Cfg-Toml-TimezoneOrMillisExpected":   "Zeitzone oder Sekundenbruchteile erwartet, gefunden %s",

	// structural diagnostics
	"E-Cfg-Toml-ClosingBracketExpected":       "schliessende Klammer erwartet, gefunden %s",
	"E-Cfg-Toml-CommaExpected":                "Komma erwartet vor %s",
	"E-Cfg-Toml-CommaOrRBraceExpected":        "Komma oder schliessende geschweifte Klammer erwartet, gefunden %s",
	"E-Cfg-Toml-DuplicateSeparatorToken":      "doppelter Trenner %s",
	"E-Cfg-Toml-EqualExpected":                "Gleichheitszeichen nach Schluessel %s erwartet",
	"E-Cfg-Toml-InvalidArrayToken":            "unerwartetes %s im Array",
	"E-Cfg-Toml-InvalidKeyTermination":        "unerwartetes %s nach Schluessel",
	"E-Cfg-Toml-InvalidValueStart":            "ein Wert darf nicht mit %s beginnen",
	"E-Cfg-Toml-KeyAlreadyInUse":              "Schluessel %s wird bereits verwendet",
	"E-Cfg-Toml-KeyExpected":                  "Schluessel erwartet, gefunden %s",
	"E-Cfg-Toml-KeyOrTableExpected":           "Schluessel oder Tabellenkopf erwartet, gefunden %s",
	"E-Cfg-Toml-KeyUsedForArrayOfTables":      "Schluessel %s wird bereits fuer ein Tabellen-Array verwendet",
	"E-Cfg-Toml-KeyUsedForSimpleValue":        "Schluessel %s wird bereits fuer einen einfachen Wert verwendet",
	"E-Cfg-Toml-KeyUsedForTable":              "Schluessel %s wird bereits fuer eine Tabelle verwendet",
	"E-Cfg-Toml-KeyUsedForValueArray":         "Schluessel %s wird bereits fuer ein Werte-Array verwendet",
	"E-Cfg-Toml-LeadingSeparator":             "Trenner %s darf die Liste nicht eroeffnen",
	"E-Cfg-Toml-NoLineBreakAfterHeader":       "Zeilenumbruch nach Tabellenkopf erwartet, gefunden %s",
	"E-Cfg-Toml-NoLineBreakAfterKeyValuePair": "Zeilenumbruch nach Schluessel-Wert-Paar erwartet, gefunden %s",
	"E-Cfg-Toml-NotATable":                    "Schluessel %s bezeichnet keine Tabelle",
	"E-Cfg-Toml-TableExists":                  "Tabelle %s ist bereits definiert",
	"E-Cfg-Toml-TrailingDotInKey":             "Schluessel %s darf nicht mit einem Punkt enden",
	"E-Cfg-Toml-TrailingSeparator":            "Trenner %s darf die Liste nicht beenden",
	"E-Cfg-Toml-TwoDotsWithinKey":             "Schluessel %s enthaelt zwei aufeinanderfolgende Punkte",
	"E-Cfg-Toml-UnseparatedArrayItems":        "Array-Elemente muessen durch ein Komma getrennt werden",
	"E-Cfg-Toml-UnseparatedKeyParts":          "Schluesselteile vor %s muessen durch einen Punkt getrennt werden",
	"E-Cfg-Toml-UnterminatedArray":            "Array ist nicht abgeschlossen",
	"E-Cfg-Toml-UnterminatedInlineTable":      "Inline-Tabelle ist nicht abgeschlossen",
	"E-Cfg-Toml-ValueExpected":                "Wert erwartet",
	"E-Cfg-Toml-WhitespaceBetweenBrackets":    "Leerzeichen zwischen den Klammern eines Tabellen-Array-Kopfes",

	// configuration model warnings
	"W-Cfg-UnknownSection":        "unbekannter Konfigurationsabschnitt %s ignoriert",
	"W-Cfg-UnknownKey":            "unbekannter Konfigurationsschluessel %s ignoriert",
	"W-Cfg-WrongValueType":        "Konfigurationsschluessel %s hat den falschen Typ, erwartet %s",
	"W-Cfg-InvalidLevel":          "unbekannte Protokollstufe %s, behalte %s",
	"W-Cfg-InvalidTriggerChar":    "unbekanntes Ausloesezeichen %s ignoriert",
	"W-Cfg-InvalidFormatVar":      "unbekannte Formatvariable %s",
	"W-Cfg-DuplicateResource":     "doppelter Ressourcenname %s ignoriert",
	"W-Cfg-ResourceWithoutTarget": "Ressource %s hat kein Ziel und wurde ignoriert",
	"W-Cfg-ValueOutOfRange":       "Wert fuer %s liegt ausserhalb des Bereichs, behalte %s",
	"W-Cfg-UnknownRolloverUnit":   "unbekannte Rollover-Einheit %s",
}
