// File: locale.go
// Title: Locale Handling
// Description: Implements locale normalization and best-match selection,
//              including parsing of Accept-Language style preference lists
//              with quality scores.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial implementation

package i18n

import (
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/coalog/utils/stringx"
)

// LocalePreference is one locale with its quality score
type LocalePreference struct {
	Locale  string
	Quality float64
}

// NormalizeLocale canonicalizes a locale tag: lowercase and dashes, so
// "DE_de" and "de-DE" both read as "de-de"
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.ToLower(locale)
}

// baseLocale strips the region from a locale tag, "de-de" becomes "de"
func baseLocale(locale string) string {
	if idx := strings.Index(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return locale
}

// DetectLocale picks the best available locale for an Accept-Language
// style preference list, falling back to the default locale
func (m *Manager) DetectLocale(acceptLanguage string) string {
	if stringx.IsBlank(acceptLanguage) {
		return m.defaultLocale
	}
	preferences := parseAcceptLanguage(acceptLanguage)
	available := m.AvailableLocales()

	for _, pref := range preferences {
		if match := matchLocale(pref.Locale, available); match != "" {
			return match
		}
	}
	return m.defaultLocale
}

// matchLocale finds an available locale for one preference, first exactly,
// then by base language
func matchLocale(want string, available []string) string {
	for _, locale := range available {
		if locale == want {
			return locale
		}
	}
	base := baseLocale(want)
	for _, locale := range available {
		if baseLocale(locale) == base {
			return locale
		}
	}
	return ""
}

// parseAcceptLanguage parses "de-DE,de;q=0.9,en;q=0.8" into an ordered
// preference list
func parseAcceptLanguage(header string) []LocalePreference {
	var preferences []LocalePreference
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		locale := part
		quality := 1.0
		if idx := strings.Index(part, ";"); idx >= 0 {
			locale = strings.TrimSpace(part[:idx])
			params := part[idx+1:]
			if qIdx := strings.Index(params, "q="); qIdx >= 0 {
				if q, err := strconv.ParseFloat(strings.TrimSpace(params[qIdx+2:]), 64); err == nil {
					quality = q
				}
			}
		}
		if locale == "" || locale == "*" {
			continue
		}
		preferences = append(preferences, LocalePreference{
			Locale:  NormalizeLocale(locale),
			Quality: quality,
		})
	}
	sort.SliceStable(preferences, func(i, j int) bool {
		return preferences[i].Quality > preferences[j].Quality
	})
	return preferences
}
