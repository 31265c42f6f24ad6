// File: locale.go
// Title: Locale Utilities
// Description: Locale normalization, validation and detection from the
//              process environment. Locale tags keep an optional region or
//              variant, so "mr-en" (bilingual Marathi/English) is a valid
//              locale next to "mr" and "en".
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with Accept-Language parsing
// - 2026-10-04 v0.2.0: Environment based detection, variant subtags

package i18n

import (
	"path"
	"strings"

	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

// NormalizeLocale normalizes a locale string. The language is lowercased, an
// uppercase two letter region is kept and other subtags are lowercased:
// "MR_IN" becomes "mr-IN" while the bilingual catalog name "mr-en" is kept.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if bhstringx.IsBlank(locale) {
		return ""
	}

	// drop encoding and modifier, as in "mr_IN.UTF-8@latin"
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	parts := strings.Split(strings.ReplaceAll(locale, "_", "-"), "-")
	language := strings.ToLower(parts[0])
	if len(language) != 2 && len(language) != 3 {
		return ""
	}
	for _, r := range language {
		if r < 'a' || r > 'z' {
			return ""
		}
	}

	if len(parts) == 1 || parts[1] == "" {
		return language
	}

	sub := parts[1]
	if len(sub) == 2 && strings.ToUpper(sub) == sub {
		return language + "-" + sub
	}
	return language + "-" + strings.ToLower(sub)
}

// ValidateLocale validates if a locale string is in valid format
func ValidateLocale(locale string) error {
	if bhstringx.IsBlank(locale) {
		return bherror.New("locale cannot be empty").
			WithCode(bherror.CodeInvalidConfig).
			WithOperation("i18n.ValidateLocale")
	}

	if NormalizeLocale(locale) == "" {
		return bherror.New("invalid locale format").
			WithCode(bherror.CodeInvalidConfig).
			WithOperation("i18n.ValidateLocale").
			WithDetail("locale", locale).
			WithDetail("expected_format", "e.g. 'en', 'mr', 'mr-en'")
	}

	return nil
}

// SplitLocale splits a locale into language and region or variant
func SplitLocale(locale string) (language, region string) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return "", ""
	}

	parts := strings.SplitN(normalized, "-", 2)
	language = parts[0]
	if len(parts) > 1 {
		region = parts[1]
	}
	return language, region
}

// DetectLocale picks the best available locale from environment values in
// priority order (typically LC_ALL, LC_MESSAGES, LANG). The exact locale is
// preferred, then its language. Returns "" when nothing matches.
func (m *Manager) DetectLocale(envValues ...string) string {
	for _, value := range envValues {
		if value == "C" || value == "POSIX" {
			continue
		}
		normalized := NormalizeLocale(value)
		if normalized == "" {
			continue
		}
		if m.HasLocale(normalized) {
			return normalized
		}
		if language, _ := SplitLocale(normalized); m.HasLocale(language) {
			return language
		}
	}
	return ""
}

// GetLocaleDisplayName returns a human-readable display name for a locale
func GetLocaleDisplayName(locale string) string {
	displayNames := map[string]string{
		"en":    "English",
		"en-US": "English (United States)",
		"en-GB": "English (United Kingdom)",
		"en-IN": "English (India)",
		"mr":    "मराठी",
		"mr-IN": "मराठी (भारत)",
		"mr-en": "मराठी / English",
		"hi":    "हिन्दी",
		"hi-IN": "हिन्दी (भारत)",
		"de":    "Deutsch",
	}

	normalized := NormalizeLocale(locale)
	if displayName, exists := displayNames[normalized]; exists {
		return displayName
	}
	if normalized != "" {
		return normalized
	}
	return locale
}

// ParseLocaleFromFilename extracts the locale from a language file name
func ParseLocaleFromFilename(filename string) string {
	base := path.Base(filename)
	return NormalizeLocale(strings.TrimSuffix(base, path.Ext(base)))
}
