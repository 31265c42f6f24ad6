// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n provides translation catalogs for the Bhasha
//              toolchain, used to render diagnostics in English, Marathi or
//              the bilingual mixed-script form.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-04 v0.2.0: fs.FS catalogs, locale views

/*
Package i18n provides translation catalogs with TOML and YAML language files.

Key Features:
  - TOML and YAML language files, one file per locale ("mr.toml", "mr-en.yaml")
  - Dot-notation keys for nested tables ("lex.illegal_character")
  - text/template interpolation with per-locale template caching
  - Plural forms stored as [singular, plural] arrays
  - Fallback to the default locale for missing keys
  - Catalogs from any fs.FS, including embed.FS
  - Cheap per-locale views that share one catalog, safe for concurrent use

Usage:

	//go:embed locales/*
	var locales embed.FS

	manager, err := i18n.New(i18n.Options{
		DefaultLocale: "en",
		FS:            locales,
		LocalesDir:    "locales",
	})
	if err != nil {
		return err
	}

	marathi, err := manager.WithLocale("mr")
	if err != nil {
		return err
	}

	msg := marathi.T("lex.illegal_character", map[string]interface{}{"Char": "@"})

Views created with WithLocale never change the locale of the manager they
were derived from, so a diagnostics renderer can hold its own view while
other goroutines render in other locales.
*/
package i18n
