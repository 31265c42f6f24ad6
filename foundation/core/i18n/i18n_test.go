// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests for catalog loading from fs.FS and disk, lookups with
//              fallback, templates, plurals and locale utilities.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-04 v0.2.0: fstest based catalogs, locale views

package i18n

import (
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"testing/fstest"

	bherror "github.com/msto63/bhasha/foundation/core/error"
)

const enTOML = `
[lex]
illegal_character = "Illegal Character"
detail = "'{{.Char}}'"

[parse]
expected_rparen = "Expected ')'"

[summary]
errors = ["{{.Count}} error", "{{.Count}} errors"]
`

const mrTOML = `
[lex]
illegal_character = "अवैध अक्षर"
`

const mrEnYAML = `
lex:
  illegal_character: "अवैध अक्षर(Illegal Character)"
parse:
  expected_rparen: "अपेक्षित(Expected) ')'"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/en.toml":    {Data: []byte(enTOML)},
		"locales/mr.toml":    {Data: []byte(mrTOML)},
		"locales/mr-en.yaml": {Data: []byte(mrEnYAML)},
		"locales/README.md":  {Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "en", FS: testFS(), LocalesDir: "locales"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		check   func(t *testing.T, m *Manager, err error)
	}{
		{
			name:    "embedded catalogs",
			options: Options{DefaultLocale: "en", FS: testFS(), LocalesDir: "locales"},
			check: func(t *testing.T, m *Manager, err error) {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				want := []string{"en", "mr", "mr-en"}
				if got := m.GetAvailableLocales(); !reflect.DeepEqual(got, want) {
					t.Errorf("locales = %v, want %v", got, want)
				}
			},
		},
		{
			name:    "toml only",
			options: Options{DefaultLocale: "en", FS: testFS(), LocalesDir: "locales", Format: FormatTOML},
			check: func(t *testing.T, m *Manager, err error) {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				if m.HasLocale("mr-en") {
					t.Error("YAML catalog should be skipped in TOML mode")
				}
			},
		},
		{
			name:    "blank default locale",
			options: Options{FS: testFS()},
			check: func(t *testing.T, _ *Manager, err error) {
				if !bherror.HasCode(err, bherror.CodeInvalidConfig) {
					t.Errorf("err = %v, want CodeInvalidConfig", err)
				}
			},
		},
		{
			name:    "missing default locale",
			options: Options{DefaultLocale: "de", FS: testFS(), LocalesDir: "locales"},
			check: func(t *testing.T, _ *Manager, err error) {
				if !bherror.HasCode(err, bherror.CodeLocaleMissing) {
					t.Errorf("err = %v, want CodeLocaleMissing", err)
				}
			},
		},
		{
			name:    "missing directory on disk",
			options: Options{DefaultLocale: "en", LocalesDir: filepath.Join(os.TempDir(), "bhasha-no-such-dir")},
			check: func(t *testing.T, _ *Manager, err error) {
				if !bherror.HasCode(err, bherror.CodeNotFound) {
					t.Errorf("err = %v, want CodeNotFound", err)
				}
			},
		},
		{
			name: "broken catalog",
			options: Options{DefaultLocale: "en", FS: fstest.MapFS{
				"en.toml": {Data: []byte("[lex\nbroken")},
			}},
			check: func(t *testing.T, _ *Manager, err error) {
				if !bherror.HasCode(err, bherror.CodeConfigError) {
					t.Errorf("err = %v, want CodeConfigError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.options)
			tt.check(t, m, err)
		})
	}
}

func TestNewFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte(enTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(Options{DefaultLocale: "en", LocalesDir: dir})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := m.T("parse.expected_rparen"); got != "Expected ')'" {
		t.Errorf("T() = %q", got)
	}
}

func TestTranslate(t *testing.T) {
	m := newTestManager(t)
	mr, err := m.WithLocale("mr")
	if err != nil {
		t.Fatalf("WithLocale() error = %v", err)
	}
	mrEn, err := m.WithLocale("mr-en")
	if err != nil {
		t.Fatalf("WithLocale(mr-en) error = %v", err)
	}

	tests := []struct {
		name    string
		manager *Manager
		key     string
		data    map[string]interface{}
		want    string
	}{
		{"english", m, "lex.illegal_character", nil, "Illegal Character"},
		{"marathi", mr, "lex.illegal_character", nil, "अवैध अक्षर"},
		{"fallback to default", mr, "parse.expected_rparen", nil, "Expected ')'"},
		{"yaml catalog", mrEn, "parse.expected_rparen", nil, "अपेक्षित(Expected) ')'"},
		{"template", m, "lex.detail", map[string]interface{}{"Char": "@"}, "'@'"},
		{"missing key", m, "no.such.key", nil, "[no.such.key]"},
		{"table is not a message", m, "lex", nil, "[lex]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.manager.T(tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestWithLocaleDoesNotMutate(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.WithLocale("mr"); err != nil {
		t.Fatal(err)
	}
	if m.GetCurrentLocale() != "en" {
		t.Errorf("base locale changed to %q", m.GetCurrentLocale())
	}

	_, err := m.WithLocale("fr")
	if !bherror.HasCode(err, bherror.CodeLocaleMissing) {
		t.Errorf("WithLocale(fr) err = %v", err)
	}
}

func TestTryTAndFallbackMessage(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.TryT("nope"); !bherror.HasCode(err, bherror.CodeNotFound) {
		t.Errorf("TryT() err = %v", err)
	}

	got := m.TWithFallback("nope", "missing {{.Name}}", map[string]interface{}{"Name": "x"})
	if got != "missing x" {
		t.Errorf("TWithFallback() = %q", got)
	}
	if got := m.TWithFallback("parse.expected_rparen", "unused"); got != "Expected ')'" {
		t.Errorf("TWithFallback() = %q", got)
	}
}

func TestFallbackDisabled(t *testing.T) {
	m, err := New(Options{DefaultLocale: "en", FS: testFS(), LocalesDir: "locales", DisableFallback: true})
	if err != nil {
		t.Fatal(err)
	}
	mr, _ := m.WithLocale("mr")
	if mr.HasTranslation("parse.expected_rparen") {
		t.Error("fallback should be disabled")
	}
}

func TestPlural(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		count int
		want  string
	}{
		{0, "0 errors"},
		{1, "1 error"},
		{2, "2 errors"},
	}

	for _, tt := range tests {
		got := m.Plural("summary.errors", tt.count, map[string]interface{}{"Count": tt.count})
		if got != tt.want {
			t.Errorf("Plural(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}

	if got := m.Plural("nope", 1, nil); got != "[nope]" {
		t.Errorf("Plural(missing) = %q", got)
	}
	if got := m.T("summary.errors"); got != "{{.Count}} error" {
		t.Errorf("T() on plural key = %q", got)
	}
}

func TestTranslationKeys(t *testing.T) {
	m := newTestManager(t)
	want := []string{"lex.detail", "lex.illegal_character", "parse.expected_rparen", "summary.errors"}
	if got := m.GetTranslationKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("GetTranslationKeys() = %v, want %v", got, want)
	}
}

func TestConcurrentViews(t *testing.T) {
	m := newTestManager(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			view := m
			if i%2 == 0 {
				view, _ = m.WithLocale("mr")
			}
			_ = view.T("lex.detail", map[string]interface{}{"Char": i})
		}(i)
	}
	wg.Wait()
}

func TestReloadAll(t *testing.T) {
	fsys := testFS()
	m, err := New(Options{DefaultLocale: "en", FS: fsys, LocalesDir: "locales"})
	if err != nil {
		t.Fatal(err)
	}

	fsys["locales/en.toml"] = &fstest.MapFile{Data: []byte(`[lex]
illegal_character = "Bad Character"`)}
	if err := m.ReloadAll(); err != nil {
		t.Fatalf("ReloadAll() error = %v", err)
	}
	if got := m.T("lex.illegal_character"); got != "Bad Character" {
		t.Errorf("after reload T() = %q", got)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"mr_IN", "mr-IN"},
		{"mr_IN.UTF-8", "mr-IN"},
		{"mr-en", "mr-en"},
		{"mr_EN", "mr-EN"},
		{"mar", "mar"},
		{"", ""},
		{"english", ""},
		{"e1", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLocale(tt.input); got != tt.want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectLocale(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name string
		env  []string
		want string
	}{
		{"exact", []string{"", "mr-en"}, "mr-en"},
		{"language of region", []string{"mr_IN.UTF-8"}, "mr"},
		{"skip C", []string{"C", "en_US.UTF-8"}, "en"},
		{"nothing", []string{"fr_FR"}, ""},
	}

	for _, tt := range tests {
		if got := m.DetectLocale(tt.env...); got != tt.want {
			t.Errorf("%s: DetectLocale() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLocaleHelpers(t *testing.T) {
	if err := ValidateLocale("xx_yy_zz"); err != nil {
		t.Errorf("ValidateLocale() = %v", err)
	}
	if err := ValidateLocale("not a locale"); err == nil {
		t.Error("expected error for invalid locale")
	}
	if lang, region := SplitLocale("mr_IN"); lang != "mr" || region != "IN" {
		t.Errorf("SplitLocale() = %q, %q", lang, region)
	}
	if got := GetLocaleDisplayName("mr"); got != "मराठी" {
		t.Errorf("GetLocaleDisplayName() = %q", got)
	}
	if got := ParseLocaleFromFilename("locales/mr-en.yaml"); got != "mr-en" {
		t.Errorf("ParseLocaleFromFilename() = %q", got)
	}
}
