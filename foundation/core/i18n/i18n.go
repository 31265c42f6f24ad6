// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager for loading and rendering
//              translations from TOML and YAML language files with template
//              interpolation and pluralization. Catalogs are read from any
//              fs.FS, so they can ship embedded in the binary or live on disk.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization
// - 2026-10-04 v0.2.0: fs.FS sources, per-locale views via WithLocale,
//                       locked template cache

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhstringx "github.com/msto63/bhasha/foundation/utils/stringx"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts TOML and YAML files, preferring TOML
	FormatAuto Format = iota

	// FormatTOML restricts loading to .toml files
	FormatTOML

	// FormatYAML restricts loading to .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale string // Default locale (e.g., "en")

	// FS holds the language files. When nil, LocalesDir on disk is used.
	FS fs.FS

	// LocalesDir is the directory inside FS (or on disk) with the files
	LocalesDir string

	Format Format

	// DisableFallback turns off the lookup in the default locale
	DisableFallback bool
}

// catalog is the state shared by a manager and all its locale views
type catalog struct {
	mu           sync.RWMutex
	source       fs.FS
	dir          string
	format       Format
	translations map[string]TranslationData

	tmplMu    sync.Mutex
	templates map[string]*template.Template
}

// Manager manages translations. A Manager is a view of a shared catalog with
// one current locale; WithLocale derives further views cheaply.
type Manager struct {
	cat           *catalog
	defaultLocale string
	currentLocale string
	fallback      bool
}

// TranslationData represents the structure of a translation file
type TranslationData map[string]interface{}

// New creates a new i18n manager with the specified options
func New(options Options) (*Manager, error) {
	if bhstringx.IsBlank(options.DefaultLocale) {
		return nil, bherror.New("default locale cannot be empty").
			WithCode(bherror.CodeInvalidConfig).
			WithOperation("i18n.New")
	}

	source := options.FS
	dir := options.LocalesDir
	if source == nil {
		if bhstringx.IsBlank(dir) {
			dir = "./locales"
		}
		if _, err := os.Stat(dir); err != nil {
			return nil, bherror.Wrap(err, "locales directory not found").
				WithCode(bherror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", dir)
		}
		source = os.DirFS(dir)
		dir = "."
	}
	if bhstringx.IsBlank(dir) {
		dir = "."
	}

	manager := &Manager{
		cat: &catalog{
			source:       source,
			dir:          dir,
			format:       options.Format,
			translations: make(map[string]TranslationData),
			templates:    make(map[string]*template.Template),
		},
		defaultLocale: options.DefaultLocale,
		currentLocale: options.DefaultLocale,
		fallback:      !options.DisableFallback,
	}

	if err := manager.ReloadAll(); err != nil {
		return nil, err
	}

	return manager, nil
}

// ReloadAll reads every language file again and clears the template cache
func (m *Manager) ReloadAll() error {
	loaded, err := m.cat.loadAll()
	if err != nil {
		return bherror.Wrap(err, "failed to load locales").
			WithCode(bherror.CodeConfigError).
			WithOperation("i18n.ReloadAll")
	}

	if _, ok := loaded[m.defaultLocale]; !ok {
		return bherror.New("default locale not found").
			WithCode(bherror.CodeLocaleMissing).
			WithOperation("i18n.ReloadAll").
			WithDetail("locale", m.defaultLocale)
	}

	m.cat.mu.Lock()
	m.cat.translations = loaded
	m.cat.mu.Unlock()

	m.cat.tmplMu.Lock()
	m.cat.templates = make(map[string]*template.Template)
	m.cat.tmplMu.Unlock()

	return nil
}

func (c *catalog) loadAll() (map[string]TranslationData, error) {
	entries, err := fs.ReadDir(c.source, c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read locales directory: %w", err)
	}

	allowed := make(map[string]bool)
	for _, ext := range c.format.extensions() {
		allowed[ext] = true
	}

	loaded := make(map[string]TranslationData)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if !allowed[ext] {
			continue
		}

		locale := ParseLocaleFromFilename(name)
		if bhstringx.IsBlank(locale) {
			continue
		}

		// TOML wins when both exist
		if _, exists := loaded[locale]; exists && ext != ".toml" {
			continue
		}

		data, err := c.loadFile(path.Join(c.dir, name), ext)
		if err != nil {
			return nil, err
		}
		loaded[locale] = data
	}

	return loaded, nil
}

func (c *catalog) loadFile(name, ext string) (TranslationData, error) {
	content, err := fs.ReadFile(c.source, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", name, err)
	}

	var data TranslationData
	if ext == ".toml" {
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse TOML file %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", name, err)
		}
	}

	if data == nil {
		data = TranslationData{}
	}
	return data, nil
}

// WithLocale returns a view of the same catalog rendering in locale
func (m *Manager) WithLocale(locale string) (*Manager, error) {
	locale = NormalizeLocale(locale)
	if !m.HasLocale(locale) {
		return nil, bherror.New("locale not available").
			WithCode(bherror.CodeLocaleMissing).
			WithOperation("i18n.WithLocale").
			WithDetail("locale", locale)
	}

	clone := *m
	clone.currentLocale = locale
	return &clone, nil
}

// T translates a key with optional template data. Missing keys render as
// "[key]".
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, err := m.TryT(key, data...)
	if err != nil && translation == "" {
		return fmt.Sprintf("[%s]", key)
	}
	return translation
}

// TryT translates a key and returns an error if translation fails
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	translation, found := m.lookup(key)
	if !found {
		return "", bherror.New("translation not found").
			WithCode(bherror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key).
			WithDetail("locale", m.currentLocale)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.cat.render(m.currentLocale+"|"+key, translation, data[0])
		if err != nil {
			return translation, bherror.Wrap(err, "template rendering failed").
				WithCode(bherror.CodeInternal).
				WithOperation("i18n.TryT").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// TWithFallback translates a key, rendering fallbackMsg when it is missing
func (m *Manager) TWithFallback(key string, fallbackMsg string, data ...map[string]interface{}) string {
	if translation, err := m.TryT(key, data...); err == nil {
		return translation
	}

	if len(data) > 0 && data[0] != nil {
		if rendered, err := m.cat.render("fallback|"+key, fallbackMsg, data[0]); err == nil {
			return rendered
		}
	}

	return fallbackMsg
}

// Plural returns the form of key that matches count. Plural forms are
// stored as arrays: [singular, plural].
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	raw, locale := m.lookupRaw(key)
	if raw == nil {
		return fmt.Sprintf("[%s]", key)
	}

	forms := pluralForms(raw)
	index := pluralIndex(count, locale)
	if index >= len(forms) {
		index = len(forms) - 1
	}

	selected := forms[index]
	if data != nil {
		cacheKey := fmt.Sprintf("%s|%s|plural|%d", locale, key, index)
		if rendered, err := m.cat.render(cacheKey, selected, data); err == nil {
			return rendered
		}
	}

	return selected
}

func (m *Manager) lookup(key string) (string, bool) {
	raw, _ := m.lookupRaw(key)
	if raw == nil {
		return "", false
	}
	if arr, ok := raw.([]interface{}); ok {
		if len(arr) == 0 {
			return "", false
		}
		return fmt.Sprintf("%v", arr[0]), true
	}
	if _, isMap := asMap(raw); isMap {
		return "", false
	}
	return fmt.Sprintf("%v", raw), true
}

// lookupRaw resolves key in the current locale, then the default locale
func (m *Manager) lookupRaw(key string) (interface{}, string) {
	m.cat.mu.RLock()
	defer m.cat.mu.RUnlock()

	if value := nestedValue(m.cat.translations[m.currentLocale], key); value != nil {
		return value, m.currentLocale
	}

	if m.fallback && m.currentLocale != m.defaultLocale {
		if value := nestedValue(m.cat.translations[m.defaultLocale], key); value != nil {
			return value, m.defaultLocale
		}
	}

	return nil, ""
}

// nestedValue retrieves a value using dot notation
func nestedValue(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}

	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return value
		}
		next, isMap := asMap(value)
		if !isMap {
			return nil
		}
		current = next
	}
	return nil
}

func asMap(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case TranslationData:
		return v, true
	default:
		return nil, false
	}
}

func (c *catalog) render(cacheKey, text string, data map[string]interface{}) (string, error) {
	c.tmplMu.Lock()
	tmpl, exists := c.templates[cacheKey]
	if !exists {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=zero").Parse(text)
		if err != nil {
			c.tmplMu.Unlock()
			return text, fmt.Errorf("template compilation failed: %w", err)
		}
		c.templates[cacheKey] = tmpl
	}
	c.tmplMu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return text, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

func pluralForms(value interface{}) []string {
	if arr, ok := value.([]interface{}); ok && len(arr) > 0 {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	return []string{fmt.Sprintf("%v", value)}
}

// pluralIndex returns the plural form index for count. English and Marathi
// both distinguish exactly one from everything else.
func pluralIndex(count int, locale string) int {
	switch language, _ := SplitLocale(locale); language {
	case "fr":
		if count <= 1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// GetCurrentLocale returns the locale this view renders in
func (m *Manager) GetCurrentLocale() string {
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	return m.defaultLocale
}

// GetAvailableLocales returns all loaded locales in sorted order
func (m *Manager) GetAvailableLocales() []string {
	m.cat.mu.RLock()
	defer m.cat.mu.RUnlock()

	locales := make([]string, 0, len(m.cat.translations))
	for locale := range m.cat.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is available
func (m *Manager) HasLocale(locale string) bool {
	m.cat.mu.RLock()
	defer m.cat.mu.RUnlock()

	_, exists := m.cat.translations[locale]
	return exists
}

// HasTranslation checks if key resolves in this view
func (m *Manager) HasTranslation(key string) bool {
	_, found := m.lookup(key)
	return found
}

// GetTranslationKeys returns all leaf keys of the current locale
func (m *Manager) GetTranslationKeys() []string {
	m.cat.mu.RLock()
	defer m.cat.mu.RUnlock()

	translations := m.cat.translations[m.currentLocale]
	if translations == nil {
		return nil
	}

	keys := collectKeys(translations, "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := asMap(value); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
		} else {
			keys = append(keys, fullKey)
		}
	}
	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, format: %s, fallback: %t, locales: %d}",
		m.defaultLocale, m.currentLocale, m.cat.format, m.fallback, len(m.GetAvailableLocales()))
}
