// ============================================================================
// Bhasha - Bilingual expression language toolchain
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the bhasha command-line tool
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// Environment variables that override file values
const (
	EnvConfig   = "BHASHA_CONFIG"
	EnvLocale   = "BHASHA_LOCALE"
	EnvLogLevel = "BHASHA_LOG_LEVEL"
	EnvHistory  = "BHASHA_HISTORY"
)

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Language LanguageConfig `toml:"language"`
	Output   OutputConfig   `toml:"output"`
	Explorer ExplorerConfig `toml:"explorer"`
	Watch    WatchConfig    `toml:"watch"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// LanguageConfig controls how sources are read and which catalog renders messages
type LanguageConfig struct {
	Locale         string `toml:"locale"`
	Normalize      *bool  `toml:"normalize"`
	MaxInputLength int    `toml:"max_input_length"`
}

// OutputConfig holds defaults for command output
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// ExplorerConfig holds settings of the interactive explorer
type ExplorerConfig struct {
	HistoryPath  string `toml:"history_path"`
	HistoryLimit int    `toml:"history_limit"`
}

// WatchConfig holds settings of the watch command
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file. Environment overrides are
// applied after the file and before validation.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, bherror.Newf("config file not found: %s", path).
			WithCode(bherror.CodeNotFound).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, bherror.Wrap(err, "failed to parse config").
			WithCode(bherror.CodeConfigError).
			WithOperation("config.load").
			WithDetail("path", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, bherror.Newf("unknown config keys: %s", strings.Join(keys, ", ")).
			WithCode(bherror.CodeInvalidConfig).
			WithOperation("config.load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by BHASHA_CONFIG, or the first file
// found in the default locations. Without any file it returns the defaults.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched when no config path is given
func DefaultPaths() []string {
	paths := []string{
		"./bhasha.toml",
		"./configs/bhasha.toml",
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bhasha", "config.toml"))
	}
	return paths
}

// Validate checks that all values are usable
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}) error {
		return bherror.Newf("invalid value for %s: %v", key, value).
			WithCode(bherror.CodeInvalidConfig).
			WithOperation("config.validate").
			WithDetail("key", key)
	}

	if _, err := bhlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := bhlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Language.MaxInputLength < 0 {
		return invalid("language.max_input_length", c.Language.MaxInputLength)
	}
	switch c.Output.Format {
	case "text", "tree", "sexpr", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format)
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return invalid("output.color", c.Output.Color)
	}
	if c.Explorer.HistoryLimit < 0 {
		return invalid("explorer.history_limit", c.Explorer.HistoryLimit)
	}
	if c.Watch.Debounce.Duration < 0 {
		return invalid("watch.debounce", c.Watch.Debounce)
	}
	return nil
}

// NormalizeInput reports whether sources are NFC-normalized before lexing
func (c *Config) NormalizeInput() bool {
	return c.Language.Normalize == nil || *c.Language.Normalize
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General. Rejected sources log at warn, which would duplicate the
	// diagnostics the commands print themselves.
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Language
	if c.Language.Locale == "" {
		c.Language.Locale = "en"
	}
	if c.Language.MaxInputLength == 0 {
		c.Language.MaxInputLength = 1 << 20
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}

	// Explorer
	if c.Explorer.HistoryPath == "" {
		c.Explorer.HistoryPath = defaultHistoryPath()
	}
	if c.Explorer.HistoryLimit == 0 {
		c.Explorer.HistoryLimit = 500
	}

	// Watch
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 150 * time.Millisecond
	}
}

// applyEnv overrides file values with BHASHA_* variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLocale); v != "" {
		c.Language.Locale = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		c.Explorer.HistoryPath = v
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Explorer.HistoryPath = os.ExpandEnv(c.Explorer.HistoryPath)
}

// Summary returns the effective settings as flat key/value pairs
func (c *Config) Summary() map[string]string {
	return map[string]string{
		"general.log_level":         c.General.LogLevel,
		"general.log_format":        c.General.LogFormat,
		"language.locale":           c.Language.Locale,
		"language.normalize":        strconv.FormatBool(c.NormalizeInput()),
		"language.max_input_length": strconv.Itoa(c.Language.MaxInputLength),
		"output.format":             c.Output.Format,
		"output.color":              c.Output.Color,
		"explorer.history_path":     c.Explorer.HistoryPath,
		"explorer.history_limit":    strconv.Itoa(c.Explorer.HistoryLimit),
		"watch.debounce":            c.Watch.Debounce.String(),
	}
}

func defaultHistoryPath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "bhasha", "history.db")
	}
	return filepath.Join(".", ".bhasha_history.db")
}
