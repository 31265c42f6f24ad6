// ============================================================================
// Bhasha - Bilingual expression language toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the toolchain parts
const (
	// Toolchain version
	Toolchain = "0.3.0"

	// Language grammar version, bumped whenever accepted sources change
	Language = "1.0.0"

	// Message catalog version
	Catalog = "1.1.0"
)

// Set at build time with -ldflags "-X github.com/msto63/bhasha/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Toolchain string `json:"toolchain" yaml:"toolchain"`
	Language  string `json:"language" yaml:"language"`
	Catalog   string `json:"catalog" yaml:"catalog"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Toolchain: Toolchain,
		Language:  Language,
		Catalog:   Catalog,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "language", "grammar":
		return Language
	case "catalog", "messages":
		return Catalog
	default:
		return Toolchain
	}
}

// String returns the one-line form printed by "bhasha version"
func (i Info) String() string {
	return fmt.Sprintf("bhasha %s (language %s, catalog %s) commit %s built %s %s %s",
		i.Toolchain, i.Language, i.Catalog, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
