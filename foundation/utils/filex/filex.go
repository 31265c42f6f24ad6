// File: filex.go
// Title: Source File Discovery
// Description: Existence checks and recursive discovery of source files
//              for the check and watch commands.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-04
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with general file utilities
// - 2026-10-04 v0.2.0: Reduced to existence checks and source discovery

package filex

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	bherror "github.com/msto63/bhasha/foundation/core/error"
	"github.com/msto63/bhasha/foundation/utils/slicex"
)

// ===============================
// File Existence and Basic Info
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsHidden reports whether the last element of path starts with a dot
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return len(base) > 1 && strings.HasPrefix(base, ".") && base != ".."
}

// ===============================
// Source Discovery
// ===============================

// SourceFiles expands paths into the source files they name. Files are taken
// as given; directories contribute every file below them whose extension is
// ext. The result is sorted and contains each file once.
func SourceFiles(paths []string, ext string) ([]string, error) {
	if len(paths) == 0 {
		return nil, bherror.New("no source paths given").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("filex.source_files")
	}

	var files []string
	add := func(path string) {
		files = append(files, filepath.Clean(path))
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, pathError(err, p)
		}

		if !info.IsDir() {
			add(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && IsHidden(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ext) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, pathError(err, p)
		}
	}

	files = slicex.Unique(files)
	sort.Strings(files)
	return files, nil
}

func pathError(err error, path string) error {
	code := bherror.CodeIO
	if os.IsNotExist(err) {
		code = bherror.CodeNotFound
	}
	return bherror.Wrap(err, "cannot read source path").
		WithCode(code).
		WithOperation("filex.source_files").
		WithDetail("path", path)
}
