// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package pkgcache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
)

const (
	// DefaultRoot is where the image build exports precached packages.
	DefaultRoot = "/opt/nuget-local"

	// NotFound is rendered in place of a version that could not be resolved.
	NotFound = "(not found)"

	// EmptyBlock is the packages block rendered when no packages are listed.
	EmptyBlock = "  * (none)"

	// EnvPackages holds the whitespace-separated package list.
	EnvPackages = "PRECACHE_PACKAGES"

	// EnvPackagesFallback is consulted when EnvPackages is unset or empty.
	EnvPackagesFallback = "NUGET_PRECACHE"

	ext = ".nupkg"
)

// Entry is a package name and the version resolved for it.
type Entry struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
}

// Bullet renders the entry as a packages block line.
func (e Entry) Bullet() string {
	if !e.Found {
		return fmt.Sprintf("  * %s %s", e.Name, NotFound)
	}
	return fmt.Sprintf("  * %s %s", e.Name, e.Version)
}

// Block joins the bullet lines of entries, or returns EmptyBlock.
func Block(entries []Entry) string {
	if len(entries) == 0 {
		return EmptyBlock
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Bullet())
	}
	return strings.Join(lines, "\n")
}

// PackagesFromEnv splits the package list found in PRECACHE_PACKAGES, or in
// NUGET_PRECACHE when the former is unset or empty.
func PackagesFromEnv(getenv func(string) string) []string {
	if getenv == nil {
		getenv = os.Getenv
	}
	list := getenv(EnvPackages)
	if list == "" {
		list = getenv(EnvPackagesFallback)
	}
	return strings.Fields(list)
}

// Resolve looks up every name under root, preserving order.
func Resolve(names []string, root string) ([]Entry, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		v, ok, err := Find(name, root)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: name, Version: v, Found: ok})
	}
	return entries, nil
}

// Find returns the highest cached version of name under root. A missing root,
// or a highest version that is empty, is reported as not found rather than as
// an error.
func Find(name string, root string) (string, bool, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		log.Debugf("cache root %s unavailable", root)
		return "", false, nil
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache root %s: %w", root, err)
	}

	prefix := strings.ToLower(name) + "."
	var versions []string
	for _, de := range dirEntries {
		if !isRegular(root, de) {
			continue
		}
		fileName := de.Name()
		lower := strings.ToLower(fileName)
		if !strings.HasSuffix(lower, ext) || !strings.HasPrefix(lower, prefix) {
			continue
		}
		versions = append(versions, versionOf(fileName, name))
	}

	log.Debugf("found %d cached versions of %s in %s", len(versions), name, root)
	if len(versions) == 0 {
		return "", false, nil
	}

	// An archive with no version text ranks highest and resolves to nothing.
	v := Max(versions)
	return v, v != "", nil
}

// versionOf strips "<name>." and ".nupkg" from fileName. When that leaves
// nothing it strips everything up to the first dot instead.
func versionOf(fileName, name string) string {
	start, end := len(name)+1, len(fileName)-len(ext)
	if start < end {
		return fileName[start:end]
	}
	if i := strings.IndexByte(fileName, '.'); i >= 0 {
		if rest := fileName[i+1:]; len(rest) > len(ext) {
			return rest[:len(rest)-len(ext)]
		}
	}
	return ""
}

// isRegular reports whether de is a regular file, following symlinks.
func isRegular(dir string, de os.DirEntry) bool {
	if de.Type().IsRegular() {
		return true
	}
	if de.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, de.Name()))
	return err == nil && info.Mode().IsRegular()
}
