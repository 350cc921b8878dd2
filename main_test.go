// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealMain_Usage(t *testing.T) {
	t.Setenv("RENDER_SKILLS_CFG", filepath.Join(t.TempDir(), "absent.yaml"))
	dir := t.TempDir()

	for _, args := range [][]string{
		{"render-skills"},
		{"render-skills", filepath.Join(dir, "t.md")},
		{"render-skills", filepath.Join(dir, "a"), filepath.Join(dir, "b"), filepath.Join(dir, "c")},
	} {
		assert.Equal(t, 2, realMain(args), "%v", args)
	}

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRealMain_Version(t *testing.T) {
	assert.Equal(t, 0, realMain([]string{"render-skills", "--version"}))
}

func TestVersionRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"long", []string{"--version"}, true},
		{"short", []string{"-v"}, true},
		{"after other flags", []string{"--check", "-v"}, true},
		{"absent", []string{"t.md", "o.md"}, false},
		{"flag value", []string{"--run-number", "-v", "t.md", "o.md"}, false},
		{"short flag value", []string{"-o", "-v"}, false},
		{"after terminator", []string{"--", "-v", "o.md"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionRequested(tt.args))
		})
	}
}

func TestRealMain_RunNumberValueIsNotVersion(t *testing.T) {
	t.Setenv("RENDER_SKILLS_CFG", filepath.Join(t.TempDir(), "absent.yaml"))

	// "-v" belongs to --run-number, so the version short-circuit must not fire.
	assert.Equal(t, 2, realMain([]string{"render-skills", "--run-number", "-v", "only.md"}))
}
