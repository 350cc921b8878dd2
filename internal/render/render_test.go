// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/renderskills/internal/facts"
)

type staticFacts struct {
	f     facts.Facts
	err   error
	calls int
}

func (s *staticFacts) Gather(context.Context) (facts.Facts, error) {
	s.calls++
	return s.f, s.err
}

var sample = facts.Facts{
	Dotnet: "8.0.404",
	Python: "3.12.3",
	FFmpeg: "6.1.1",
	GCC:    "13.2.0",
	Node:   "20.10.0",
}

const skillsTemplate = `# Code interpreter

- .NET SDK {dotnetVersion}
- Python {pythonVersion}
- ffmpeg {ffmpegVersion}
- gcc {gccVersion}
- node {nodeVersion}

Preinstalled packages:
  {all packages in this format: ` + "`* PackageName Version`" + `}

Build {runNumber}


`

func writeTemplate(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "skills.template.md")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestRun(t *testing.T) {
	cache := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cache, "ClosedXML.0.105.0.nupkg"), nil, 0o600))

	out := filepath.Join(t.TempDir(), "nested", "dir", "skills.md")
	opts := Options{
		TemplatePath: writeTemplate(t, skillsTemplate),
		OutputPath:   out,
		CacheRoot:    cache,
		Packages:     []string{"ClosedXML", "Foo"},
		RunNumber:    "1234",
	}

	res, err := New(&staticFacts{f: sample}).Run(context.Background(), opts)
	require.NoError(t, err)
	assert.True(t, res.Written)

	got, err := os.ReadFile(out)
	require.NoError(t, err)

	want := `# Code interpreter

- .NET SDK 8.0.404
- Python 3.12.3
- ffmpeg 6.1.1
- gcc 13.2.0
- node 20.10.0

Preinstalled packages:
  * ClosedXML 0.105.0
  * Foo (not found)

Build 1234
`
	assert.Equal(t, want, string(got))
	assert.Equal(t, want, res.Output)
}

func TestRun_Idempotent(t *testing.T) {
	opts := Options{
		TemplatePath: writeTemplate(t, skillsTemplate),
		OutputPath:   filepath.Join(t.TempDir(), "out.md"),
	}
	r := New(&staticFacts{f: sample})

	_, err := r.Run(context.Background(), opts)
	require.NoError(t, err)
	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_EmptyPackagesAndDefaultRunNumber(t *testing.T) {
	opts := Options{
		TemplatePath: writeTemplate(t, PackagesMarker+"\n{runNumber}"),
		OutputPath:   filepath.Join(t.TempDir(), "out.md"),
		CacheRoot:    filepath.Join(t.TempDir(), "missing"),
	}
	res, err := New(&staticFacts{f: sample}).Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "  * (none)\nunknown\n", res.Output)
}

func TestRun_FactFailureWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.md")
	opts := Options{
		TemplatePath: writeTemplate(t, skillsTemplate),
		OutputPath:   out,
	}
	boom := errors.New("node: executable file not found in $PATH")

	_, err := New(&staticFacts{err: boom}).Run(context.Background(), opts)
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, out)
}

func TestRun_MissingTemplate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.md")
	opts := Options{
		TemplatePath: filepath.Join(t.TempDir(), "nope.md"),
		OutputPath:   out,
	}

	_, err := New(&staticFacts{f: sample}).Run(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoFileExists(t, out)
}

func TestRun_OnlyIfChanged(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, os.WriteFile(out, []byte("8.0.404\n\n"), 0o600))

	opts := Options{
		TemplatePath:  writeTemplate(t, "{dotnetVersion}"),
		OutputPath:    out,
		OnlyIfChanged: true,
	}
	res, err := New(&staticFacts{f: sample}).Run(context.Background(), opts)
	require.NoError(t, err)
	assert.False(t, res.Written)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "8.0.404\n\n", string(got), "untouched")
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.md")
	opts := Options{
		TemplatePath: writeTemplate(t, "gcc {gccVersion}"),
		OutputPath:   out,
	}
	r := New(&staticFacts{f: sample})

	_, err := r.Check(context.Background(), opts)
	assert.ErrorIs(t, err, ErrStale, "missing output is stale")
	assert.NoFileExists(t, out)

	require.NoError(t, os.WriteFile(out, []byte("gcc 12.0.0\n"), 0o600))
	_, err = r.Check(context.Background(), opts)
	assert.ErrorIs(t, err, ErrStale)

	require.NoError(t, os.WriteFile(out, []byte("gcc 13.2.0\n"), 0o600))
	_, err = r.Check(context.Background(), opts)
	assert.NoError(t, err)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		values Values
		want   string
	}{
		{
			name:   "single occurrence",
			tmpl:   "a {dotnetVersion} b",
			values: Values{Dotnet: "8.0.1"},
			want:   "a 8.0.1 b",
		},
		{
			name:   "every occurrence",
			tmpl:   "{nodeVersion}/{nodeVersion}",
			values: Values{Node: "20"},
			want:   "20/20",
		},
		{
			name:   "missing value left alone",
			tmpl:   "{gccVersion} {runNumber}",
			values: Values{RunNumber: "7"},
			want:   "{gccVersion} 7",
		},
		{
			name:   "unknown tokens untouched",
			tmpl:   "{rustVersion} {{dotnetVersion}}",
			values: Values{Dotnet: "8"},
			want:   "{rustVersion} {8}",
		},
		{
			name:   "marker needs its indentation",
			tmpl:   strings.TrimPrefix(PackagesMarker, "  "),
			values: Values{Packages: "  * (none)"},
			want:   strings.TrimPrefix(PackagesMarker, "  "),
		},
		{
			name:   "later tokens see earlier values",
			tmpl:   "{dotnetVersion}",
			values: Values{Dotnet: "{pythonVersion}", Python: "3"},
			want:   "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.tmpl, tt.values))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "\n"},
		{"x", "x\n"},
		{"x\n", "x\n"},
		{"x\n\n\n", "x\n"},
		{"x \t\r\n  \n", "x\n"},
		{"  x", "  x\n"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, strings.HasSuffix(got, "\n"))
		assert.False(t, strings.HasSuffix(got, "\n\n"))
	}
}

func TestKindString(t *testing.T) {
	for _, p := range Placeholders {
		assert.NotEqual(t, "unknown", p.Kind.String())
	}
	assert.Equal(t, "unknown", Kind(99).String())
}
