// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package facts

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/apex/log"

	"github.com/staranto/renderskills/internal/config"
)

var (
	pythonRe = regexp.MustCompile(`Python\s+(\S+)`)
	ffmpegRe = regexp.MustCompile(`ffmpeg\s+version\s+(\S+)`)
	gccRe    = regexp.MustCompile(`\)\s+([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)
)

// Tools maps each tool to the executable invoked for it.
type Tools struct {
	Dotnet string
	Python string
	FFmpeg string
	GCC    string
	Node   string
}

// DefaultTools returns the executables looked up on PATH.
func DefaultTools() Tools {
	return Tools{
		Dotnet: "dotnet",
		Python: "python3",
		FFmpeg: "ffmpeg",
		GCC:    "gcc",
		Node:   "node",
	}
}

// ToolsFromConfig returns DefaultTools overridden by the tools.<name> keys of
// cfg.
func ToolsFromConfig(cfg config.Type) Tools {
	t := DefaultTools()
	t.Dotnet, _ = cfg.GetString("tools.dotnet", t.Dotnet)
	t.Python, _ = cfg.GetString("tools.python", t.Python)
	t.FFmpeg, _ = cfg.GetString("tools.ffmpeg", t.FFmpeg)
	t.GCC, _ = cfg.GetString("tools.gcc", t.GCC)
	t.Node, _ = cfg.GetString("tools.node", t.Node)
	return t
}

// Facts are the resolved tool versions for one render.
type Facts struct {
	Dotnet string `json:"dotnet" yaml:"dotnet"`
	Python string `json:"python" yaml:"python"`
	FFmpeg string `json:"ffmpeg" yaml:"ffmpeg"`
	GCC    string `json:"gcc" yaml:"gcc"`
	Node   string `json:"node" yaml:"node"`
}

// Querier resolves individual version facts through a Runner.
type Querier struct {
	Runner Runner
	Tools  Tools
}

// NewQuerier returns a Querier using r, or ExecRunner when r is nil.
func NewQuerier(r Runner, tools Tools) *Querier {
	if r == nil {
		r = ExecRunner{}
	}
	return &Querier{Runner: r, Tools: tools}
}

// Gather resolves every fact in a fixed order and stops at the first failure.
func (q *Querier) Gather(ctx context.Context) (Facts, error) {
	var (
		f   Facts
		err error
	)

	steps := []struct {
		name string
		dst  *string
		fn   func(context.Context) (string, error)
	}{
		{"dotnet", &f.Dotnet, q.Dotnet},
		{"python", &f.Python, q.Python},
		{"ffmpeg", &f.FFmpeg, q.FFmpeg},
		{"gcc", &f.GCC, q.GCC},
		{"node", &f.Node, q.Node},
	}

	for _, s := range steps {
		if *s.dst, err = s.fn(ctx); err != nil {
			return Facts{}, fmt.Errorf("failed to resolve %s version: %w", s.name, err)
		}
		log.Debugf("%s version: %s", s.name, *s.dst)
	}

	return f, nil
}

// Dotnet returns the raw output of `dotnet --version`.
func (q *Querier) Dotnet(ctx context.Context) (string, error) {
	return q.Runner.Run(ctx, q.Tools.Dotnet, "--version")
}

// Python returns the version reported by `python3 --version`.
func (q *Querier) Python(ctx context.Context) (string, error) {
	out, err := q.Runner.Run(ctx, q.Tools.Python, "--version")
	if err != nil {
		return "", err
	}
	return ParsePython(out), nil
}

// FFmpeg returns the version from the first line of `ffmpeg -version`.
func (q *Querier) FFmpeg(ctx context.Context) (string, error) {
	out, err := q.Runner.Run(ctx, q.Tools.FFmpeg, "-version")
	if err != nil {
		return "", err
	}
	return ParseFFmpeg(out), nil
}

// GCC prefers the clean -dumpfullversion output and falls back to parsing
// `gcc --version` when that invocation fails for any reason.
func (q *Querier) GCC(ctx context.Context) (string, error) {
	out, err := q.Runner.Run(ctx, q.Tools.GCC, "-dumpfullversion", "-dumpversion")
	if err == nil {
		return strings.TrimSpace(out), nil
	}
	log.WithError(err).Debug("gcc -dumpfullversion failed, falling back to --version")

	out, err = q.Runner.Run(ctx, q.Tools.GCC, "--version")
	if err != nil {
		return "", err
	}
	return ParseGCC(out), nil
}

// Node returns `node --version` without its leading "v".
func (q *Querier) Node(ctx context.Context) (string, error) {
	out, err := q.Runner.Run(ctx, q.Tools.Node, "--version")
	if err != nil {
		return "", err
	}
	return ParseNode(out), nil
}

// ParsePython extracts the token after "Python". Unrecognized output is
// returned as is.
func ParsePython(out string) string {
	if m := pythonRe.FindStringSubmatch(out); m != nil {
		return m[1]
	}
	return out
}

// ParseFFmpeg extracts the token after "ffmpeg version" on the first line,
// or returns the first line when it does not match.
func ParseFFmpeg(out string) string {
	line := firstLine(out)
	if m := ffmpegRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return line
}

// ParseGCC extracts MAJOR.MINOR[.PATCH] following the closing parenthesis on
// the first line of `gcc --version`, e.g. "gcc (Debian 12.2.0-14) 12.2.0".
func ParseGCC(out string) string {
	line := firstLine(out)
	if m := gccRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return line
}

// ParseNode strips a single leading "v".
func ParseNode(out string) string {
	return strings.TrimPrefix(strings.TrimSpace(out), "v")
}
