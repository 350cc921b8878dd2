// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"unicode"
)

// Kind enumerates the placeholders the renderer understands.
type Kind int

const (
	Dotnet Kind = iota
	Python
	FFmpeg
	GCC
	Node
	Packages
	RunNumber
)

// PackagesMarker is replaced, leading indentation included, by the packages
// block.
const PackagesMarker = "  {all packages in this format: `* PackageName Version`}"

// DefaultRunNumber is substituted when no run number is provided.
const DefaultRunNumber = "unknown"

// Placeholder binds a Kind to the literal token it replaces.
type Placeholder struct {
	Kind  Kind
	Token string
}

// Placeholders lists every placeholder in substitution order. Tokens do not
// overlap so the order does not change the result.
var Placeholders = []Placeholder{
	{Dotnet, "{dotnetVersion}"},
	{Python, "{pythonVersion}"},
	{FFmpeg, "{ffmpegVersion}"},
	{GCC, "{gccVersion}"},
	{Node, "{nodeVersion}"},
	{Packages, PackagesMarker},
	{RunNumber, "{runNumber}"},
}

func (k Kind) String() string {
	switch k {
	case Dotnet:
		return "dotnet"
	case Python:
		return "python"
	case FFmpeg:
		return "ffmpeg"
	case GCC:
		return "gcc"
	case Node:
		return "node"
	case Packages:
		return "packages"
	case RunNumber:
		return "runNumber"
	}
	return "unknown"
}

// Values maps placeholder kinds to their resolved text. Kinds without a
// value are left untouched in the template.
type Values map[Kind]string

// Substitute replaces every known placeholder in tmpl with its value.
func Substitute(tmpl string, values Values) string {
	out := tmpl
	for _, p := range Placeholders {
		if v, ok := values[p.Kind]; ok {
			out = strings.ReplaceAll(out, p.Token, v)
		}
	}
	return out
}

// Normalize trims trailing whitespace and terminates s with a single newline.
func Normalize(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace) + "\n"
}
