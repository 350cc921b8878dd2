// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/staranto/renderskills/internal/facts"
	"github.com/staranto/renderskills/internal/pkgcache"
)

// FactGatherer resolves the tool version facts.
type FactGatherer interface {
	Gather(ctx context.Context) (facts.Facts, error)
}

// Options describe one render.
type Options struct {
	TemplatePath string
	OutputPath   string

	// CacheRoot is scanned for each of Packages.
	CacheRoot string
	Packages  []string

	// RunNumber defaults to DefaultRunNumber when empty.
	RunNumber string

	// OnlyIfChanged skips the write when the output already matches.
	OnlyIfChanged bool
}

// Result reports what a render resolved and whether it wrote the output.
type Result struct {
	Facts    facts.Facts
	Packages []pkgcache.Entry
	Output   string
	Written  bool
}

// Renderer renders templates using facts from a FactGatherer.
type Renderer struct {
	Facts FactGatherer
}

// New returns a Renderer backed by g.
func New(g FactGatherer) *Renderer {
	return &Renderer{Facts: g}
}

// Resolve gathers facts and package versions and returns the substitution
// values along with a Result carrying them.
func (r *Renderer) Resolve(ctx context.Context, opts Options) (Values, Result, error) {
	f, err := r.Facts.Gather(ctx)
	if err != nil {
		return nil, Result{}, err
	}

	entries, err := pkgcache.Resolve(opts.Packages, opts.CacheRoot)
	if err != nil {
		return nil, Result{}, err
	}

	runNumber := opts.RunNumber
	if runNumber == "" {
		runNumber = DefaultRunNumber
	}

	values := Values{
		Dotnet:    f.Dotnet,
		Python:    f.Python,
		FFmpeg:    f.FFmpeg,
		GCC:       f.GCC,
		Node:      f.Node,
		Packages:  pkgcache.Block(entries),
		RunNumber: runNumber,
	}
	return values, Result{Facts: f, Packages: entries}, nil
}

// Render resolves all values, substitutes them into the template and returns
// the normalized output without writing it.
func (r *Renderer) Render(ctx context.Context, opts Options) (Result, error) {
	values, res, err := r.Resolve(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	tmpl, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read template: %w", err)
	}

	res.Output = Normalize(Substitute(string(tmpl), values))
	return res, nil
}

// Run renders the template and writes it to opts.OutputPath, creating parent
// directories as needed.
func (r *Renderer) Run(ctx context.Context, opts Options) (Result, error) {
	res, err := r.Render(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	res.Written, err = writeOutput(opts.OutputPath, []byte(res.Output), opts.OnlyIfChanged)
	if err != nil {
		return Result{}, err
	}

	log.WithField("written", res.Written).Debugf("rendered %s -> %s", opts.TemplatePath, opts.OutputPath)
	return res, nil
}

// Check renders the template and returns ErrStale if opts.OutputPath is
// missing or differs. Nothing is written.
func (r *Renderer) Check(ctx context.Context, opts Options) (Result, error) {
	res, err := r.Render(ctx, opts)
	if err != nil {
		return Result{}, err
	}

	same, err := sameContent(opts.OutputPath, []byte(res.Output))
	if err != nil {
		return Result{}, err
	}
	if !same {
		return res, fmt.Errorf("%s: %w", opts.OutputPath, ErrStale)
	}
	return res, nil
}
