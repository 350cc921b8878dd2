// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"errors"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/renderskills/internal/config"
	"github.com/staranto/renderskills/internal/meta"
)

// ExitUsage is the exit status for command line usage errors.
const ExitUsage = 2

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage: render-skills [flags] <template-path> <output-path>")

func InitApp(args []string) (*cli.Command, error) {
	// A missing config file is normal; every setting has a default.
	cfg, _ := config.Load()

	return NewApp(meta.Meta{
		Args:   args,
		Config: cfg,
	}), nil
}

// NewApp builds the root command around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:      "render-skills",
		Usage:     "render a documentation template with local tool versions",
		ArgsUsage: "<template-path> <output-path>",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: NewFlags(m.Config.Source),
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return errors.Join(ErrUsage, err)
		},
		Action: renderCommandAction,
	}

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app
}

// ExitCode maps an error returned by the app to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		return ExitUsage
	default:
		return 1
	}
}
