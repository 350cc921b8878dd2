// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/renderskills/internal/facts"
	"github.com/staranto/renderskills/internal/meta"
	"github.com/staranto/renderskills/internal/output"
	"github.com/staranto/renderskills/internal/pkgcache"
	"github.com/staranto/renderskills/internal/render"
)

// renderCommandAction renders <template-path> into <output-path>, or with
// --facts prints what would be substituted.
func renderCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	args := cmd.Args().Slice()
	log.Debugf("Executing action for %v", m.Args)

	if cmd.Bool("facts") {
		if err := ArgCountValidator(args, 0); err != nil {
			return err
		}
	} else if err := ArgCountValidator(args, 2); err != nil {
		return err
	}

	r := render.New(facts.NewQuerier(m.Runner, facts.ToolsFromConfig(m.Config)))
	opts := BuildOptions(cmd, args)
	log.Debugf("options: %+v", opts)

	if cmd.Bool("facts") {
		_, res, err := r.Resolve(ctx, opts)
		if err != nil {
			return err
		}
		return output.Emit(cmd.Root().Writer, output.Report{
			Facts:     res.Facts,
			Packages:  res.Packages,
			RunNumber: runNumber(opts),
		}, output.Options{
			Format: cmd.String("output"),
			Color:  colorEnabled(cmd),
			Titles: cmd.Bool("titles"),
			Config: m.Config,
		})
	}

	if cmd.Bool("check") {
		_, err := r.Check(ctx, opts)
		return err
	}

	_, err := r.Run(ctx, opts)
	return err
}

// BuildOptions maps flags and positional args onto render.Options.
func BuildOptions(cmd *cli.Command, args []string) render.Options {
	opts := render.Options{
		CacheRoot:     cmd.String("cache-dir"),
		RunNumber:     cmd.String("run-number"),
		OnlyIfChanged: cmd.Bool("only-if-changed"),
	}
	if len(args) == 2 {
		opts.TemplatePath, opts.OutputPath = args[0], args[1]
	}

	if cmd.IsSet("packages") {
		opts.Packages = strings.Fields(cmd.String("packages"))
	} else {
		opts.Packages = pkgcache.PackagesFromEnv(os.Getenv)
	}
	return opts
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

func runNumber(opts render.Options) string {
	if opts.RunNumber == "" {
		return render.DefaultRunNumber
	}
	return opts.RunNumber
}

// colorEnabled honors an explicit --color/--no-color and otherwise colors
// only when stdout is a terminal.
func colorEnabled(cmd *cli.Command) bool {
	if cmd.IsSet("color") {
		return cmd.Bool("color")
	}
	return output.IsTerminal(os.Stdout)
}
