// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/renderskills/internal/pkgcache"
	"github.com/staranto/renderskills/internal/render"
)

// NewFlags constructs the command flags. Values fall back to env variables and
// then to the config file at cfgPath.
func NewFlags(cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "directory of exported .nupkg files to resolve package versions from",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("RENDER_SKILLS_CACHE_DIR"),
				yaml.YAML("cache-dir", altsrc.StringSourcer(cfgPath)),
			),
			Value: pkgcache.DefaultRoot,
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "fail if the output file is missing or out of date instead of writing it",
			HideDefault: true,
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output with --facts",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("color", altsrc.StringSourcer(cfgPath)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:        "facts",
			Usage:       "print the resolved versions instead of rendering",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:  "only-if-changed",
			Usage: "leave the output file untouched when its content would not change",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("only-if-changed", altsrc.StringSourcer(cfgPath)),
			),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format for --facts",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("output", altsrc.StringSourcer(cfgPath)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:  "packages",
			Usage: "whitespace-separated package names. Overrides PRECACHE_PACKAGES and NUGET_PRECACHE",
		},
		&cli.StringFlag{
			Name:  "run-number",
			Usage: "value substituted for {runNumber}",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("RUN_NUMBER"),
			),
			Value: render.DefaultRunNumber,
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with --facts text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML("titles", altsrc.StringSourcer(cfgPath)),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "render-skills version info",
			HideDefault: true,
		},
	}
}
