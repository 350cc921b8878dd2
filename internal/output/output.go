// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/staranto/renderskills/internal/config"
	"github.com/staranto/renderskills/internal/facts"
	"github.com/staranto/renderskills/internal/pkgcache"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Report is everything a render would substitute.
type Report struct {
	Facts     facts.Facts      `json:"facts" yaml:"facts"`
	Packages  []pkgcache.Entry `json:"packages" yaml:"packages"`
	RunNumber string           `json:"runNumber" yaml:"runNumber"`
}

// Options control text rendering. Config supplies padding and colors.
type Options struct {
	Format string
	Color  bool
	Titles bool
	Config config.Type
}

// Emit writes r to w in the requested format.
func Emit(w io.Writer, r Report, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		return TableWriter(w, Rows(r), opts)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Rows flattens a Report into name/version pairs, tools first.
func Rows(r Report) [][]string {
	rows := [][]string{
		{"dotnet", r.Facts.Dotnet},
		{"python", r.Facts.Python},
		{"ffmpeg", r.Facts.FFmpeg},
		{"gcc", r.Facts.GCC},
		{"node", r.Facts.Node},
		{"runNumber", r.RunNumber},
	}
	for _, e := range r.Packages {
		v := e.Version
		if !e.Found {
			v = pkgcache.NotFound
		}
		rows = append(rows, []string{e.Name, v})
	}
	return rows
}

// TableWriter renders rows as a borderless table honoring color, titles and
// padding options.
func TableWriter(w io.Writer, rows [][]string, opts Options) error {
	if len(rows) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors(opts.Config, "colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := opts.Config.GetInt("padding", 2)
	log.Debugf("padding: %v", pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Rows(rows...)

	if opts.Titles {
		t = t.Headers("NAME", "VERSION").BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// getColors returns configured color values for table rendering.
func getColors(cfg config.Type, key string) (header string, even string, odd string) {
	header, _ = cfg.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = cfg.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = cfg.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}
