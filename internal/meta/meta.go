// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/renderskills/internal/config"
	"github.com/staranto/renderskills/internal/facts"
)

// Meta are the meta-options that are available to the command action.
type Meta struct {
	Args   []string
	Config config.Type

	// Runner executes version queries. Nil means os/exec.
	Runner facts.Runner
}
