// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the render-skills command line. It wires flags,
// validators and the render action.
package command
