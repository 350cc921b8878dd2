// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds build-time version information for the render-skills
// binary. Version is set with -ldflags at release time.
package version

// Version defaults to "dev" for local builds.
var Version = "dev"
