// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// render-skills renders a documentation template with the versions of the
// locally installed toolchain and precached packages. It wires the CLI and
// delegates to internal packages.
package main
