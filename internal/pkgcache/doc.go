// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package pkgcache resolves package versions from a directory of exported
// .nupkg archives without invoking a package manager.
package pkgcache
