// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package facts resolves version facts by invoking local tools (dotnet,
// python, ffmpeg, gcc and node) and parsing what they print.
package facts
