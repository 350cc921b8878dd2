// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package render substitutes resolved version facts into a documentation
// template and writes the result. Substitution is literal; there is no
// template language.
package render
