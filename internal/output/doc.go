// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output emits resolved facts in text, json or yaml form.
package output
