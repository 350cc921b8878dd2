// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// ErrStale is returned by Check when the output does not match what would be
// rendered.
var ErrStale = errors.New("output is out of date")

// writeOutput creates the parent directories of path and writes data. With
// onlyIfChanged an existing file whose trimmed content matches is left alone.
func writeOutput(path string, data []byte, onlyIfChanged bool) (bool, error) {
	if onlyIfChanged {
		same, err := sameContent(path, data)
		if err != nil {
			return false, err
		}
		if same {
			log.Debugf("%s unchanged, skipping write", path)
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Debugf("wrote %s to %s", humanize.Bytes(uint64(len(data))), path)
	return true, nil
}

// sameContent reports whether path exists and holds data, ignoring
// surrounding whitespace.
func sameContent(path string, data []byte) (bool, error) {
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)), nil
}
