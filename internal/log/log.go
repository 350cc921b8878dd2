// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "RENDER_SKILLS_LOG"

// InitLogger sets up Apex with a custom handler and a log level from the
// RENDER_SKILLS_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv(EnvLevel))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(&CustomHandler{})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler formats log messages and writes them to stderr, leaving stdout
// for rendered output.
type CustomHandler struct {
	// Writer overrides the destination. Nil means os.Stderr.
	Writer io.Writer
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	_, err := fmt.Fprintf(w, "%s %.1s %s%s\n", timestamp, level, e.Message, fields(e.Fields))
	return err
}

// fields renders entry fields as sorted key=value pairs.
func fields(f log.Fields) string {
	if len(f) == 0 {
		return ""
	}
	var b strings.Builder
	for _, name := range f.Names() {
		fmt.Fprintf(&b, " %s=%v", name, f.Get(name))
	}
	return b.String()
}
