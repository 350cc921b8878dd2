// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/staranto/renderskills/internal/command"
	mylog "github.com/staranto/renderskills/internal/log"
	"github.com/staranto/renderskills/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	mylog.InitLogger()

	if versionRequested(args[1:]) {
		fmt.Println(version.Version)
		return 0
	}

	app, err := command.InitApp(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return command.ExitCode(err)
	}

	return 0
}

// valueFlags take the following argument as their value.
var valueFlags = map[string]bool{
	"--cache-dir":  true,
	"--output":     true,
	"-o":           true,
	"--packages":   true,
	"--run-number": true,
}

// versionRequested reports whether --version/-v appears as a flag. Flag
// values and anything after "--" are not flags.
func versionRequested(args []string) bool {
	for i := 0; i < len(args); i++ {
		switch a := args[i]; {
		case a == "--":
			return false
		case a == "--version" || a == "-v":
			return true
		case valueFlags[a]:
			i++
		}
	}
	return false
}
