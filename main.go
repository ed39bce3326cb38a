// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for kobodl.
//
// Usage:
//
//	go run . [flags]
//	./kobodl user list
//
// See --help for the available commands.
package main

import (
	"os"

	"github.com/kobodl/kobodl/internal/logging"
	"github.com/kobodl/kobodl/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
