// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps the charmbracelet logger used across kobodl.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than configuring their own logger.
var L = clog.New(os.Stderr)

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) error {
	lvl, err := clog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, e.g. to stderr of a command or a test buffer.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
