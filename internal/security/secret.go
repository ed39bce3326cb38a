// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package security holds helpers for keeping credentials (Kobo tokens,
// Calibre-Web passwords) out of logs and terminal output.
package security

import (
	"fmt"
	"io"
	"strings"
)

const redacted = "[SECRET]"

// Secret wraps sensitive material so accidental formatting does not reveal
// it. The settings file itself stores plain strings.
type Secret []byte

// String redacts the secret for fmt.Print* convenience.
func (s Secret) String() string { return redacted }

// Format implements fmt.Formatter to ensure `%v`, `%#v` and friends are redacted.
func (s Secret) Format(f fmt.State, c rune) {
	_, _ = io.WriteString(f, redacted)
}

// Reveal returns the plain value.
func (s Secret) Reveal() string { return string(s) }

// Zero overwrites the underlying byte slice with zeros.
func (s *Secret) Zero() {
	if s == nil || *s == nil {
		return
	}
	for i := range *s {
		(*s)[i] = 0
	}
}

// FromString creates a Secret holding a copy of in.
func FromString(in string) Secret { return Secret([]byte(in)) }

// Mask shows only the last four characters of a credential, enough to tell
// two tokens apart. Values of four characters or fewer are fully masked and
// an empty value stays empty.
func Mask(in string) string {
	if in == "" {
		return ""
	}
	const visible = 4
	if len(in) <= visible {
		return strings.Repeat("*", len(in))
	}
	return strings.Repeat("*", 8) + in[len(in)-visible:]
}
