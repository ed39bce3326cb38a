// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import "fmt"

// SchemaValidationError is returned when settings data is valid JSON but does
// not have the expected shape (wrong types, malformed URL, missing Email).
type SchemaValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *SchemaValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid settings: %s", e.Reason)
	}
	return fmt.Sprintf("invalid settings: %s: %s", e.Field, e.Reason)
}

func (e *SchemaValidationError) Unwrap() error { return e.Err }

// DecodeError is returned when the settings data is not syntactically valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("could not decode settings: %v", e.Err)
	}
	return fmt.Sprintf("could not decode settings file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError wraps a failure to read or write the settings file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("could not %s settings file %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
