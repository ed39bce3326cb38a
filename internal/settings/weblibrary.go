// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"fmt"
	"net/url"

	"github.com/kobodl/kobodl/internal/security"
)

// DefaultWebLibraryURL is the address of a Calibre-Web server running locally
// with its stock port.
const DefaultWebLibraryURL = "http://localhost:8083"

// WebLibraryConfig configures the optional upload of downloaded books to a
// Calibre-Web server.
type WebLibraryConfig struct {
	Enabled  bool   `json:"enabled"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DefaultWebLibraryConfig returns a disabled config pointing at the local
// default server.
func DefaultWebLibraryConfig() WebLibraryConfig {
	return WebLibraryConfig{URL: DefaultWebLibraryURL}
}

// Validate checks that URL is an absolute http or https URL with a host.
func (c WebLibraryConfig) Validate() error {
	return validateAbsoluteURL("calibre_web.url", c.URL)
}

func (c WebLibraryConfig) String() string {
	return fmt.Sprintf("enabled=%t url=%s username=%s password=%v",
		c.Enabled, c.URL, c.Username, security.FromString(c.Password))
}

func validateAbsoluteURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &SchemaValidationError{Field: field, Reason: "not a valid URL", Err: err}
	}
	if !u.IsAbs() || u.Host == "" {
		return &SchemaValidationError{Field: field, Reason: fmt.Sprintf("%q is not an absolute URL", raw)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &SchemaValidationError{Field: field, Reason: fmt.Sprintf("scheme %q is not http or https", u.Scheme)}
	}
	return nil
}
