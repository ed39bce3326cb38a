// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebLibraryConfig_Validate(t *testing.T) {
	valid := []string{
		DefaultWebLibraryURL,
		"https://calibre.example.org/library",
		"HTTP://nas:8083",
	}
	for _, raw := range valid {
		c := DefaultWebLibraryConfig()
		c.URL = raw
		assert.NoError(t, c.Validate(), raw)
	}

	invalid := []string{
		"",
		"not-a-url",
		"/library",
		"ftp://nas/books",
		"file:///srv/books",
		"http://",
	}
	for _, raw := range invalid {
		c := DefaultWebLibraryConfig()
		c.URL = raw
		err := c.Validate()
		var sve *SchemaValidationError
		require.True(t, errors.As(err, &sve), "expected SchemaValidationError for %q, got %v", raw, err)
		assert.Equal(t, "calibre_web.url", sve.Field)
	}
}

func TestWebLibraryConfig_StringRedactsPassword(t *testing.T) {
	c := DefaultWebLibraryConfig()
	c.Password = "hunter2"
	assert.NotContains(t, c.String(), "hunter2")
}
