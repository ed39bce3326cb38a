// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsAuthenticated(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"all tokens", User{DeviceID: "d", AccessToken: "x", RefreshToken: "y"}, true},
		{"missing device", User{DeviceID: "", AccessToken: "x", RefreshToken: "y"}, false},
		{"missing access", User{DeviceID: "d", RefreshToken: "y"}, false},
		{"missing refresh", User{DeviceID: "d", AccessToken: "x"}, false},
		{"logged in only", User{UserID: "u", UserKey: "k"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsAuthenticated())
		})
	}
}

func TestUser_IsLoggedIn(t *testing.T) {
	assert.False(t, User{UserID: "", UserKey: "k"}.IsLoggedIn())
	assert.False(t, User{UserID: "u", UserKey: ""}.IsLoggedIn())
	assert.True(t, User{UserID: "u", UserKey: "k"}.IsLoggedIn())
	// Independent of the token state.
	assert.True(t, User{UserID: "u", UserKey: "k", DeviceID: ""}.IsLoggedIn())
}

func TestUser_Matches(t *testing.T) {
	u := User{Email: "a@b.com", DeviceID: "dev123", UserKey: "key9"}
	assert.True(t, u.Matches("a@b.com"))
	assert.True(t, u.Matches("dev123"))
	assert.True(t, u.Matches("key9"))
	assert.False(t, u.Matches("u1"))
}

func TestUser_EnsureDeviceID(t *testing.T) {
	u := User{Email: "a@b.com"}
	id := u.EnsureDeviceID()
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, u.DeviceID)
	assert.Equal(t, id, u.EnsureDeviceID(), "existing id must be kept")
}

func TestUser_StringHidesTokens(t *testing.T) {
	u := User{Email: "a@b.com", DeviceID: "dev", AccessToken: "secret-access", RefreshToken: "secret-refresh"}
	s := u.String()
	assert.Contains(t, s, "a@b.com")
	assert.NotContains(t, s, "secret")
}
