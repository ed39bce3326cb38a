// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"fmt"

	"github.com/google/uuid"
)

// User is one Kobo account together with its device and session state.
// JSON keys keep the historical kobodl.json spelling.
type User struct {
	Email        string `json:"Email"`
	DeviceID     string `json:"DeviceId"`
	AccessToken  string `json:"AccessToken"`
	RefreshToken string `json:"RefreshToken"`
	UserID       string `json:"UserId"`
	UserKey      string `json:"UserKey"`
}

// IsAuthenticated reports whether the device and session tokens are all set,
// i.e. the account can refresh its session without a new activation.
func (u User) IsAuthenticated() bool {
	return len(u.DeviceID) > 0 && len(u.AccessToken) > 0 && len(u.RefreshToken) > 0
}

// IsLoggedIn reports whether a completed login left a user id and user key.
// It is independent of IsAuthenticated.
func (u User) IsLoggedIn() bool {
	return len(u.UserID) > 0 && len(u.UserKey) > 0
}

// Matches reports whether identifier names this user. Email, UserKey and
// DeviceID share one namespace.
func (u User) Matches(identifier string) bool {
	return u.Email == identifier || u.UserKey == identifier || u.DeviceID == identifier
}

// EnsureDeviceID assigns a random device id if none is set and returns the
// device id in use.
func (u *User) EnsureDeviceID() string {
	if u.DeviceID == "" {
		u.DeviceID = uuid.NewString()
	}
	return u.DeviceID
}

// String never includes tokens.
func (u User) String() string {
	if u.DeviceID == "" {
		return u.Email
	}
	return fmt.Sprintf("%s (device %s)", u.Email, u.DeviceID)
}
