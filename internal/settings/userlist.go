// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"bytes"
	"encoding/json"
	"slices"
)

// UserList is the complete persisted state: every known account in insertion
// order plus the shared Calibre-Web settings.
type UserList struct {
	Users      []User           `json:"users"`
	CalibreWeb WebLibraryConfig `json:"calibre_web"`
}

// NewUserList returns an empty list with the default Calibre-Web settings.
func NewUserList() UserList {
	return UserList{
		Users:      []User{},
		CalibreWeb: DefaultWebLibraryConfig(),
	}
}

// FindUser returns the first user matching identifier (see User.Matches).
// The returned pointer aliases the entry in l.Users, so edits through it are
// saved with the list; it is only valid until the list is next modified.
func (l *UserList) FindUser(identifier string) (*User, bool) {
	i := l.indexOf(identifier)
	if i < 0 {
		return nil, false
	}
	return &l.Users[i], true
}

// RemoveUser removes the first user matching identifier and returns a copy of
// it. The order of the remaining users is preserved. When nothing matches the
// list is left untouched.
func (l *UserList) RemoveUser(identifier string) (User, bool) {
	i := l.indexOf(identifier)
	if i < 0 {
		return User{}, false
	}
	removed := l.Users[i]
	l.Users = slices.Delete(l.Users, i, i+1)
	return removed, true
}

// AddUser appends u. Identifiers are not checked for uniqueness.
func (l *UserList) AddUser(u User) {
	l.Users = append(l.Users, u)
}

func (l *UserList) indexOf(identifier string) int {
	return slices.IndexFunc(l.Users, func(u User) bool { return u.Matches(identifier) })
}

// Marshal encodes the list as kobodl.json content: four-space indentation and
// a fixed key order, so equal lists always produce identical bytes.
func (l UserList) Marshal() ([]byte, error) {
	if l.Users == nil {
		l.Users = []User{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ParseUserList decodes kobodl.json content. Invalid JSON yields a
// *DecodeError; JSON of the wrong shape yields a *SchemaValidationError.
// Keys missing from data keep their defaults. Keys are matched exactly;
// anything else, including differently cased spellings, is ignored.
func ParseUserList(data []byte) (UserList, error) {
	inst, err := decodeInstance(data)
	if err != nil {
		return UserList{}, &DecodeError{Err: err}
	}
	if err := validateInstance(inst); err != nil {
		return UserList{}, err
	}

	l := userListFromInstance(inst)
	if err := l.CalibreWeb.Validate(); err != nil {
		return UserList{}, err
	}
	return l, nil
}

// userListFromInstance builds the typed list from a document that passed
// the schema, so every known key already holds a value of the right type.
func userListFromInstance(inst any) UserList {
	l := NewUserList()
	root, _ := inst.(map[string]any)

	users, _ := root["users"].([]any)
	for _, item := range users {
		m, _ := item.(map[string]any)
		l.Users = append(l.Users, User{
			Email:        stringField(m, "Email"),
			DeviceID:     stringField(m, "DeviceId"),
			AccessToken:  stringField(m, "AccessToken"),
			RefreshToken: stringField(m, "RefreshToken"),
			UserID:       stringField(m, "UserId"),
			UserKey:      stringField(m, "UserKey"),
		})
	}

	if cw, ok := root["calibre_web"].(map[string]any); ok {
		if v, ok := cw["enabled"].(bool); ok {
			l.CalibreWeb.Enabled = v
		}
		if v, ok := cw["url"].(string); ok {
			l.CalibreWeb.URL = v
		}
		l.CalibreWeb.Username = stringField(cw, "username")
		l.CalibreWeb.Password = stringField(cw, "password")
	}
	return l
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
