// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package settings holds the persisted kobodl state: the list of Kobo accounts
// (users) and the Calibre-Web integration settings, stored together as a
// single JSON file. A Settings value binds one UserList to one file path for
// the lifetime of the process; changes are written only on an explicit Save.
package settings
