// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the kobodl command-line interface using Cobra. It
// loads the application configuration, opens the settings store and exposes
// commands to list, add, remove and inspect Kobo accounts and to edit the
// Calibre-Web integration. CLI code stays thin and delegates to
// internal/settings and internal/backup.
package cli
