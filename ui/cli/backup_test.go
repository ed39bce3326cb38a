// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBackupRestore(t *testing.T) {
	path := setupTest(t)
	mustExecute(t, "user", "add", "--email", "a@b.com", "--device-id", "dev1")
	mustExecute(t, "user", "add", "--email", "c@d.com")
	mustExecute(t, "calibre", "set", "--enabled")

	target := filepath.Join(t.TempDir(), "snapshot.json")
	out := mustExecute(t, "backup", target)
	if !strings.Contains(out, target+".zst") {
		t.Fatalf("expected .zst suffix in output, got:\n%s", out)
	}
	if _, err := os.Stat(target + ".zst"); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	mustExecute(t, "user", "rm", "a@b.com")
	mustExecute(t, "user", "rm", "c@d.com")
	mustExecute(t, "calibre", "set", "--disabled")

	out = mustExecute(t, "restore", target+".zst")
	if !strings.Contains(out, "Restored 2 user(s)") {
		t.Fatalf("unexpected restore output:\n%s", out)
	}
	if !strings.Contains(out, "replaced 0 user(s)") {
		t.Fatalf("expected restore to log the replaced users:\n%s", out)
	}

	s := loadSettings(t, path)
	if len(s.UserList.Users) != 2 || s.UserList.Users[0].DeviceID != "dev1" || s.UserList.Users[1].Email != "c@d.com" {
		t.Fatalf("unexpected users after restore: %+v", s.UserList.Users)
	}
	if !s.UserList.CalibreWeb.Enabled {
		t.Fatalf("calibre settings not restored")
	}
}

func TestBackup_DefaultFileName(t *testing.T) {
	setupTest(t)
	out := mustExecute(t, "backup")
	matches, err := filepath.Glob("kobodl-backup-*.json.zst")
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one default backup file in cwd, got %v (%v)\n%s", matches, err, out)
	}
}

func TestRestore_MissingFile(t *testing.T) {
	setupTest(t)
	if _, err := executeCommand(t, nil, "restore", filepath.Join(t.TempDir(), "none.zst")); err == nil {
		t.Fatalf("expected error for missing backup")
	}
}
