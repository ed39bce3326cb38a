// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package backup writes and reads Zstandard-compressed copies of the kobodl
// settings.
package backup

import (
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/kobodl/kobodl/internal/settings"
)

// Extension is appended to backup file names that lack it.
const Extension = ".zst"

// DefaultFileName returns the backup name used when none is given,
// e.g. kobodl-backup-2026-10-19.json.zst.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("kobodl-backup-%s.json%s", now.Format("2006-01-02"), Extension)
}

// Write streams ul to w as compressed settings JSON.
func Write(w io.Writer, ul settings.UserList) error {
	data, err := ul.Marshal()
	if err != nil {
		return fmt.Errorf("could not encode settings: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		_ = zw.Close()
		return fmt.Errorf("could not write compressed settings: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish compressed settings: %w", err)
	}
	return nil
}

// Read decompresses a backup and validates it exactly like a settings file.
func Read(r io.Reader) (settings.UserList, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return settings.UserList{}, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return settings.UserList{}, fmt.Errorf("could not decompress backup: %w", err)
	}
	return settings.ParseUserList(data)
}
