// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kobodl/kobodl/internal/backup"
	"github.com/kobodl/kobodl/internal/i18n"
	"github.com/kobodl/kobodl/internal/logging"
)

func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: "Create a compressed (zstd) backup of the settings",
		Long: `Writes the users and Calibre-Web settings into a Zstandard-compressed
JSON file. '.zst' is appended to the name if it is not already present.
Without a name, kobodl-backup-YYYY-MM-DD.json.zst is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			outputFile := backup.DefaultFileName(time.Now())
			if len(args) == 1 {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, backup.Extension) {
					outputFile += backup.Extension
				}
			}

			f, err := os.OpenFile(outputFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			if err := backup.Write(f, s.UserList); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("could not close file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("backup.success", outputFile))
			return nil
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Replace the settings with the content of a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open file: %w", err)
			}
			defer func() { _ = f.Close() }()

			ul, err := backup.Read(f)
			if err != nil {
				return err
			}
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			replaced := len(s.UserList.Users)
			s.UserList = ul
			if err := s.Save(); err != nil {
				return err
			}
			logging.Infof("replaced %d user(s) in %s with %d from %s", replaced, s.Path(), len(ul.Users), args[0])
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("restore.success", len(ul.Users), args[0]))
			return nil
		},
	}
}
