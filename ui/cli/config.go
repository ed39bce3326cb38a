// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobodl/kobodl/internal/config"
	"github.com/kobodl/kobodl/internal/i18n"
)

func newSettingsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect the settings file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the location of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.settingsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	})
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the kobodl.yaml application configuration",
	}
	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to kobodl.yaml",
		Long: `Writes language, log level and settings location as currently resolved
(defaults, environment and flags) to the user configuration directory, or to
the system-wide location with --system.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteConfigFile(&a.cfg, system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide configuration")
	cmd.AddCommand(initCmd)
	return cmd
}
