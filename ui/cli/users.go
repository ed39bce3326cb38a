// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kobodl/kobodl/internal/i18n"
	"github.com/kobodl/kobodl/internal/security"
	"github.com/kobodl/kobodl/internal/settings"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Width(16)
)

// newUserCmd is the root command for account management.
func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage Kobo accounts (list, show, add, rm)",
		Long: `The 'user' command group manages the accounts stored in the settings file.
A user can be referred to by its email, device id or user key.`,
	}
	cmd.AddCommand(newUserListCmd(a), newUserShowCmd(a), newUserAddCmd(a), newUserRemoveCmd(a))
	return cmd
}

func newUserListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(s.UserList.Users) == 0 {
				fmt.Fprintln(out, i18n.T("user.list_empty"))
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, i18n.T("user.list_header"))
			for _, u := range s.UserList.Users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Email, u.DeviceID, yesNo(u.IsAuthenticated()), yesNo(u.IsLoggedIn()))
			}
			return w.Flush()
		},
	}
}

func newUserShowCmd(a *app) *cobra.Command {
	var showSecrets bool
	cmd := &cobra.Command{
		Use:   "show <email | device id | user key>",
		Short: "Show the details of one user",
		Long:  `Display a stored account. Tokens are masked unless --show-secrets is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			u, ok := s.UserList.FindUser(args[0])
			if !ok {
				return errors.New(i18n.T("user.not_found", args[0]))
			}

			secret := security.Mask
			if showSecrets {
				secret = func(v string) string { return v }
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(i18n.T("user.show_title")))
			printField(out, "user.field_email", u.Email)
			printField(out, "user.field_device_id", u.DeviceID)
			printField(out, "user.field_access_token", secret(u.AccessToken))
			printField(out, "user.field_refresh_token", secret(u.RefreshToken))
			printField(out, "user.field_user_id", u.UserID)
			printField(out, "user.field_user_key", secret(u.UserKey))
			printField(out, "user.field_authenticated", yesNo(u.IsAuthenticated()))
			printField(out, "user.field_logged_in", yesNo(u.IsLoggedIn()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print tokens in full")
	return cmd
}

func newUserAddCmd(a *app) *cobra.Command {
	var u settings.User
	var generateDeviceID bool
	cmd := &cobra.Command{
		Use:   "add --email <email>",
		Short: "Add a user to the settings file",
		Long: `Append an account to the settings file. Tokens obtained elsewhere can be
supplied with flags; --generate-device-id assigns a fresh random device id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if u.Email == "" {
				return errors.New(i18n.T("user.email_required"))
			}
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			if generateDeviceID {
				u.EnsureDeviceID()
			}
			s.UserList.AddUser(u)
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("user.added", u.String()))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&u.Email, "email", "", "Account email (required)")
	f.StringVar(&u.DeviceID, "device-id", "", "Device id")
	f.StringVar(&u.AccessToken, "access-token", "", "Access token")
	f.StringVar(&u.RefreshToken, "refresh-token", "", "Refresh token")
	f.StringVar(&u.UserID, "user-id", "", "User id")
	f.StringVar(&u.UserKey, "user-key", "", "User key")
	f.BoolVar(&generateDeviceID, "generate-device-id", false, "Assign a random device id when --device-id is not given")
	return cmd
}

func newUserRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <email | device id | user key>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a user from the settings file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			removed, ok := s.UserList.RemoveUser(args[0])
			if !ok {
				return errors.New(i18n.T("user.not_found", args[0]))
			}
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("user.removed", removed.Email))
			return nil
		},
	}
}

func printField(w io.Writer, labelID, value string) {
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render(i18n.T(labelID)+":"), value)
}

func yesNo(b bool) string {
	if b {
		return i18n.T("common.yes")
	}
	return i18n.T("common.no")
}
