// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kobodl/kobodl/internal/i18n"
	"github.com/kobodl/kobodl/internal/security"
)

// newCalibreCmd groups the Calibre-Web integration settings.
func newCalibreCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibre",
		Short: "Show or change the Calibre-Web upload settings",
	}
	cmd.AddCommand(newCalibreShowCmd(a), newCalibreSetCmd(a))
	return cmd
}

func newCalibreShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the Calibre-Web settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSettings()
			if err != nil {
				return err
			}
			c := s.UserList.CalibreWeb
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(i18n.T("calibre.show_title")))
			printField(out, "calibre.field_enabled", yesNo(c.Enabled))
			printField(out, "calibre.field_url", c.URL)
			printField(out, "calibre.field_username", c.Username)
			printField(out, "calibre.field_password", security.Mask(c.Password))
			return nil
		},
	}
}

func newCalibreSetCmd(a *app) *cobra.Command {
	var (
		enable, disable, promptPassword bool
		url, username, password         string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the Calibre-Web settings",
		Long: `Update only the settings given as flags. The URL must be absolute,
e.g. http://localhost:8083. Use --password-prompt to avoid passing the
password on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return errors.New(i18n.T("calibre.enabled_conflict"))
			}
			s, err := a.openSettings()
			if err != nil {
				return err
			}

			c := s.UserList.CalibreWeb
			flags := cmd.Flags()
			if enable {
				c.Enabled = true
			}
			if disable {
				c.Enabled = false
			}
			if flags.Changed("url") {
				c.URL = url
			}
			if flags.Changed("username") {
				c.Username = username
			}
			if flags.Changed("password") {
				c.Password = password
			}
			if promptPassword {
				pw, err := readPassword(cmd)
				if err != nil {
					return err
				}
				c.Password = pw.Reveal()
				pw.Zero()
			}
			if err := c.Validate(); err != nil {
				return err
			}

			s.UserList.CalibreWeb = c
			if err := s.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("calibre.saved"))
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&enable, "enabled", false, "Enable uploads to Calibre-Web")
	f.BoolVar(&disable, "disabled", false, "Disable uploads to Calibre-Web")
	f.StringVar(&url, "url", "", "Calibre-Web server URL")
	f.StringVar(&username, "username", "", "Calibre-Web username")
	f.StringVar(&password, "password", "", "Calibre-Web password")
	f.BoolVar(&promptPassword, "password-prompt", false, "Read the password from the terminal")
	return cmd
}

// readPassword reads without echo from a terminal, or a single line from
// any other input.
func readPassword(cmd *cobra.Command) (security.Secret, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("calibre.password_prompt"))
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return nil, fmt.Errorf("could not read password: %w", err)
		}
		return security.Secret(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not read password: %w", err)
	}
	return security.FromString(strings.TrimRight(line, "\r\n")), nil
}
