// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"slices"

	"github.com/spf13/cobra"

	"github.com/kobodl/kobodl/buildvars"
	"github.com/kobodl/kobodl/internal/config"
	"github.com/kobodl/kobodl/internal/i18n"
	"github.com/kobodl/kobodl/internal/logging"
	"github.com/kobodl/kobodl/internal/settings"
)

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app holds what the subcommands share for one invocation.
type app struct {
	cfg      config.Config
	verbose  bool
	settings *settings.Settings
}

// Execute runs the CLI entrypoint. The main package should call this function
// and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. Each call
// returns an independent command tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var showVersion bool

	cmd := &cobra.Command{
		Use:   "kobodl",
		Short: "kobodl manages Kobo accounts and their stored sessions.",
		Long: `kobodl keeps the accounts of the Kobo book store together with their
device and session tokens in a single settings file (kobodl.json), plus the
settings for uploading books to a Calibre-Web server.

The settings file is looked up in $XDG_CONFIG_HOME, then ~/.config, then ~,
unless --settings names it explicitly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd)
				return nil
			}
			return cmd.Help()
		},
	}

	applyDefaultFlags(cmd)
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&showVersion, "version", false, "Print version information and exit")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(cmd)
		},
	}

	cmd.AddCommand(
		newUserCmd(a),
		newCalibreCmd(a),
		newSettingsCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newConfigCmd(a),
		versionCmd,
	)

	return cmd
}

// applyDefaultFlags registers the persistent flags that are also config keys.
// Flag names match the keys of config.Config so viper can bind them.
func applyDefaultFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	if pf.Lookup("config") == nil {
		pf.String("config", "", "Path to a kobodl.yaml configuration file")
	}
	if pf.Lookup("settings") == nil {
		pf.String("settings", "", "Path to the kobodl.json settings file")
	}
	if pf.Lookup("language") == nil {
		pf.String("language", "", "Language for messages (en, de)")
	}
	if pf.Lookup("log-level") == nil {
		pf.String("log-level", "", "Log level (debug, info, warn, error)")
	}
}

// setup loads the application configuration and prepares logging and i18n.
// The settings file itself is opened lazily by commands that need it.
func (a *app) setup(cmd *cobra.Command) error {
	explicit, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	a.cfg = cfg

	logging.SetOutput(cmd.ErrOrStderr())
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	i18n.Init(supportedLanguage(cfg.Language))
	logging.Debugf("messages in %s", i18n.GetLang())
	return nil
}

// supportedLanguage returns lang when a message file exists for it and
// falls back to English otherwise.
func supportedLanguage(lang string) string {
	if slices.Contains(i18n.AvailableLocales(), lang) {
		return lang
	}
	logging.Warnf("no messages for language %q, using en", lang)
	return "en"
}

// openSettings loads the settings file on first use.
func (a *app) openSettings() (*settings.Settings, error) {
	if a.settings != nil {
		return a.settings, nil
	}
	s, err := settings.New(a.cfg.Settings)
	if err != nil {
		return nil, err
	}
	a.settings = s
	return s, nil
}

// settingsPath returns the configured path, or the default one, without
// reading the file.
func (a *app) settingsPath() (string, error) {
	if a.cfg.Settings != "" {
		return a.cfg.Settings, nil
	}
	return settings.DefaultPath()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func printVersion(cmd *cobra.Command) {
	v, c, d := resolveBuildVersion(nil)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "version: %s\n", v)
	fmt.Fprintf(out, "commit: %s\n", c)
	if d != "" {
		fmt.Fprintf(out, "built: %s\n", d)
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
