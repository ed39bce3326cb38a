// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the kobodl application configuration (language, log
// level, settings file location) from kobodl.yaml, KOBODL_* environment
// variables and command-line flags. It is separate from the account store in
// internal/settings, which lives in kobodl.json.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	// Settings is an explicit kobodl.json path; empty means the default location.
	Settings string `mapstructure:"settings" yaml:"settings,omitempty"`
}

// Defaults are applied before any file, environment or flag value.
func Defaults() map[string]any {
	return map[string]any{
		"language":  "en",
		"log-level": "info",
		"settings":  "",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "kobodl")
		default:
			configDir = "/etc/kobodl"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "kobodl")
	}

	return filepath.Join(configDir, "kobodl.yaml"), nil
}

// LoadConfig merges defaults, the first kobodl.yaml found (or explicitPath),
// KOBODL_* environment variables and the flags of cmd into a T. A missing
// config file is not an error.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")

	// An explicit --config path takes precedence over the search paths.
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	} else if found := findConfigFile(); found != "" {
		v.SetConfigFile(found)
	}

	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("kobodl")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}

	return c, nil
}

// configSearchPaths lists the candidate kobodl.yaml files in lookup order.
func configSearchPaths() []string {
	var paths []string
	if p, err := GetConfigPath(false); err == nil {
		paths = append(paths, p)
	}
	if p, err := GetConfigPath(true); err == nil {
		paths = append(paths, p)
	}
	return append(paths, "kobodl.yaml")
}

// findConfigFile returns the first existing kobodl.yaml. Only that exact
// name is accepted: viper's own search would also pick up the kobodl.json
// settings file that may sit in the same directory.
func findConfigFile() string {
	for _, p := range configSearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// WriteConfigFile writes c as YAML to the user (or system) config path and
// returns the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
