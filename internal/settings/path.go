// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	// FileName is the name of the settings file inside the config directory.
	FileName = "kobodl.json"
	// ConfigHomeEnv overrides the config directory when it names an existing directory.
	ConfigHomeEnv = "XDG_CONFIG_HOME"
)

// PathResolver carries the process lookups ResolvePath depends on, so the
// resolution can be exercised without touching the real environment.
type PathResolver struct {
	LookupEnv func(key string) (string, bool)
	HomeDir   func() (string, error)
	IsDir     func(path string) bool
}

// OSPathResolver resolves against the process environment, the user's home
// directory and fs.
func OSPathResolver(fs afero.Fs) PathResolver {
	return PathResolver{
		LookupEnv: os.LookupEnv,
		HomeDir:   os.UserHomeDir,
		IsDir: func(path string) bool {
			ok, err := afero.IsDir(fs, path)
			return err == nil && ok
		},
	}
}

// ResolvePath returns the default settings file location: $XDG_CONFIG_HOME if
// it is an existing directory, else ~/.config if it exists, else ~.
func ResolvePath(r PathResolver) (string, error) {
	if r.LookupEnv == nil || r.HomeDir == nil || r.IsDir == nil {
		return "", errors.New("path resolver is missing a lookup")
	}
	if dir, ok := r.LookupEnv(ConfigHomeEnv); ok && dir != "" && r.IsDir(dir) {
		return filepath.Join(dir, FileName), nil
	}
	home, err := r.HomeDir()
	if err != nil {
		return "", &IOError{Op: "locate", Path: FileName, Err: err}
	}
	dir := filepath.Join(home, ".config")
	if !r.IsDir(dir) {
		dir = home
	}
	return filepath.Join(dir, FileName), nil
}

// DefaultPath resolves the settings location for the running process.
func DefaultPath() (string, error) {
	return ResolvePath(OSPathResolver(afero.NewOsFs()))
}
