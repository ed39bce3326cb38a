// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"os"

	"github.com/spf13/afero"

	"github.com/kobodl/kobodl/internal/logging"
)

// Settings owns the UserList loaded from one settings file. The path is fixed
// at construction; callers mutate UserList directly and call Save to persist.
type Settings struct {
	UserList UserList

	path     string
	fs       afero.Fs
	resolver *PathResolver
}

// Option customises a Settings at construction.
type Option func(*Settings)

// WithFs makes Settings read and write through fs instead of the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(s *Settings) { s.fs = fs }
}

// WithPathResolver replaces the lookups used to find the default path when no
// explicit path is given.
func WithPathResolver(r PathResolver) Option {
	return func(s *Settings) { s.resolver = &r }
}

// New binds Settings to configPath, or to the default location when
// configPath is empty, and loads it. A missing file yields an empty list.
func New(configPath string, opts ...Option) (*Settings, error) {
	s := &Settings{path: configPath, fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		r := OSPathResolver(s.fs)
		if s.resolver != nil {
			r = *s.resolver
		}
		p, err := ResolvePath(r)
		if err != nil {
			return nil, err
		}
		s.path = p
	}
	logging.Debugf("using settings file %s", s.path)

	ul, err := s.Load()
	if err != nil {
		return nil, err
	}
	s.UserList = ul
	return s, nil
}

// Path returns the settings file this instance reads and writes.
func (s *Settings) Path() string { return s.path }

// Load reads the settings file. It does not replace s.UserList.
func (s *Settings) Load() (UserList, error) {
	ok, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return UserList{}, &IOError{Op: "stat", Path: s.path, Err: err}
	}
	if ok {
		if isDir, _ := afero.IsDir(s.fs, s.path); isDir {
			ok = false
		}
	}
	if !ok {
		logging.Debugf("settings file %s does not exist, starting with no users", s.path)
		return NewUserList(), nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return UserList{}, &IOError{Op: "read", Path: s.path, Err: err}
	}
	ul, err := ParseUserList(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = s.path
		}
		return UserList{}, err
	}
	return ul, nil
}

// Save overwrites the settings file with the current UserList. The file is
// truncated before writing; an interrupted write can leave it incomplete.
func (s *Settings) Save() error {
	data, err := s.UserList.Marshal()
	if err != nil {
		return &IOError{Op: "encode", Path: s.path, Err: err}
	}

	f, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &IOError{Op: "open", Path: s.path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return &IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "close", Path: s.path, Err: err}
	}
	logging.Debugf("saved %d user(s) to %s", len(s.UserList.Users), s.path)
	return nil
}
