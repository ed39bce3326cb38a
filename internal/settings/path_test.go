// Copyright (c) 2026 kobodl Team
// kobodl - Kobo account and settings manager
// This source code is licensed under the MIT license found in the LICENSE file.

package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeResolver(env map[string]string, home string, dirs ...string) PathResolver {
	existing := map[string]bool{}
	for _, d := range dirs {
		existing[d] = true
	}
	return PathResolver{
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
		HomeDir: func() (string, error) { return home, nil },
		IsDir:   func(path string) bool { return existing[path] },
	}
}

func TestResolvePath(t *testing.T) {
	home := filepath.FromSlash("/home/reader")
	xdg := filepath.FromSlash("/xdg")
	dotConfig := filepath.Join(home, ".config")

	tests := []struct {
		name string
		r    PathResolver
		want string
	}{
		{
			name: "config home env wins when it is a directory",
			r:    fakeResolver(map[string]string{ConfigHomeEnv: xdg}, home, xdg, dotConfig),
			want: filepath.Join(xdg, FileName),
		},
		{
			name: "config home env not a directory falls back to ~/.config",
			r:    fakeResolver(map[string]string{ConfigHomeEnv: xdg}, home, dotConfig),
			want: filepath.Join(dotConfig, FileName),
		},
		{
			name: "unset env uses ~/.config",
			r:    fakeResolver(nil, home, dotConfig),
			want: filepath.Join(dotConfig, FileName),
		},
		{
			name: "empty env uses ~/.config",
			r:    fakeResolver(map[string]string{ConfigHomeEnv: ""}, home, dotConfig),
			want: filepath.Join(dotConfig, FileName),
		},
		{
			name: "no ~/.config uses home",
			r:    fakeResolver(nil, home),
			want: filepath.Join(home, FileName),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePath_HomeError(t *testing.T) {
	r := fakeResolver(nil, "")
	r.HomeDir = func() (string, error) { return "", errors.New("no home") }
	_, err := ResolvePath(r)
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestResolvePath_IncompleteResolver(t *testing.T) {
	_, err := ResolvePath(PathResolver{})
	assert.Error(t, err)
}

func TestOSPathResolver_UsesFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/cfg", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/file", []byte("x"), 0o600))

	r := OSPathResolver(fs)
	assert.True(t, r.IsDir("/cfg"))
	assert.False(t, r.IsDir("/file"))
	assert.False(t, r.IsDir("/missing"))
}

func TestDefaultPath_FollowsEnvironment(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(ConfigHomeEnv, tmp)

	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, FileName), got)

	t.Setenv(ConfigHomeEnv, filepath.Join(tmp, "missing"))
	got, err = DefaultPath()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	dir := filepath.Dir(got)
	assert.True(t, dir == filepath.Join(home, ".config") || dir == home, "unexpected settings dir %s", dir)
}
