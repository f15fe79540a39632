package themestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/fxconv/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the contract every backend must satisfy.
func exerciseStore(t *testing.T, s theme.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "theme:missing")
	assert.ErrorIs(t, err, theme.ErrNotFound)

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	v, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)

	require.NoError(t, s.Set(ctx, "theme", "light"))
	v, err = s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	require.NoError(t, s.Set(ctx, "theme:other", "dark"))
	v, err = s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	p := theme.NewPreference(s, "theme:pref", nil)
	_, err = p.Toggle(ctx)
	require.NoError(t, err)
	got, err := theme.NewPreference(s, "theme:pref", nil).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	s := NewFile(path)
	exerciseStore(t, s)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened := NewFile(path)
	v, err := reopened.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFile(path).Get(context.Background(), "theme")
	require.Error(t, err)
	assert.NotErrorIs(t, err, theme.ErrNotFound)

	p := theme.NewPreference(NewFile(path), "", nil)
	got, err := p.Load(context.Background())
	assert.Error(t, err)
	assert.Equal(t, theme.Light, got)
}

func TestFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	_, err := NewFile(path).Get(context.Background(), "theme")
	assert.ErrorIs(t, err, theme.ErrNotFound)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, closeFn, err := Open(ctx, Options{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, Options{Kind: "FILE", FilePath: filepath.Join(t.TempDir(), "s.json")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)
	assert.NoError(t, closeFn())

	s, closeFn, err = Open(ctx, Options{Kind: KindSQLite, DatabaseURL: filepath.Join(t.TempDir(), "s.db")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &SQL{}, s)
	exerciseStore(t, s)
	assert.NoError(t, closeFn())

	_, _, err = Open(ctx, Options{Kind: KindPostgres}, nil)
	assert.Error(t, err)

	_, _, err = Open(ctx, Options{Kind: KindRedis, RedisURL: "not-a-url"}, nil)
	assert.Error(t, err)

	_, _, err = Open(ctx, Options{Kind: "etcd"}, nil)
	assert.Error(t, err)
}
