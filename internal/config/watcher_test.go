package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 4\n"), 0o644))

	changes := make(chan *Settings, 4)
	w, err := NewWatcher(path, func(s *Settings) { changes <- s }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	assert.Equal(t, path, w.Path())

	require.NoError(t, os.WriteFile(path, []byte("[editor]\ntab_width = 8\n"), 0o644))

	select {
	case s := <-changes:
		assert.Equal(t, 8, s.Editor.TabWidth)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")

	changes := make(chan *Settings, 4)
	w, err := NewWatcher(path, func(s *Settings) { changes <- s }, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))

	select {
	case <-changes:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	errs := make(chan error, 4)
	w, err := NewWatcher(path, func(*Settings) {},
		WithDebounce(10*time.Millisecond),
		WithErrorHandler(func(err error) { errs <- err }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(path, []byte("editor:\n  unknown_key: 1\n"), 0o644))

	select {
	case err := <-errs:
		var pe *ParseError
		assert.ErrorAs(t, err, &pe)
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported")
	}
}

func TestWatcherRejectsUnknownFormat(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "settings.ini"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "settings.toml"), nil)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Close(), ErrWatcherClosed)
}
