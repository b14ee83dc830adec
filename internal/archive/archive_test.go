package archive

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jask/addressbook/internal/database/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseFilename(t *testing.T) {
	t.Parallel()

	valid := []string{
		"addressbook-20241023_114324-example.json",
		"a.json",
		" ghost.json ",
		"_x.v2.json",
	}
	for _, raw := range valid {
		_, err := ParseFilename(raw)
		require.NoError(t, err, raw)
	}

	invalid := []string{
		"",
		".json",
		".hidden.json",
		"notes.txt",
		"../escape.json",
		"dir/file.json",
		`dir\file.json`,
		"a..json",
		"spaced name.json",
	}
	for _, raw := range invalid {
		_, err := ParseFilename(raw)
		require.ErrorIs(t, err, ErrInvalidFilename, raw)
	}
}

func TestNameFor(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 10, 23, 11, 43, 24, 0, time.UTC)
	name, err := NameFor(now, "example")
	require.NoError(t, err)
	require.Equal(t, Filename("addressbook-20241023_114324-example.json"), name)

	name, err = NameFor(now, "")
	require.NoError(t, err)
	require.Equal(t, Filename("addressbook-20241023_114324.json"), name)

	_, err = NameFor(now, "bad label")
	require.Error(t, err)
}

func TestValidLabel(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"", "nightly", "before-cleanup", "v_2"} {
		require.NoError(t, ValidLabel(ok), ok)
	}
	for _, bad := range []string{"a/b", "a b", "../x", "x.json", "ü"} {
		require.Error(t, ValidLabel(bad), bad)
	}
}

func TestWriteReadList(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "archives")
	persons := []repository.Person{{ID: "p1", Name: "Alex", EmergencyContacts: []repository.EmergencyContact{{ID: "e1", Name: "Bea"}}}}

	first, err := Write(dir, "one", persons, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := Write(dir, "", nil, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = Write(dir, "one", persons, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err, "existing archives are never overwritten")

	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(Path(dir, first), old, old))

	entries, err := List(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, second, entries[0].Name)
	require.Equal(t, first, entries[1].Name)

	snap, err := Read(dir, first)
	require.NoError(t, err)
	require.Equal(t, 1, snap.Version)
	require.Len(t, snap.Persons, 1)
	require.Equal(t, "Bea", snap.Persons[0].EmergencyContacts[0].Name)

	empty, err := Read(dir, second)
	require.NoError(t, err)
	require.Empty(t, empty.Persons)

	_, err = Read(dir, "ghost.json")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestListMissingDir(t *testing.T) {
	t.Parallel()

	entries, err := List(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWatcherSignalsChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644))
	select {
	case _, ok := <-w.Changes():
		require.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("no change signal for new archive file")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	for range w.Changes() {
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	_, ok := <-w.Changes()
	require.False(t, ok)
}
