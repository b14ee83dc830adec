package model

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/addressbook/internal/database"
	"github.com/jask/addressbook/internal/database/repository"
)

func TestModelRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "ab.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := New(repository.NewPersonRepo(db), filepath.Join(tmp, "archives"))
	require.Equal(t, filepath.Join(tmp, "archives"), m.ArchiveDirectoryPath())

	persons, err := m.Persons(ctx)
	require.NoError(t, err)
	require.Empty(t, persons)

	require.NoError(t, m.ReplacePersons(ctx, database.SamplePersons()))
	persons, err = m.Persons(ctx)
	require.NoError(t, err)
	require.Equal(t, database.SamplePersons()[0].ID, persons[0].ID)
}
