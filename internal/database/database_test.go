package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/addressbook/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.PersonRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath))
	// second run is a no-op
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, SeedDefaults(context.Background(), db))
	return repository.NewPersonRepo(db)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	repo := openTestDB(t)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(SamplePersons()), n)

	persons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alex Yeoh", persons[0].Name)
	require.Len(t, persons[1].EmergencyContacts, 2)
	require.Equal(t, "Charlotte Oliveiro", persons[1].EmergencyContacts[0].Name)
	require.Equal(t, persons[1].ID, persons[1].EmergencyContacts[0].PersonID)
	require.Equal(t, 0, persons[1].EmergencyContacts[0].Position)
	require.Equal(t, 1, persons[1].EmergencyContacts[1].Position)
	require.Equal(t, "Tom Yu", persons[1].EmergencyContacts[1].Name)
}

func TestReplaceAll(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	repo := openTestDB(t)

	replacement := []repository.Person{
		{Name: "Zed", EmergencyContacts: []repository.EmergencyContact{{Name: "Ann", Relationship: "Aunt"}}},
		{Name: "Amy"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, replacement))
	require.Empty(t, replacement[0].ID, "caller's slice must not be mutated")

	persons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, persons, 2)
	require.Equal(t, "Zed", persons[0].Name, "display order follows insertion, not name")
	require.NotEmpty(t, persons[0].ID)
	require.Len(t, persons[0].EmergencyContacts, 1)
	require.Equal(t, "Aunt", persons[0].EmergencyContacts[0].Relationship)
}
