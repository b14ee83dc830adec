// Package model is the address book as seen by commands: the stored persons
// plus where archive snapshots live.
package model

import (
	"context"
	"fmt"

	"github.com/jask/addressbook/internal/database/repository"
)

type Model struct {
	persons    *repository.PersonRepo
	archiveDir string
}

func New(persons *repository.PersonRepo, archiveDir string) *Model {
	return &Model{persons: persons, archiveDir: archiveDir}
}

func (m *Model) ArchiveDirectoryPath() string { return m.archiveDir }

func (m *Model) Persons(ctx context.Context) ([]repository.Person, error) {
	persons, err := m.persons.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return persons, nil
}

// ReplacePersons swaps the whole address book, as loading an archive does.
func (m *Model) ReplacePersons(ctx context.Context, persons []repository.Person) error {
	if err := m.persons.ReplaceAll(ctx, persons); err != nil {
		return fmt.Errorf("replace persons: %w", err)
	}
	return nil
}
