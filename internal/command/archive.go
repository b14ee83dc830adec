package command

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jask/addressbook/internal/archive"
)

const (
	ArchiveWord  = "archive"
	ArchiveUsage = ArchiveWord + ": Saves a snapshot of the address book to the archive directory.\n" +
		"Parameters: [LABEL]\n" +
		"Example: " + ArchiveWord + " before-cleanup"

	MessageArchiveSuccess = "Address book archived to: %s"
)

// Archive writes the current persons as a new snapshot file.
type Archive struct {
	Label string
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c Archive) Execute(ctx context.Context, m Model) (Result, error) {
	if m == nil {
		return Result{}, errNilModel
	}
	persons, err := m.Persons(ctx)
	if err != nil {
		return Result{}, err
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	name, err := archive.Write(m.ArchiveDirectoryPath(), c.Label, persons, now())
	if err != nil {
		return Result{}, fmt.Errorf("archive address book: %w", err)
	}
	log.FromContext(ctx).Info("archived address book", "file", name, "persons", len(persons))
	return NewResult(fmt.Sprintf(MessageArchiveSuccess, name)), nil
}

func (c Archive) Equal(other Command) bool {
	o, ok := other.(Archive)
	return ok && o.Label == c.Label
}
