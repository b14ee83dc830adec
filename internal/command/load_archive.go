package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/jask/addressbook/internal/archive"
)

const (
	LoadArchiveWord  = "loadArchive"
	LoadArchiveUsage = LoadArchiveWord + ": Replaces the address book with the contents of an archive file.\n" +
		"Parameters: FILENAME\n" +
		"Example: " + LoadArchiveWord + " addressbook-20241023_114324-example.json"

	MessageLoadArchiveSuccess = "Loaded archive file: %s"
)

type LoadArchive struct {
	Filename archive.Filename
}

func (c LoadArchive) Execute(ctx context.Context, m Model) (Result, error) {
	if m == nil {
		return Result{}, errNilModel
	}
	logger := log.FromContext(ctx)
	snap, err := archive.Read(m.ArchiveDirectoryPath(), c.Filename)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("archive file not found", "file", c.Filename)
		return NewResult(fmt.Sprintf(MessageArchiveNotFound, c.Filename)), nil
	}
	if err != nil {
		return Result{}, err
	}
	if err := m.ReplacePersons(ctx, snap.Persons); err != nil {
		return Result{}, err
	}
	logger.Info("loaded archive file", "file", c.Filename, "persons", len(snap.Persons))
	res := NewResult(fmt.Sprintf(MessageLoadArchiveSuccess, c.Filename))
	res.Reload = true
	return res, nil
}

func (c LoadArchive) Equal(other Command) bool {
	o, ok := other.(LoadArchive)
	return ok && o.Filename == c.Filename
}
