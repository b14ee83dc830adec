package command

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jask/addressbook/internal/archive"
)

const (
	DeleteArchiveWord  = "deleteArchive"
	DeleteArchiveUsage = DeleteArchiveWord + ": Deletes an archive file.\n" +
		"Parameters: FILENAME\n" +
		"Example: " + DeleteArchiveWord + " addressbook-20241023_114324-example.json"

	MessageDeleteArchiveSuccess = "Deleted archive file: %s"
	MessageArchiveNotFound      = "Archive file not found: %s"
	MessageDeleteArchiveFailure = "Failed to delete archive file: %s"
)

// DeleteArchive removes one snapshot file from the archive directory.
// A missing file is reported, not treated as an error, and I/O failures are
// logged and reported without their cause.
type DeleteArchive struct {
	Filename archive.Filename
}

func NewDeleteArchive(name archive.Filename) DeleteArchive {
	return DeleteArchive{Filename: name}
}

func (c DeleteArchive) Execute(ctx context.Context, m Model) (Result, error) {
	if m == nil {
		return Result{}, errNilModel
	}
	logger := log.FromContext(ctx)
	path := archive.Path(m.ArchiveDirectoryPath(), c.Filename)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Info("archive file not found", "file", c.Filename)
		return NewResult(fmt.Sprintf(MessageArchiveNotFound, c.Filename)), nil
	}
	if err := os.Remove(path); err != nil {
		logger.Error("failed to delete archive file", "file", c.Filename, "err", err)
		return NewResult(fmt.Sprintf(MessageDeleteArchiveFailure, c.Filename)), nil
	}

	logger.Info("deleted archive file", "file", c.Filename)
	return NewResult(fmt.Sprintf(MessageDeleteArchiveSuccess, c.Filename)), nil
}

// Equal reports whether other deletes the same file.
func (c DeleteArchive) Equal(other Command) bool {
	o, ok := other.(DeleteArchive)
	return ok && o.Filename == c.Filename
}
