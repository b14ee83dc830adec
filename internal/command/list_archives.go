package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/jask/addressbook/internal/archive"
)

const (
	ListArchivesWord  = "listArchives"
	ListArchivesUsage = ListArchivesWord + ": Lists archive files, newest first.\n" +
		"Example: " + ListArchivesWord

	MessageNoArchives = "No archive files found."
)

type ListArchives struct{}

func (ListArchives) Execute(_ context.Context, m Model) (Result, error) {
	if m == nil {
		return Result{}, errNilModel
	}
	entries, err := archive.List(m.ArchiveDirectoryPath())
	if err != nil {
		return Result{}, err
	}
	if len(entries) == 0 {
		return NewResult(MessageNoArchives), nil
	}
	var b strings.Builder
	b.WriteString("Archive files:")
	for i, e := range entries {
		fmt.Fprintf(&b, "\n%d. %s", i+1, e.Name)
	}
	return NewResult(b.String()), nil
}
