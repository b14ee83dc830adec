// Package archive stores address book snapshots as JSON files in a single
// archive directory.
package archive

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidFilename is returned for names that could escape the archive
// directory or that are not snapshot files.
var ErrInvalidFilename = errors.New("filenames must end with .json and contain only letters, digits, '_', '-' and '.'")

var filenamePattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9_.-]*\.json$`)

// Filename is a validated archive file name, never a path.
type Filename string

func ParseFilename(raw string) (Filename, error) {
	name := strings.TrimSpace(raw)
	if !filenamePattern.MatchString(name) || strings.Contains(name, "..") {
		return "", ErrInvalidFilename
	}
	return Filename(name), nil
}

func (f Filename) String() string { return string(f) }
