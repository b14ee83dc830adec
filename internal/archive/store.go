package archive

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/jask/addressbook/internal/database/repository"
)

const (
	snapshotVersion = 1
	filePrefix      = "addressbook-"
	timeLayout      = "20060102_150405"
)

var labelPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Snapshot is the on-disk form of an archive.
type Snapshot struct {
	Version   int                 `json:"version"`
	CreatedAt time.Time           `json:"createdAt"`
	Persons   []repository.Person `json:"persons"`
}

// Entry describes one archive file.
type Entry struct {
	Name    Filename
	Size    int64
	ModTime time.Time
}

// Path resolves name inside dir.
func Path(dir string, name Filename) string {
	return filepath.Join(dir, name.String())
}

// ValidLabel checks an optional archive label. The empty label is valid.
func ValidLabel(label string) error {
	if label == "" || labelPattern.MatchString(label) {
		return nil
	}
	return fmt.Errorf("archive label %q: only letters, digits, '_' and '-' are allowed", label)
}

// NameFor builds addressbook-YYYYMMDD_HHMMSS[-label].json.
func NameFor(now time.Time, label string) (Filename, error) {
	label = strings.TrimSpace(label)
	if err := ValidLabel(label); err != nil {
		return "", err
	}
	name := filePrefix + now.Format(timeLayout)
	if label != "" {
		name += "-" + label
	}
	return ParseFilename(name + ".json")
}

// Write stores persons as a new snapshot in dir, creating dir when needed.
// The file appears atomically and an existing archive is never overwritten.
func Write(dir, label string, persons []repository.Person, now time.Time) (Filename, error) {
	name, err := NameFor(now, label)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir archive dir: %w", err)
	}
	target := Path(dir, name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("archive %s already exists", name)
	}

	if persons == nil {
		persons = []repository.Person{}
	}
	data, err := json.MarshalIndent(Snapshot{Version: snapshotVersion, CreatedAt: now.UTC(), Persons: persons}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp archive: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("rename archive: %w", err)
	}
	return name, nil
}

// List returns the archive files in dir, newest first. A missing dir has no
// archives.
func List(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}
	var out []Entry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name, err := ParseFilename(de.Name())
		if err != nil {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, Entry{Name: name, Size: info.Size(), ModTime: info.ModTime()})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := b.ModTime.Compare(a.ModTime); c != 0 {
			return c
		}
		return strings.Compare(b.Name.String(), a.Name.String())
	})
	return out, nil
}

// Read decodes the snapshot name in dir. A missing file yields an error
// wrapping fs.ErrNotExist.
func Read(dir string, name Filename) (Snapshot, error) {
	data, err := os.ReadFile(Path(dir, name))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read archive %s: %w", name, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode archive %s: %w", name, err)
	}
	if snap.Version > snapshotVersion {
		return Snapshot{}, fmt.Errorf("archive %s has unsupported version %d", name, snap.Version)
	}
	return snap, nil
}
