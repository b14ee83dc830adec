package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to the archive directory. Bursts of filesystem
// events collapse into a single pending signal on Changes.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	changes chan struct{}
	done    chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewWatcher creates dir if needed and starts watching it.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir archive dir: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		dir:     dir,
		watcher: fw,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}, nil
}

// Changes receives a value after archive files are created, removed or
// renamed. It is closed once the watcher stops.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Start runs the event loop until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	w.startOnce.Do(func() { go w.run(ctx) })
}

// Stop closes the underlying watcher and waits for the loop to exit.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		err = w.watcher.Close()
		w.startOnce.Do(func() {
			close(w.changes)
			close(w.done)
		})
		<-w.done
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.changes)
	logger := log.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			logger.Debug("archive dir changed", "op", ev.Op.String(), "file", filepath.Base(ev.Name))
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Error("archive watcher", "dir", w.dir, "err", err)
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if _, err := ParseFilename(filepath.Base(ev.Name)); err != nil {
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Write)
}
