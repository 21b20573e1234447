package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes under the library roots so the UI can rescan.
// Events are coalesced to a simple "something changed" signal; the scanner
// re-derives the authoritative state.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions map[string]bool
	changes    chan string
	done       chan struct{}
}

// NewWatcher creates a watcher over the given roots. Every subdirectory is
// registered, since fsnotify does not watch recursively.
func NewWatcher(roots []string, extensions []string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem watcher: %w", err)
	}

	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = true
	}

	w := &Watcher{
		watcher:    fsw,
		extensions: set,
		changes:    make(chan string, 16),
		done:       make(chan struct{}),
	}

	for _, root := range roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				_ = fsw.Add(path)
			}
			return nil
		})
	}

	go w.run()

	return w, nil
}

// Changes returns the channel of changed paths
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// New directories need to be registered for future events
			if event.Op.Has(fsnotify.Create) {
				if filepath.Ext(event.Name) == "" {
					_ = w.watcher.Add(event.Name)
				}
			}
			select {
			case w.changes <- event.Name:
			default:
				// A pending change already signals a rescan
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	// Directory events (no extension) matter too: they may introduce files
	return ext == "" || w.extensions[ext]
}
