package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher surfaces debounced change notifications for the root and every
// expanded directory. fsnotify does not watch recursively, so the session
// resyncs the watch set whenever the expansion set changes.
type Watcher struct {
	debounce time.Duration
	events   chan string
	watcher  *fsnotify.Watcher
	done     chan struct{}

	mu      sync.Mutex
	watched map[string]bool
	closed  bool

	debounceMu sync.Mutex
	debouncer  map[string]*time.Timer
}

// New creates a watcher covering the given directories and starts its
// event loop.
func New(dirs []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		debounce:  debounce,
		events:    make(chan string, 64),
		watcher:   fsw,
		done:      make(chan struct{}),
		watched:   make(map[string]bool),
		debouncer: make(map[string]*time.Timer),
	}

	if err := w.Resync(dirs); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.watch()
	return w, nil
}

// Events delivers debounced paths of filesystem changes.
func (w *Watcher) Events() <-chan string {
	return w.events
}

// Resync replaces the watched directory set. Directories that vanished
// since the last sync are skipped silently; fsnotify drops their watches
// on its own.
func (w *Watcher) Resync(dirs []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("watcher is closed")
	}

	next := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		next[dir] = true
	}

	for dir := range w.watched {
		if !next[dir] {
			w.watcher.Remove(dir)
			delete(w.watched, dir)
		}
	}

	var firstErr error
	for dir := range next {
		if w.watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			continue
		}
		w.watched[dir] = true
	}
	return firstErr
}

// Close stops the event loop and cancels pending debounce timers.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)

	w.debounceMu.Lock()
	for _, timer := range w.debouncer {
		timer.Stop()
	}
	w.debouncer = make(map[string]*time.Timer)
	w.debounceMu.Unlock()

	return w.watcher.Close()
}

func (w *Watcher) watch() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Errors are transient on the platforms we care about;
			// keep watching.

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	const relevant = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if event.Op&relevant == 0 {
		return
	}
	if ignoredName(filepath.Base(event.Name)) {
		return
	}
	w.debounceEvent(event.Name)
}

// debounceEvent coalesces bursts of events for the same path into one
// notification.
func (w *Watcher) debounceEvent(path string) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debouncer[path]; exists {
		timer.Stop()
	}

	w.debouncer[path] = time.AfterFunc(w.debounce, func() {
		w.debounceMu.Lock()
		delete(w.debouncer, path)
		w.debounceMu.Unlock()

		select {
		case w.events <- path:
		case <-w.done:
		}
	})
}

// ignoredName filters editor temp files and system noise that would
// otherwise trigger constant tree rebuilds.
func ignoredName(name string) bool {
	return strings.HasSuffix(name, ".swp") ||
		strings.HasSuffix(name, ".swo") ||
		strings.HasSuffix(name, "~") ||
		strings.HasPrefix(name, ".#") ||
		name == ".DS_Store" ||
		strings.HasSuffix(name, ".tmp") ||
		strings.Contains(name, ".git")
}
