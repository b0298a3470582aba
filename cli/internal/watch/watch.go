// Package watch provides file watching functionality for source trees.
package watch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/satishbabariya/jsbundle/internal/debug"
)

// DefaultDebounce collapses bursts of events, e.g. an editor saving several
// files, into a single callback.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches every directory below a root and invokes a callback when a
// file matching the pattern changes.
type Watcher struct {
	root     string
	pattern  string
	debounce time.Duration
	callback func() error
	onError  func(error)
	ignore   map[string]bool
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler receives callback and watcher errors. The default prints
// them to stderr.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// WithIgnore skips events for the given files, such as outputs written into
// the watched tree.
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil && p != "" {
				w.ignore[abs] = true
			}
		}
	}
}

// NewWatcher creates a watcher for the tree at root. pattern is matched
// against root-relative, slash-separated paths.
func NewWatcher(root, pattern string, callback func() error, opts ...Option) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	w := &Watcher{
		root:     absRoot,
		pattern:  pattern,
		debounce: DefaultDebounce,
		callback: callback,
		onError: func(err error) {
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		},
		ignore:  map[string]bool{},
		watcher: watcher,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(absRoot); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return w, nil
}

// addTree registers dir and every directory below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		debug.Debug("Watching directory", "path", path)
		return w.watcher.Add(path)
	})
}

func (w *Watcher) matches(path string) bool {
	if abs, err := filepath.Abs(path); err == nil && w.ignore[abs] {
		return false
	}
	if name := filepath.Base(path); len(name) > 1 && name[0] == '.' {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	ok, err := doublestar.Match(w.pattern, filepath.ToSlash(rel))
	return err == nil && ok
}

// Start runs the callback once and then watches in the background. Callbacks
// never overlap.
func (w *Watcher) Start() error {
	if err := w.callback(); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	debounceTimer := time.NewTimer(w.debounce)
	debounceTimer.Stop()
	var debounceCh <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.onError(err)
					}
					debounceTimer.Reset(w.debounce)
					debounceCh = debounceTimer.C
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}

			debug.Debug("Source changed", "path", event.Name, "op", event.Op.String())
			debounceTimer.Reset(w.debounce)
			debounceCh = debounceTimer.C

		case <-debounceCh:
			if err := w.callback(); err != nil {
				debug.Error("Rebuild failed", "root", w.root, "error", err)
				w.onError(err)
			}
			debounceCh = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onError(err)

		case <-w.done:
			debounceTimer.Stop()
			return
		}
	}
}

// Stop stops watching
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}
