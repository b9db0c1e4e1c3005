// Package watch re-runs a callback whenever a watched file changes.
// It backs the CLI's batch --watch mode.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atpage/chembal/pkg/log"
)

// DefaultDebounce is the delay after a file event before the callback
// runs, so editors that write in several steps trigger it once.
const DefaultDebounce = 100 * time.Millisecond

// Watcher invokes a callback when one file is written or recreated.
type Watcher struct {
	path     string
	debounce time.Duration
	log      log.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Watcher for the given file path. A non-positive debounce
// falls back to DefaultDebounce; a nil logger falls back to the no-op
// logger.
func New(path string, debounce time.Duration, logger log.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Watcher{path: path, debounce: debounce, log: logger}
}

// Run invokes fn once immediately, then again (debounced) every time the
// watched file is written or recreated. It blocks until ctx is done.
// The parent directory is watched rather than the file itself so that
// editors replacing the file atomically keep triggering events.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(w.path)
	w.log.Debug("watching file", log.String("path", w.path), log.Duration("debounce", w.debounce))

	fn()

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(fn)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, fn)
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
