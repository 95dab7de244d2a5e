// # internal/watcher/watcher.go
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
	"golang.org/x/time/rate"

	"brackets/internal/observability"
)

// Watcher watches a single target file for changes. It watches the parent
// directory rather than the file itself: most editors replace files
// atomically (write temp, rename over), which drops an inode-level watch.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	match     glob.Glob
	debounce  time.Duration
	limiter   *rate.Limiter
	onChange  func()

	pendingMu sync.Mutex
	timer     *time.Timer
}

func NewWatcher(target string, debounce time.Duration, rescansPerSec float64, burst int, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	g, err := glob.Compile(filepath.Base(target))
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       filepath.Dir(target),
		match:     g,
		debounce:  debounce,
		limiter:   rate.NewLimiter(rate.Limit(rescansPerSec), burst),
		onChange:  onChange,
	}, nil
}

func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}

	go w.run()
	return nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			observability.WatcherEventsTotal.Inc()

			if !w.match.Match(filepath.Base(event.Name)) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.scheduleChange()
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			slog.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) scheduleChange() {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.fire()
	})
}

func (w *Watcher) fire() {
	// Editor save storms collapse into the debounce window; the limiter
	// caps sustained rescan churn on top of that.
	if err := w.limiter.Wait(context.Background()); err != nil {
		slog.Warn("rescan limiter interrupted", "error", err)
		return
	}
	w.onChange()
}

func (w *Watcher) Close() error {
	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()
	return w.fsWatcher.Close()
}
