// Package watcher reports changes of source files with debouncing, so an
// editor that saves through a temporary file triggers one re-check.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	bherror "github.com/msto63/bhasha/foundation/core/error"
	bhlog "github.com/msto63/bhasha/foundation/core/log"
)

// DefaultDebounce is used when Config.Debounce is zero
const DefaultDebounce = 150 * time.Millisecond

// Config contains configuration for the watcher
type Config struct {
	// Files to watch. Their directories are watched so that files replaced
	// by rename are picked up again.
	Files []string

	// Debounce is the quiet period before OnChange runs
	Debounce time.Duration

	Logger *bhlog.Logger
}

// Watcher watches source files for changes
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *bhlog.Logger
	files    map[string]bool
	debounce *Debouncer

	mu      sync.Mutex
	running bool
	pending map[string]bool
	stopCh  chan struct{}
	doneCh  chan struct{}
	stop    sync.Once
}

func watchError(err error, message string) *bherror.Error {
	return bherror.Wrap(err, message).
		WithCode(bherror.CodeWatchError).
		WithOperation("watcher.watch")
}

// New creates a watcher for cfg.Files. Every file must exist.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Files) == 0 {
		return nil, bherror.New("no files to watch").
			WithCode(bherror.CodeInvalidInput).
			WithOperation("watcher.new")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = bhlog.GetDefault()
	}

	files := make(map[string]bool, len(cfg.Files))
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, watchError(err, "cannot resolve path").WithDetail("path", f)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, bherror.Wrap(err, "cannot watch file").
				WithCode(bherror.CodeNotFound).
				WithOperation("watcher.new").
				WithDetail("path", f)
		}
		if info.IsDir() {
			return nil, bherror.Newf("%s is a directory", f).
				WithCode(bherror.CodeInvalidInput).
				WithOperation("watcher.new")
		}
		files[abs] = true
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, watchError(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		watcher:  fsw,
		logger:   logger.WithField("component", "bhasha-watcher"),
		files:    files,
		debounce: NewDebouncer(cfg.Debounce),
		pending:  make(map[string]bool),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Files returns the watched files as absolute paths in sorted order
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Watch blocks until ctx is cancelled or Stop is called. After each quiet
// period onChange receives the files changed since the previous call.
func (w *Watcher) Watch(ctx context.Context, onChange func(files []string)) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return bherror.New("watcher already running").
			WithCode(bherror.CodeWatchError).
			WithOperation("watcher.watch")
	}
	w.running = true
	w.mu.Unlock()

	defer close(w.doneCh)

	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return watchError(err, "failed to watch directory").WithDetail("path", dir)
		}
		w.logger.Debug("watching directory", bhlog.Fields{"path": dir})
	}

	w.logger.Info("watcher started", bhlog.Fields{
		"files":       len(w.files),
		"debounce_ms": w.debounce.interval.Milliseconds(),
	})

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopped", bhlog.Fields{"reason": "context"})
			return nil

		case <-w.stopCh:
			w.logger.Info("watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return bherror.New("watcher events channel closed").
					WithCode(bherror.CodeWatchError).
					WithOperation("watcher.watch")
			}
			if !w.relevant(event) {
				continue
			}

			w.logger.Debug("file event", bhlog.Fields{"path": event.Name, "op": event.Op.String()})

			w.mu.Lock()
			w.pending[event.Name] = true
			w.mu.Unlock()

			w.debounce.Trigger(func() {
				if changed := w.drain(); len(changed) > 0 {
					onChange(changed)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return bherror.New("watcher errors channel closed").
					WithCode(bherror.CodeWatchError).
					WithOperation("watcher.watch")
			}
			w.logger.WarnWithErr("watcher error", err)
		}
	}
}

// Stop stops a running watcher and releases its resources
func (w *Watcher) Stop() error {
	var err error
	w.stop.Do(func() {
		w.mu.Lock()
		running := w.running
		w.mu.Unlock()

		if running {
			close(w.stopCh)
			<-w.doneCh
		}
		w.debounce.Stop()

		if cerr := w.watcher.Close(); cerr != nil {
			err = watchError(cerr, "failed to close watcher")
		}
	})
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return w.files[abs]
}

func (w *Watcher) drain() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	changed := make([]string, 0, len(w.pending))
	for name := range w.pending {
		changed = append(changed, name)
	}
	sort.Strings(changed)
	w.pending = make(map[string]bool)
	return changed
}

// Debouncer collects rapid events and runs the latest callback after a
// quiet period.
type Debouncer struct {
	interval time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	callback func()
	stopped  bool
}

// NewDebouncer creates a new debouncer
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Trigger restarts the quiet period with callback as the pending action
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.callback = callback
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	cb := d.callback
	d.callback = nil
	stopped := d.stopped
	d.mu.Unlock()

	if cb != nil && !stopped {
		cb()
	}
}

// Stop cancels any pending callback. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
