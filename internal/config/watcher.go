package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/hyperion/internal/log"
)

// DefaultDebounce collapses the burst of events an editor produces when it
// saves a file.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads a settings file when it changes on disk. It watches the
// containing directory so files replaced by rename are picked up too.
type Watcher struct {
	path     string
	loader   *Loader
	onChange func(*Settings)
	onError  func(error)
	debounce time.Duration

	fsw *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before a reload.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler receives read, parse and watch errors.
func WithErrorHandler(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// WithLoader sets the loader used to read the file.
func WithLoader(l *Loader) WatcherOption {
	return func(w *Watcher) {
		w.loader = l
	}
}

// NewWatcher starts watching path. onChange is called from the watcher's
// goroutine with the freshly loaded settings.
func NewWatcher(path string, onChange func(*Settings), opts ...WatcherOption) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := FormatFromPath(abs); err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     abs,
		loader:   NewLoader(),
		onChange: onChange,
		debounce: DefaultDebounce,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.processLoop()

	log.Debug(log.CatConfig, "watching settings", "path", abs)
	return w, nil
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Close stops watching. Pending reloads are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.schedule()
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	s, err := w.loader.Load(w.path)
	if err != nil {
		w.report(err)
		return
	}
	log.Info(log.CatConfig, "settings reloaded", "path", w.path)
	if w.onChange != nil {
		w.onChange(s)
	}
}

func (w *Watcher) report(err error) {
	log.ErrorErr(log.CatConfig, "settings reload failed", err, "path", w.path)
	if w.onError != nil {
		w.onError(err)
	}
}
