package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/msto63/wflog/pkg/core/logging"
)

// Watcher reloads the logging level when the config file changes.
type Watcher struct {
	path     string
	log      *logging.Logger
	debounce time.Duration

	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	running bool
}

// NewWatcher creates a watcher applying changes of path to log
func NewWatcher(path string, log *logging.Logger, debounce time.Duration) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		log:      log,
		debounce: debounce,
	}
}

// Start starts watching. The watcher stops when ctx is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are seen too
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.watchLoop(ctx, watcher, w.stopCh, w.doneCh)
	return nil
}

// Stop stops watching and waits for the watch loop to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
}

// Reload reads the file and applies its level. An invalid level keeps the
// current threshold and is reported as a warning.
func (w *Watcher) Reload() error {
	cfg, err := loadFile(w.path)
	if err == nil {
		err = cfg.Apply(w.log)
	}
	if err != nil {
		w.log.Warn("config", fmt.Sprintf("reload of %s rejected: %v (keeping %s)", w.path, err, w.log.GetLevel()))
		return err
	}

	w.log.Info("config", "logging level set to "+w.log.GetLevel().String())
	return nil
}

func (w *Watcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer watcher.Close()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			w.running = false
			w.mu.Unlock()
			return

		case <-stopCh:
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			_ = w.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("config", "watcher error: "+err.Error())
		}
	}
}
