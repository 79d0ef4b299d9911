package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tubebrief/tubebrief/internal/config"
	"github.com/tubebrief/tubebrief/internal/logger"
)

// debounceDelay absorbs the burst of events a single save produces
// (write, chmod, rename-over) into one reload.
const debounceDelay = 500 * time.Millisecond

type implWatcher struct {
	configPath string
	handler    ReloadHandler
	logger     logger.Logger
	watcher    *fsnotify.Watcher
}

// Start monitors the config file until ctx is canceled. A bad config
// on disk is logged and skipped; the running config stays in effect.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Config watcher started. Monitoring: %s", w.configPath)

	var timer *time.Timer
	var reload <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Config watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isConfigFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			w.logger.Debug(ctx, "Config file event: %s", event.Op)
			if timer == nil {
				timer = time.NewTimer(debounceDelay)
			} else {
				timer.Reset(debounceDelay)
			}
			reload = timer.C

		case <-reload:
			reload = nil
			w.reload(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) reload(ctx context.Context) {
	cfg, err := config.Load(w.configPath)
	if err != nil {
		w.logger.Error(ctx, "Config reload skipped, file is invalid: %v", err)
		return
	}

	if err := w.handler(ctx, cfg); err != nil {
		w.logger.Error(ctx, "Config reload handler failed: %v", err)
		return
	}
	w.logger.Info(ctx, "Config reloaded from %s", w.configPath)
}

func (w *implWatcher) isConfigFile(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return abs == w.configPath
}
