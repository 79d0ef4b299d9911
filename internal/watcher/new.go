package watcher

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/tubebrief/tubebrief/internal/logger"
)

// New creates a Watcher over the given config file. The watch is
// registered on the parent directory because editors and config
// managers typically replace the file rather than write it in place.
func New(configPath string, handler ReloadHandler, log logger.Logger) (Watcher, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		configPath: absPath,
		handler:    handler,
		logger:     log,
		watcher:    fsWatcher,
	}, nil
}
