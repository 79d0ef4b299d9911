package watcher

import (
	"context"

	"github.com/tubebrief/tubebrief/internal/config"
)

// Watcher defines the interface for config file monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ReloadHandler receives each successfully reloaded config
type ReloadHandler func(ctx context.Context, cfg *config.Config) error
