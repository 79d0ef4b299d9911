package youtube

import (
	"time"

	"github.com/tubebrief/tubebrief/internal/logger"
)

type implFetcher struct {
	provider Provider
	cache    *transcriptCache
	maxChars int
	logger   logger.Logger
}

// NewFetcher creates a cached Fetcher over the given provider.
// maxChars bounds the rendered transcript; longer texts are
// hard-truncated with an explicit marker.
func NewFetcher(provider Provider, cacheTTL time.Duration, maxChars int, log logger.Logger) Fetcher {
	return &implFetcher{
		provider: provider,
		cache:    newTranscriptCache(cacheTTL),
		maxChars: maxChars,
		logger:   log,
	}
}
