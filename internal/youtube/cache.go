package youtube

import (
	"sync"
	"time"
)

type cacheEntry struct {
	transcript *Transcript
	cachedAt   time.Time
}

// transcriptCache is a TTL-bounded map keyed by video id. Entries
// past the TTL are treated as absent and dropped on lookup.
type transcriptCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newTranscriptCache(ttl time.Duration) *transcriptCache {
	return &transcriptCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *transcriptCache) get(videoID string) (*Transcript, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[videoID]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.cachedAt) >= c.ttl {
		delete(c.entries, videoID)
		return nil, false
	}
	return entry.transcript, true
}

func (c *transcriptCache) set(videoID string, t *Transcript) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[videoID] = cacheEntry{transcript: t, cachedAt: c.now()}
}
