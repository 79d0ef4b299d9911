package session

import (
	"sync"
	"time"

	"github.com/tubebrief/tubebrief/internal/logger"
)

type implStore struct {
	mu             sync.Mutex
	sessions       map[int64]*Session
	ttl            time.Duration
	maxChatHistory int
	defaultLang    string
	logger         logger.Logger
	now            func() time.Time
}

// New creates a Store with the given session TTL and chat history
// bound (in turns; each turn is two messages). New sessions start
// with defaultLang as their response language.
func New(ttl time.Duration, maxChatHistory int, defaultLang string, log logger.Logger) Store {
	return &implStore{
		sessions:       make(map[int64]*Session),
		ttl:            ttl,
		maxChatHistory: maxChatHistory,
		defaultLang:    defaultLang,
		logger:         log,
		now:            time.Now,
	}
}
