// Package session holds per-user conversation state for the active
// video: transcript, summary, chat history, and language preference.
// Everything is memory-resident and lost on restart.
package session

import (
	"time"

	"github.com/tubebrief/tubebrief/internal/youtube"
)

// ChatMessage is one turn of the Q&A history.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// Session is one user's active video context. Created when a video
// link is processed; replaced wholesale when a new link arrives.
type Session struct {
	UserID             int64
	VideoID            string
	VideoInfo          youtube.VideoInfo
	TranscriptText     string
	TranscriptLanguage string
	Summary            string
	Language           string
	ChatHistory        []ChatMessage
	CreatedAt          time.Time
	LastActivity       time.Time

	// processing marks a long-running operation in flight. Only the
	// store mutates it, under its lock.
	processing bool
}

// Processing reports whether a long-running operation is in flight.
func (s *Session) Processing() bool {
	return s.processing
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	return now.Sub(s.LastActivity) > ttl
}
