package session

import "github.com/tubebrief/tubebrief/internal/youtube"

// Store manages per-user sessions with TTL expiry. Get returns a
// snapshot copy; all mutation goes through store methods so the
// internal map stays consistent across goroutines.
type Store interface {
	// Get returns a snapshot of the user's session, or nil if absent
	// or expired. Expired sessions are evicted; live ones have their
	// activity timestamp refreshed.
	Get(userID int64) *Session

	// Create replaces any existing session for the user.
	Create(userID int64, videoID string, info youtube.VideoInfo, transcriptText, transcriptLanguage string) *Session

	// SetLanguage sets the response language. Returns false when the
	// user has no live session.
	SetLanguage(userID int64, lang string) bool

	// SetSummary stores the generated summary. No-op without a session.
	SetSummary(userID int64, summary string)

	// AddChatTurn appends a question/answer pair and trims history to
	// the configured bound, oldest first.
	AddChatTurn(userID int64, question, answer string)

	// BeginProcessing atomically sets the busy flag. Returns false if
	// an operation is already in flight or the session is gone; the
	// caller must reject with a busy signal instead of queueing.
	BeginProcessing(userID int64) bool

	// EndProcessing clears the busy flag. Callers must reach this on
	// every exit path; the store never unlocks on its own.
	EndProcessing(userID int64)

	// SweepExpired removes every expired session and returns the count.
	SweepExpired() int

	// Clear drops all sessions. Called at shutdown.
	Clear()
}
