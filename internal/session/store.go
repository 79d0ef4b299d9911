package session

import (
	"context"

	"github.com/tubebrief/tubebrief/internal/youtube"
)

func (st *implStore) Get(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.lookup(userID)
	if s == nil {
		return nil
	}
	s.LastActivity = st.now()
	return snapshot(s)
}

// lookup returns the live session, evicting it when expired. Callers
// hold the lock.
func (st *implStore) lookup(userID int64) *Session {
	s, ok := st.sessions[userID]
	if !ok {
		return nil
	}
	if s.expired(st.ttl, st.now()) {
		st.logger.Info(context.Background(), "Session expired for user %d", userID)
		delete(st.sessions, userID)
		return nil
	}
	return s
}

func (st *implStore) Create(userID int64, videoID string, info youtube.VideoInfo, transcriptText, transcriptLanguage string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	s := &Session{
		UserID:             userID,
		VideoID:            videoID,
		VideoInfo:          info,
		TranscriptText:     transcriptText,
		TranscriptLanguage: transcriptLanguage,
		Language:           st.defaultLang,
		CreatedAt:          now,
		LastActivity:       now,
	}
	st.sessions[userID] = s
	st.logger.Info(context.Background(), "Created session for user %d, video %s", userID, videoID)
	return snapshot(s)
}

func (st *implStore) SetLanguage(userID int64, lang string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.lookup(userID)
	if s == nil {
		return false
	}
	s.Language = lang
	s.LastActivity = st.now()
	return true
}

func (st *implStore) SetSummary(userID int64, summary string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s := st.lookup(userID); s != nil {
		s.Summary = summary
		s.LastActivity = st.now()
	}
}

func (st *implStore) AddChatTurn(userID int64, question, answer string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.lookup(userID)
	if s == nil {
		return
	}
	s.ChatHistory = append(s.ChatHistory,
		ChatMessage{Role: "user", Content: question},
		ChatMessage{Role: "assistant", Content: answer},
	)
	// Keep only the last N turns (N*2 messages).
	maxMessages := st.maxChatHistory * 2
	if len(s.ChatHistory) > maxMessages {
		s.ChatHistory = append([]ChatMessage(nil), s.ChatHistory[len(s.ChatHistory)-maxMessages:]...)
	}
	s.LastActivity = st.now()
}

func (st *implStore) BeginProcessing(userID int64) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.lookup(userID)
	if s == nil || s.processing {
		return false
	}
	s.processing = true
	return true
}

func (st *implStore) EndProcessing(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[userID]; ok {
		s.processing = false
	}
}

func (st *implStore) SweepExpired() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	var expired []int64
	for uid, s := range st.sessions {
		if s.expired(st.ttl, now) {
			expired = append(expired, uid)
		}
	}
	for _, uid := range expired {
		delete(st.sessions, uid)
	}
	if len(expired) > 0 {
		st.logger.Info(context.Background(), "Cleaned up %d expired sessions", len(expired))
	}
	return len(expired)
}

func (st *implStore) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions = make(map[int64]*Session)
}

// snapshot copies a session so callers can read it without holding
// the store lock.
func snapshot(s *Session) *Session {
	cp := *s
	cp.ChatHistory = append([]ChatMessage(nil), s.ChatHistory...)
	return &cp
}
