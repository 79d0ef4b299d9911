package session

import (
	"io"
	"testing"
	"time"

	"github.com/tubebrief/tubebrief/internal/logger"
	"github.com/tubebrief/tubebrief/internal/youtube"
)

func newTestStore(t *testing.T, ttl time.Duration, maxHistory int) (*implStore, *time.Time) {
	t.Helper()
	st := New(ttl, maxHistory, "english", logger.NewWithWriter("error", io.Discard)).(*implStore)
	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }
	return st, &now
}

func testInfo() youtube.VideoInfo {
	return youtube.VideoInfo{VideoID: "dQw4w9WgXcQ", Title: "Test Video", Author: "Test Channel"}
}

func TestCreateAndGet(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "[00:00] hello", "en")

	s := st.Get(42)
	if s == nil {
		t.Fatal("Get() returned nil after Create")
	}
	if s.VideoID != "dQw4w9WgXcQ" || s.TranscriptText != "[00:00] hello" {
		t.Errorf("unexpected session contents: %+v", s)
	}
	if s.Language != "english" {
		t.Errorf("Language = %q, want default english", s.Language)
	}
}

func TestGetMissing(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)
	if st.Get(99) != nil {
		t.Error("Get() should return nil for unknown user")
	}
}

func TestCreateReplaces(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)

	st.Create(42, "aaaaaaaaaaa", testInfo(), "first", "en")
	st.SetSummary(42, "old summary")
	st.Create(42, "bbbbbbbbbbb", testInfo(), "second", "hi")

	s := st.Get(42)
	if s.VideoID != "bbbbbbbbbbb" || s.Summary != "" {
		t.Errorf("Create() did not replace session wholesale: %+v", s)
	}
}

func TestExpiry(t *testing.T) {
	st, now := newTestStore(t, time.Hour, 10)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")

	*now = now.Add(time.Hour + time.Second)
	if st.Get(42) != nil {
		t.Error("Get() returned an expired session")
	}

	// Evicted, not just hidden.
	st.mu.Lock()
	_, present := st.sessions[42]
	st.mu.Unlock()
	if present {
		t.Error("expired session still in the map after Get")
	}
}

func TestGetRefreshesActivity(t *testing.T) {
	st, now := newTestStore(t, time.Hour, 10)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")

	*now = now.Add(50 * time.Minute)
	if st.Get(42) == nil {
		t.Fatal("session should still be live")
	}

	// Another 50 minutes is within the TTL again because Get touched it.
	*now = now.Add(50 * time.Minute)
	if st.Get(42) == nil {
		t.Error("Get() did not refresh last activity")
	}
}

func TestSweepExpired(t *testing.T) {
	st, now := newTestStore(t, time.Hour, 10)

	st.Create(1, "aaaaaaaaaaa", testInfo(), "text", "en")
	st.Create(2, "bbbbbbbbbbb", testInfo(), "text", "en")
	*now = now.Add(2 * time.Hour)
	st.Create(3, "ccccccccccc", testInfo(), "text", "en")

	if n := st.SweepExpired(); n != 2 {
		t.Errorf("SweepExpired() = %d, want 2", n)
	}
	if st.Get(3) == nil {
		t.Error("live session swept")
	}
}

func TestAddChatTurnTrims(t *testing.T) {
	const maxHistory = 3
	st, _ := newTestStore(t, time.Hour, maxHistory)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	for i := 0; i < 5; i++ {
		st.AddChatTurn(42, "question", "answer")
	}

	s := st.Get(42)
	if len(s.ChatHistory) != maxHistory*2 {
		t.Fatalf("history length = %d, want %d", len(s.ChatHistory), maxHistory*2)
	}
	if s.ChatHistory[0].Role != "user" || s.ChatHistory[1].Role != "assistant" {
		t.Error("history does not alternate user/assistant")
	}
}

func TestAddChatTurnDropsOldestFirst(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 2)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	st.AddChatTurn(42, "q1", "a1")
	st.AddChatTurn(42, "q2", "a2")
	st.AddChatTurn(42, "q3", "a3")

	s := st.Get(42)
	if s.ChatHistory[0].Content != "q2" {
		t.Errorf("oldest turn not dropped first, history starts with %q", s.ChatHistory[0].Content)
	}
	if s.ChatHistory[len(s.ChatHistory)-1].Content != "a3" {
		t.Error("newest turn missing from history")
	}
}

func TestSetLanguage(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)

	if st.SetLanguage(42, "hindi") {
		t.Error("SetLanguage() should return false without a session")
	}

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	if !st.SetLanguage(42, "hindi") {
		t.Fatal("SetLanguage() returned false with a live session")
	}
	if s := st.Get(42); s.Language != "hindi" {
		t.Errorf("Language = %q, want hindi", s.Language)
	}
}

func TestBeginProcessing(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)

	if st.BeginProcessing(42) {
		t.Error("BeginProcessing() should fail without a session")
	}

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	if !st.BeginProcessing(42) {
		t.Fatal("BeginProcessing() failed on an idle session")
	}
	if st.BeginProcessing(42) {
		t.Error("BeginProcessing() succeeded while already busy")
	}

	// Busy rejection must not mutate session state.
	before := st.Get(42)
	st.BeginProcessing(42)
	after := st.Get(42)
	if before.Summary != after.Summary || before.Language != after.Language || len(before.ChatHistory) != len(after.ChatHistory) {
		t.Error("rejected BeginProcessing mutated session state")
	}

	st.EndProcessing(42)
	if !st.BeginProcessing(42) {
		t.Error("BeginProcessing() failed after EndProcessing")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)

	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	s := st.Get(42)
	s.Summary = "mutated locally"

	if got := st.Get(42); got.Summary != "" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestClear(t *testing.T) {
	st, _ := newTestStore(t, time.Hour, 10)
	st.Create(42, "dQw4w9WgXcQ", testInfo(), "text", "en")
	st.Clear()
	if st.Get(42) != nil {
		t.Error("Clear() left sessions behind")
	}
}
