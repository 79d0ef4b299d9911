package youtube

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/tubebrief/tubebrief/internal/logger"
)

type fakeProvider struct {
	refs        []TranscriptRef
	listErr     error
	segments    []Segment
	segmentsErr error
	info        VideoInfo
	infoErr     error

	listCalls  int
	fetchCalls int
	lastRef    TranscriptRef
}

func (f *fakeProvider) ListTranscripts(ctx context.Context, videoID string) ([]TranscriptRef, error) {
	f.listCalls++
	return f.refs, f.listErr
}

func (f *fakeProvider) FetchSegments(ctx context.Context, ref TranscriptRef) ([]Segment, error) {
	f.fetchCalls++
	f.lastRef = ref
	return f.segments, f.segmentsErr
}

func (f *fakeProvider) FetchVideoInfo(ctx context.Context, videoID string) (VideoInfo, error) {
	return f.info, f.infoErr
}

func testLogger() logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func TestGetTranscriptRendersSegments(t *testing.T) {
	p := &fakeProvider{
		refs: []TranscriptRef{{VideoID: "v", LanguageCode: "en"}},
		segments: []Segment{
			{Text: "hello there", Start: 0},
			{Text: "  ", Start: 30},
			{Text: "second line", Start: 125},
			{Text: "past the hour", Start: 3661},
		},
	}
	f := NewFetcher(p, time.Hour, 80000, testLogger())

	got, err := f.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}

	want := "[00:00] hello there\n[02:05] second line\n[01:01:01] past the hour"
	if got.Text != want {
		t.Errorf("Text = %q, want %q", got.Text, want)
	}
	if got.Language != "en" {
		t.Errorf("Language = %q, want en", got.Language)
	}
}

func TestGetTranscriptTruncates(t *testing.T) {
	p := &fakeProvider{
		refs:     []TranscriptRef{{LanguageCode: "en"}},
		segments: []Segment{{Text: strings.Repeat("a", 500), Start: 0}},
	}
	f := NewFetcher(p, time.Hour, 100, testLogger())

	got, err := f.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}

	if !strings.HasSuffix(got.Text, truncationMarker) {
		t.Error("truncated transcript missing marker")
	}
	if len(got.Text) != 100+len(truncationMarker) {
		t.Errorf("truncated length = %d, want %d", len(got.Text), 100+len(truncationMarker))
	}
}

func TestGetTranscriptTruncatesOnRuneBoundary(t *testing.T) {
	p := &fakeProvider{
		refs:     []TranscriptRef{{LanguageCode: "hi"}},
		segments: []Segment{{Text: strings.Repeat("नमस्ते ", 20), Start: 0}},
	}
	// maxChars lands two bytes into the first Devanagari rune after
	// the "[00:00] " prefix.
	f := NewFetcher(p, time.Hour, 10, testLogger())

	got, err := f.GetTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("GetTranscript() error = %v", err)
	}

	if !utf8.ValidString(got.Text) {
		t.Errorf("truncated transcript is not valid UTF-8: %q", got.Text)
	}
	if !strings.HasSuffix(got.Text, truncationMarker) {
		t.Error("truncated transcript missing marker")
	}
	if body := strings.TrimSuffix(got.Text, truncationMarker); len(body) > 10 {
		t.Errorf("truncated body is %d bytes, want at most 10", len(body))
	}
}

func TestGetTranscriptCaches(t *testing.T) {
	p := &fakeProvider{
		refs:     []TranscriptRef{{LanguageCode: "en"}},
		segments: []Segment{{Text: "cached", Start: 0}},
	}
	f := NewFetcher(p, time.Hour, 80000, testLogger())

	ctx := context.Background()
	if _, err := f.GetTranscript(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.GetTranscript(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatal(err)
	}

	if p.listCalls != 1 {
		t.Errorf("provider hit %d times, want 1 (second call should be cached)", p.listCalls)
	}
}

func TestGetTranscriptCacheExpiry(t *testing.T) {
	p := &fakeProvider{
		refs:     []TranscriptRef{{LanguageCode: "en"}},
		segments: []Segment{{Text: "stale", Start: 0}},
	}
	f := NewFetcher(p, time.Hour, 80000, testLogger()).(*implFetcher)

	now := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	f.cache.now = func() time.Time { return now }

	ctx := context.Background()
	if _, err := f.GetTranscript(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := f.GetTranscript(ctx, "dQw4w9WgXcQ"); err != nil {
		t.Fatal(err)
	}

	if p.listCalls != 2 {
		t.Errorf("provider hit %d times, want 2 (stale entry must be refetched)", p.listCalls)
	}
}

func TestSelectTranscriptPriority(t *testing.T) {
	manualEN := TranscriptRef{LanguageCode: "en", IsGenerated: false}
	autoEN := TranscriptRef{LanguageCode: "en", IsGenerated: true}
	manualHI := TranscriptRef{LanguageCode: "hi", IsGenerated: false}
	autoDE := TranscriptRef{LanguageCode: "de", IsGenerated: true}

	tests := []struct {
		name string
		refs []TranscriptRef
		want TranscriptRef
		ok   bool
	}{
		{"manual english wins", []TranscriptRef{autoDE, autoEN, manualEN}, manualEN, true},
		{"auto english over others", []TranscriptRef{manualHI, autoEN}, autoEN, true},
		{"first enumerated fallback", []TranscriptRef{autoDE, manualHI}, autoDE, true},
		{"regional english", []TranscriptRef{{LanguageCode: "en-GB", IsGenerated: false}}, TranscriptRef{LanguageCode: "en-GB"}, true},
		{"empty list", nil, TranscriptRef{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectTranscript(tt.refs)
			if ok != tt.ok || got != tt.want {
				t.Errorf("selectTranscript() = (%+v, %v), want (%+v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGetTranscriptErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		wantKind ErrorKind
	}{
		{"captions disabled", &fakeProvider{listErr: ErrCaptionsDisabled}, KindDisabled},
		{"video unavailable", &fakeProvider{listErr: ErrVideoUnavailable}, KindUnavailable},
		{"listing failure", &fakeProvider{listErr: errors.New("boom")}, KindGeneric},
		{"no tracks", &fakeProvider{}, KindNotFound},
		{
			"fetch failure",
			&fakeProvider{refs: []TranscriptRef{{LanguageCode: "en"}}, segmentsErr: errors.New("boom")},
			KindGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFetcher(tt.provider, time.Hour, 80000, testLogger())
			_, err := f.GetTranscript(context.Background(), "dQw4w9WgXcQ")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := ErrKind(err); got != tt.wantKind {
				t.Errorf("ErrKind() = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestGetVideoInfoDefaults(t *testing.T) {
	p := &fakeProvider{infoErr: errors.New("metadata down")}
	f := NewFetcher(p, time.Hour, 80000, testLogger())

	info := f.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	if info.Title != "Unknown Title" || info.Author != "Unknown Channel" || info.DurationSeconds != 0 {
		t.Errorf("placeholder metadata not applied: %+v", info)
	}
	if info.URL != WatchURL("dQw4w9WgXcQ") {
		t.Errorf("URL = %q", info.URL)
	}
}

func TestGetVideoInfoSuccess(t *testing.T) {
	p := &fakeProvider{info: VideoInfo{Title: "Real Title", Author: "Real Channel", DurationSeconds: 300}}
	f := NewFetcher(p, time.Hour, 80000, testLogger())

	info := f.GetVideoInfo(context.Background(), "dQw4w9WgXcQ")
	if info.Title != "Real Title" || info.Author != "Real Channel" || info.DurationSeconds != 300 {
		t.Errorf("metadata not propagated: %+v", info)
	}
}
