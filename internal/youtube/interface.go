// Package youtube retrieves video transcripts and metadata, with a
// TTL cache in front of the transcript provider.
package youtube

import "context"

// Segment is one timed caption line as delivered by the provider.
type Segment struct {
	Text     string
	Start    float64 // seconds from video start
	Duration float64 // seconds
}

// Transcript is the normalized result handed to the summarizer: all
// segments rendered as "[MM:SS] text" lines joined by newlines.
type Transcript struct {
	Text            string
	Segments        []Segment
	Language        string
	IsAutoGenerated bool
}

// VideoInfo is best-effort metadata. Fields keep placeholder values
// when the metadata source fails.
type VideoInfo struct {
	VideoID         string
	Title           string
	Author          string
	DurationSeconds int
	URL             string
}

// TranscriptRef identifies one available transcript track for a video.
type TranscriptRef struct {
	VideoID      string
	LanguageCode string
	IsGenerated  bool
	BaseURL      string
}

// Provider is the external transcript/metadata source. The production
// implementation talks to YouTube; tests substitute fakes.
type Provider interface {
	// ListTranscripts enumerates available transcript tracks. It
	// returns ErrCaptionsDisabled or ErrVideoUnavailable for those
	// provider-reported conditions.
	ListTranscripts(ctx context.Context, videoID string) ([]TranscriptRef, error)

	// FetchSegments downloads the timed segments for one track.
	FetchSegments(ctx context.Context, ref TranscriptRef) ([]Segment, error)

	// FetchVideoInfo retrieves title/author/duration for a video.
	FetchVideoInfo(ctx context.Context, videoID string) (VideoInfo, error)
}

// Fetcher is the cached transcript front end used by the bot.
type Fetcher interface {
	// GetTranscript returns the normalized transcript, serving cached
	// entries within the TTL. Failures carry a *TranscriptError.
	GetTranscript(ctx context.Context, videoID string) (*Transcript, error)

	// GetVideoInfo is best-effort: on any failure it returns
	// placeholder metadata rather than an error, so metadata problems
	// never block transcript processing.
	GetVideoInfo(ctx context.Context, videoID string) VideoInfo
}
