package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tubebrief/tubebrief/pkg/textutil"
)

const truncationMarker = "\n\n[... transcript truncated due to length ...]"

func (f *implFetcher) GetTranscript(ctx context.Context, videoID string) (*Transcript, error) {
	if t, ok := f.cache.get(videoID); ok {
		f.logger.Info(ctx, "Cache hit for video %s", videoID)
		return t, nil
	}

	refs, err := f.provider.ListTranscripts(ctx, videoID)
	if err != nil {
		switch {
		case errors.Is(err, ErrCaptionsDisabled):
			return nil, &TranscriptError{Kind: KindDisabled, Msg: "transcripts are disabled for this video", Err: err}
		case errors.Is(err, ErrVideoUnavailable):
			return nil, &TranscriptError{Kind: KindUnavailable, Msg: "video is unavailable", Err: err}
		default:
			f.logger.Error(ctx, "Error listing transcripts for %s: %v", videoID, err)
			return nil, &TranscriptError{Kind: KindGeneric, Msg: "could not access video", Err: err}
		}
	}

	ref, ok := selectTranscript(refs)
	if !ok {
		return nil, &TranscriptError{Kind: KindNotFound, Msg: "no transcript found for this video"}
	}

	segments, err := f.provider.FetchSegments(ctx, ref)
	if err != nil {
		f.logger.Error(ctx, "Error fetching transcript for %s: %v", videoID, err)
		return nil, &TranscriptError{Kind: KindGeneric, Msg: "failed to fetch transcript", Err: err}
	}

	text := renderSegments(segments)
	if len(text) > f.maxChars {
		// Cut on a rune boundary so multi-byte scripts survive intact.
		cut := textutil.PrevRuneBoundary(text, f.maxChars)
		text = text[:cut] + truncationMarker
		f.logger.Info(ctx, "Transcript for %s truncated to %d chars", videoID, cut)
	}

	t := &Transcript{
		Text:            text,
		Segments:        segments,
		Language:        ref.LanguageCode,
		IsAutoGenerated: ref.IsGenerated,
	}
	f.cache.set(videoID, t)
	return t, nil
}

// selectTranscript picks a track by priority: manually authored
// English, then auto-generated English, then the first enumerated
// track of any language. The any-language fallback takes enumeration
// order as-is and does not re-check manual-over-auto; that matches
// the long-standing behavior this replaces.
func selectTranscript(refs []TranscriptRef) (TranscriptRef, bool) {
	for _, r := range refs {
		if isEnglish(r.LanguageCode) && !r.IsGenerated {
			return r, true
		}
	}
	for _, r := range refs {
		if isEnglish(r.LanguageCode) {
			return r, true
		}
	}
	if len(refs) > 0 {
		return refs[0], true
	}
	return TranscriptRef{}, false
}

func isEnglish(code string) bool {
	return code == "en" || strings.HasPrefix(code, "en-")
}

// renderSegments produces the annotated text blob: one "[MM:SS] text"
// line per non-empty segment, chronological order preserved.
func renderSegments(segments []Segment) string {
	var lines []string
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s", textutil.FormatTimestamp(seg.Start), text))
	}
	return strings.Join(lines, "\n")
}

func (f *implFetcher) GetVideoInfo(ctx context.Context, videoID string) VideoInfo {
	info := VideoInfo{
		VideoID: videoID,
		Title:   "Unknown Title",
		Author:  "Unknown Channel",
		URL:     WatchURL(videoID),
	}

	fetched, err := f.provider.FetchVideoInfo(ctx, videoID)
	if err != nil {
		f.logger.Warn(ctx, "Could not fetch video metadata for %s: %v", videoID, err)
		return info
	}
	if fetched.Title != "" {
		info.Title = fetched.Title
	}
	if fetched.Author != "" {
		info.Author = fetched.Author
	}
	info.DurationSeconds = fetched.DurationSeconds
	return info
}
