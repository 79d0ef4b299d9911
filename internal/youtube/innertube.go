package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	playerEndpoint = "https://www.youtube.com/youtubei/v1/player"

	// The ANDROID client gets caption tracks without the web client's
	// attestation requirements.
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "20.10.38"
)

type innertubeProvider struct {
	client *http.Client
}

// NewProvider creates the production Provider backed by YouTube's
// innertube player API and timedtext caption downloads.
func NewProvider() Provider {
	return &innertubeProvider{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type playerRequest struct {
	Context struct {
		Client struct {
			ClientName    string `json:"clientName"`
			ClientVersion string `json:"clientVersion"`
		} `json:"client"`
	} `json:"context"`
	VideoID string `json:"videoId"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		Title         string `json:"title"`
		Author        string `json:"author"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
	Captions *struct {
		TracklistRenderer struct {
			CaptionTracks []struct {
				BaseURL      string `json:"baseUrl"`
				LanguageCode string `json:"languageCode"`
				Kind         string `json:"kind"` // "asr" marks auto-generated tracks
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

func (p *innertubeProvider) fetchPlayer(ctx context.Context, videoID string) (*playerResponse, error) {
	var reqBody playerRequest
	reqBody.Context.Client.ClientName = innertubeClientName
	reqBody.Context.Client.ClientVersion = innertubeClientVersion
	reqBody.VideoID = videoID

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, playerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player request: unexpected status %d", resp.StatusCode)
	}

	var pr playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return &pr, nil
}

func (p *innertubeProvider) ListTranscripts(ctx context.Context, videoID string) ([]TranscriptRef, error) {
	pr, err := p.fetchPlayer(ctx, videoID)
	if err != nil {
		return nil, err
	}

	switch pr.PlayabilityStatus.Status {
	case "OK", "":
	case "ERROR", "UNPLAYABLE", "LOGIN_REQUIRED":
		return nil, fmt.Errorf("%w: %s", ErrVideoUnavailable, pr.PlayabilityStatus.Reason)
	}

	if pr.Captions == nil {
		return nil, ErrCaptionsDisabled
	}

	var refs []TranscriptRef
	for _, track := range pr.Captions.TracklistRenderer.CaptionTracks {
		refs = append(refs, TranscriptRef{
			VideoID:      videoID,
			LanguageCode: track.LanguageCode,
			IsGenerated:  track.Kind == "asr",
			BaseURL:      track.BaseURL,
		})
	}
	return refs, nil
}

type timedtextResponse struct {
	Events []struct {
		StartMs    int64 `json:"tStartMs"`
		DurationMs int64 `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

func (p *innertubeProvider) FetchSegments(ctx context.Context, ref TranscriptRef) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.BaseURL+"&fmt=json3", nil)
	if err != nil {
		return nil, fmt.Errorf("create timedtext request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext request: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read timedtext response: %w", err)
	}

	var tt timedtextResponse
	if err := json.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("decode timedtext response: %w", err)
	}

	var segments []Segment
	for _, ev := range tt.Events {
		var text string
		for _, seg := range ev.Segs {
			text += seg.UTF8
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}
	return segments, nil
}

func (p *innertubeProvider) FetchVideoInfo(ctx context.Context, videoID string) (VideoInfo, error) {
	pr, err := p.fetchPlayer(ctx, videoID)
	if err != nil {
		return VideoInfo{}, err
	}

	length, _ := strconv.Atoi(pr.VideoDetails.LengthSeconds)
	return VideoInfo{
		VideoID:         videoID,
		Title:           pr.VideoDetails.Title,
		Author:          pr.VideoDetails.Author,
		DurationSeconds: length,
		URL:             WatchURL(videoID),
	}, nil
}
