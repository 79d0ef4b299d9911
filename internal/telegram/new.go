package telegram

import (
	"net/http"
	"time"

	"github.com/tubebrief/tubebrief/internal/logger"
)

const defaultBaseURL = "https://api.telegram.org"

// timeoutHeadroom is added on top of the getUpdates hold time so a
// full-length long poll never times out client-side.
const timeoutHeadroom = 15 * time.Second

type implClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger
}

// NewClient creates a Bot API client for the given bot token.
// pollTimeout is the server-side getUpdates hold time; the HTTP
// timeout is derived from it with headroom.
func NewClient(token string, pollTimeout time.Duration, log logger.Logger) API {
	return &implClient{
		httpClient: &http.Client{Timeout: pollTimeout + timeoutHeadroom},
		baseURL:    defaultBaseURL,
		token:      token,
		logger:     log,
	}
}
