package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/tubebrief/tubebrief/internal/logger"
)

// ErrEmptyResponse marks a blank model reply. Distinct from a call
// failure: surfaced to the user, never silently retried.
var ErrEmptyResponse = errors.New("empty response from model")

const (
	summaryTemperature = 0.3
	qaTemperature      = 0.2
)

type generateOpts struct {
	temperature       float32
	systemInstruction string
}

// llmClient is the single-call model capability: prompt in, text out.
type llmClient interface {
	generate(ctx context.Context, prompt string, opts generateOpts) (string, error)
}

type geminiClient struct {
	apiKeys         []string
	model           string
	maxOutputTokens int32
	logger          logger.Logger

	mu         sync.Mutex
	currentKey int
}

// generate calls Gemini, rotating API keys on 429 / quota errors.
func (c *geminiClient) generate(ctx context.Context, prompt string, opts generateOpts) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		cfg := &genai.GenerateContentConfig{
			MaxOutputTokens: c.maxOutputTokens,
			Temperature:     genai.Ptr(opts.temperature),
		}
		if opts.systemInstruction != "" {
			cfg.SystemInstruction = genai.NewContentFromText(opts.systemInstruction, genai.RoleUser)
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		text := responseText(result)
		if strings.TrimSpace(text) == "" {
			c.logger.Warn(ctx, "Empty response from Gemini")
			return "", ErrEmptyResponse
		}
		return strings.TrimSpace(text), nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *geminiClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}
