package summarizer

import (
	"github.com/tubebrief/tubebrief/internal/config"
	"github.com/tubebrief/tubebrief/internal/language"
	"github.com/tubebrief/tubebrief/internal/logger"
)

type implEngine struct {
	client    llmClient
	languages *language.Detector
	chunkSize int
	logger    logger.Logger
}

// New creates an Engine backed by Gemini, rotating through the
// configured API keys on quota errors.
func New(cfg config.GeminiConfig, chunkSize int, languages *language.Detector, log logger.Logger) Engine {
	return &implEngine{
		client: &geminiClient{
			apiKeys:         cfg.APIKeys,
			model:           cfg.Model,
			maxOutputTokens: cfg.MaxOutputTokens,
			logger:          log,
		},
		languages: languages,
		chunkSize: chunkSize,
		logger:    log,
	}
}
