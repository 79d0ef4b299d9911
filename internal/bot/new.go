package bot

import (
	"github.com/tubebrief/tubebrief/internal/export"
	"github.com/tubebrief/tubebrief/internal/language"
	"github.com/tubebrief/tubebrief/internal/logger"
	"github.com/tubebrief/tubebrief/internal/session"
	"github.com/tubebrief/tubebrief/internal/summarizer"
	"github.com/tubebrief/tubebrief/internal/youtube"
	"github.com/tubebrief/tubebrief/pkg/textutil"
)

type implBot struct {
	transport Transport
	store     session.Store
	fetcher   youtube.Fetcher
	engine    summarizer.Engine
	languages *language.Detector
	exporter  export.Writer // nil disables docx archiving
	logger    logger.Logger
	maxMsgLen int
}

// New wires the router to its collaborators. exporter may be nil.
func New(
	transport Transport,
	store session.Store,
	fetcher youtube.Fetcher,
	engine summarizer.Engine,
	languages *language.Detector,
	exporter export.Writer,
	log logger.Logger,
) Bot {
	return &implBot{
		transport: transport,
		store:     store,
		fetcher:   fetcher,
		engine:    engine,
		languages: languages,
		exporter:  exporter,
		logger:    log,
		maxMsgLen: textutil.TelegramMaxLength,
	}
}
