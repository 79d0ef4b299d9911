package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tubebrief/tubebrief/internal/bot"
	"github.com/tubebrief/tubebrief/internal/config"
	"github.com/tubebrief/tubebrief/internal/export"
	"github.com/tubebrief/tubebrief/internal/language"
	"github.com/tubebrief/tubebrief/internal/logger"
	"github.com/tubebrief/tubebrief/internal/session"
	"github.com/tubebrief/tubebrief/internal/summarizer"
	"github.com/tubebrief/tubebrief/internal/telegram"
	"github.com/tubebrief/tubebrief/internal/watcher"
	"github.com/tubebrief/tubebrief/internal/youtube"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// A missing config file is fine: every setting, including the
	// credentials, can come from the environment.
	path := *configPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Summarizer Bot")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s (%d API keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Session TTL: %s, transcript cache TTL: %s", cfg.SessionTTL(), cfg.CacheTTL())
	log.Info(ctx, "Max concurrent handlers: %d", cfg.Telegram.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	// Initialize dependencies
	detector := language.New(cfg.Languages.Supported, cfg.Languages.Default)
	store := session.New(cfg.SessionTTL(), cfg.Session.MaxChatHistory, cfg.Languages.Default, log)
	fetcher := youtube.NewFetcher(youtube.NewProvider(), cfg.CacheTTL(), cfg.Transcript.MaxChars, log)
	engine := summarizer.New(cfg.Gemini, cfg.Transcript.ChunkSizeChars, detector, log)

	var exporter export.Writer
	if cfg.Export.Dir != "" {
		if err := os.MkdirAll(cfg.Export.Dir, 0755); err != nil {
			log.Error(ctx, "Failed to create export directory: %v", err)
			os.Exit(1)
		}
		exporter = export.New(cfg.Export.Dir, log)
		log.Info(ctx, "Summary export enabled: %s", cfg.Export.Dir)
	}

	client := telegram.NewClient(cfg.Telegram.Token, cfg.PollTimeout(), log)
	router := bot.New(client, store, fetcher, engine, detector, exporter, log)
	poller := telegram.NewPoller(client, router, cfg.PollTimeout(), cfg.Telegram.MaxConcurrent, log)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Hot-reload the log level when the config file changes. Other
	// settings need a restart to take effect.
	if path != "" {
		w, err := watcher.New(path, func(ctx context.Context, newCfg *config.Config) error {
			log.SetLevel(newCfg.Logging.Level)
			log.Info(ctx, "Log level set to %s", newCfg.Logging.Level)
			return nil
		}, log)
		if err != nil {
			log.Error(ctx, "Failed to create config watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil {
				log.Error(ctx, "Config watcher error: %v", err)
			}
		}()
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- poller.Run(ctx)
	}()

	log.Info(ctx, "Bot is ready, polling for updates")
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		// Cancel the poll loop, then wait for in-flight handlers to
		// drain before exiting.
		log.Info(ctx, "Shutdown signal received, shutting down gracefully...")
		cancel()
		<-errChan
	case err := <-errChan:
		if err != nil {
			log.Error(ctx, "Poller error: %v", err)
		}
	}

	store.Clear()
	log.Info(ctx, "Bot stopped")
}
