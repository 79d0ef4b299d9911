package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, applies environment overrides,
// and validates. An empty path starts from a zero config so a fully
// env-driven deployment needs no file at all.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets every tunable be overridden from the environment.
// Credentials are usually supplied this way only.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.Gemini.APIKeys = keys
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKeys = []string{v}
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if n, ok := envInt("GEMINI_MAX_OUTPUT_TOKENS"); ok {
		cfg.Gemini.MaxOutputTokens = int32(n)
	}
	if n, ok := envInt("MAX_TRANSCRIPT_CHARS"); ok {
		cfg.Transcript.MaxChars = n
	}
	if n, ok := envInt("TRANSCRIPT_CACHE_TTL_SECONDS"); ok {
		cfg.Transcript.CacheTTLSeconds = n
	}
	if n, ok := envInt("CHUNK_SIZE_CHARS"); ok {
		cfg.Transcript.ChunkSizeChars = n
	}
	if n, ok := envInt("SESSION_TTL_SECONDS"); ok {
		cfg.Session.TTLSeconds = n
	}
	if n, ok := envInt("MAX_CHAT_HISTORY"); ok {
		cfg.Session.MaxChatHistory = n
	}
	if v := os.Getenv("DEFAULT_LANGUAGE"); v != "" {
		cfg.Languages.Default = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
