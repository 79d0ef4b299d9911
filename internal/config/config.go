package config

import (
	"fmt"
	"time"
)

type Config struct {
	Telegram   TelegramConfig   `yaml:"telegram"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Session    SessionConfig    `yaml:"session"`
	Languages  LanguagesConfig  `yaml:"languages"`
	Logging    LoggingConfig    `yaml:"logging"`
	Export     ExportConfig     `yaml:"export"`
}

type TelegramConfig struct {
	Token              string `yaml:"token"`
	PollTimeoutSeconds int    `yaml:"poll_timeout_seconds"`
	MaxConcurrent      int    `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	APIKeys         []string `yaml:"api_keys"`
	Model           string   `yaml:"model"`
	MaxOutputTokens int32    `yaml:"max_output_tokens"`
}

type TranscriptConfig struct {
	MaxChars        int `yaml:"max_chars"`
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
	ChunkSizeChars  int `yaml:"chunk_size_chars"`
}

type SessionConfig struct {
	TTLSeconds     int `yaml:"ttl_seconds"`
	MaxChatHistory int `yaml:"max_chat_history"`
}

// Language pairs a lookup key ("hindi") with its display name.
type Language struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type LanguagesConfig struct {
	Supported []Language `yaml:"supported"`
	Default   string     `yaml:"default"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ExportConfig struct {
	Dir string `yaml:"dir"`
}

func defaultLanguages() []Language {
	return []Language{
		{Key: "english", Name: "English"},
		{Key: "hindi", Name: "हिन्दी (Hindi)"},
		{Key: "kannada", Name: "ಕನ್ನಡ (Kannada)"},
		{Key: "tamil", Name: "தமிழ் (Tamil)"},
		{Key: "telugu", Name: "తెలుగు (Telugu)"},
		{Key: "marathi", Name: "मराठी (Marathi)"},
	}
}

// Validate checks required settings and fills in defaults.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required (or set TELEGRAM_BOT_TOKEN)")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required (or set GEMINI_API_KEYS)")
	}

	if c.Telegram.PollTimeoutSeconds == 0 {
		c.Telegram.PollTimeoutSeconds = 30
	}
	if c.Telegram.MaxConcurrent == 0 {
		c.Telegram.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 4096
	}
	if c.Transcript.MaxChars == 0 {
		c.Transcript.MaxChars = 80000
	}
	if c.Transcript.CacheTTLSeconds == 0 {
		c.Transcript.CacheTTLSeconds = 3600
	}
	if c.Transcript.ChunkSizeChars == 0 {
		c.Transcript.ChunkSizeChars = 15000
	}
	if c.Session.TTLSeconds == 0 {
		c.Session.TTLSeconds = 7200
	}
	if c.Session.MaxChatHistory == 0 {
		c.Session.MaxChatHistory = 10
	}
	if len(c.Languages.Supported) == 0 {
		c.Languages.Supported = defaultLanguages()
	}
	if c.Languages.Default == "" {
		c.Languages.Default = "english"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	found := false
	for _, l := range c.Languages.Supported {
		if l.Key == c.Languages.Default {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("languages.default %q is not in the supported table", c.Languages.Default)
	}

	return nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Transcript.CacheTTLSeconds) * time.Second
}

func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLSeconds) * time.Second
}

func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Telegram.PollTimeoutSeconds) * time.Second
}
