// Package language implements the heuristic that spots "summarize in
// hindi"-style requests in free text, plus helpers for rendering the
// supported-language table and prompt instructions.
package language

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tubebrief/tubebrief/internal/config"
)

// Ordered matchers, most specific first. A pattern that matches but
// captures an unsupported word falls through to the next one; only a
// supported capture wins.
var patterns = []*regexp.Regexp{
	// "summarize in Hindi", "explain it in Kannada", "give me the summary in Tamil"
	regexp.MustCompile(`(?i)(?:summarize|summary|explain|respond|answer|translate|write|give|tell)\s+(?:(?:it|this|me|the\s+summary|the\s+answer)\s+)?in\s+(\w+)`),
	// "in Hindi please", "in Tamil"
	regexp.MustCompile(`(?i)\bin\s+(\w+)\s*(?:please|pls)?\s*$`),
	// "Hindi mein", "Hindi me" (informal requests)
	regexp.MustCompile(`(?i)(\w+)\s+(?:mein|me)\b`),
	// Just the language name as the entire message
	regexp.MustCompile(`(?i)^(\w+)$`),
}

type Detector struct {
	supported   map[string]string
	ordered     []config.Language
	defaultLang string
}

// New builds a Detector over the configured language table.
func New(supported []config.Language, defaultLang string) *Detector {
	table := make(map[string]string, len(supported))
	for _, l := range supported {
		table[strings.ToLower(l.Key)] = l.Name
	}
	return &Detector{
		supported:   table,
		ordered:     supported,
		defaultLang: strings.ToLower(defaultLang),
	}
}

// Detect reports whether text asks for a specific response language
// and returns its key ("hindi"). Intentionally lossy: it catches
// common phrasings, not every way of naming a language.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)

	for _, p := range patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		word := strings.ToLower(m[1])
		if _, ok := d.supported[word]; ok {
			return word, true
		}
	}
	return "", false
}

// IsSupported reports whether key is in the language table.
func (d *Detector) IsSupported(key string) bool {
	_, ok := d.supported[strings.ToLower(key)]
	return ok
}

// Default returns the default language key.
func (d *Detector) Default() string {
	return d.defaultLang
}

// DisplayName returns the display name for a language key, falling
// back to the title-cased key for unknown values.
func (d *Detector) DisplayName(key string) string {
	if name, ok := d.supported[strings.ToLower(key)]; ok {
		return name
	}
	if key == "" {
		return key
	}
	return strings.ToUpper(key[:1]) + strings.ToLower(key[1:])
}

// Instruction builds the prompt fragment that steers the model into
// the requested response language.
func (d *Detector) Instruction(key string) string {
	if key == d.defaultLang {
		return "Respond in English."
	}
	display := d.DisplayName(key)
	return fmt.Sprintf(
		"Respond entirely in %s. Use the %s script/alphabet. "+
			"Keep technical terms or proper nouns in their original form if needed.",
		display, display,
	)
}

// SupportedList formats the language table for display, marking the
// default.
func (d *Detector) SupportedList() string {
	var lines []string
	for _, l := range d.ordered {
		marker := ""
		if strings.ToLower(l.Key) == d.defaultLang {
			marker = " ✅ (default)"
		}
		lines = append(lines, fmt.Sprintf("  • `%s` — %s%s", l.Key, l.Name, marker))
	}
	return strings.Join(lines, "\n")
}
