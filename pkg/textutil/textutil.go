package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TelegramMaxLength is the hard ceiling Telegram enforces per message.
const TelegramMaxLength = 4096

// SplitMessage splits text into chunks no longer than maxLength.
// Split points are chosen in preference order: paragraph break, line
// break, word break, hard cut. Whitespace around a split point is
// trimmed; a message at exactly the limit comes back as one chunk.
func SplitMessage(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = TelegramMaxLength
	}
	if len(text) <= maxLength {
		return []string{text}
	}

	var chunks []string
	for text != "" {
		if len(text) <= maxLength {
			chunks = append(chunks, text)
			break
		}

		splitAt := strings.LastIndex(text[:maxLength], "\n\n")
		if splitAt == -1 {
			splitAt = strings.LastIndex(text[:maxLength], "\n")
		}
		if splitAt == -1 {
			splitAt = strings.LastIndex(text[:maxLength], " ")
		}
		if splitAt == -1 {
			splitAt = PrevRuneBoundary(text, maxLength)
			if splitAt == 0 {
				splitAt = maxLength
			}
		}

		chunks = append(chunks, strings.TrimRight(text[:splitAt], " \n\t"))
		text = strings.TrimLeft(text[splitAt:], " \n\t")
	}

	return chunks
}

// PrevRuneBoundary returns the largest index i <= n at which s can be
// sliced without splitting a UTF-8 sequence.
func PrevRuneBoundary(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

// FormatTimestamp converts seconds to MM:SS, or HH:MM:SS once the
// value reaches one hour.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatDuration renders a video length in human-readable form.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "Unknown duration"
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, secs)
}

// EscapeMarkdown escapes the characters Telegram's legacy Markdown
// mode treats as markup, keeping intentional **bold** markers intact.
func EscapeMarkdown(text string) string {
	const special = "_*`["

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '*' && i+1 < len(text) && text[i+1] == '*' {
			b.WriteString("**")
			i++
			continue
		}
		if strings.IndexByte(special, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}
