// Package telegram implements the Telegram Bot API surface the bot
// needs: an HTTP client for sending, editing, and deleting messages,
// and a long-poll loop that feeds inbound updates to the router.
package telegram

import (
	"context"
	"time"

	"github.com/tubebrief/tubebrief/internal/bot"
)

// API is the subset of the Telegram Bot API used here. It satisfies
// bot.Transport for outbound traffic and adds the update feed.
type API interface {
	bot.Transport

	// GetUpdates long-polls for new updates after offset, blocking up
	// to timeout server-side before returning an empty batch.
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error)
}

// Update is one inbound event from getUpdates. Only message updates
// are processed; everything else just advances the offset.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message is an inbound chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	Text      string `json:"text"`
	Chat      Chat   `json:"chat"`
	From      *User  `json:"from"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}
