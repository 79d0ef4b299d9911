package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tubebrief/tubebrief/internal/summarizer"
	"github.com/tubebrief/tubebrief/internal/youtube"
	"github.com/tubebrief/tubebrief/pkg/textutil"
)

// HandleMessage routes free text: a recognized video link starts the
// summary pipeline, anything else is treated as a question about the
// loaded video. Expired sessions are swept opportunistically here, on
// every inbound message, instead of on a timer.
func (b *implBot) HandleMessage(ctx context.Context, userID int64, text string) {
	b.store.SweepExpired()

	text = strings.TrimSpace(text)
	if videoID, ok := youtube.ExtractVideoID(text); ok {
		b.handleVideoLink(ctx, userID, videoID, text)
		return
	}
	if looksLikeVideoLink(text) {
		b.send(ctx, userID, errInvalidURL)
		return
	}
	b.handleQuestion(ctx, userID, text)
}

// looksLikeVideoLink catches messages that mention YouTube but carry
// no parseable video id, so the user gets an invalid-link reply
// instead of a transcript-grounded "question" answer.
func looksLikeVideoLink(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "youtube.com/") || strings.Contains(lower, "youtu.be/")
}

// HandleCommand dispatches a slash command.
func (b *implBot) HandleCommand(ctx context.Context, userID int64, command string, args []string) {
	b.store.SweepExpired()

	switch command {
	case "start":
		b.send(ctx, userID, welcomeMsg)
	case "help":
		b.send(ctx, userID, fmt.Sprintf(helpMsgTemplate, b.languages.SupportedList()))
	case "summary":
		b.summaryCommand(ctx, userID)
	case "deepdive":
		b.analysisCommand(ctx, userID, "🔬 *Generating deep dive analysis...*", b.engine.GenerateDeepDive)
	case "actionpoints":
		b.analysisCommand(ctx, userID, "✅ *Extracting action points...*", b.engine.GenerateActionPoints)
	case "language":
		b.languageCommand(ctx, userID, args)
	default:
		b.logger.Debug(ctx, "Ignoring unknown command /%s from user %d", command, userID)
	}
}

// send splits text to the outbound size limit and sends each chunk.
func (b *implBot) send(ctx context.Context, userID int64, text string) {
	for _, chunk := range textutil.SplitMessage(text, b.maxMsgLen) {
		if _, err := b.transport.Send(ctx, userID, chunk); err != nil {
			b.logger.Error(ctx, "Failed to send message to user %d: %v", userID, err)
			return
		}
	}
}

// editOrSend edits the progress message in place, falling back to a
// fresh message when the edit fails.
func (b *implBot) editOrSend(ctx context.Context, userID int64, messageID int, text string) {
	if err := b.transport.Edit(ctx, userID, messageID, text); err != nil {
		b.logger.Warn(ctx, "Failed to edit message %d for user %d: %v", messageID, userID, err)
		b.send(ctx, userID, text)
	}
}

func (b *implBot) deleteMessage(ctx context.Context, userID int64, messageID int) {
	if err := b.transport.Delete(ctx, userID, messageID); err != nil {
		b.logger.Debug(ctx, "Failed to delete message %d for user %d: %v", messageID, userID, err)
	}
}

// modelErrorMessage maps an engine failure to its fixed user text.
func modelErrorMessage(err error) string {
	if errors.Is(err, summarizer.ErrEmptyResponse) {
		return errEmptyModelResponse
	}
	return errProcessing
}

// transcriptErrorMessage maps a transcript failure kind to its fixed
// user text.
func transcriptErrorMessage(err error) string {
	switch youtube.ErrKind(err) {
	case youtube.KindDisabled, youtube.KindNotFound:
		return errNoTranscript
	case youtube.KindUnavailable:
		return errVideoNotFound
	default:
		return errProcessing
	}
}
