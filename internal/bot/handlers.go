package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/tubebrief/tubebrief/internal/youtube"
	"github.com/tubebrief/tubebrief/pkg/textutil"
)

// handleVideoLink runs the full pipeline: metadata, transcript,
// session creation, summary generation.
func (b *implBot) handleVideoLink(ctx context.Context, userID int64, videoID, text string) {
	if s := b.store.Get(userID); s != nil && s.Processing() {
		b.send(ctx, userID, errBusy)
		return
	}

	progressID, err := b.transport.Send(ctx, userID, "⏳ *Processing your video...*\n\n🔍 Fetching transcript...")
	if err != nil {
		b.logger.Error(ctx, "Failed to send progress message to user %d: %v", userID, err)
		return
	}

	info := b.fetcher.GetVideoInfo(ctx, videoID)
	b.editOrSend(ctx, userID, progressID,
		fmt.Sprintf("⏳ *Processing:* %s\n\n📝 Fetching transcript...", textutil.EscapeMarkdown(info.Title)))

	transcript, err := b.fetcher.GetTranscript(ctx, videoID)
	if err != nil {
		b.logger.Error(ctx, "Transcript error for video %s: %v", videoID, err)
		b.editOrSend(ctx, userID, progressID, transcriptErrorMessage(err))
		return
	}

	s := b.store.Create(userID, videoID, info, transcript.Text, transcript.Language)

	// The link message may carry a language request too
	// ("youtu.be/... summarize in hindi").
	if lang, ok := b.languages.Detect(text); ok {
		b.store.SetLanguage(userID, lang)
		s.Language = lang
	}

	if !b.store.BeginProcessing(userID) {
		b.editOrSend(ctx, userID, progressID, errBusy)
		return
	}
	defer b.store.EndProcessing(userID)

	b.editOrSend(ctx, userID, progressID,
		fmt.Sprintf("⏳ *Processing:* %s\n\n🤖 Generating summary...", textutil.EscapeMarkdown(info.Title)))

	summary, err := b.engine.GenerateSummary(ctx, transcript.Text, info, s.Language)
	if err != nil {
		b.logger.Error(ctx, "Error generating summary for video %s: %v", videoID, err)
		b.editOrSend(ctx, userID, progressID, modelErrorMessage(err))
		return
	}

	b.store.SetSummary(userID, summary)
	b.exportSummary(ctx, info.Title, summary)

	b.deleteMessage(ctx, userID, progressID)
	b.send(ctx, userID, summary)
	b.send(ctx, userID, followUpHint)
}

// handleQuestion answers a follow-up about the loaded video, or
// switches language when the message is a bare language request.
func (b *implBot) handleQuestion(ctx context.Context, userID int64, question string) {
	s := b.store.Get(userID)
	if s == nil {
		b.send(ctx, userID, errNoSession)
		return
	}
	if s.Processing() {
		b.send(ctx, userID, errBusy)
		return
	}

	if lang, ok := b.languages.Detect(question); ok {
		b.store.SetLanguage(userID, lang)
		s.Language = lang

		// A short message is a pure language switch: regenerate the
		// summary rather than answering it as a question.
		if len(strings.Fields(question)) <= 4 {
			b.regenerateSummary(ctx, userID, s.TranscriptText, lang)
			return
		}
	}

	if !b.store.BeginProcessing(userID) {
		b.send(ctx, userID, errBusy)
		return
	}
	defer b.store.EndProcessing(userID)

	progressID, err := b.transport.Send(ctx, userID, "🤔 *Thinking...*")
	if err != nil {
		b.logger.Error(ctx, "Failed to send progress message to user %d: %v", userID, err)
		return
	}

	answer, err := b.engine.AnswerQuestion(ctx, question, s.TranscriptText, s.VideoInfo, s.ChatHistory, s.Language)
	if err != nil {
		b.logger.Error(ctx, "Error answering question for user %d: %v", userID, err)
		b.editOrSend(ctx, userID, progressID, modelErrorMessage(err))
		return
	}

	b.store.AddChatTurn(userID, question, answer)

	b.deleteMessage(ctx, userID, progressID)
	b.send(ctx, userID, answer)
}

// regenerateSummary re-runs the summary in a newly selected language.
func (b *implBot) regenerateSummary(ctx context.Context, userID int64, transcriptText, lang string) {
	if !b.store.BeginProcessing(userID) {
		b.send(ctx, userID, errBusy)
		return
	}
	defer b.store.EndProcessing(userID)

	progressID, err := b.transport.Send(ctx, userID,
		fmt.Sprintf("🌐 Switching to *%s*...\nRegenerating summary...", b.languages.DisplayName(lang)))
	if err != nil {
		b.logger.Error(ctx, "Failed to send progress message to user %d: %v", userID, err)
		return
	}

	s := b.store.Get(userID)
	if s == nil {
		b.editOrSend(ctx, userID, progressID, errNoSession)
		return
	}

	summary, err := b.engine.GenerateSummary(ctx, transcriptText, s.VideoInfo, lang)
	if err != nil {
		b.logger.Error(ctx, "Error regenerating summary for user %d: %v", userID, err)
		b.editOrSend(ctx, userID, progressID, modelErrorMessage(err))
		return
	}

	b.store.SetSummary(userID, summary)
	b.deleteMessage(ctx, userID, progressID)
	b.send(ctx, userID, summary)
}

// summaryCommand re-displays the stored summary without a model call.
func (b *implBot) summaryCommand(ctx context.Context, userID int64) {
	s := b.store.Get(userID)
	if s == nil || s.Summary == "" {
		b.send(ctx, userID, errNoSession)
		return
	}
	b.send(ctx, userID, s.Summary)
}

// analysisCommand runs deepdive/actionpoints: both are single-shot
// generations over the full transcript with identical session
// handling.
func (b *implBot) analysisCommand(
	ctx context.Context,
	userID int64,
	progressText string,
	generate func(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error),
) {
	s := b.store.Get(userID)
	if s == nil {
		b.send(ctx, userID, errNoSession)
		return
	}
	if s.Processing() {
		b.send(ctx, userID, errBusy)
		return
	}

	if !b.store.BeginProcessing(userID) {
		b.send(ctx, userID, errBusy)
		return
	}
	defer b.store.EndProcessing(userID)

	progressID, err := b.transport.Send(ctx, userID, progressText)
	if err != nil {
		b.logger.Error(ctx, "Failed to send progress message to user %d: %v", userID, err)
		return
	}

	result, err := generate(ctx, s.TranscriptText, s.VideoInfo, s.Language)
	if err != nil {
		b.logger.Error(ctx, "Error generating analysis for user %d: %v", userID, err)
		b.editOrSend(ctx, userID, progressID, modelErrorMessage(err))
		return
	}

	b.deleteMessage(ctx, userID, progressID)
	b.send(ctx, userID, result)
}

// languageCommand sets the response language explicitly.
func (b *implBot) languageCommand(ctx context.Context, userID int64, args []string) {
	if len(args) == 0 {
		b.send(ctx, userID, fmt.Sprintf(
			"🌐 *Set your preferred language*\n\nUsage: `/language hindi`\n\n*Supported languages:*\n%s",
			b.languages.SupportedList()))
		return
	}

	key := strings.ToLower(args[0])
	if !b.languages.IsSupported(key) {
		b.send(ctx, userID, fmt.Sprintf(
			"❌ Language `%s` is not supported.\n\n*Supported languages:*\n%s",
			args[0], b.languages.SupportedList()))
		return
	}

	display := b.languages.DisplayName(key)
	if b.store.SetLanguage(userID, key) {
		b.send(ctx, userID, fmt.Sprintf(
			"✅ Language set to *%s*.\nFuture responses will be in %s.", display, display))
		return
	}
	b.send(ctx, userID, fmt.Sprintf(
		"✅ Language preference noted: *%s*.\nSend a YouTube link to get started!", display))
}

// exportSummary archives the summary as docx, best-effort.
func (b *implBot) exportSummary(ctx context.Context, title, summary string) {
	if b.exporter == nil {
		return
	}
	path, err := b.exporter.WriteSummary(title, summary)
	if err != nil {
		b.logger.Warn(ctx, "Failed to export summary for %q: %v", title, err)
		return
	}
	b.logger.Info(ctx, "Summary exported to %s", path)
}
