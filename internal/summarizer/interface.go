package summarizer

import (
	"context"

	"github.com/tubebrief/tubebrief/internal/session"
	"github.com/tubebrief/tubebrief/internal/youtube"
)

// Engine generates summaries, analyses, and transcript-grounded
// answers via the language model. All operations are single requests:
// a failure is terminal and the caller re-issues, never retries here.
type Engine interface {
	// GenerateSummary produces the structured summary. Transcripts
	// longer than twice the chunk size are split, summarized per
	// chunk in order, and merged with a final pass.
	GenerateSummary(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error)

	// GenerateDeepDive produces a section-by-section breakdown with
	// timestamp ranges. Always single-shot against the full text.
	GenerateDeepDive(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error)

	// GenerateActionPoints extracts categorized actionable items.
	// Always single-shot against the full text.
	GenerateActionPoints(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error)

	// AnswerQuestion answers from the transcript only, with up to the
	// last 3 Q&A turns of history for context.
	AnswerQuestion(ctx context.Context, question, transcriptText string, info youtube.VideoInfo, history []session.ChatMessage, lang string) (string, error)
}
