package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/tubebrief/tubebrief/internal/youtube"
	"github.com/tubebrief/tubebrief/pkg/textutil"
)

// chunkSeparator joins chunk summaries before the merge pass.
const chunkSeparator = "\n\n---\n\n"

func (e *implEngine) GenerateSummary(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error) {
	// Short transcripts go through in one call.
	if len(transcriptText) <= e.chunkSize*2 {
		prompt := e.buildPrompt(summaryPrompt, transcriptText, info, lang)
		return e.client.generate(ctx, prompt, generateOpts{temperature: summaryTemperature})
	}
	return e.chunkedSummary(ctx, transcriptText, info, lang)
}

func (e *implEngine) GenerateDeepDive(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error) {
	prompt := e.buildPrompt(deepDivePrompt, transcriptText, info, lang)
	return e.client.generate(ctx, prompt, generateOpts{temperature: summaryTemperature})
}

func (e *implEngine) GenerateActionPoints(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error) {
	prompt := e.buildPrompt(actionPointsPrompt, transcriptText, info, lang)
	return e.client.generate(ctx, prompt, generateOpts{temperature: summaryTemperature})
}

// chunkedSummary splits a long transcript, summarizes each piece in
// order, then merges the concatenated piece summaries through the
// structured-summary template. The two passes bound single-call input
// size while still producing one coherent result.
func (e *implEngine) chunkedSummary(ctx context.Context, transcriptText string, info youtube.VideoInfo, lang string) (string, error) {
	chunks := splitTranscript(transcriptText, e.chunkSize)
	e.logger.Info(ctx, "Processing %d transcript chunks", len(chunks))

	chunkSummaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		prompt := fmt.Sprintf(
			"Summarize this section (part %d/%d) of a video transcript. "+
				"Extract key points and notable timestamps.\n\n"+
				"TRANSCRIPT SECTION:\n%s",
			i+1, len(chunks), chunk,
		)
		summary, err := e.client.generate(ctx, prompt, generateOpts{temperature: summaryTemperature})
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d/%d: %w", i+1, len(chunks), err)
		}
		chunkSummaries = append(chunkSummaries, summary)
	}

	merged := strings.Join(chunkSummaries, chunkSeparator)
	prompt := e.buildPrompt(
		summaryPrompt,
		"[SECTION SUMMARIES FROM LONG VIDEO]\n\n"+merged,
		info, lang,
	)
	return e.client.generate(ctx, prompt, generateOpts{temperature: summaryTemperature})
}

// splitTranscript cuts text into ordered chunks of at most chunkSize,
// preferring the last line boundary in the window. A newline in the
// first half of the window is ignored to avoid tiny chunks; with no
// usable boundary the cut is hard. Leading whitespace of the
// remainder is trimmed, so chunks cover the text with no overlaps.
func splitTranscript(text string, chunkSize int) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}

	var chunks []string
	for text != "" {
		if len(text) <= chunkSize {
			chunks = append(chunks, text)
			break
		}
		splitAt := strings.LastIndex(text[:chunkSize], "\n")
		if splitAt == -1 || splitAt < chunkSize/2 {
			splitAt = textutil.PrevRuneBoundary(text, chunkSize)
			if splitAt == 0 {
				splitAt = chunkSize
			}
		}
		chunks = append(chunks, text[:splitAt])
		text = strings.TrimLeft(text[splitAt:], " \n\t")
	}
	return chunks
}

func (e *implEngine) buildPrompt(template, transcriptText string, info youtube.VideoInfo, lang string) string {
	return strings.NewReplacer(
		"{title}", info.Title,
		"{author}", info.Author,
		"{duration}", textutil.FormatDuration(info.DurationSeconds),
		"{transcript}", transcriptText,
		"{language_instruction}", e.languages.Instruction(lang),
	).Replace(template)
}
