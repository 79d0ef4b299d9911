package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/tubebrief/tubebrief/internal/session"
	"github.com/tubebrief/tubebrief/internal/youtube"
)

// historyWindow bounds the Q&A context to the last 3 turns.
const historyWindow = 6

func (e *implEngine) AnswerQuestion(ctx context.Context, question, transcriptText string, info youtube.VideoInfo, history []session.ChatMessage, lang string) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "**VIDEO CONTEXT**\nTitle: %s\nChannel: %s\n\n", info.Title, info.Author)
	fmt.Fprintf(&b, "**TRANSCRIPT:**\n%s\n\n", transcriptText)

	if len(history) > 0 {
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		b.WriteString("**PREVIOUS CONVERSATION:**\n")
		for _, msg := range history {
			role := "User"
			if msg.Role == "assistant" {
				role = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, msg.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "**USER QUESTION:**\n%s\n\n", question)
	fmt.Fprintf(&b,
		"**Instructions:**\n"+
			"- Answer ONLY based on the transcript above.\n"+
			"- If the information is not in the transcript, respond with: %q\n"+
			"- Reference timestamps when relevant (e.g., \"At [05:23], the speaker mentions...\").\n"+
			"- Be concise and direct.\n"+
			"- %s",
		NotCoveredSentinel, e.languages.Instruction(lang),
	)

	return e.client.generate(ctx, b.String(), generateOpts{
		temperature:       qaTemperature,
		systemInstruction: qaSystemInstruction,
	})
}
