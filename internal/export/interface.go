package export

// Writer archives generated summaries as styled .docx files for
// offline review. Best-effort: callers log failures and move on.
type Writer interface {
	// WriteSummary converts the markdown-ish summary text to a docx
	// named after the video title and returns the written path.
	WriteSummary(videoTitle, summary string) (string, error)
}
