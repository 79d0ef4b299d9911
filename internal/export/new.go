package export

import "github.com/tubebrief/tubebrief/internal/logger"

type implWriter struct {
	dir    string
	logger logger.Logger
}

// New creates a Writer that saves docx files under dir.
func New(dir string, log logger.Logger) Writer {
	return &implWriter{dir: dir, logger: log}
}
