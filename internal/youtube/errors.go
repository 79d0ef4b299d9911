package youtube

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the fixed transcript failure categories the
// router maps to user-facing messages.
type ErrorKind string

const (
	KindDisabled    ErrorKind = "disabled"
	KindNotFound    ErrorKind = "not_found"
	KindUnavailable ErrorKind = "unavailable"
	KindGeneric     ErrorKind = "generic"
)

// TranscriptError wraps a transcript retrieval failure with its kind.
type TranscriptError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *TranscriptError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

// ErrKind extracts the kind from an error chain, defaulting to
// KindGeneric for anything that is not a TranscriptError.
func ErrKind(err error) ErrorKind {
	var te *TranscriptError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindGeneric
}

// Sentinel conditions reported by the provider.
var (
	ErrCaptionsDisabled = errors.New("captions are disabled for this video")
	ErrVideoUnavailable = errors.New("video is unavailable")
)
