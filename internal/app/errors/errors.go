package errors

import (
	"errors"
	"fmt"
)

// Kind classifies job failures so the orchestrator can convert them into
// uniform job results.
type Kind string

const (
	// KindInputNotFound means the requested audio path does not exist.
	KindInputNotFound Kind = "input_not_found"
	// KindConversion means the audio converter is missing, exited with an
	// error, or produced an empty or missing file.
	KindConversion Kind = "conversion_error"
	// KindInvocationExhausted means no invocation variant and no stdout
	// fallback produced transcript content.
	KindInvocationExhausted Kind = "invocation_exhausted"
	// KindIO means a read/write/stat failure during resolution or cleanup.
	KindIO Kind = "io_error"
)

// JobError is a classified error raised inside a transcription job.
type JobError struct {
	Kind    Kind
	Message string
	cause   error
}

// New creates a classified job error.
func New(kind Kind, message string) *JobError {
	return &JobError{Kind: kind, Message: message}
}

// Newf creates a classified job error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *JobError {
	return &JobError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a classified job error.
func Wrap(kind Kind, err error, message string) *JobError {
	return &JobError{Kind: kind, Message: message, cause: err}
}

// Wrapf attaches a cause with a formatted message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) *JobError {
	return &JobError{Kind: kind, Message: fmt.Sprintf(format, args...), cause: err}
}

func (e *JobError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *JobError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// KindOf returns the classification of err, or an empty Kind for errors
// that did not originate from a job.
func KindOf(err error) Kind {
	var jobErr *JobError
	if errors.As(err, &jobErr) {
		return jobErr.Kind
	}
	return ""
}
