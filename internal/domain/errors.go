package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyTopic is returned when AI generation is requested without an
// activity topic. Callers are expected to check the topic and warn the user
// before ever reaching the generator.
var ErrEmptyTopic = errors.New("activity topic is empty")

// ValidationError reports a required field missing before a network call.
// It is handled locally; no request is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field %q is empty", e.Field)
}

// GenerationError reports a failed or malformed AI generation. A response
// missing any required field fails the whole operation; there is no partial
// merge.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("content generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// SubmissionError reports a transport-level submission failure. The endpoint
// never exposes its response body, so server-side rejection is
// indistinguishable from success and only DNS/connect/timeout failures
// surface here.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// ExportError reports a failed export or share action (PDF, clipboard,
// print). Hint carries the suggested manual fallback, if one exists.
type ExportError struct {
	Op   string
	Hint string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
