package entities

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Transcript source errors
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrTranscriptionFailed = errors.New("transcription failed")

	// Pipeline errors
	ErrTranscriptTooShort = errors.New("transcript empty or too short")

	// Summarizer errors
	ErrInvalidParameters     = errors.New("invalid summarization parameters")
	ErrInputTooLong          = errors.New("input exceeds model capacity")
	ErrSummarizerUnavailable = errors.New("summarizer unavailable")

	// Analyzer errors
	ErrAnalyzerUnavailable = errors.New("linguistic analyzer unavailable")
)

// TranscriptTooShortError reports the measured transcript length alongside
// the minimum. Matches ErrTranscriptTooShort under errors.Is.
type TranscriptTooShortError struct {
	Length  int
	Minimum int
}

func (e *TranscriptTooShortError) Error() string {
	return fmt.Sprintf("%v: %d chars, minimum %d", ErrTranscriptTooShort, e.Length, e.Minimum)
}

func (e *TranscriptTooShortError) Unwrap() error {
	return ErrTranscriptTooShort
}
