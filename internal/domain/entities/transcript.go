package entities

import (
	"strings"
	"unicode/utf8"
)

// MinTranscriptChars is the minimum trimmed transcript length the pipeline
// will process. Shorter transcripts are rejected before any model is called.
const MinTranscriptChars = 10

// Transcript is the full text content of a meeting, either typed by the user
// or produced by speech-to-text. It is immutable once loaded.
type Transcript struct {
	Text string `json:"text"`
}

// NewTranscript wraps raw transcript text
func NewTranscript(text string) Transcript {
	return Transcript{Text: text}
}

// TrimmedLen returns the character count of the transcript after trimming
// whitespace. Counted in runes, not bytes, so multibyte text is measured
// the same as ASCII.
func (t Transcript) TrimmedLen() int {
	return utf8.RuneCountInString(strings.TrimSpace(t.Text))
}

// TooShort reports whether the transcript is below the processable minimum
func (t Transcript) TooShort() bool {
	return t.TrimmedLen() < MinTranscriptChars
}
