package extract

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
)

// Analyzer is the external linguistic analysis dependency: sentence
// segmentation plus named entity recognition
type Analyzer interface {
	SegmentAndTag(ctx context.Context, text string) ([]entities.Sentence, error)
}

// triggerTokens marks a sentence as an actionable commitment when any of its
// word-level tokens matches. Matching is exact token equality after
// lowercasing, never substring search: "needed" does not trigger "need".
var triggerTokens = map[string]struct{}{
	"will":   {},
	"shall":  {},
	"should": {},
	"need":   {},
	"must":   {},
	"ensure": {},
}

// Extractor scans transcript sentences for action items
type Extractor struct {
	analyzer Analyzer
	logger   *zap.Logger
}

// NewExtractor constructs an action item extractor
func NewExtractor(analyzer Analyzer, logger *zap.Logger) *Extractor {
	return &Extractor{analyzer: analyzer, logger: logger}
}

// Extract returns one action item per qualifying sentence, in transcript
// order. A qualifying sentence with no entities still yields an item with
// person and deadline unset. Analyzer failure is a hard failure, never an
// empty result.
func (e *Extractor) Extract(ctx context.Context, transcript entities.Transcript) ([]entities.ActionItem, error) {
	if e.analyzer == nil {
		return nil, fmt.Errorf("%w: no analyzer configured", entities.ErrAnalyzerUnavailable)
	}

	sentences, err := e.analyzer.SegmentAndTag(ctx, transcript.Text)
	if err != nil {
		return nil, fmt.Errorf("segment transcript: %w", err)
	}

	items := make([]entities.ActionItem, 0)
	for _, sentence := range sentences {
		text := strings.TrimSpace(sentence.Text)
		if text == "" || !containsTrigger(text) {
			continue
		}

		// Task is the full trimmed sentence, trigger word included.
		item := entities.NewActionItem(text)

		// Later entities of the same category overwrite earlier ones:
		// the last PERSON and last DATE win.
		for _, ent := range sentence.Entities {
			switch ent.Category {
			case entities.EntityPerson:
				person := ent.Text
				item.Person = &person
			case entities.EntityDate:
				deadline := ent.Text
				item.Deadline = &deadline
			}
		}

		items = append(items, item)
	}

	if e.logger != nil {
		e.logger.Info("action items extracted",
			zap.Int("sentences", len(sentences)),
			zap.Int("action_items", len(items)),
		)
	}
	return items, nil
}

// containsTrigger reports whether any token of the sentence is a trigger word
func containsTrigger(sentence string) bool {
	for _, token := range tokenize(sentence) {
		if _, ok := triggerTokens[token]; ok {
			return true
		}
	}
	return false
}

// tokenize lowercases the sentence and splits it into word-level tokens.
// Apostrophes stay inside a token so contractions ("we'll") remain one token
// and do not match the bare trigger form.
func tokenize(sentence string) []string {
	return strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
}
