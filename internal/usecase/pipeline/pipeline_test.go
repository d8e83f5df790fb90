package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/summarize"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/transcript"
)

type fakeLoader struct {
	text string
	err  error
}

func (f *fakeLoader) Load(ctx context.Context, in transcript.Input) (entities.Transcript, error) {
	if f.err != nil {
		return entities.Transcript{}, f.err
	}
	return entities.NewTranscript(f.text), nil
}

type fakeSummarizer struct {
	summary string
	err     error
	calls   int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, t entities.Transcript, p summarize.Params) (string, error) {
	f.calls++
	return f.summary, f.err
}

type fakeExtractor struct {
	items []entities.ActionItem
	err   error
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, t entities.Transcript) ([]entities.ActionItem, error) {
	f.calls++
	return f.items, f.err
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
}

func defaultParams() summarize.Params {
	return summarize.Params{Model: "facebook/bart-large-cnn", MaxLength: 180, MinLength: 30}
}

func TestRun_HappyPath(t *testing.T) {
	person := "Bob"
	deadline := "Friday"
	summarizer := &fakeSummarizer{summary: "The team agreed on next steps."}
	extractor := &fakeExtractor{items: []entities.ActionItem{
		{Task: "Bob will prepare the summary.", Person: &person, Deadline: &deadline},
	}}
	p := New(&fakeLoader{text: "A transcript long enough to pass validation."}, summarizer, extractor, nil).
		WithNow(fixedClock)

	result, err := p.Run(context.Background(), Request{
		Participants: []string{"Bob", "Carol"},
		Params:       defaultParams(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.Minutes.Title != "2024-05-01 10:30" {
		t.Errorf("unexpected title %q", result.Minutes.Title)
	}
	if result.ArtifactName != "minutes_2024-05-01 10:30.txt" {
		t.Errorf("unexpected artifact name %q", result.ArtifactName)
	}
	if result.Minutes.Summary != "The team agreed on next steps." {
		t.Errorf("unexpected summary %q", result.Minutes.Summary)
	}
	if len(result.Minutes.ActionItems) != 1 {
		t.Errorf("expected 1 action item, got %d", len(result.Minutes.ActionItems))
	}
	if result.Rendered == "" {
		t.Error("expected rendered document")
	}

	wantHistory := []State{
		StateIdle, StateTranscriptLoaded, StateValidated,
		StateSummarized, StateExtractedActions, StateComposed, StateDone,
	}
	if len(result.History) != len(wantHistory) {
		t.Fatalf("history = %v, want %v", result.History, wantHistory)
	}
	for i := range wantHistory {
		if result.History[i] != wantHistory[i] {
			t.Fatalf("history[%d] = %s, want %s", i, result.History[i], wantHistory[i])
		}
	}
}

func TestRun_ShortTranscriptSkipsCollaborators(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "unused"}
	extractor := &fakeExtractor{}
	p := New(&fakeLoader{text: "  hi   "}, summarizer, extractor, nil).WithNow(fixedClock)

	_, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if err == nil {
		t.Fatal("expected error for short transcript")
	}
	if !errors.Is(err, entities.ErrTranscriptTooShort) {
		t.Fatalf("expected ErrTranscriptTooShort, got %v", err)
	}
	if summarizer.calls != 0 {
		t.Errorf("summarizer called %d times for rejected transcript", summarizer.calls)
	}
	if extractor.calls != 0 {
		t.Errorf("extractor called %d times for rejected transcript", extractor.calls)
	}
}

func TestRun_EmptyTranscriptRejected(t *testing.T) {
	p := New(&fakeLoader{text: ""}, &fakeSummarizer{}, &fakeExtractor{}, nil).WithNow(fixedClock)

	_, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if !errors.Is(err, entities.ErrTranscriptTooShort) {
		t.Fatalf("expected ErrTranscriptTooShort, got %v", err)
	}
}

func TestRun_ShortMultibyteTranscriptRejected(t *testing.T) {
	// 5 characters but 15 bytes: the minimum counts characters, not bytes.
	summarizer := &fakeSummarizer{summary: "unused"}
	extractor := &fakeExtractor{}
	p := New(&fakeLoader{text: "こんにちは"}, summarizer, extractor, nil).WithNow(fixedClock)

	_, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if !errors.Is(err, entities.ErrTranscriptTooShort) {
		t.Fatalf("expected ErrTranscriptTooShort, got %v", err)
	}

	var tooShort *entities.TranscriptTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("expected TranscriptTooShortError, got %v", err)
	}
	if tooShort.Length != 5 {
		t.Errorf("reported length = %d, want 5 characters", tooShort.Length)
	}
	if summarizer.calls != 0 || extractor.calls != 0 {
		t.Error("collaborators called for rejected transcript")
	}
}

func TestRun_LoaderFailure(t *testing.T) {
	loadErr := entities.ErrUnsupportedFormat
	p := New(&fakeLoader{err: loadErr}, &fakeSummarizer{}, &fakeExtractor{}, nil).WithNow(fixedClock)

	_, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if !errors.Is(err, entities.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRun_SummarizerFailureIsTerminal(t *testing.T) {
	summarizer := &fakeSummarizer{err: entities.ErrSummarizerUnavailable}
	extractor := &fakeExtractor{items: []entities.ActionItem{{Task: "ignored"}}}
	p := New(&fakeLoader{text: "A transcript long enough to pass validation."}, summarizer, extractor, nil).
		WithNow(fixedClock)

	result, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if !errors.Is(err, entities.ErrSummarizerUnavailable) {
		t.Fatalf("expected ErrSummarizerUnavailable, got %v", err)
	}
	if result != nil {
		t.Fatal("partial result surfaced on failure")
	}
	if summarizer.calls != 1 {
		t.Errorf("summarizer calls = %d, want 1 (no retry)", summarizer.calls)
	}
}

func TestRun_ExtractorFailureIsTerminal(t *testing.T) {
	summarizer := &fakeSummarizer{summary: "fine"}
	extractor := &fakeExtractor{err: entities.ErrAnalyzerUnavailable}
	p := New(&fakeLoader{text: "A transcript long enough to pass validation."}, summarizer, extractor, nil).
		WithNow(fixedClock)

	result, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if !errors.Is(err, entities.ErrAnalyzerUnavailable) {
		t.Fatalf("expected ErrAnalyzerUnavailable, got %v", err)
	}
	if result != nil {
		t.Fatal("partial result surfaced on failure")
	}
}

func TestRun_NoActionItemsStillSucceeds(t *testing.T) {
	p := New(
		&fakeLoader{text: "A transcript long enough to pass validation."},
		&fakeSummarizer{summary: "Nothing actionable."},
		&fakeExtractor{items: []entities.ActionItem{}},
		nil,
	).WithNow(fixedClock)

	result, err := p.Run(context.Background(), Request{Params: defaultParams()})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Minutes.ActionItems) != 0 {
		t.Errorf("expected no action items, got %d", len(result.Minutes.ActionItems))
	}
}
