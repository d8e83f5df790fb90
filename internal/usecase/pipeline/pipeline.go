package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/minutes"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/summarize"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/usecase/transcript"
)

// TranscriptLoader normalizes one input into a transcript
type TranscriptLoader interface {
	Load(ctx context.Context, in transcript.Input) (entities.Transcript, error)
}

// Summarizer produces a bounded-length summary of the transcript
type Summarizer interface {
	Summarize(ctx context.Context, t entities.Transcript, p summarize.Params) (string, error)
}

// ActionExtractor extracts action items from the transcript
type ActionExtractor interface {
	Extract(ctx context.Context, t entities.Transcript) ([]entities.ActionItem, error)
}

// Request carries everything one invocation needs
type Request struct {
	Input        transcript.Input
	Participants []string
	Params       summarize.Params
}

// Result is the outcome of a successful invocation
type Result struct {
	InvocationID uuid.UUID
	Minutes      entities.MeetingMinutes
	Rendered     string
	ArtifactName string
	// History records every state the invocation passed through, in order.
	History []State
}

// Pipeline sequences transcript loading, validation, concurrent
// summarization + extraction, and composition. Invocations are single-shot;
// nothing survives the call, and collaborator failures are terminal with no
// automatic retry.
type Pipeline struct {
	source     TranscriptLoader
	summarizer Summarizer
	extractor  ActionExtractor
	now        func() time.Time
	logger     *zap.Logger
}

// New constructs a pipeline
func New(source TranscriptLoader, summarizer Summarizer, extractor ActionExtractor, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		source:     source,
		summarizer: summarizer,
		extractor:  extractor,
		now:        time.Now,
		logger:     logger,
	}
}

// run tracks the state of one invocation
type run struct {
	state   State
	history []State
}

func (r *run) advance(to State) error {
	next, err := Transition(r.state, to)
	if err != nil {
		return err
	}
	r.state = next
	r.history = append(r.history, next)
	return nil
}

func (r *run) fail() {
	r.state, _ = Transition(r.state, StateFailed)
	r.history = append(r.history, StateFailed)
}

// Run executes one invocation: one transcript in, one minutes document out
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	invocationID := uuid.New()
	r := &run{state: StateIdle, history: []State{StateIdle}}

	fail := func(err error) (*Result, error) {
		r.fail()
		if p.logger != nil {
			p.logger.Error("pipeline failed",
				zap.String("invocation_id", invocationID.String()),
				zap.Strings("history", historyStrings(r.history)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	ts, err := p.source.Load(ctx, req.Input)
	if err != nil {
		return fail(err)
	}
	if err := r.advance(StateTranscriptLoaded); err != nil {
		return fail(err)
	}

	// Minimum-length gate: nothing downstream runs for short transcripts.
	if ts.TooShort() {
		return fail(&entities.TranscriptTooShortError{
			Length:  ts.TrimmedLen(),
			Minimum: entities.MinTranscriptChars,
		})
	}
	if err := r.advance(StateValidated); err != nil {
		return fail(err)
	}

	// Summarization and extraction read the same immutable transcript and
	// write disjoint outputs, so they run concurrently. Both must succeed;
	// partial results never surface.
	var (
		summary string
		items   []entities.ActionItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = p.summarizer.Summarize(gctx, ts, req.Params)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = p.extractor.Extract(gctx, ts)
		return err
	})
	if err := g.Wait(); err != nil {
		return fail(err)
	}

	// Transitions are applied in documented order once both halves finish,
	// keeping the history deterministic regardless of completion order.
	if err := r.advance(StateSummarized); err != nil {
		return fail(err)
	}
	if err := r.advance(StateExtractedActions); err != nil {
		return fail(err)
	}

	title := p.now().Format(minutes.TitleLayout)
	composed := minutes.Compose(title, summary, items, req.Participants)
	rendered := minutes.Render(composed)
	if err := r.advance(StateComposed); err != nil {
		return fail(err)
	}
	if err := r.advance(StateDone); err != nil {
		return fail(err)
	}

	if p.logger != nil {
		p.logger.Info("minutes generated",
			zap.String("invocation_id", invocationID.String()),
			zap.String("title", title),
			zap.Int("action_items", len(items)),
		)
	}

	return &Result{
		InvocationID: invocationID,
		Minutes:      composed,
		Rendered:     rendered,
		ArtifactName: minutes.ArtifactName(title),
		History:      r.history,
	}, nil
}

// WithNow overrides the clock used for title generation. Tests use this to
// make titles deterministic.
func (p *Pipeline) WithNow(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

func historyStrings(history []State) []string {
	out := make([]string, len(history))
	for i, s := range history {
		out[i] = string(s)
	}
	return out
}
