package summarize

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/infrastructure/cache"
)

// SupportedModels is the fixed set of summarization model identifiers
var SupportedModels = []string{
	"facebook/bart-large-cnn",
	"t5-small",
}

// Client is the external summarization dependency. WarmUp loads a model on
// the inference host; Summarize runs one deterministic inference call.
type Client interface {
	WarmUp(ctx context.Context, model string) error
	Summarize(ctx context.Context, model, text string, maxLength, minLength int) (string, error)
}

// Params are the user-chosen summarization parameters
type Params struct {
	Model     string `validate:"required,oneof=facebook/bart-large-cnn t5-small"`
	MaxLength int    `validate:"required,gt=0"`
	MinLength int    `validate:"required,gt=0,ltefield=MaxLength"`
}

// Adapter wraps the external summarizer with validated, length-bounded,
// deterministic invocation and a warm-model cache.
type Adapter struct {
	client        Client
	warm          *cache.Warm
	validate      *validator.Validate
	maxInputRunes int
	truncateInput bool
	logger        *zap.Logger
}

// NewAdapter constructs a summarizer adapter. maxInputRunes is the model
// input capacity; truncateInput selects the over-capacity policy (truncate
// deterministically vs. reject), fixed for the adapter's lifetime.
func NewAdapter(client Client, warm *cache.Warm, maxInputRunes int, truncateInput bool, logger *zap.Logger) *Adapter {
	return &Adapter{
		client:        client,
		warm:          warm,
		validate:      validator.New(),
		maxInputRunes: maxInputRunes,
		truncateInput: truncateInput,
		logger:        logger,
	}
}

// Summarize produces a bounded-length summary of the transcript. The model
// is warmed at most once per identifier; concurrent callers share the load.
func (a *Adapter) Summarize(ctx context.Context, transcript entities.Transcript, p Params) (string, error) {
	if err := a.validate.Struct(p); err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrInvalidParameters, err)
	}

	text := transcript.Text
	if runes := []rune(text); len(runes) > a.maxInputRunes {
		if !a.truncateInput {
			return "", fmt.Errorf("%w: %d runes, capacity %d", entities.ErrInputTooLong, len(runes), a.maxInputRunes)
		}
		// Deterministic truncation point: exactly maxInputRunes runes.
		text = string(runes[:a.maxInputRunes])
		if a.logger != nil {
			a.logger.Warn("transcript truncated for summarization",
				zap.Int("original_runes", len(runes)),
				zap.Int("capacity", a.maxInputRunes),
			)
		}
	}

	if _, err := a.warm.GetOrLoad(ctx, p.Model, func(ctx context.Context) (any, error) {
		if a.logger != nil {
			a.logger.Info("warming summarization model", zap.String("model", p.Model))
		}
		if err := a.client.WarmUp(ctx, p.Model); err != nil {
			return nil, err
		}
		return p.Model, nil
	}); err != nil {
		return "", fmt.Errorf("load model %s: %w", p.Model, wrapUnavailable(err))
	}

	summary, err := a.client.Summarize(ctx, p.Model, text, p.MaxLength, p.MinLength)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", wrapUnavailable(err))
	}
	return summary, nil
}

// wrapUnavailable tags client errors that are not already classified
func wrapUnavailable(err error) error {
	if errors.Is(err, entities.ErrSummarizerUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", entities.ErrSummarizerUnavailable, err)
}
