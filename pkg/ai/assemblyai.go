package ai

import (
	"context"
	"fmt"
	"os"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
)

// AssemblyAIClient transcribes local audio files through AssemblyAI:
// upload, submit, then poll until the transcript is completed or errored.
type AssemblyAIClient struct {
	client       *aai.Client
	pollInitial  time.Duration
	pollDeadline time.Duration
	logger       *zap.Logger
}

// NewAssemblyAIClient creates an AssemblyAI-backed transcriber using the
// provided config. Falls back to environment variables when cfg is nil.
func NewAssemblyAIClient(cfg *config.TranscriberConfig, logger *zap.Logger) *AssemblyAIClient {
	var apiKey string
	pollInitial := 2 * time.Second
	pollDeadline := 10 * time.Minute
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.PollInitialSecs > 0 {
			pollInitial = time.Duration(cfg.PollInitialSecs) * time.Second
		}
		if cfg.PollTimeoutSecs > 0 {
			pollDeadline = time.Duration(cfg.PollTimeoutSecs) * time.Second
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}

	return &AssemblyAIClient{
		client:       aai.NewClient(apiKey),
		pollInitial:  pollInitial,
		pollDeadline: pollDeadline,
		logger:       logger,
	}
}

// Transcribe uploads the audio file at audioPath and returns its transcript
// text. modelSize selects the speech model ("best" or "nano").
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioPath, modelSize string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio file: %w", err)
	}
	defer f.Close()

	uploadURL, err := c.client.Upload(ctx, f)
	if err != nil {
		return "", fmt.Errorf("upload to assemblyai: %w", err)
	}

	if c.logger != nil {
		c.logger.Info("audio uploaded to assemblyai",
			zap.String("audio_path", audioPath),
			zap.String("model_size", modelSize),
		)
	}

	params := &aai.TranscriptOptionalParams{
		SpeechModel: speechModelFor(modelSize),
	}

	submitted, err := c.client.Transcripts.SubmitFromURL(ctx, uploadURL, params)
	if err != nil {
		return "", fmt.Errorf("submit transcript: %w", err)
	}
	id := deref(submitted.ID)
	if id == "" {
		return "", fmt.Errorf("assemblyai returned no transcript id")
	}

	transcript, err := c.poll(ctx, id)
	if err != nil {
		return "", err
	}
	return deref(transcript.Text), nil
}

// poll waits for the transcript to leave the queued/processing states.
// The backoff here paces status checks only; a failed transcription is
// permanent and never resubmitted.
func (c *AssemblyAIClient) poll(ctx context.Context, id string) (aai.Transcript, error) {
	var result aai.Transcript

	operation := func() error {
		got, err := c.client.Transcripts.Get(ctx, id)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("get transcript %s: %w", id, err))
		}
		switch got.Status {
		case aai.TranscriptStatusCompleted:
			result = got
			return nil
		case aai.TranscriptStatusError:
			return backoff.Permanent(fmt.Errorf("transcription error: %s", deref(got.Error)))
		default:
			return fmt.Errorf("transcript %s still %s", id, got.Status)
		}
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.pollInitial
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = c.pollDeadline

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return aai.Transcript{}, err
	}
	return result, nil
}

func speechModelFor(modelSize string) aai.SpeechModel {
	switch modelSize {
	case "nano":
		return aai.SpeechModelNano
	default:
		return aai.SpeechModelBest
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
