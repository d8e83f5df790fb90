package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"
	"github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/pkg/config"
)

// SummarizerClient is a minimal client for a hosted-inference summarization
// API (HuggingFace inference protocol: POST /models/{id})
type SummarizerClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewSummarizerClient creates a summarizer client using values from the
// provided config. Pass a nil config to fall back to environment variables.
func NewSummarizerClient(cfg *config.SummarizerConfig) *SummarizerClient {
	var apiKey, base string
	if cfg != nil {
		apiKey = cfg.APIKey
		base = cfg.BaseURL
	}
	if apiKey == "" {
		apiKey = os.Getenv("SUMMARIZER_API_KEY")
	}
	if base == "" {
		base = os.Getenv("SUMMARIZER_API_URL")
		if base == "" {
			base = "https://api-inference.huggingface.co"
		}
	}

	return &SummarizerClient{
		baseURL: base,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// summarizeRequest is the inference payload. DoSample is always false so the
// call is greedy and reproducible for identical inputs and parameters.
type summarizeRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxLength int  `json:"max_length"`
		MinLength int  `json:"min_length"`
		DoSample  bool `json:"do_sample"`
	} `json:"parameters"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type summarizeResult struct {
	SummaryText string `json:"summary_text"`
}

// WarmUp loads the model on the inference host by running a tiny blocking
// inference with wait_for_model set. Idempotent per model identifier.
func (s *SummarizerClient) WarmUp(ctx context.Context, model string) error {
	_, err := s.infer(ctx, model, "warm up", 20, 5)
	if err != nil {
		return fmt.Errorf("warm up %s: %w", model, err)
	}
	return nil
}

// Summarize runs one deterministic inference call for the given model
func (s *SummarizerClient) Summarize(ctx context.Context, model, text string, maxLength, minLength int) (string, error) {
	return s.infer(ctx, model, text, maxLength, minLength)
}

func (s *SummarizerClient) infer(ctx context.Context, model, text string, maxLength, minLength int) (string, error) {
	var payload summarizeRequest
	payload.Inputs = text
	payload.Parameters.MaxLength = maxLength
	payload.Parameters.MinLength = minLength
	payload.Parameters.DoSample = false
	payload.Options.WaitForModel = true

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := s.baseURL + "/models/" + model
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrSummarizerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: summarizer returned status %d", entities.ErrSummarizerUnavailable, resp.StatusCode)
	}

	var results []summarizeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", entities.ErrSummarizerUnavailable, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w: empty response", entities.ErrSummarizerUnavailable)
	}
	return results[0].SummaryText, nil
}
