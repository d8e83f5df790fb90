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

// AnalyzerClient is a minimal client for the linguistic analyzer sidecar
// (sentence segmentation + named entity recognition)
type AnalyzerClient struct {
	baseURL string
	client  *http.Client
}

// NewAnalyzerClient creates an analyzer client using the provided config.
// Pass a nil config to fall back to environment variables.
func NewAnalyzerClient(cfg *config.AnalyzerConfig) *AnalyzerClient {
	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("ANALYZER_API_URL")
		if base == "" {
			base = "http://localhost:8090"
		}
	}

	return &AnalyzerClient{
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SegmentRequest is the payload for /v1/segment
type SegmentRequest struct {
	Text string `json:"text"`
}

// SegmentResponse is the analyzer response shape
type SegmentResponse struct {
	Sentences []struct {
		Text     string `json:"text"`
		Entities []struct {
			Text  string `json:"text"`
			Label string `json:"label"`
		} `json:"entities"`
	} `json:"sentences"`
}

// SegmentAndTag splits text into sentences with their recognized entities,
// in analyzer report order.
func (a *AnalyzerClient) SegmentAndTag(ctx context.Context, text string) ([]entities.Sentence, error) {
	b, err := json.Marshal(SegmentRequest{Text: text})
	if err != nil {
		return nil, err
	}

	endpoint := a.baseURL + "/v1/segment"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrAnalyzerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: analyzer returned status %d", entities.ErrAnalyzerUnavailable, resp.StatusCode)
	}

	var sr SegmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", entities.ErrAnalyzerUnavailable, err)
	}

	sentences := make([]entities.Sentence, 0, len(sr.Sentences))
	for _, s := range sr.Sentences {
		sentence := entities.Sentence{Text: s.Text}
		for _, e := range s.Entities {
			sentence.Entities = append(sentence.Entities, entities.Entity{
				Text:     e.Text,
				Category: entities.EntityCategory(e.Label),
			})
		}
		sentences = append(sentences, sentence)
	}
	return sentences, nil
}
