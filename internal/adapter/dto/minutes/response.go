package minutes

import "github.com/pooja-singhh/Automated-Meeting-Minutes-Generator/internal/domain/entities"

// GenerateResponse carries the structured minutes plus the flattened text
type GenerateResponse struct {
	InvocationID string                  `json:"invocation_id"`
	Minutes      entities.MeetingMinutes `json:"minutes"`
	Rendered     string                  `json:"rendered"`
	ArtifactName string                  `json:"artifact_name"`
}

// ModelsResponse describes the supported summarization models and the
// accepted parameter ranges
type ModelsResponse struct {
	Models    []string    `json:"models"`
	MaxLength RangeBounds `json:"max_length"`
	MinLength RangeBounds `json:"min_length"`
}

// RangeBounds is one slider range
type RangeBounds struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}
