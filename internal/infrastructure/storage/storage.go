package storage

import "context"

// ArtifactStore persists rendered minutes documents under their
// deterministic timestamp-derived names
type ArtifactStore interface {
	SaveMinutes(ctx context.Context, name, content string) error
	ReadMinutes(ctx context.Context, name string) (string, error)
}
