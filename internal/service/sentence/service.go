// Package sentence owns the persistent collection of analyzed sentences:
// deduplication by content, identifier assignment, and the end-to-end
// analyze flow that turns new input text into a stored record.
package sentence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
	"github.com/gverdi/frasario-backend/internal/genai"
)

type collectionStore interface {
	Load(ctx context.Context) (*domain.Collection, error)
	Update(ctx context.Context, fn func(*domain.Collection) error) error
}

type analyzer interface {
	Analysis(ctx context.Context, text string) (*genai.Analysis, error)
}

// Service provides sentence store operations.
type Service struct {
	store collectionStore
	gen   analyzer
	log   *slog.Logger
}

// NewService creates a Sentence service.
func NewService(log *slog.Logger, store collectionStore, gen analyzer) *Service {
	return &Service{
		store: store,
		gen:   gen,
		log:   log.With("service", "sentence"),
	}
}

// CreateInput is a sentence record without an id, ready for dedup-checked
// insertion.
type CreateInput struct {
	Sentence    string
	Translation string
	Parts       []domain.Part
}

// ExistsResult reports whether sentence content is already stored and, if
// so, under which id.
type ExistsResult struct {
	Found bool
	ID    uuid.UUID
}
