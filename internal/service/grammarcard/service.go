// Package grammarcard manages the annotation sub-collection nested inside a
// sentence record: append with fresh id assignment, idempotent removal by
// id, and the explain flow that generates a card from a part selection.
package grammarcard

import (
	"context"
	"log/slog"

	"github.com/gverdi/frasario-backend/internal/domain"
)

type collectionStore interface {
	Load(ctx context.Context) (*domain.Collection, error)
	Update(ctx context.Context, fn func(*domain.Collection) error) error
}

type explainer interface {
	Explanation(ctx context.Context, sentence string, selected []domain.SelectedPart) (string, error)
}

// Service provides grammar card operations.
type Service struct {
	store collectionStore
	gen   explainer
	log   *slog.Logger
}

// NewService creates a GrammarCard service.
func NewService(log *slog.Logger, store collectionStore, gen explainer) *Service {
	return &Service{
		store: store,
		gen:   gen,
		log:   log.With("service", "grammarcard"),
	}
}

// AppendInput is a grammar card without an id, ready for insertion.
type AppendInput struct {
	SelectedText string
	Explanation  string
	Parts        []domain.SelectedPart
}
