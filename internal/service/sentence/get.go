package sentence

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// GetByID returns the sentence with the given id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}

	idx := collection.FindByID(id)
	if idx == -1 {
		return nil, fmt.Errorf("sentence %s: %w", id, domain.ErrNotFound)
	}

	found := collection.Sentences[idx]
	return &found, nil
}

// List returns all stored sentences in insertion order.
func (s *Service) List(ctx context.Context) ([]domain.Sentence, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}
	return collection.Sentences, nil
}

// Exists reports whether the exact sentence text is already stored, and the
// id it is stored under. The text is trimmed the same way Create trims it,
// so a lookup never misses a record the same input would dedup against.
func (s *Service) Exists(ctx context.Context, text string) (ExistsResult, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return ExistsResult{}, fmt.Errorf("sentence exists: %w", err)
	}

	idx := collection.FindByText(strings.TrimSpace(text))
	if idx == -1 {
		return ExistsResult{}, nil
	}
	return ExistsResult{Found: true, ID: collection.Sentences[idx].ID}, nil
}
