package sentence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Create inserts a new sentence record after a dedup check on its content.
// On a hit, the returned error is a *domain.DuplicateError carrying the
// existing record's id. On a miss, a fresh id is assigned, grammarCards is
// initialized to empty, part indices are normalized to positional order, and
// the collection is persisted before the stored record is returned.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Sentence, error) {
	text := strings.TrimSpace(input.Sentence)
	if text == "" {
		return nil, domain.NewValidationError("sentence", "missing or empty")
	}
	if strings.TrimSpace(input.Translation) == "" {
		return nil, domain.NewValidationError("translation", "missing or empty")
	}

	parts := make([]domain.Part, len(input.Parts))
	copy(parts, input.Parts)
	for i := range parts {
		parts[i].Index = i
	}

	stored := domain.Sentence{
		ID:           uuid.New(),
		Sentence:     text,
		Translation:  strings.TrimSpace(input.Translation),
		Parts:        parts,
		GrammarCards: []domain.GrammarCard{},
	}

	err := s.store.Update(ctx, func(c *domain.Collection) error {
		if idx := c.FindByText(text); idx != -1 {
			return &domain.DuplicateError{ExistingID: c.Sentences[idx].ID}
		}
		c.Sentences = append(c.Sentences, stored)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create sentence: %w", err)
	}

	s.log.InfoContext(ctx, "sentence created",
		slog.String("sentence_id", stored.ID.String()),
		slog.Int("parts", len(stored.Parts)),
	)

	return &stored, nil
}
