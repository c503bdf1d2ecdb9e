package grammarcard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Append adds a card to the sentence with the given id. The card receives a
// fresh id; a nil grammarCards slice on the sentence (legacy record) is
// initialized first. Cards are always appended, never inserted.
func (s *Service) Append(ctx context.Context, sentenceID uuid.UUID, input AppendInput) (*domain.GrammarCard, error) {
	if strings.TrimSpace(input.Explanation) == "" {
		return nil, domain.NewValidationError("explanation", "missing or empty")
	}

	card := domain.GrammarCard{
		ID:           uuid.New(),
		SelectedText: input.SelectedText,
		Explanation:  input.Explanation,
		Parts:        append([]domain.SelectedPart(nil), input.Parts...),
	}

	err := s.store.Update(ctx, func(c *domain.Collection) error {
		idx := c.FindByID(sentenceID)
		if idx == -1 {
			return fmt.Errorf("sentence %s: %w", sentenceID, domain.ErrNotFound)
		}
		if c.Sentences[idx].GrammarCards == nil {
			c.Sentences[idx].GrammarCards = []domain.GrammarCard{}
		}
		c.Sentences[idx].GrammarCards = append(c.Sentences[idx].GrammarCards, card)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("append grammar card: %w", err)
	}

	s.log.InfoContext(ctx, "grammar card appended",
		slog.String("sentence_id", sentenceID.String()),
		slog.String("card_id", card.ID.String()),
	)

	return &card, nil
}
