package grammarcard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Remove deletes the card with the given id from the sentence. It fails with
// ErrNotFound if the sentence does not exist or has no card collection at
// all; removing a card id that is not present is an idempotent success.
func (s *Service) Remove(ctx context.Context, sentenceID, cardID uuid.UUID) error {
	err := s.store.Update(ctx, func(c *domain.Collection) error {
		idx := c.FindByID(sentenceID)
		if idx == -1 {
			return fmt.Errorf("sentence %s: %w", sentenceID, domain.ErrNotFound)
		}
		cards := c.Sentences[idx].GrammarCards
		if cards == nil {
			return fmt.Errorf("sentence %s has no grammar cards: %w", sentenceID, domain.ErrNotFound)
		}

		filtered := make([]domain.GrammarCard, 0, len(cards))
		for _, card := range cards {
			if card.ID != cardID {
				filtered = append(filtered, card)
			}
		}
		c.Sentences[idx].GrammarCards = filtered
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove grammar card: %w", err)
	}

	s.log.InfoContext(ctx, "grammar card removed",
		slog.String("sentence_id", sentenceID.String()),
		slog.String("card_id", cardID.String()),
	)
	return nil
}
