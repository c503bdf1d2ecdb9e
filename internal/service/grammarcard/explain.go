package grammarcard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Explain generates and stores a grammar card for a selection of parts of
// the given sentence. The indices may arrive in click order; the stored
// selection and its selectedText are always in ascending index order. The
// part snapshot is copied into the card, so later changes to the sentence
// never alter the card's recorded context.
func (s *Service) Explain(ctx context.Context, sentenceID uuid.UUID, indices []int) (*domain.GrammarCard, error) {
	collection, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}
	idx := collection.FindByID(sentenceID)
	if idx == -1 {
		return nil, fmt.Errorf("sentence %s: %w", sentenceID, domain.ErrNotFound)
	}
	parent := collection.Sentences[idx]

	selected, err := domain.SelectParts(parent.Parts, indices)
	if err != nil {
		return nil, err
	}

	explanation, err := s.gen.Explanation(ctx, parent.Sentence, selected)
	if err != nil {
		return nil, fmt.Errorf("explain selection: %w", err)
	}

	return s.Append(ctx, sentenceID, AppendInput{
		SelectedText: domain.SelectionText(selected),
		Explanation:  explanation,
		Parts:        selected,
	})
}
