package sentence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// AnalyzeResult is the outcome of Analyze: the stored record and whether
// this call created it.
type AnalyzeResult struct {
	Sentence *domain.Sentence
	Created  bool
}

// Analyze is the end-to-end flow for new input text: if the exact text is
// already stored, the existing record is returned without calling the
// generator; otherwise the analysis is generated (with retries), attached to
// the original text and stored with a dedup re-check.
func (s *Service) Analyze(ctx context.Context, text string) (*AnalyzeResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("text", "missing or empty")
	}

	exists, err := s.Exists(ctx, text)
	if err != nil {
		return nil, err
	}
	if exists.Found {
		s.log.InfoContext(ctx, "sentence already analyzed",
			slog.String("sentence_id", exists.ID.String()),
		)
		existing, err := s.GetByID(ctx, exists.ID)
		if err != nil {
			return nil, err
		}
		return &AnalyzeResult{Sentence: existing}, nil
	}

	analysis, err := s.gen.Analysis(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("analyze sentence: %w", err)
	}

	stored, err := s.Create(ctx, CreateInput{
		Sentence:    text,
		Translation: analysis.Translation,
		Parts:       analysis.Parts,
	})
	if err == nil {
		return &AnalyzeResult{Sentence: stored, Created: true}, nil
	}

	// Another request may have stored the same text between the exists check
	// and the write; treat that as the existing-record path.
	var dup *domain.DuplicateError
	if errors.As(err, &dup) {
		existing, getErr := s.GetByID(ctx, dup.ExistingID)
		if getErr != nil {
			return nil, getErr
		}
		return &AnalyzeResult{Sentence: existing}, nil
	}
	return nil, err
}
