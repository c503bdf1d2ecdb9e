package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// Analysis is the validated result of a sentence-analysis generation.
type Analysis struct {
	Translation string
	Parts       []domain.Part
}

// analysisPayload is the loosely-typed wire form of an analysis response.
// Pointer fields distinguish "absent" from "empty" so validation can reject
// a record that merely omits a required key.
type analysisPayload struct {
	Translation *string        `json:"translation"`
	Parts       *[]domain.Part `json:"parts"`
}

// decodeAnalysis unmarshals and validates an extracted analysis document.
// The minimum contract: translation present and non-empty after trimming,
// parts present as a sequence (which may be empty). Part indices are
// normalized to the positional order of the sequence.
func decodeAnalysis(doc json.RawMessage) (*Analysis, error) {
	var payload analysisPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}

	if payload.Translation == nil || strings.TrimSpace(*payload.Translation) == "" {
		return nil, domain.NewValidationError("translation", "missing or empty")
	}
	if payload.Parts == nil {
		return nil, domain.NewValidationError("parts", "missing")
	}

	parts := *payload.Parts
	for i := range parts {
		if !parts[i].Variant.IsValid() {
			parts[i].Variant = domain.VariantOther
		}
		if !parts[i].SpeechPart.IsValid() {
			parts[i].SpeechPart = domain.SpeechOther
		}
		parts[i].Index = i
	}

	return &Analysis{
		Translation: strings.TrimSpace(*payload.Translation),
		Parts:       parts,
	}, nil
}

// explanationPayload is the wire form of a grammar-explanation response,
// `{"explanation": "..."}`.
type explanationPayload struct {
	Explanation *string `json:"explanation"`
}

// decodeExplanation unmarshals and validates an extracted explanation
// document. Fails unless explanation is non-empty after trimming.
func decodeExplanation(doc json.RawMessage) (string, error) {
	var payload explanationPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return "", fmt.Errorf("decode explanation: %w", err)
	}

	if payload.Explanation == nil || strings.TrimSpace(*payload.Explanation) == "" {
		return "", domain.NewValidationError("explanation", "missing or empty")
	}
	return strings.TrimSpace(*payload.Explanation), nil
}
