package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SelectedPart is the snapshot of one sentence part a grammar card was
// generated for. It is stored as a copy inside the card, so later changes to
// the parent sentence never retroactively change a card's recorded context.
type SelectedPart struct {
	Word        string      `json:"word"`
	Variant     PartVariant `json:"variant,omitempty"`
	SpeechPart  SpeechPart  `json:"speechPart,omitempty"`
	Translation string      `json:"translation,omitempty"`
	Phonetic    string      `json:"phonetic,omitempty"`
	Index       int         `json:"index"`
}

// GrammarCard is a stored grammatical explanation anchored to a subset of its
// sentence's parts. Cards are appended with a fresh id, deleted by id, and
// never updated in place.
type GrammarCard struct {
	ID           uuid.UUID      `json:"id"`
	SelectedText string         `json:"selectedText"`
	Explanation  string         `json:"explanation"`
	Parts        []SelectedPart `json:"parts"`
}

// SelectParts snapshots the parts at the given positions, sorted by ascending
// index. The indices may arrive in any order (they reflect click order in the
// UI); the returned selection is always in sentence order. Duplicate indices
// are collapsed.
func SelectParts(parts []Part, indices []int) ([]SelectedPart, error) {
	if len(indices) == 0 {
		return nil, NewValidationError("indices", "at least one part must be selected")
	}

	seen := make(map[int]bool, len(indices))
	selected := make([]SelectedPart, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(parts) {
			return nil, NewValidationError("indices", fmt.Sprintf("index %d out of range (sentence has %d parts)", idx, len(parts)))
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true

		p := parts[idx]
		selected = append(selected, SelectedPart{
			Word:        p.Word,
			Variant:     p.Variant,
			SpeechPart:  p.SpeechPart,
			Translation: p.Translation,
			Phonetic:    p.Phonetic,
			Index:       idx,
		})
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].Index < selected[j].Index })
	return selected, nil
}

// SelectionText joins the selected words with single spaces in ascending
// index order, independent of the order the slice currently has.
func SelectionText(selected []SelectedPart) string {
	ordered := make([]SelectedPart, len(selected))
	copy(ordered, selected)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	words := make([]string, len(ordered))
	for i, p := range ordered {
		words[i] = p.Word
	}
	return strings.Join(words, " ")
}
