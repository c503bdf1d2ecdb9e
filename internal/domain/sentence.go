package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// PartVariant classifies a sentence part grammatically.
type PartVariant string

const (
	VariantNoun      PartVariant = "noun"
	VariantVerb      PartVariant = "verb"
	VariantAdjective PartVariant = "adjective"
	VariantAdverb    PartVariant = "adverb"
	VariantOther     PartVariant = "other"
)

// IsValid reports whether v is a known variant. The empty string is valid:
// the analyzer omits the field when no classification applies.
func (v PartVariant) IsValid() bool {
	switch v {
	case "", VariantNoun, VariantVerb, VariantAdjective, VariantAdverb, VariantOther:
		return true
	}
	return false
}

// SpeechPart is the syntactic role of a part within its sentence. Several
// contiguous or non-contiguous parts may share the same role (a multi-word
// subject, for example).
type SpeechPart string

const (
	SpeechSubject   SpeechPart = "subject"
	SpeechObject    SpeechPart = "object"
	SpeechPredicate SpeechPart = "predicate"
	SpeechOther     SpeechPart = "other"
)

// IsValid reports whether p is a known speech part or absent.
func (p SpeechPart) IsValid() bool {
	switch p {
	case "", SpeechSubject, SpeechObject, SpeechPredicate, SpeechOther:
		return true
	}
	return false
}

// Part is one token or phrase of an analyzed sentence. Parts carry no id of
// their own; Index is the zero-based position within the parent's Parts slice
// and serves as the join key between a Part and a grammar card's selection.
type Part struct {
	Word        string      `json:"word"`
	Variant     PartVariant `json:"variant,omitempty"`
	SpeechPart  SpeechPart  `json:"speechPart,omitempty"`
	Translation string      `json:"translation,omitempty"`
	Phonetic    string      `json:"phonetic,omitempty"`
	Index       int         `json:"index"`
}

// UnmarshalJSON accepts both "phonetic" and the legacy "phonetics" key.
// Records written by earlier versions of the app used the plural form.
func (p *Part) UnmarshalJSON(data []byte) error {
	type alias Part
	aux := struct {
		*alias
		Phonetics string `json:"phonetics"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.Phonetic == "" {
		p.Phonetic = aux.Phonetics
	}
	return nil
}

// Sentence is a stored unit of analyzed input text.
//
// The Sentence text is the dedup key: content is unique across the collection
// (case-sensitive exact match). Translation and Parts are set once at creation
// and never mutated. GrammarCards may be nil on records written before cards
// existed; a nil slice is read as "no cards yet", not an error.
type Sentence struct {
	ID           uuid.UUID     `json:"id"`
	Sentence     string        `json:"sentence"`
	Translation  string        `json:"translation"`
	Parts        []Part        `json:"parts"`
	GrammarCards []GrammarCard `json:"grammarCards"`
}

// Collection is the whole persisted document: every store operation loads it,
// mutates it in memory and writes it back as a unit.
type Collection struct {
	Sentences []Sentence `json:"sentences"`
}

// FindByText returns the index of the sentence with exactly matching content,
// or -1. Linear scan; the collection is one user's analyzed sentences.
func (c *Collection) FindByText(text string) int {
	for i := range c.Sentences {
		if c.Sentences[i].Sentence == text {
			return i
		}
	}
	return -1
}

// FindByID returns the index of the sentence with the given id, or -1.
func (c *Collection) FindByID(id uuid.UUID) int {
	for i := range c.Sentences {
		if c.Sentences[i].ID == id {
			return i
		}
	}
	return -1
}
