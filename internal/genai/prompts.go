package genai

import (
	"encoding/json"
	"fmt"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// analysisPrompt builds the sentence-analysis prompt: a full-sentence
// translation into the user's language plus one JSON object per word or
// phrase of the input.
func analysisPrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Your role is to provide important information about a sentence.

For each separate word or piece of the sentence produce a JSON object with these fields:
  "word": the word you are referring to
  "variant": one of "noun" | "verb" | "adjective" | "adverb" | "other" (omit when not applicable)
  "speechPart": one of "subject" | "object" | "predicate" | "other" (omit when not applicable)
  "translation": the single best translation in the user language according to context, only for translatable words (omit otherwise)
  "phonetic": the phonetic reading when the script needs one, e.g. furigana for kanji or pinyin for Chinese; never for alphabetic scripts (omit otherwise)

Several words may belong to the same speech part: in "my car is broken" the subject is both "my" and "car", and "is broken" is the predicate.

Output ONLY a valid JSON object matching this exact schema:
{
  "translation": "<translation of the full sentence in the user language>",
  "parts": [<the per-word objects, in sentence order>]
}

Rules:
- Output ONLY the JSON, no markdown, no explanations
- Keep the parts in the order they appear in the sentence

User language: %s
The provided text is:
%s`, targetLanguage, text)
}

// explanationPrompt builds the grammar-explanation prompt for a selection of
// parts from an analyzed sentence. The selection snapshot is serialized as
// JSON context. The response must be `{"explanation": "..."}` whose value is
// markdown prose in three sections: introduction, general grammar rule,
// per-part breakdown.
func explanationPrompt(sentence string, selected []domain.SelectedPart, targetLanguage string) string {
	contextJSON, err := json.MarshalIndent(selected, "", "  ")
	if err != nil {
		// A SelectedPart slice always marshals; fall back to the words alone.
		contextJSON = []byte(fmt.Sprintf("%q", domain.SelectionText(selected)))
	}

	return fmt.Sprintf(`You are a grammar tutor. The user selected the text %q inside the sentence %q and wants to understand its grammatical role.

Selected parts with their annotations:
%s

Write the explanation in the user language (%s), as markdown prose structured in three sections:
1. A short introduction of what the selection is doing in this sentence.
2. The general grammar rule at work.
3. A breakdown of each selected part and its contribution.

Output ONLY a valid JSON object in the form:
{"explanation": "<the markdown explanation>"}

No markdown fences, no text outside the JSON object.`, domain.SelectionText(selected), sentence, contextJSON, targetLanguage)
}
