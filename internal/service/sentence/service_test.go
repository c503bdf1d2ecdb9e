package sentence

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/gverdi/frasario-backend/internal/domain"
	"github.com/gverdi/frasario-backend/internal/genai"
)

// memStore is an in-memory collectionStore with the same load → mutate →
// write-back semantics as the file-backed gateway.
type memStore struct {
	collection domain.Collection
	loadErr    error
	writeErr   error
}

func (m *memStore) Load(ctx context.Context) (*domain.Collection, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	copied := domain.Collection{Sentences: append([]domain.Sentence(nil), m.collection.Sentences...)}
	return &copied, nil
}

func (m *memStore) Update(ctx context.Context, fn func(*domain.Collection) error) error {
	c, err := m.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	m.collection = *c
	return nil
}

type analyzerMock struct {
	AnalysisFunc func(ctx context.Context, text string) (*genai.Analysis, error)
	calls        int
}

func (m *analyzerMock) Analysis(ctx context.Context, text string) (*genai.Analysis, error) {
	m.calls++
	return m.AnalysisFunc(ctx, text)
}

func newTestService(store *memStore, gen *analyzerMock) *Service {
	if gen == nil {
		gen = &analyzerMock{AnalysisFunc: func(ctx context.Context, text string) (*genai.Analysis, error) {
			return nil, errors.New("analyzer should not be called")
		}}
	}
	return NewService(slog.Default(), store, gen)
}

func TestCreate_AssignsIDAndEmptyCards(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(store, nil)

	stored, err := svc.Create(context.Background(), CreateInput{
		Sentence:    "Je suis fatigué",
		Translation: "Sono stanco",
		Parts:       []domain.Part{{Word: "Je"}, {Word: "suis"}, {Word: "fatigué"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stored.ID == uuid.Nil {
		t.Error("stored sentence should have a fresh id")
	}
	if stored.GrammarCards == nil || len(stored.GrammarCards) != 0 {
		t.Errorf("GrammarCards = %v, want initialized empty", stored.GrammarCards)
	}
	for i, p := range stored.Parts {
		if p.Index != i {
			t.Errorf("parts[%d].Index = %d, want positional index", i, p.Index)
		}
	}
	if len(store.collection.Sentences) != 1 {
		t.Errorf("persisted sentences = %d, want 1", len(store.collection.Sentences))
	}
}

func TestCreate_DuplicateContent(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(store, nil)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateInput{Sentence: "Je suis fatigué", Translation: "Sono stanco"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.Create(ctx, CreateInput{Sentence: "Je suis fatigué", Translation: "Sono stanco"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("second create error = %v, want ErrAlreadyExists", err)
	}

	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatal("error should carry *DuplicateError")
	}
	if dup.ExistingID != first.ID {
		t.Errorf("ExistingID = %s, want %s", dup.ExistingID, first.ID)
	}
	if len(store.collection.Sentences) != 1 {
		t.Errorf("collection has %d records, want exactly 1", len(store.collection.Sentences))
	}
}

func TestCreate_Invalid(t *testing.T) {
	t.Parallel()

	svc := newTestService(&memStore{}, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateInput
	}{
		{name: "empty sentence", input: CreateInput{Translation: "x"}},
		{name: "blank sentence", input: CreateInput{Sentence: "   ", Translation: "x"}},
		{name: "empty translation", input: CreateInput{Sentence: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := svc.Create(ctx, tt.input); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Create error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestExists(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(store, nil)
	ctx := context.Background()

	res, err := svc.Exists(ctx, "unseen sentence")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Error("Exists on empty collection should report found=false")
	}

	stored, err := svc.Create(ctx, CreateInput{Sentence: "Je suis fatigué", Translation: "Sono stanco"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err = svc.Exists(ctx, "Je suis fatigué")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.ID != stored.ID {
		t.Errorf("Exists = %+v, want found with id %s", res, stored.ID)
	}

	// Exact match only.
	res, err = svc.Exists(ctx, "je suis fatigué")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Error("Exists should be case-sensitive")
	}

	// Surrounding whitespace is trimmed the same way Create trims it.
	res, err = svc.Exists(ctx, "  Je suis fatigué \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.ID != stored.ID {
		t.Errorf("Exists with padded text = %+v, want found with id %s", res, stored.ID)
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(store, nil)
	ctx := context.Background()

	stored, err := svc.Create(ctx, CreateInput{Sentence: "Je suis fatigué", Translation: "Sono stanco"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(ctx, stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Sentence != "Je suis fatigué" {
		t.Errorf("sentence = %q", got.Sentence)
	}

	if _, err := svc.GetByID(ctx, uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	svc := newTestService(store, nil)
	ctx := context.Background()

	for _, text := range []string{"uno", "due", "tre"} {
		if _, err := svc.Create(ctx, CreateInput{Sentence: text, Translation: "t"}); err != nil {
			t.Fatalf("create %q: %v", text, err)
		}
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list: got %d, want 3", len(list))
	}
	for i, want := range []string{"uno", "due", "tre"} {
		if list[i].Sentence != want {
			t.Errorf("list[%d] = %q, want %q", i, list[i].Sentence, want)
		}
	}
}

func TestAnalyze_NewText(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	gen := &analyzerMock{AnalysisFunc: func(ctx context.Context, text string) (*genai.Analysis, error) {
		return &genai.Analysis{
			Translation: "Sono stanco",
			Parts:       []domain.Part{{Word: "Je", Index: 0}},
		}, nil
	}}
	svc := newTestService(store, gen)

	result, err := svc.Analyze(context.Background(), "  Je suis fatigué  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Created {
		t.Error("Created = false, want true for new text")
	}
	if result.Sentence.Sentence != "Je suis fatigué" {
		t.Errorf("stored text = %q, want trimmed input", result.Sentence.Sentence)
	}
	if gen.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1", gen.calls)
	}
}

func TestAnalyze_ExistingTextSkipsGenerator(t *testing.T) {
	t.Parallel()

	store := &memStore{}
	gen := &analyzerMock{AnalysisFunc: func(ctx context.Context, text string) (*genai.Analysis, error) {
		return &genai.Analysis{Translation: "Sono stanco"}, nil
	}}
	svc := newTestService(store, gen)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, "Je suis fatigué")
	if err != nil {
		t.Fatalf("first analyze: %v", err)
	}

	second, err := svc.Analyze(ctx, "Je suis fatigué")
	if err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if second.Created {
		t.Error("Created = true, want false for existing text")
	}
	if second.Sentence.ID != first.Sentence.ID {
		t.Errorf("second id = %s, want %s", second.Sentence.ID, first.Sentence.ID)
	}
	if gen.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1 (second analyze must not generate)", gen.calls)
	}
}

func TestAnalyze_GenerationFailureSurfaces(t *testing.T) {
	t.Parallel()

	gen := &analyzerMock{AnalysisFunc: func(ctx context.Context, text string) (*genai.Analysis, error) {
		return nil, domain.ErrGenerationFailed
	}}
	svc := newTestService(&memStore{}, gen)

	_, err := svc.Analyze(context.Background(), "Je suis fatigué")
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Errorf("error = %v, want ErrGenerationFailed", err)
	}
}
