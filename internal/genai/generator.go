package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gverdi/frasario-backend/internal/domain"
)

// GenerateFunc is the external generation call: prompt in, raw text out.
// It may fail outright or return malformed text; the Generator owns turning
// that into a validated record or a single opaque failure.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// Generator orchestrates generation attempts: each attempt calls the
// generation function and pipes the output through Extract and the use-case
// decoder. Transport, extraction and validation failures all consume an
// attempt; after the last one a single opaque error is surfaced and the
// underlying cause is only logged.
type Generator struct {
	generate       GenerateFunc
	targetLanguage string
	attempts       int
	delay          time.Duration
	log            *slog.Logger
}

// NewGenerator creates a Generator with the given retry policy.
// attempts is the total number of attempts (minimum 1); delay is the fixed
// wait between attempts.
func NewGenerator(log *slog.Logger, generate GenerateFunc, targetLanguage string, attempts int, delay time.Duration) *Generator {
	if attempts < 1 {
		attempts = 1
	}
	return &Generator{
		generate:       generate,
		targetLanguage: targetLanguage,
		attempts:       attempts,
		delay:          delay,
		log:            log.With("component", "generator"),
	}
}

// Analysis generates the analysis record for the given sentence text.
func (g *Generator) Analysis(ctx context.Context, text string) (*Analysis, error) {
	var result *Analysis
	err := g.run(ctx, "analysis", analysisPrompt(text, g.targetLanguage), func(doc json.RawMessage) error {
		a, err := decodeAnalysis(doc)
		if err != nil {
			return err
		}
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Explanation generates the grammar explanation for a selection of parts
// from the given sentence.
func (g *Generator) Explanation(ctx context.Context, sentence string, selected []domain.SelectedPart) (string, error) {
	var result string
	err := g.run(ctx, "explanation", explanationPrompt(sentence, selected, g.targetLanguage), func(doc json.RawMessage) error {
		expl, err := decodeExplanation(doc)
		if err != nil {
			return err
		}
		result = expl
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

// run is the bounded retry loop. decode must reject documents that fail the
// use case's validation contract; its error counts like any other failure.
func (g *Generator) run(ctx context.Context, kind, prompt string, decode func(json.RawMessage) error) error {
	var lastErr error

	for attempt := 1; attempt <= g.attempts; attempt++ {
		if attempt > 1 {
			if err := g.wait(ctx); err != nil {
				return err
			}
		}

		text, err := g.generate(ctx, prompt)
		if err != nil {
			lastErr = fmt.Errorf("generation call: %w", err)
			g.log.Warn("generation attempt failed",
				slog.String("kind", kind),
				slog.Int("attempt", attempt),
				slog.String("error", lastErr.Error()),
			)
			continue
		}

		doc, err := Extract(text)
		if err != nil {
			lastErr = err
			g.log.Warn("generation attempt failed",
				slog.String("kind", kind),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			continue
		}

		if err := decode(doc); err != nil {
			lastErr = err
			g.log.Warn("generation attempt failed",
				slog.String("kind", kind),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			continue
		}

		return nil
	}

	g.log.Error("generation attempts exhausted",
		slog.String("kind", kind),
		slog.Int("attempts", g.attempts),
		slog.String("last_error", lastErr.Error()),
	)
	return domain.ErrGenerationFailed
}

// wait sleeps for the configured delay, honoring context cancellation.
func (g *Generator) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
