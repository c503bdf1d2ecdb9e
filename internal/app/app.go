package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gverdi/frasario-backend/internal/adapter/jsondb"
	"github.com/gverdi/frasario-backend/internal/config"
	"github.com/gverdi/frasario-backend/internal/genai"
	"github.com/gverdi/frasario-backend/internal/server"
	"github.com/gverdi/frasario-backend/internal/service/grammarcard"
	"github.com/gverdi/frasario-backend/internal/service/sentence"
)

// Run is the application entry point. It loads configuration, wires the
// store, the generation client and the services together, and serves the
// HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store_path", cfg.Store.Path),
		slog.String("model", cfg.LLM.Model),
	)

	store := jsondb.New(cfg.Store.Path)
	client := genai.NewClient(cfg.LLM)
	gen := genai.NewGenerator(logger, client.Generate, cfg.LLM.TargetLanguage, cfg.LLM.Attempts, cfg.LLM.RetryDelay)

	sentences := sentence.NewService(logger, store, gen)
	cards := grammarcard.NewService(logger, store, gen)

	handler := server.NewHandler(logger, sentences, cards)
	router := server.NewRouter(handler, cfg.CORS, BuildVersion())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
