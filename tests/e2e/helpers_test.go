//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gverdi/frasario-backend/internal/adapter/jsondb"
	"github.com/gverdi/frasario-backend/internal/config"
	"github.com/gverdi/frasario-backend/internal/genai"
	"github.com/gverdi/frasario-backend/internal/server"
	"github.com/gverdi/frasario-backend/internal/service/grammarcard"
	"github.com/gverdi/frasario-backend/internal/service/sentence"
)

// testServer wraps the full-stack HTTP server for E2E tests. The generation
// provider is replaced by a scripted function so no live API is needed.
type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

func setupTestServer(t *testing.T, generate genai.GenerateFunc) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store := jsondb.New(filepath.Join(t.TempDir(), "sentences_db.json"))
	gen := genai.NewGenerator(log, generate, "Italian (it-IT)", 3, 0)
	sentences := sentence.NewService(log, store, gen)
	cards := grammarcard.NewService(log, store, gen)

	handler := server.NewHandler(log, sentences, cards)
	router := server.NewRouter(handler, config.CORSConfig{AllowedOrigins: "http://localhost:3000"}, "e2e")

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

func respond(responses ...string) genai.GenerateFunc {
	i := 0
	return func(ctx context.Context, prompt string) (string, error) {
		r := responses[i%len(responses)]
		i++
		return r, nil
	}
}

func (ts *testServer) postJSON(t *testing.T, path string, body any) map[string]any {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	return decodeObject(t, resp.Body)
}

func (ts *testServer) getJSON(t *testing.T, path string) (int, []byte) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (ts *testServer) delete(t *testing.T, path string) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, ts.URL+path, nil)
	require.NoError(t, err)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func decodeObject(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func dataField(t *testing.T, body map[string]any) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object in response: %v", body)
	return data
}
