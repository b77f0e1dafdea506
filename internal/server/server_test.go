package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yates-Labs/satirist/internal/fallback"
	"github.com/Yates-Labs/satirist/internal/logging"
	"github.com/Yates-Labs/satirist/internal/orchestrator"
	"github.com/Yates-Labs/satirist/internal/prompt"
	"github.com/Yates-Labs/satirist/internal/request"
)

func newTestServer() *Server {
	svc := orchestrator.New(nil, fallback.NewTemplated(nil), prompt.Standard, logging.Discard())
	return New(svc, logging.Discard(), 2*time.Second)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func TestGenerate_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/api/generate", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", decode(t, rec)["error"])
}

func TestGenerate_MissingWord(t *testing.T) {
	h := newTestServer().Handler()

	for name, body := range map[string]string{
		"empty object": `{}`,
		"blank word":   `{"word":"   "}`,
		"not json":     `word=AI`,
		"no body":      ``,
	} {
		t.Run(name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/generate", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "bad request: word is required", decode(t, rec)["error"])
		})
	}
}

func TestGenerate_FallbackWithoutUpstream(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodPost, "/api/generate", `{"word":"AI","lang":"en","length":"short"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	out := decode(t, rec)
	assert.True(t, strings.HasPrefix(out["satire"], "AI"), "satire: %q", out["satire"])
	assert.Equal(t, "Tech satire", out["type"])
	_, hasError := out["error"]
	assert.False(t, hasError)
}

func TestGenerate_ScalarWordIsText(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodPost, "/api/generate", `{"word":2025,"lang":"en"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode(t, rec)["satire"], "2025")
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestServer().Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Len(t, rec.Header().Get(headerRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(headerRequestID, "fixed-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "fixed-id", rec.Header().Get(headerRequestID))
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestServer().Handler(), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

type panicHandler struct{}

func (panicHandler) Handle(context.Context, request.Raw) (orchestrator.Response, error) {
	panic("handler exploded")
}

func TestGenerate_PanicAnswersWithFallback(t *testing.T) {
	s := New(panicHandler{}, logging.Discard(), time.Second)

	rec := do(t, s.Handler(), http.MethodPost, "/api/generate", `{"word":"AI"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.NotEmpty(t, out["satire"])
	assert.NotEmpty(t, out["type"])
	assert.Contains(t, out["error"], "handler exploded")
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
