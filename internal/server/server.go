// Package server exposes the satire service over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Yates-Labs/satirist/internal/orchestrator"
	"github.com/Yates-Labs/satirist/internal/request"
)

const (
	maxBodyBytes    = 64 << 10
	shutdownTimeout = 10 * time.Second
	headerRequestID = "X-Request-ID"
)

// Handler serves one generation request.
type Handler interface {
	Handle(ctx context.Context, raw request.Raw) (orchestrator.Response, error)
}

type errorBody struct {
	Error string `json:"error"`
}

// Server routes HTTP requests to a Handler.
type Server struct {
	handler Handler
	logger  *slog.Logger
	ceiling time.Duration
	router  chi.Router
}

// New builds the router. ceiling bounds the lifetime of each request and
// must exceed the upstream deadline.
func New(h Handler, logger *slog.Logger, ceiling time.Duration) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{handler: h, logger: logger, ceiling: ceiling}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(recoverer(logger))
	if ceiling > 0 {
		r.Use(middleware.Timeout(ceiling))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/generate", s.handleGenerate)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if s.ceiling > 0 {
		srv.WriteTimeout = s.ceiling + 5*time.Second
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	raw := decodeRaw(io.LimitReader(r.Body, maxBodyBytes))

	resp, err := s.handler.Handle(r.Context(), raw)
	if err != nil {
		if errors.Is(err, request.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		// Handlers only return validation errors; anything else still gets
		// fallback content rather than an error status.
		writeJSON(w, http.StatusOK, orchestrator.Recovered(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeRaw reads the JSON body leniently: an undecodable body reads as an
// empty object and scalar field values are converted to text.
func decodeRaw(body io.Reader) request.Raw {
	var m map[string]any
	if err := json.NewDecoder(body).Decode(&m); err != nil {
		return request.Raw{}
	}
	return request.Raw{
		Word:     text(m["word"]),
		Lang:     text(m["lang"]),
		Language: text(m["language"]),
		Mode:     text(m["mode"]),
		Screen:   text(m["screen"]),
		Locale:   text(m["locale"]),
		Length:   text(m["length"]),
		Style:    text(m["style"]),
	}
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(orchestrator.WithRequestID(r.Context(), id)))
	})
}

func accessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"remote", r.RemoteAddr,
				"request_id", w.Header().Get(headerRequestID),
				"elapsed", time.Since(start))
		})
	}
}

// recoverer converts a panic into a normal response with fallback content.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("recovered from panic", "panic", rec, "path", r.URL.Path)
				writeJSON(w, http.StatusOK, orchestrator.Recovered(fmt.Sprintf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
