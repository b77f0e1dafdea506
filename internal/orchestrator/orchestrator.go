package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Yates-Labs/satirist/internal/config"
	"github.com/Yates-Labs/satirist/internal/fallback"
	"github.com/Yates-Labs/satirist/internal/generation"
	"github.com/Yates-Labs/satirist/internal/language"
	"github.com/Yates-Labs/satirist/internal/prompt"
	"github.com/Yates-Labs/satirist/internal/request"
)

// Response is what callers receive. Error is set only on degraded paths.
type Response struct {
	Satire string `json:"satire"`
	Type   string `json:"type"`
	Error  string `json:"error,omitempty"`
}

// Service sequences normalization, instruction building, the bounded
// upstream call and the fallback into one response per request.
type Service struct {
	bounded  *generation.Bounded
	fallback fallback.Generator
	variant  prompt.Variant
	logger   *slog.Logger
}

// New creates a service. A nil bounded generator means no upstream is
// configured and every request is served by fb.
func New(bounded *generation.Bounded, fb fallback.Generator, variant prompt.Variant, logger *slog.Logger) *Service {
	if fb == nil {
		fb = fallback.NewTemplated(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		bounded:  bounded,
		fallback: fb,
		variant:  variant,
		logger:   logger,
	}
}

// NewFromConfig wires the provider selected by cfg. A missing credential is
// not an error: the service then runs on fallback output only.
func NewFromConfig(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fb, err := fallback.New(cfg.Fallback())
	if err != nil {
		return nil, fmt.Errorf("failed to create fallback generator: %w", err)
	}

	var bounded *generation.Bounded
	if cfg.HasCredential() {
		gen, err := newTextGenerator(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create text generator: %w", err)
		}
		bounded = generation.NewBounded(gen, cfg.Generator().Model, cfg.UpstreamTimeout)
	} else {
		logger.Warn("no upstream credential configured, serving fallback output only", "provider", cfg.Provider)
	}

	return New(bounded, fb, cfg.Variant(), logger), nil
}

func newTextGenerator(ctx context.Context, cfg config.Config) (generation.TextGenerator, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return generation.NewGeminiGenerator(ctx, cfg.Generator())
	default:
		return generation.NewOpenAIGenerator(cfg.Generator())
	}
}

// Upstream reports whether an upstream generator is configured.
func (s *Service) Upstream() bool {
	return s.bounded != nil
}

// Handle serves one request. The only error it returns wraps
// request.ErrValidation; every other failure degrades to fallback content.
func (s *Service) Handle(ctx context.Context, raw request.Raw) (resp Response, err error) {
	start := time.Now()
	log := s.logger.With("request_id", requestID(ctx))

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("recovered from panic", "panic", rec, "elapsed", time.Since(start))
			resp, err = Recovered(fmt.Sprintf("panic: %v", rec)), nil
		}
	}()

	req, err := request.Normalize(raw)
	if err != nil {
		log.Info("rejected request", "error", err)
		return Response{}, err
	}
	log = log.With("lang", req.Lang, "length", req.Length, "style", req.Style)

	if s.bounded == nil {
		fb := s.fallback.Fallback(req.Word, req.Length, req.Style, req.Lang)
		log.Info("served fallback", "reason", "no upstream", "elapsed", time.Since(start))
		return Response{Satire: fb.Satire, Type: fb.Type}, nil
	}

	instr := prompt.Build(req, s.variant)
	res, genErr := s.bounded.Generate(ctx, instr, req.Lang)
	if genErr != nil {
		fb := s.fallback.Fallback(req.Word, req.Length, req.Style, req.Lang)
		log.Warn("served fallback",
			"reason", generation.Kind(genErr),
			"error", genErr,
			"elapsed", time.Since(start))
		return Response{Satire: fb.Satire, Type: fb.Type, Error: genErr.Error()}, nil
	}

	log.Info("served generated satire", "model", s.bounded.Model(), "elapsed", time.Since(start))
	return Response{Satire: res.Satire, Type: res.Type}, nil
}

// Recovered is the response for an unexpected fault: templated fallback
// content in the home language plus the fault detail.
func Recovered(detail string) Response {
	fb := fallback.NewTemplated(nil).Fallback("", request.Long, request.Smile, language.Home)
	return Response{Satire: fb.Satire, Type: fb.Type, Error: detail}
}

type ctxKey struct{}

// WithRequestID attaches a request id used to correlate log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// requestID returns the id attached to ctx, or a fresh one.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
