// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Yates-Labs/satirist/internal/fallback"
	"github.com/Yates-Labs/satirist/internal/generation"
	"github.com/Yates-Labs/satirist/internal/prompt"
)

var ErrInvalid = errors.New("invalid configuration")

// Provider names an upstream text generation vendor.
type Provider string

const (
	ProviderXAI    Provider = "xai"
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

type Config struct {
	Provider Provider `env:"SATIRIST_PROVIDER" envDefault:"xai"`

	XAIAPIKey  string `env:"XAI_API_KEY"`
	XAIModel   string `env:"XAI_MODEL" envDefault:"grok-4-fast-reasoning"`
	XAIBaseURL string `env:"XAI_BASE_URL" envDefault:"https://api.x.ai/v1"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	Temperature float32 `env:"SATIRIST_TEMPERATURE" envDefault:"0"`
	MaxTokens   int     `env:"SATIRIST_MAX_TOKENS" envDefault:"0"`

	// UpstreamTimeout must stay strictly below ResponseCeiling so a response
	// is always written before the platform aborts the request.
	UpstreamTimeout time.Duration `env:"SATIRIST_UPSTREAM_TIMEOUT" envDefault:"18s"`
	ResponseCeiling time.Duration `env:"SATIRIST_RESPONSE_CEILING" envDefault:"25s"`

	FallbackMode  string `env:"SATIRIST_FALLBACK_MODE" envDefault:"templated"`
	PromptVariant string `env:"SATIRIST_PROMPT_VARIANT" envDefault:"standard"`

	Addr string `env:"SATIRIST_ADDR" envDefault:":8080"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// FromEnv parses and validates the configuration.
func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(string(cfg.Provider))))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderXAI, ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalid, c.Provider)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("%w: upstream timeout must be positive", ErrInvalid)
	}
	if c.ResponseCeiling > 0 && c.UpstreamTimeout >= c.ResponseCeiling {
		return fmt.Errorf("%w: upstream timeout %s must be below response ceiling %s",
			ErrInvalid, c.UpstreamTimeout, c.ResponseCeiling)
	}
	if c.MaxTokens < 0 || c.MaxTokens > math.MaxInt32 {
		return fmt.Errorf("%w: max tokens %d out of range", ErrInvalid, c.MaxTokens)
	}
	if _, err := fallback.ParseMode(c.FallbackMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := prompt.ParseVariant(c.PromptVariant); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Generator returns the provider settings for the selected provider. An
// empty APIKey means no upstream is configured, which is a supported
// degraded mode.
func (c Config) Generator() generation.Config {
	gc := generation.Config{
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
	switch c.Provider {
	case ProviderOpenAI:
		gc.APIKey, gc.Model, gc.BaseURL = c.OpenAIAPIKey, c.OpenAIModel, c.OpenAIBaseURL
	case ProviderGemini:
		gc.APIKey, gc.Model = c.GeminiAPIKey, c.GeminiModel
	default:
		gc.APIKey, gc.Model, gc.BaseURL = c.XAIAPIKey, c.XAIModel, c.XAIBaseURL
	}
	return gc
}

// HasCredential reports whether the selected provider can be called.
func (c Config) HasCredential() bool {
	return c.Generator().APIKey != ""
}

// Fallback returns the parsed fallback mode. Validate has already checked it.
func (c Config) Fallback() fallback.Mode {
	m, _ := fallback.ParseMode(c.FallbackMode)
	return m
}

// Variant returns the parsed prompt variant. Validate has already checked it.
func (c Config) Variant() prompt.Variant {
	v, _ := prompt.ParseVariant(c.PromptVariant)
	return v
}
