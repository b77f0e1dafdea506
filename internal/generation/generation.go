// Package generation invokes an upstream text generator under a hard
// deadline and turns its answer into a satire result. It defines a
// provider-agnostic TextGenerator interface with implementations for
// OpenAI-compatible endpoints (xAI, OpenAI), Google Gemini, and a
// deterministic mock for tests and dry runs.
package generation

import (
	"context"
	"errors"
)

var (
	ErrTimeout         = errors.New("upstream timeout")
	ErrUpstream        = errors.New("upstream error")
	ErrUnusableContent = errors.New("unusable upstream content")
	ErrInvalidConfig   = errors.New("invalid generator configuration")
)

// Role tags an instruction text.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged instruction text.
type Message struct {
	Role    Role
	Content string
}

// Request is everything a provider needs for one completion.
type Request struct {
	Model    string
	Messages []Message
}

// TextGenerator defines the interface for interacting with language models.
// Implementations must be stateless, thread-safe, and must honor ctx
// cancellation by releasing the in-flight call.
type TextGenerator interface {
	// Generate produces text for the ordered messages using req.Model.
	Generate(ctx context.Context, req Request) (string, error)
}

// Config holds common configuration options for providers.
type Config struct {
	// Model specifies the model identifier (e.g., "grok-4-fast-reasoning")
	Model string

	// APIKey is the authentication key for the provider
	APIKey string

	// BaseURL overrides the provider endpoint (OpenAI-compatible providers only)
	BaseURL string

	// Temperature controls randomness (0 = provider default)
	Temperature float32

	// MaxTokens limits the response length (0 = provider default)
	MaxTokens int
}

// Kind names the failure class of an error returned by Bounded.Generate,
// or "" if err is nil or not a generation failure.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnusableContent):
		return "unusable_content"
	case errors.Is(err, ErrUpstream):
		return "upstream_error"
	default:
		return ""
	}
}
