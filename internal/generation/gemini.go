package generation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiGenerator implements TextGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	config Config
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, config Config) (*GeminiGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfig)
	}
	if config.Model == "" {
		config.Model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GenAI client: %w", ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		client: client,
		config: config,
	}, nil
}

// Generate folds system messages into the system instruction and sends the
// remaining messages as user content.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var system, user []string
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
		} else {
			user = append(user, m.Content)
		}
	}
	if len(user) == 0 {
		return "", fmt.Errorf("%w: no user message", ErrInvalidConfig)
	}

	model := req.Model
	if model == "" {
		model = g.config.Model
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}
	if g.config.Temperature > 0 {
		cfg.Temperature = genai.Ptr(g.config.Temperature)
	}
	if g.config.MaxTokens > 0 {
		cfg.MaxOutputTokens = maxOutputTokens(g.config.MaxTokens)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(strings.Join(user, "\n\n"), genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}

	return result.Text(), nil
}

// maxOutputTokens clamps n to the int32 range genai accepts.
func maxOutputTokens(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
