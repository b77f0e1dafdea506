package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultXAIBaseURL = "https://api.x.ai/v1"
	DefaultXAIModel   = "grok-4-fast-reasoning"
)

// OpenAIGenerator implements TextGenerator against any OpenAI-compatible
// chat completions endpoint. xAI is the default.
type OpenAIGenerator struct {
	client openai.Client
	config Config
}

// NewOpenAIGenerator creates an OpenAI-compatible generator.
// Returns an error if the API key or model is missing.
func NewOpenAIGenerator(config Config) (*OpenAIGenerator, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrInvalidConfig)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("%w: missing model name", ErrInvalidConfig)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		// One bounded attempt; the caller owns the latency budget.
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIGenerator{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// Generate sends the messages as a chat completion and returns the content
// of the first choice.
func (o *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if len(req.Messages) == 0 {
		return "", fmt.Errorf("%w: no messages", ErrInvalidConfig)
	}

	model := req.Model
	if model == "" {
		model = o.config.Model
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: toOpenAIMessages(req.Messages),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	// Set optional parameters if configured
	if o.config.Temperature > 0 {
		params.Temperature = openai.Float(float64(o.config.Temperature))
	}
	if o.config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(o.config.MaxTokens))
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("status %d: %w", apiErr.StatusCode, err)
		}
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no choices returned")
	}

	return completion.Choices[0].Message.Content, nil
}

func toOpenAIMessages(msgs []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
