// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/moodi112/oman-wiki-engine/pkg/types"
)

// openAIBackend implements Backend against the upstream OpenAI-compatible
// chat completions API.
type openAIBackend struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// newOpenAIBackend builds the upstream client. A missing API key is a
// ConfigError; no network call is made here.
func newOpenAIBackend(cfg types.AIConfig) (*openAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, &types.ConfigError{
			Reason: "OpenAI API key not found: set OPENAI_API_KEY in the environment or .env file",
		}
	}

	options := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The façade owns retry policy; disable the SDK's own retries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}

	client := openai.NewClient(options...)

	model := cfg.Model
	if model == "" {
		model = types.DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = types.DefaultTimeout
	}

	return &openAIBackend{client: &client, model: model, timeout: timeout}, nil
}

// Complete sends one chat completion request and returns the raw text.
// Every failure surfaces as an UpstreamError classified by cause.
func (b *openAIBackend) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(b.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		body.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := b.client.Chat.Completions.New(ctx, body)
	if err != nil {
		return "", classifyUpstreamError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &types.UpstreamError{
			Kind:  types.UpstreamMalformed,
			Cause: errors.New("empty completion response"),
		}
	}

	return resp.Choices[0].Message.Content, nil
}

// classifyUpstreamError maps SDK and transport failures to the UpstreamError
// taxonomy so callers can decide on retry.
func classifyUpstreamError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &types.UpstreamError{Kind: types.UpstreamTimeout, Cause: err}
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &types.UpstreamError{Kind: types.UpstreamAuth, Cause: err}
		case http.StatusTooManyRequests:
			return &types.UpstreamError{Kind: types.UpstreamRateLimit, Cause: err}
		}
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return &types.UpstreamError{Kind: types.UpstreamNetwork, Cause: err}
		}
		return &types.UpstreamError{Kind: types.UpstreamMalformed, Cause: err}
	}

	return &types.UpstreamError{Kind: types.UpstreamNetwork, Cause: err}
}
