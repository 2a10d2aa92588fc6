package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Gemini's OpenAI-compatible chat endpoint.
const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

const defaultModel = "gemini-1.5-flash"

var errMissingAPIKey = fmt.Errorf("GOOGLE_API_KEY is required")

// ErrEmptyResponse reports that the model call succeeded but produced no
// usable text. Distinct from CallError so callers can tell an empty answer
// apart from a transport or auth failure.
var ErrEmptyResponse = errors.New("model returned an empty response")

// CallError wraps a transport, auth, or API failure from the model call.
type CallError struct {
	Err error
}

func (e *CallError) Error() string {
	return "model call failed: " + e.Err.Error()
}

func (e *CallError) Unwrap() error {
	return e.Err
}

type Client struct {
	api         *openai.Client
	model       string
	temperature float32
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errMissingAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 90 * time.Second
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = baseURL
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}

	return &Client{
		api:         openai.NewClientWithConfig(clientCfg),
		model:       model,
		temperature: temperature,
	}, nil
}

// Chat sends a single-turn prompt and returns the model's text response.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &CallError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}

	return content, nil
}
