// Package ollama wraps a local Ollama server behind the plain
// text-completion contract the resolvers use: send a prompt string, receive
// a completion string, or fail with ErrUnavailable. Ollama exposes an
// OpenAI-compatible endpoint, so the wire client is the OpenAI SDK.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrUnavailable covers every way the completion service can fail: refused
// connections, timeouts, and empty responses all look the same to callers.
var ErrUnavailable = errors.New("ollama: completion service unavailable")

type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" split_words:"true" default:"http://localhost:11434/v1"`
	Model       string        `envconfig:"MODEL" split_words:"true" default:"gemma3:1b"`
	Temperature float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.5"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Client is a text-in/text-out completion client. A blocking call either
// returns within the configured timeout or is reported as unavailability.
type Client struct {
	api         openaisdk.Client
	model       string
	temperature float64
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	opts := []option.RequestOption{
		// Ollama ignores the key but the SDK requires one.
		option.WithAPIKey("ollama"),
		option.WithRequestTimeout(timeout),
		// A failed call falls back to pattern matching; retrying here only
		// delays that.
		option.WithMaxRetries(0),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	return &Client{
		api:         openaisdk.NewClient(opts...),
		model:       strings.TrimSpace(cfg.Model),
		temperature: float64(cfg.Temperature),
	}
}

// Complete sends one prompt and returns the trimmed completion text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(c.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
		Temperature: openaisdk.Float(c.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUnavailable)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUnavailable)
	}
	return content, nil
}

// Ping probes the service with a trivial prompt.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Complete(ctx, "Hi")
	return err
}
