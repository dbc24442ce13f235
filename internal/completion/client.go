package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	groqBaseURL    = "https://api.groq.com/openai/v1"
	requestTimeout = 60 * time.Second

	systemMessage = "You are a helpful AI assistant that provides accurate, concise, and well-structured responses."
)

// ErrMissingAPIKey is returned when no Groq API key is configured.
// Callers treat it as a configuration error, distinct from transient
// completion failures.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is required for LLM calls")

// Completer is the completion contract consumed by the analyzer
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32, maxTokens int, model string) (string, error)
	Configured() bool
}

// Client calls Groq's OpenAI-compatible chat completion API
type Client struct {
	api           *openai.Client
	fallbackModel string
}

// Ensure Client implements Completer
var _ Completer = (*Client)(nil)

// NewClient creates a completion client. An empty API key yields an
// unconfigured client whose Complete always fails with ErrMissingAPIKey.
func NewClient(apiKey, fallbackModel string) *Client {
	c := &Client{fallbackModel: fallbackModel}
	if apiKey == "" {
		return c
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	config.HTTPClient = &http.Client{Timeout: requestTimeout}
	c.api = openai.NewClientWithConfig(config)

	return c
}

// Configured reports whether an API key was supplied
func (c *Client) Configured() bool {
	return c.api != nil
}

// Complete sends the prompt and returns the completion text. On any
// primary-model failure it retries once on the fallback model before
// propagating the error.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float32, maxTokens int, model string) (string, error) {
	if !c.Configured() {
		return "", ErrMissingAPIKey
	}

	text, err := c.complete(ctx, prompt, temperature, maxTokens, model)
	if err == nil {
		return text, nil
	}

	if c.fallbackModel == "" || model == c.fallbackModel {
		return "", err
	}

	logrus.Warnf("Model %s failed (%v), retrying with fallback model %s", model, err, c.fallbackModel)

	text, fallbackErr := c.complete(ctx, prompt, temperature, maxTokens, c.fallbackModel)
	if fallbackErr != nil {
		logrus.Errorf("Fallback model %s also failed: %v", c.fallbackModel, fallbackErr)
		return "", fallbackErr
	}

	return text, nil
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float32, maxTokens int, model string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion with model %s failed: %w", model, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion with model %s returned no choices", model)
	}

	return resp.Choices[0].Message.Content, nil
}
