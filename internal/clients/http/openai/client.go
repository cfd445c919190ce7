// Package openai is a minimal chat-completions client for the adjudication
// service. Only the request shape the resolver needs is modelled: an ordered
// list of role-tagged messages, a model identifier, and the first choice of
// the response.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL targets the hosted OpenAI API.
const DefaultBaseURL = "https://api.openai.com/v1"

// Client calls the chat-completions endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL points the client at a different endpoint, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient instantiates the client with sane defaults.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai API key is required")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// ChatMessage is one role-tagged entry in the conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// CreateChatCompletion sends the messages to the model and returns the first
// choice's content.
func (c *Client) CreateChatCompletion(ctx context.Context, model string, messages []ChatMessage) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", errors.New("openai client not configured")
	}
	if strings.TrimSpace(model) == "" {
		return "", errors.New("model identifier is required")
	}
	if len(messages) == 0 {
		return "", errors.New("at least one message is required")
	}

	body, err := json.Marshal(chatCompletionRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encode chat completion request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call chat completion API: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read chat completion response: %w", err)
	}

	var decoded chatCompletionResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("decode chat completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion API status %d: %s", resp.StatusCode, errorMessage(decoded.Error, resp.Status))
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("chat completion response contained no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

func errorMessage(apiErr *apiError, fallback string) string {
	if apiErr == nil {
		return fallback
	}
	if msg := strings.TrimSpace(apiErr.Message); msg != "" {
		return msg
	}
	return fallback
}
