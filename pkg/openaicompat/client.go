// Package openaicompat is a minimal client for chat-completion endpoints
// that follow the OpenAI wire format. The qwen and deepseek clients are
// built on it.
package openaicompat

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

const (
	DefaultTimeout = 60 * time.Second
	defaultName    = "openai-compatible"
	completionPath = "/chat/completions"
)

// Client is safe for concurrent use.
type Client struct {
	name       string
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// New validates cfg. APIKey, Model and BaseURL are required.
func New(cfg Config) (*Client, error) {
	name := cfg.Name
	if name == "" {
		name = defaultName
	}
	switch {
	case cfg.APIKey == "":
		return nil, fmt.Errorf("%s: API key is required", name)
	case cfg.Model == "":
		return nil, fmt.Errorf("%s: model is required", name)
	case cfg.BaseURL == "":
		return nil, fmt.Errorf("%s: base URL is required", name)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		name:       name,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *Client) Model() string { return c.model }

// Chat posts req. The caller's request is never modified.
func (c *Client) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	payload := *req
	if payload.Model == "" {
		payload.Model = c.model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal request: %w", c.name, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", c.name, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: API call failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", c.name, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp.StatusCode, respBody)
	}

	var result ChatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%s: failed to parse response: %w", c.name, err)
	}
	return &result, nil
}

func (c *Client) apiError(status int, body []byte) error {
	msg := strings.TrimSpace(string(body))
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Error.Message != "" {
		msg = eb.Error.Message
	}
	return &APIError{Provider: c.name, StatusCode: status, Message: msg}
}

// Text returns the first choice's content, or "" when there is none.
func (r *ChatResponse) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// IsAPIError reports whether err carries an upstream status.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
