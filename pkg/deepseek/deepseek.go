package deepseek

import (
	"context"

	"travel-assistant/pkg/openaicompat"
)

// Client implements IDeepSeek.
type Client struct {
	chat *openaicompat.Client
}

// New creates a DeepSeek client.
func New(cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	chat, err := openaicompat.New(openaicompat.Config{
		Name:       providerName,
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, err
	}
	return &Client{chat: chat}, nil
}

func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return c.chat.Chat(ctx, req)
}

func (c *Client) Model() string {
	return c.chat.Model()
}
