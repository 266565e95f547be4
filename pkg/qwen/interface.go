package qwen

import "context"

// IQwen defines the interface for Qwen API client.
// Implementations are safe for concurrent use.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New creates a Qwen client. Empty Model and BaseURL use the defaults.
func New(cfg Config) (IQwen, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	q, err := newQwenImpl(cfg)
	if err != nil {
		return nil, err
	}
	return q, nil
}
