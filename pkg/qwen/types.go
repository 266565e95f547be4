package qwen

import (
	"net/http"

	"travel-assistant/pkg/openaicompat"
)

// Config holds Qwen client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Request is a multi-part generation request. Parts of one message are
// joined with newlines on the wire.
type Request struct {
	SystemInstruction *Content
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

type Content struct {
	Role  string
	Parts []Part
}

type Part struct {
	Text string
}

type Response struct {
	Content Content
	Usage   *Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is returned for non-200 answers.
type APIError = openaicompat.APIError
