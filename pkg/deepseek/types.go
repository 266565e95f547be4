package deepseek

import (
	"net/http"

	"travel-assistant/pkg/openaicompat"
)

// Config holds DeepSeek client configuration. Empty Model and BaseURL use
// the defaults.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// DeepSeek speaks the OpenAI chat-completion format unchanged.
type (
	Request  = openaicompat.ChatRequest
	Message  = openaicompat.ChatMessage
	Response = openaicompat.ChatResponse
	Choice   = openaicompat.Choice
	Usage    = openaicompat.Usage
	APIError = openaicompat.APIError
)
