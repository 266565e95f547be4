package qwen

import (
	"context"
	"strings"

	"travel-assistant/pkg/openaicompat"
)

type qwenImpl struct {
	chat *openaicompat.Client
}

func newQwenImpl(cfg Config) (*qwenImpl, error) {
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
	return &qwenImpl{chat: chat}, nil
}

func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := q.chat.Chat(ctx, toChatRequest(req))
	if err != nil {
		return nil, err
	}
	return fromChatResponse(resp), nil
}

func (q *qwenImpl) Model() string {
	return q.chat.Model()
}

func toChatRequest(req *Request) *openaicompat.ChatRequest {
	out := &openaicompat.ChatRequest{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openaicompat.ChatMessage, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != nil {
		out.Messages = append(out.Messages, openaicompat.ChatMessage{
			Role:    roleSystem,
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, msg := range req.Messages {
		out.Messages = append(out.Messages, openaicompat.ChatMessage{
			Role:    msg.Role,
			Content: joinParts(msg.Parts),
		})
	}
	return out
}

func joinParts(parts []Part) string {
	texts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n")
}

func fromChatResponse(resp *openaicompat.ChatResponse) *Response {
	out := &Response{Usage: &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}}
	if len(resp.Choices) == 0 {
		return out
	}
	msg := resp.Choices[0].Message
	out.Content = Content{Role: msg.Role}
	if msg.Content != "" {
		out.Content.Parts = []Part{{Text: msg.Content}}
	}
	return out
}
