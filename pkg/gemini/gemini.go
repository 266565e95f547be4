package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

func newClient(cfg Config) *client {
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		endpoint:   fmt.Sprintf("%s/models/%s:generateContent", cfg.APIURL, cfg.Model),
		httpClient: cfg.HTTPClient,
	}
}

func (c *client) Model() string {
	return c.model
}

func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(encodeRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, newAPIError(resp.StatusCode, raw)
	}

	var wire geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return decodeResponse(&wire)
}

func encodeRequest(req *Request) geminiRequest {
	out := geminiRequest{Contents: make([]geminiContent, len(req.Messages))}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &geminiContent{Parts: encodeParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		out.Contents[i] = geminiContent{Role: msg.Role, Parts: encodeParts(msg.Parts)}
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}

func encodeParts(parts []Part) []geminiPart {
	out := make([]geminiPart, len(parts))
	for i, p := range parts {
		out[i] = geminiPart{Text: p.Text}
	}
	return out
}

// decodeResponse keeps only the first candidate. A prompt rejected by the
// safety filters comes back as 200 with no candidates and a block reason.
func decodeResponse(wire *geminiResponse) (*Response, error) {
	if wire.PromptFeedback != nil && wire.PromptFeedback.BlockReason != "" && len(wire.Candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPromptBlocked, wire.PromptFeedback.BlockReason)
	}

	out := &Response{Usage: &Usage{
		InputTokens:  wire.UsageMetadata.PromptTokenCount,
		OutputTokens: wire.UsageMetadata.CandidatesTokenCount,
		TotalTokens:  wire.UsageMetadata.TotalTokenCount,
	}}
	if len(wire.Candidates) == 0 {
		return out, nil
	}

	cand := wire.Candidates[0]
	out.FinishReason = cand.FinishReason
	out.Content.Role = cand.Content.Role
	out.Content.Parts = make([]Part, len(cand.Content.Parts))
	for i, p := range cand.Content.Parts {
		out.Content.Parts[i] = Part{Text: p.Text}
	}
	return out, nil
}
