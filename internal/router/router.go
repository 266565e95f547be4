package router

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
)

// Classify determines user intent and parameters from text. history is the
// recent conversation, oldest first. Classify never fails: when the language
// capability errors or replies with something unparsable, keyword rules
// decide.
func (r *SemanticRouter) Classify(ctx context.Context, text string, history []model.Message) Classification {
	sys := llmprovider.NewTextMessage(llmprovider.RoleSystem, PromptClassifySystem+buildTimeContext(r.now().In(r.loc)))

	msgs := ProviderMessages(history)
	msgs = append(msgs, llmprovider.NewTextMessage(llmprovider.RoleUser, fmt.Sprintf(PromptClassifyUser, text)))

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          msgs,
		Temperature:       RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return keywordFallback(text)
	}

	responseText := resp.Text()
	if strings.TrimSpace(responseText) == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return keywordFallback(text)
	}

	out, err := parseClassification(responseText)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return keywordFallback(text)
	}

	r.l.Infof(ctx, "%s: Classified as %s with %d parameter(s)", LogPrefixClassify, out.Intent, len(out.Parameters))
	return out
}

// parseClassification reads {"intent": ..., "parameters": {...}} out of a
// model reply, tolerating markdown fences and surrounding prose.
func parseClassification(text string) (Classification, error) {
	text = stripFences(text)
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	var out Classification
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return Classification{}, err
	}
	out.Intent = Intent(strings.TrimSpace(string(out.Intent)))
	if out.Intent == "" {
		return Classification{}, fmt.Errorf("missing intent")
	}
	if out.Parameters == nil {
		out.Parameters = map[string]any{}
	}
	return out, nil
}

// Strip markdown code blocks if present (```json ... ```)
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}

func keywordFallback(text string) Classification {
	lower := strings.ToLower(text)
	out := Classification{Intent: RouterFallbackIntent, Parameters: map[string]any{}, Fallback: true}

	switch {
	case containsAny(lower, draftKeywords):
		out.Intent = IntentStartDraft
		out.Parameters["destination"] = UnknownDestination
	case containsAny(lower, flightKeywords):
		out.Intent = IntentFlightSearch
	case containsAny(lower, hotelKeywords):
		out.Intent = IntentHotelSearch
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// ProviderMessages converts conversation history to language capability
// messages, preserving order.
func ProviderMessages(history []model.Message) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(history)+1)
	for _, m := range history {
		out = append(out, llmprovider.NewTextMessage(string(m.Role), m.Content))
	}
	return out
}
