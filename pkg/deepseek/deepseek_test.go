package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != DefaultModel {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "unknown model", "type": "invalid_request_error"}}`))
			return
		}
		w.Write([]byte(`{
			"id": "x", "model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Hola"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer ts.Close()

	c, err := New(Config{APIKey: "k", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}

	resp, err := c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Hola" {
		t.Errorf("unexpected content %q", resp.Text())
	}

	_, err = c.GenerateContent(context.Background(), &Request{Model: "bogus"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected APIError 400, got %v", err)
	}
	if err.Error() != "deepseek: API error 400: unknown model" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error without api key")
	}
}
