package log

import (
	"context"
	"testing"
)

func TestSplitKV(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		ok   bool
	}{
		{"plain message", []any{"hello"}, false},
		{"message with pairs", []any{"llm ok", "provider", "mock", "tokens", 3}, true},
		{"odd pairs", []any{"llm ok", "provider"}, false},
		{"non-string key", []any{"llm ok", 1, "x"}, false},
		{"non-string message", []any{42, "k", "v"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := splitKV(tt.arg)
			if ok != tt.ok {
				t.Errorf("splitKV(%v) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
		})
	}
}

func TestInit_UnknownLevelDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "verbose", Mode: ModeDevelopment, Encoding: EncodingConsole})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Infof(context.Background(), "hello %s", "world")
}
