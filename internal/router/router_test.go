package router

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// stubProvider returns a fixed reply (or error) and records the request.
type stubProvider struct {
	reply string
	err   error
	got   *llmprovider.Request
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{Content: llmprovider.NewTextMessage(llmprovider.RoleAssistant, s.reply)}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-1" }

func newTestRouter(p llmprovider.Provider) *SemanticRouter {
	r := New(p, log.NewNop(), nil)
	r.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return r
}

func TestClassify_MockModel(t *testing.T) {
	r := newTestRouter(llmprovider.NewMockProvider())

	out := r.Classify(context.Background(), "I want to plan a trip to Paris in June", nil)

	assert.Equal(t, IntentStartDraft, out.Intent)
	assert.Equal(t, "Paris", out.Parameters["destination"])
	assert.False(t, out.Fallback)
}

func TestClassify_Request(t *testing.T) {
	stub := &stubProvider{reply: `{"intent":"general_info","parameters":{}}`}
	r := newTestRouter(stub)
	history := []model.Message{
		{Role: model.RoleUser, Content: "hi"},
		{Role: model.RoleAssistant, Content: "hello"},
	}

	r.Classify(context.Background(), "what now?", history)

	require.NotNil(t, stub.got)
	assert.Equal(t, RouterTemperature, stub.got.Temperature)
	require.NotNil(t, stub.got.SystemInstruction)
	assert.Contains(t, stub.got.SystemInstruction.Text(), "Today: 2024-05-01 (Wednesday)")
	assert.Contains(t, stub.got.SystemInstruction.Text(), "This weekend: 2024-05-04 to 2024-05-05")

	require.Len(t, stub.got.Messages, 3)
	assert.Equal(t, llmprovider.RoleUser, stub.got.Messages[0].Role)
	assert.Equal(t, llmprovider.RoleAssistant, stub.got.Messages[1].Role)
	last := stub.got.Messages[2].Text()
	assert.True(t, strings.Contains(last, llmprovider.ClassificationCue), "prompt %q", last)
	assert.Contains(t, last, "'what now?'")
}

func TestClassify_ParsesModelReplies(t *testing.T) {
	tcs := map[string]struct {
		reply      string
		wantIntent Intent
		wantParams map[string]any
	}{
		"plain json": {
			reply:      `{"intent":"search_hotels","parameters":{"destination":"Rome"}}`,
			wantIntent: IntentSearchHotels,
			wantParams: map[string]any{"destination": "Rome"},
		},
		"fenced json": {
			reply:      "```json\n{\"intent\": \"get_info\", \"parameters\": {\"topic\": \"weather\"}}\n```",
			wantIntent: IntentGetInfo,
			wantParams: map[string]any{"topic": "weather"},
		},
		"prose around json": {
			reply:      "Sure! Here it is: {\"intent\":\"update_draft\",\"parameters\":{\"travelers\":3}} Hope that helps.",
			wantIntent: IntentUpdateDraft,
			wantParams: map[string]any{"travelers": float64(3)},
		},
		"missing parameters": {
			reply:      `{"intent":"general_info"}`,
			wantIntent: IntentGeneralInfo,
			wantParams: map[string]any{},
		},
		"unknown intent is kept": {
			reply:      `{"intent":"book_restaurant","parameters":{}}`,
			wantIntent: Intent("book_restaurant"),
			wantParams: map[string]any{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out := newTestRouter(&stubProvider{reply: tc.reply}).Classify(context.Background(), "whatever", nil)
			assert.Equal(t, tc.wantIntent, out.Intent)
			assert.Equal(t, tc.wantParams, out.Parameters)
			assert.False(t, out.Fallback)
		})
	}
}

func TestClassify_KeywordFallback(t *testing.T) {
	tcs := map[string]struct {
		input      string
		wantIntent Intent
		wantParams map[string]any
	}{
		"planning":    {"Help me plan a vacation", IntentStartDraft, map[string]any{"destination": UnknownDestination}},
		"flight":      {"I need a flight", IntentFlightSearch, map[string]any{}},
		"hotel":       {"Where should I stay?", IntentHotelSearch, map[string]any{}},
		"draft first": {"plan my flight", IntentStartDraft, map[string]any{"destination": UnknownDestination}},
		"nothing":     {"thanks a lot", IntentGeneralInfo, map[string]any{}},
	}

	providers := map[string]llmprovider.Provider{
		"capability error": &stubProvider{err: errors.New("unavailable")},
		"garbage reply":    &stubProvider{reply: "I think they want to travel"},
		"empty reply":      &stubProvider{reply: "   "},
		"no intent":        &stubProvider{reply: `{"parameters":{}}`},
	}

	for pname, p := range providers {
		for name, tc := range tcs {
			t.Run(pname+"/"+name, func(t *testing.T) {
				out := newTestRouter(p).Classify(context.Background(), tc.input, nil)
				assert.Equal(t, tc.wantIntent, out.Intent)
				assert.Equal(t, tc.wantParams, out.Parameters)
				assert.True(t, out.Fallback)
			})
		}
	}
}

func TestNext(t *testing.T) {
	tcs := map[Intent]Step{
		IntentStartDraft:    StepDraft,
		IntentUpdateDraft:   StepDraft,
		IntentSearchFlights: StepFlight,
		IntentSearchHotels:  StepHotel,
		IntentGetInfo:       StepInfo,
		IntentGeneralInfo:   StepRespond,
		IntentFlightSearch:  StepRespond,
		IntentHotelSearch:   StepRespond,
		"":                  StepRespond,
		"SEARCH_FLIGHTS":    StepRespond,
		"anything at all":   StepRespond,
	}
	for intent, want := range tcs {
		assert.Equal(t, want, Next(intent), "intent %q", intent)
	}
}
