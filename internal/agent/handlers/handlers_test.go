package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/travelmock"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) // a Sunday

func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		t := next
		next = next.Add(time.Minute)
		return t
	}
}

func newState(intent router.Intent, params map[string]any) *agent.State {
	st := agent.NewState("", nil, agent.WithClock(steppingClock(t0)))
	st.Intent = intent
	st.Parameters = params
	return st
}

func travelData(t *testing.T) *travelmock.Provider {
	t.Helper()
	p, err := travelmock.New()
	require.NoError(t, err)
	return p
}

func dateParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	return p
}

func TestDraft_CreatedAtSetOnce(t *testing.T) {
	h := handlers.NewDraft(log.NewNop())
	st := newState(router.IntentStartDraft, map[string]any{"destination": "Paris"})

	st = h.Handle(context.Background(), st)
	assert.Equal(t, "Paris", st.Draft.Destination)
	assert.Equal(t, t0, st.Draft.CreatedAt)

	st.Intent = router.IntentUpdateDraft
	st.Parameters = map[string]any{"travelers": 2}
	st = h.Handle(context.Background(), st)

	assert.Equal(t, t0, st.Draft.CreatedAt)
	assert.Equal(t, t0.Add(time.Minute), st.Draft.LastModified)
	assert.Equal(t, "Paris", st.Draft.Destination)
	assert.Equal(t, 2, st.Draft.Travelers)
}

func TestDraft_Preferences(t *testing.T) {
	h := handlers.NewDraft(log.NewNop())
	ctx := context.Background()
	st := newState(router.IntentStartDraft, map[string]any{"preferences": map[string]any{"pace": "slow"}})

	st = h.Handle(ctx, st)
	st.Parameters = map[string]any{"preferences": []any{"art", "food"}}
	st = h.Handle(ctx, st)
	st.Parameters = map[string]any{"preferences": "boutique hotels"}
	st = h.Handle(ctx, st)

	assert.Equal(t, map[string]any{
		"pace":      "slow",
		"interests": []any{"art", "food"},
		"general":   "boutique hotels",
	}, st.Draft.Preferences)
}

func TestDraft_ActivitiesAppend(t *testing.T) {
	h := handlers.NewDraft(log.NewNop())
	ctx := context.Background()
	st := newState(router.IntentStartDraft, map[string]any{"activities": []any{"Louvre"}})

	st = h.Handle(ctx, st)
	st.Parameters = map[string]any{"activities": []any{"Seine cruise"}}
	st = h.Handle(ctx, st)
	st.Parameters = map[string]any{"activities": "not a list"}
	st = h.Handle(ctx, st)

	assert.Equal(t, []any{"Louvre", "Seine cruise"}, st.Draft.Activities)
}

func TestDraft_NoOp(t *testing.T) {
	h := handlers.NewDraft(log.NewNop())

	t.Run("other intent", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{"destination": "Paris"}))
		assert.True(t, st.Draft.IsEmpty())
	})

	t.Run("nothing truthy", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentUpdateDraft, map[string]any{
			"destination": "", "travelers": 0, "dates": map[string]any{},
		}))
		assert.True(t, st.Draft.CreatedAt.IsZero())
	})

	t.Run("loose traveler count", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentStartDraft, map[string]any{
			"destination": "Paris",
			"travelers":   "2 adults",
			"budget":      3000,
		}))
		assert.Equal(t, "Paris", st.Draft.Destination)
		assert.Equal(t, 2, st.Draft.Travelers)
		assert.Equal(t, 3000, st.Draft.Budget)
		assert.False(t, st.Draft.CreatedAt.IsZero())
	})

	t.Run("unreadable field does not block the others", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentStartDraft, map[string]any{
			"destination": map[string]any{"city": "Paris"},
			"travelers":   "a few",
			"budget":      "around 3000",
		}))
		assert.Equal(t, "", st.Draft.Destination)
		assert.Equal(t, 0, st.Draft.Travelers)
		assert.Equal(t, "around 3000", st.Draft.Budget)
		assert.False(t, st.Draft.CreatedAt.IsZero())
	})
}

func TestFlight(t *testing.T) {
	h := handlers.NewFlight(travelData(t), dateParser(t), log.NewNop())

	t.Run("search", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{
			"destination":    "Paris",
			"departure_date": "tomorrow",
			"return_date":    "June 22",
		}))
		require.Len(t, st.FlightResults, 5)
		assert.Equal(t, "2025-06-02", st.FlightResults[0].DepartureDate)
		assert.Equal(t, "2025-06-22", st.FlightResults[0].ReturnDate)
		assert.Equal(t, "New York", st.FlightResults[0].DepartureCity)
		assert.InDelta(t, 879.99, st.FlightResults[0].Price, 0.001)
	})

	t.Run("unknown date passes through", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{
			"destination":    "Paris",
			"departure_date": "mid-summer",
		}))
		require.NotEmpty(t, st.FlightResults)
		assert.Equal(t, "mid-summer", st.FlightResults[0].DepartureDate)
	})

	t.Run("missing date", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{"destination": "Paris"}))
		assert.Empty(t, st.FlightResults)
	})

	t.Run("spelled-out passenger count", func(t *testing.T) {
		one := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{
			"destination": "Paris", "departure_date": "2025-06-15",
		}))
		two := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{
			"destination": "Paris", "departure_date": "2025-06-15", "travelers": "two",
		}))
		require.Len(t, two.FlightResults, 5)
		assert.InDelta(t, 2*one.FlightResults[0].Price, two.FlightResults[0].Price, 0.02)
	})

	t.Run("unreadable passenger count still searches", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentSearchFlights, map[string]any{
			"destination": "Paris", "departure_date": "2025-06-15", "travelers": "the whole family",
		}))
		assert.Len(t, st.FlightResults, 5)
	})

	t.Run("fallback label is not searched", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentFlightSearch, map[string]any{
			"destination": "Paris", "departure_date": "2025-06-15",
		}))
		assert.Empty(t, st.FlightResults)
	})
}

func TestHotel(t *testing.T) {
	h := handlers.NewHotel(travelData(t), nil, log.NewNop())

	st := h.Handle(context.Background(), newState(router.IntentSearchHotels, map[string]any{
		"destination": "Paris",
		"check_in":    "2025-06-15",
		"check_out":   "2025-06-22",
	}))
	require.Len(t, st.HotelResults, 5)
	assert.Equal(t, "2025-06-15", st.HotelResults[0].CheckIn)

	st = h.Handle(context.Background(), newState(router.IntentSearchHotels, map[string]any{"check_in": "2025-06-15"}))
	assert.Empty(t, st.HotelResults)
}

func TestInfo(t *testing.T) {
	h := handlers.NewInfo(travelData(t), log.NewNop())

	t.Run("generic fallback for uncurated city", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentGetInfo, map[string]any{
			"topic": "weather", "destination": "Tokyo",
		}))
		info, ok := st.Parameters[handlers.InfoResultKey].(map[string]any)
		require.True(t, ok)
		weather, ok := info["weather"].(map[string]any)
		require.True(t, ok, "weather section missing: %v", info)
		for _, season := range []string{"spring", "summer", "fall", "winter"} {
			assert.Contains(t, weather, season)
		}
	})

	t.Run("missing topic", func(t *testing.T) {
		st := h.Handle(context.Background(), newState(router.IntentGetInfo, map[string]any{"destination": "Tokyo"}))
		assert.NotContains(t, st.Parameters, handlers.InfoResultKey)
	})
}

func TestNewRegistry(t *testing.T) {
	r := handlers.NewRegistry(travelData(t), nil, log.NewNop())
	assert.Equal(t, []router.Step{router.StepDraft, router.StepFlight, router.StepHotel, router.StepInfo}, r.Steps())
}
