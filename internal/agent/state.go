package agent

import (
	"time"

	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/travelmock"
)

// DefaultContextWindow is how many recent messages the classifier sees.
const DefaultContextWindow = 5

// State is the record threaded through one turn. A State is owned by a
// single turn; each step receives it, mutates it and hands it on.
type State struct {
	UserInput  string
	History    []model.Message
	Intent     router.Intent
	Parameters map[string]any
	Draft      model.DraftPackage

	// Transient search results, emptied by ClearTransient.
	FlightResults []travelmock.Flight
	HotelResults  []travelmock.Hotel

	FinalResponse string

	now func() time.Time
}

// StateOption configures NewState.
type StateOption func(*State)

// WithDraft seeds the state with a previously saved draft.
func WithDraft(d model.DraftPackage) StateOption {
	return func(s *State) { s.Draft = d.Clone() }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// NewState builds the state for one turn. history is copied, so the
// caller's slice is never modified.
func NewState(input string, history []model.Message, opts ...StateOption) *State {
	s := &State{
		UserInput:  input,
		History:    model.CloneMessages(history),
		Parameters: map[string]any{},
		Draft:      model.NewDraftPackage(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the state's current time.
func (s *State) Now() time.Time {
	return s.now()
}

// AppendMessage records a message with the current time. There is no
// deduplication and no length cap.
func (s *State) AppendMessage(role model.Role, content string) {
	s.History = append(s.History, model.Message{
		Role:      role,
		Content:   content,
		Timestamp: s.now(),
	})
}

// MergeDraft shallow-merges updates into the draft. Recognised keys are
// destination, dates, travelers, budget, preferences and activities; others
// are ignored. LastModified is always bumped and CreatedAt is set only the
// first time.
func (s *State) MergeDraft(updates map[string]any) {
	for k, v := range updates {
		switch k {
		case "destination":
			if str, ok := v.(string); ok {
				s.Draft.Destination = str
			}
		case "dates":
			s.Draft.Dates = v
		case "travelers":
			if n, ok := toInt(v); ok {
				s.Draft.Travelers = n
			}
		case "budget":
			s.Draft.Budget = v
		case "preferences":
			if m, ok := v.(map[string]any); ok {
				s.Draft.Preferences = m
			}
		case "activities":
			if a, ok := v.([]any); ok {
				s.Draft.Activities = a
			}
		}
	}

	s.Draft.LastModified = s.now()
	if s.Draft.CreatedAt.IsZero() {
		s.Draft.CreatedAt = s.Draft.LastModified
	}
}

// RecentContext returns the last n messages of the history, oldest first.
func (s *State) RecentContext(n int) []model.Message {
	if n <= 0 || len(s.History) == 0 {
		return nil
	}
	start := max(len(s.History)-n, 0)
	return model.CloneMessages(s.History[start:])
}

// ClearTransient empties the search results.
func (s *State) ClearTransient() {
	s.FlightResults = s.FlightResults[:0]
	s.HotelResults = s.HotelResults[:0]
}

// Slots decodes the current parameters for the current intent.
func (s *State) Slots() (router.Slots, error) {
	return router.DecodeSlots(s.Intent, s.Parameters)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
