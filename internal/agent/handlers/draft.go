package handlers

import (
	"context"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/log"
)

// Draft folds planning parameters into the trip draft.
type Draft struct {
	l log.Logger
}

// Step implements agent.Handler.
func (h *Draft) Step() router.Step { return router.StepDraft }

// Handle stages destination, dates, travelers and budget when present,
// merges preferences and appends activities. The draft is written only when
// something changed.
func (h *Draft) Handle(ctx context.Context, st *agent.State) *agent.State {
	if st.Intent != router.IntentStartDraft && st.Intent != router.IntentUpdateDraft {
		return st
	}

	slots, err := st.Slots()
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixDraft, err)
		return st
	}
	p := slots.(*router.DraftSlots)

	updates := map[string]any{}
	if p.Destination != "" {
		updates["destination"] = p.Destination
	}
	if model.Truthy(p.Dates) {
		updates["dates"] = p.Dates
	}
	if p.Travelers != 0 {
		updates["travelers"] = p.Travelers
	}
	if model.Truthy(p.Budget) {
		updates["budget"] = p.Budget
	}

	if model.Truthy(p.Preferences) {
		prefs := make(map[string]any, len(st.Draft.Preferences)+1)
		for k, v := range st.Draft.Preferences {
			prefs[k] = v
		}
		switch v := p.Preferences.(type) {
		case map[string]any:
			for k, pv := range v {
				prefs[k] = pv
			}
		case []any, []string:
			prefs["interests"] = v
		default:
			prefs["general"] = v
		}
		updates["preferences"] = prefs
	}

	if items, ok := asList(p.Activities); ok && len(items) > 0 {
		activities := append(make([]any, 0, len(st.Draft.Activities)+len(items)), st.Draft.Activities...)
		updates["activities"] = append(activities, items...)
	}

	if len(updates) > 0 {
		st.MergeDraft(updates)
		h.l.Debugf(ctx, "%s: merged %d field(s) into draft", LogPrefixDraft, len(updates))
	}
	return st
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
