package handlers

import (
	"context"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/log"
)

// Info looks up destination facts.
type Info struct {
	data TravelData
	l    log.Logger
}

// Step implements agent.Handler.
func (h *Info) Step() router.Step { return router.StepInfo }

// Handle stores the facts for topic and destination under
// Parameters[InfoResultKey]. Both are required.
func (h *Info) Handle(ctx context.Context, st *agent.State) *agent.State {
	if st.Intent != router.IntentGetInfo {
		return st
	}

	slots, err := st.Slots()
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixInfo, err)
		return st
	}
	p := slots.(*router.InfoSlots)
	if p.Topic == "" || p.Destination == "" {
		return st
	}

	if st.Parameters == nil {
		st.Parameters = map[string]any{}
	}
	st.Parameters[InfoResultKey] = map[string]any(h.data.DestinationInfo(p.Topic, p.Destination))
	return st
}
