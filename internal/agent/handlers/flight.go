package handlers

import (
	"context"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/travelmock"
)

// Flight runs the mock flight search.
type Flight struct {
	data  TravelData
	dates *datemath.Parser
	l     log.Logger
}

// Step implements agent.Handler.
func (h *Flight) Step() router.Step { return router.StepFlight }

// Handle searches flights when a destination and departure date are known.
// Missing either one leaves the results empty.
func (h *Flight) Handle(ctx context.Context, st *agent.State) *agent.State {
	if st.Intent != router.IntentSearchFlights {
		return st
	}

	slots, err := st.Slots()
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixFlight, err)
		return st
	}
	p := slots.(*router.FlightSlots)
	if p.Destination == "" || p.DepartureDate == "" {
		h.l.Debugf(ctx, "%s: destination or departure date missing, skipping search", LogPrefixFlight)
		return st
	}

	st.FlightResults = h.data.SearchFlights(travelmock.FlightQuery{
		Destination:   p.Destination,
		DepartureDate: normalizeDate(h.dates, p.DepartureDate, st),
		ReturnDate:    normalizeDate(h.dates, p.ReturnDate, st),
		Passengers:    max(p.Travelers, 1),
		DepartureCity: p.DepartureCity,
	})
	h.l.Infof(ctx, "%s: %d flight(s) to %s", LogPrefixFlight, len(st.FlightResults), p.Destination)
	return st
}

// normalizeDate rewrites relative dates ("tomorrow", "next friday") as
// YYYY-MM-DD. Anything the parser does not know is returned unchanged.
func normalizeDate(p *datemath.Parser, value string, st *agent.State) string {
	if p == nil || value == "" {
		return value
	}
	out, _ := p.Normalize(value, st.Now())
	return out
}
