package handlers

import (
	"context"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/travelmock"
)

// Hotel runs the mock hotel search.
type Hotel struct {
	data  TravelData
	dates *datemath.Parser
	l     log.Logger
}

// Step implements agent.Handler.
func (h *Hotel) Step() router.Step { return router.StepHotel }

// Handle searches hotels when a destination and check-in date are known.
func (h *Hotel) Handle(ctx context.Context, st *agent.State) *agent.State {
	if st.Intent != router.IntentSearchHotels {
		return st
	}

	slots, err := st.Slots()
	if err != nil {
		h.l.Warnf(ctx, "%s: %v", LogPrefixHotel, err)
		return st
	}
	p := slots.(*router.HotelSlots)
	if p.Destination == "" || p.CheckIn == "" {
		h.l.Debugf(ctx, "%s: destination or check-in missing, skipping search", LogPrefixHotel)
		return st
	}

	st.HotelResults = h.data.SearchHotels(travelmock.HotelQuery{
		Destination:  p.Destination,
		CheckIn:      normalizeDate(h.dates, p.CheckIn, st),
		CheckOut:     normalizeDate(h.dates, p.CheckOut, st),
		Guests:       max(p.Guests, 1),
		Neighborhood: p.Neighborhood,
		Amenities:    p.Amenities,
	})
	h.l.Infof(ctx, "%s: %d hotel(s) in %s", LogPrefixHotel, len(st.HotelResults), p.Destination)
	return st
}
