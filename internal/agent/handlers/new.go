package handlers

import (
	"travel-assistant/internal/agent"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/travelmock"
)

// TravelData is the source of flight, hotel and destination data.
// *travelmock.Provider satisfies it.
type TravelData interface {
	SearchFlights(q travelmock.FlightQuery) []travelmock.Flight
	SearchHotels(q travelmock.HotelQuery) []travelmock.Hotel
	DestinationInfo(topic, destination string) travelmock.Info
}

var _ TravelData = (*travelmock.Provider)(nil)

var (
	_ agent.Handler = (*Draft)(nil)
	_ agent.Handler = (*Flight)(nil)
	_ agent.Handler = (*Hotel)(nil)
	_ agent.Handler = (*Info)(nil)
)

// NewDraft creates the draft handler.
func NewDraft(l log.Logger) *Draft {
	return &Draft{l: l}
}

// NewFlight creates the flight search handler. dates may be nil, in which
// case date slots are passed through as given.
func NewFlight(data TravelData, dates *datemath.Parser, l log.Logger) *Flight {
	return &Flight{data: data, dates: dates, l: l}
}

// NewHotel creates the hotel search handler. dates may be nil.
func NewHotel(data TravelData, dates *datemath.Parser, l log.Logger) *Hotel {
	return &Hotel{data: data, dates: dates, l: l}
}

// NewInfo creates the destination info handler.
func NewInfo(data TravelData, l log.Logger) *Info {
	return &Info{data: data, l: l}
}

// NewRegistry returns a registry holding all four handlers.
func NewRegistry(data TravelData, dates *datemath.Parser, l log.Logger) *agent.Registry {
	r := agent.NewRegistry()
	r.Register(NewDraft(l))
	r.Register(NewFlight(data, dates, l))
	r.Register(NewHotel(data, dates, l))
	r.Register(NewInfo(data, l))
	return r
}
