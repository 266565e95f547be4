package handlers

// Log prefixes
const (
	LogPrefixDraft  = "internal.agent.handlers.Draft"
	LogPrefixFlight = "internal.agent.handlers.Flight"
	LogPrefixHotel  = "internal.agent.handlers.Hotel"
	LogPrefixInfo   = "internal.agent.handlers.Info"
)

// InfoResultKey is the parameter under which the info handler stores the
// looked-up facts.
const InfoResultKey = "info_result"
