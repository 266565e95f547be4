package router

// Intent is the classified purpose of a user message. Values outside the
// constants below are legal and route to the responder.
type Intent string

const (
	IntentStartDraft    Intent = "start_draft"
	IntentUpdateDraft   Intent = "update_draft"
	IntentSearchFlights Intent = "search_flights"
	IntentSearchHotels  Intent = "search_hotels"
	IntentGetInfo       Intent = "get_info"
	IntentGeneralInfo   Intent = "general_info"

	// Labels produced only by the keyword fallback. They are not routed to
	// a search handler.
	IntentFlightSearch Intent = "flight_search"
	IntentHotelSearch  Intent = "hotel_search"
)

// Step names the pipeline stage that follows classification.
type Step string

const (
	StepDraft   Step = "draft"
	StepFlight  Step = "flight"
	StepHotel   Step = "hotel"
	StepInfo    Step = "info"
	StepRespond Step = "respond"
)

// Classification is the outcome of Classify.
type Classification struct {
	Intent     Intent         `json:"intent"`
	Parameters map[string]any `json:"parameters"`

	// Fallback is set when the keyword rules produced the result.
	Fallback bool `json:"-"`
}
