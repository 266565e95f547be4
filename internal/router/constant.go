package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Router prompts
const (
	PromptClassifySystem = `You are an AI assistant that classifies user intents for a travel planning application. Extract the user's intent and any relevant parameters from their message.

Known intents:
1. start_draft: the user starts planning a new trip (destination, dates, travelers, budget, preferences)
2. update_draft: the user changes or adds details of the trip being planned
3. search_flights: the user asks for flights (destination, departure_city, departure_date, return_date, travelers)
4. search_hotels: the user asks for a place to stay (destination, check_in, check_out, guests, neighborhood, amenities)
5. get_info: the user asks about a destination (topic, destination)
6. general_info: anything else

Reply with JSON only, in this format:
{
  "intent": "start_draft|update_draft|search_flights|search_hotels|get_info|general_info",
  "parameters": {}
}`

	// PromptClassifyUser must keep the "classify the intent" wording; the
	// mock language model keys on it.
	PromptClassifyUser = "Based on this message: '%s', classify the intent and extract parameters."

	TimeContextTemplate = `

[Current date]
- Today: %s (%s)
- Tomorrow: %s
- This weekend: %s to %s

Write dates as YYYY-MM-DD when the user gives a day, otherwise keep their wording.`
)

// Router configuration
const (
	RouterTemperature    = 0.2
	RouterFallbackIntent = IntentGeneralInfo

	// UnknownDestination is what the keyword fallback records for a trip
	// planning message it cannot parse.
	UnknownDestination = "Unknown"
)

// Fallback keywords, checked in this order.
var (
	draftKeywords  = []string{"plan", "trip", "visit", "vacation"}
	flightKeywords = []string{"flight", "fly", "plane"}
	hotelKeywords  = []string{"hotel", "stay", "accommodation"}
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed, using keyword fallback"
	ErrMsgJSONParseFailed = "Failed to parse classification, using keyword fallback"
	ErrMsgEmptyResponse   = "Empty LLM response, using keyword fallback"
)
