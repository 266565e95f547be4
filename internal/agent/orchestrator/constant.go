package orchestrator

// Log prefixes
const (
	LogPrefixRun     = "internal.agent.orchestrator.Run"
	LogPrefixRespond = "internal.agent.orchestrator.respond"
)

// System prompt
const (
	SystemPromptResponder = `You are an AI Travel Assistant helping users plan trips, find flights and hotels, and provide travel information. Be helpful, concise, and friendly. If you don't know something, be honest about it.`

	// ContextHeader introduces the JSON context appended to the system prompt.
	ContextHeader = "\n\nCurrent request context (JSON):\n"
)

// Fallback replies
const (
	FallbackFlight  = "I'm sorry, I'm having trouble accessing flight information right now. Please try again in a moment."
	FallbackHotel   = "I apologize, but I can't retrieve hotel information at the moment. Please try again shortly."
	FallbackWeather = "I'm sorry, I can't access weather information right now. Please try again later."
)

var fallbackGeneric = []string{
	"I'm sorry, I'm having trouble processing your request right now. Could you please try again?",
	"It seems there's a technical issue on my end. Let me try to help you with a simpler response.",
	"I apologize for the inconvenience, but I'm experiencing some difficulties. Please try rephrasing your question.",
}

var weatherKeywords = []string{"weather", "temperature", "forecast"}

// Configuration
const (
	ResponderTemperature = 0.7
)

// Metric label for turns whose intent is not a known label.
const (
	intentLabelOther = "other"
	intentLabelNone  = "none"
)
