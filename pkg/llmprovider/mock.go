package llmprovider

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
)

var _ Provider = (*MockProvider)(nil)

// ClassificationCue is the phrase that marks a request as intent
// classification for MockProvider.
const ClassificationCue = "classify the intent"

const (
	mockFlightReply  = "I've found several flight options from New York to Paris for June 15-22. The best option is a direct flight with Air France departing at 7:30 PM, arriving at 9:00 AM the next day. The price is approximately $950 round trip per person."
	mockHotelReply   = "For hotels near the Louvre, I recommend the Hotel du Louvre, a 4-star hotel with excellent reviews. It's just a 5-minute walk from the museum and offers rooms with views starting at $220 per night. They do include breakfast!"
	mockWeatherReply = "In June, Paris typically enjoys pleasant weather with average temperatures between 60°F and 75°F (15°C to 24°C). It's generally sunny with occasional light rain showers. It's a great time to visit as the days are long and the city's gardens are in full bloom."
)

var mockPlanningReplies = []string{
	"I'd be happy to help you plan your trip to Paris! Paris is known for its art museums like the Louvre and Musée d'Orsay, as well as its incredible food scene. For art lovers, I recommend visiting museums in the morning when they're less crowded, typically right when they open around 9 AM.",
	"Paris is a wonderful destination for art and food lovers. The best times to visit museums are weekday mornings, especially Tuesday through Thursday. For food, you should definitely try the local bistros in neighborhoods like Le Marais and Saint-Germain-des-Prés.",
	"For your trip to Paris, I suggest creating an itinerary that balances major attractions with time to wander and discover hidden gems. The Louvre is less crowded on Wednesday and Friday evenings when it's open late.",
}

var (
	mockQuotedRe    = regexp.MustCompile(`(?s)message: '(.*)', ` + ClassificationCue)
	mockISODateRe   = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	mockMonthDayRe  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:\s*(?:-|to)\s*(\d{1,2}))?\b`)
	mockMonthRe     = regexp.MustCompile(`\b(january|february|march|april|june|july|august|september|october|november|december)\b`)
	mockRelativeRe  = regexp.MustCompile(`\b(today|tomorrow|next (?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)|in \d+ (?:days?|weeks?|months?))\b`)
	mockTravelersRe = regexp.MustCompile(`\b(\d+|two|three|four|five|six)\s+(?:people|persons|adults|travelers|travellers|passengers|guests|of us)\b`)
	mockBudgetRe    = regexp.MustCompile(`(?:\$|€|£)\s?(\d[\d,]*)`)
)

var mockCities = []string{
	"New York", "Paris", "London", "Tokyo", "Rome", "Barcelona", "Dubai", "Sydney", "Bangkok",
	"Singapore", "Amsterdam", "Berlin", "Lisbon", "Prague", "Vienna", "Istanbul", "Kyoto", "Bali",
}

// France and the like resolve to their best-known destination.
var mockCountries = map[string]string{
	"france": "Paris", "england": "London", "uk": "London", "japan": "Tokyo",
	"italy": "Rome", "spain": "Barcelona", "thailand": "Bangkok",
}

var mockInterests = []string{
	"art", "food", "wine", "history", "museums", "beaches", "hiking", "shopping",
	"nightlife", "architecture", "vineyards", "music",
}

var mockInfoTopics = []struct {
	topic    string
	keywords []string
}{
	{"weather", []string{"weather", "climate", "temperature", "forecast"}},
	{"travel documents", []string{"visa", "documents", "passport", "entry requirements"}},
	{"safety", []string{"safety", "safe", "security", "emergency"}},
	{"transportation", []string{"transportation", "getting around", "transit", "metro"}},
	{"food", []string{"cuisine", "restaurant", "dining", "local dishes"}},
	{"attractions", []string{"attractions", "sights", "sightseeing", "things to do", "museum", "day trip"}},
}

var mockNumbers = map[string]int{"two": 2, "three": 3, "four": 4, "five": 5, "six": 6}

// MockProvider is a deterministic stand-in for a live model. Classification
// requests get a JSON verdict built from keywords in the user's message;
// other requests get canned travel replies. It never fails.
type MockProvider struct{}

// NewMockProvider returns the deterministic mock.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name implements Provider.
func (m *MockProvider) Name() string { return "mock" }

// Model implements Provider.
func (m *MockProvider) Model() string { return "mock-travel-v1" }

// GenerateContent implements Provider.
func (m *MockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	last := req.Messages[len(req.Messages)-1].Text()

	var text string
	if strings.Contains(last, ClassificationCue) {
		text = m.classify(quotedInput(last), req.Messages[:len(req.Messages)-1])
	} else {
		text = m.reply(lastUserText(req.Messages))
	}

	in := countWords(req.SystemInstruction)
	for _, msg := range req.Messages {
		in += len(strings.Fields(msg.Text()))
	}
	out := len(strings.Fields(text))

	return &Response{
		Content:      NewTextMessage(RoleAssistant, text),
		ProviderName: m.Name(),
		ModelName:    m.Model(),
		Usage:        &Usage{InputTokens: in, OutputTokens: out, TotalTokens: in + out},
	}, nil
}

func (m *MockProvider) reply(input string) string {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "flight"):
		return mockFlightReply
	case strings.Contains(lower, "hotel"):
		return mockHotelReply
	case strings.Contains(lower, "weather"):
		return mockWeatherReply
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(input))
	return mockPlanningReplies[h.Sum32()%uint32(len(mockPlanningReplies))]
}

// classify produces {"intent": ..., "parameters": {...}} for input. history
// supplies a destination when the message itself names none.
func (m *MockProvider) classify(input string, history []Message) string {
	lower := strings.ToLower(input)
	params := map[string]any{}

	destination, origin := findCities(input)
	if destination == "" {
		destination = recentCity(history)
	}

	intent := "general_info"
	switch {
	case containsAny(lower, "flight", "fly", "plane"):
		intent = "search_flights"
		setIf(params, "destination", destination)
		setIf(params, "departure_city", origin)
		depart, ret := findDatesWithHistory(lower, history)
		setIf(params, "departure_date", depart)
		setIf(params, "return_date", ret)
		if n := findTravelers(lower); n > 0 {
			params["travelers"] = n
		}
		if strings.Contains(lower, "direct") || strings.Contains(lower, "nonstop") {
			params["preferences"] = map[string]any{"stops": 0}
		}

	case containsAny(lower, "hotel", "stay", "accommodation"):
		intent = "search_hotels"
		setIf(params, "destination", destination)
		checkIn, checkOut := findDatesWithHistory(lower, history)
		setIf(params, "check_in", checkIn)
		setIf(params, "check_out", checkOut)
		if n := findTravelers(lower); n > 0 {
			params["guests"] = n
		}
		if amenities := findAmenities(lower); len(amenities) > 0 {
			params["amenities"] = amenities
		}

	case findTopic(lower) != "":
		intent = "get_info"
		params["topic"] = findTopic(lower)
		setIf(params, "destination", destination)

	case containsAny(lower, "plan", "trip", "visit", "vacation", "holiday", "travel"):
		intent = "start_draft"
		if hasAssistantTurn(history) {
			intent = "update_draft"
		}
		setIf(params, "destination", destination)
		if depart, ret := findDates(lower); depart != "" {
			if ret != "" {
				params["dates"] = map[string]any{"start": depart, "end": ret}
			} else {
				params["dates"] = depart
			}
		} else if month := mockMonthRe.FindString(lower); month != "" {
			params["dates"] = titleCase(month)
		}
		if n := findTravelers(lower); n > 0 {
			params["travelers"] = n
		}
		if interests := findInterests(lower); len(interests) > 0 {
			params["preferences"] = interests
		}
		if b := mockBudgetRe.FindStringSubmatch(input); b != nil {
			if v, err := strconv.Atoi(strings.ReplaceAll(b[1], ",", "")); err == nil {
				params["budget"] = v
			}
		}
	}

	raw, _ := json.Marshal(map[string]any{"intent": intent, "parameters": params})
	return string(raw)
}

func quotedInput(prompt string) string {
	if m := mockQuotedRe.FindStringSubmatch(prompt); m != nil {
		return m[1]
	}
	return prompt
}

func lastUserText(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == RoleUser {
			return msgs[i].Text()
		}
	}
	return ""
}

func hasAssistantTurn(msgs []Message) bool {
	for _, msg := range msgs {
		if msg.Role == RoleAssistant {
			return true
		}
	}
	return false
}

// findCities returns the destination and, for "from X to Y" phrasing, the origin.
func findCities(text string) (destination, origin string) {
	lower := strings.ToLower(text)
	type hit struct {
		city string
		pos  int
	}
	var hits []hit
	for _, c := range mockCities {
		if i := strings.Index(lower, strings.ToLower(c)); i >= 0 {
			hits = append(hits, hit{c, i})
		}
	}
	for country, city := range mockCountries {
		if matchWord(lower, country) {
			hits = append(hits, hit{city, len(lower)})
		}
	}
	if len(hits) == 0 {
		return "", ""
	}

	for _, h := range hits {
		if fromIdx := strings.Index(lower, "from "+strings.ToLower(h.city)); fromIdx >= 0 {
			origin = h.city
			continue
		}
		if destination == "" || strings.Contains(lower, "to "+strings.ToLower(h.city)) {
			destination = h.city
		}
	}
	return destination, origin
}

func recentCity(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if dest, _ := findCities(history[i].Text()); dest != "" {
			return dest
		}
	}
	return ""
}

// findDates returns up to two date expressions in the order they appear.
func findDates(lower string) (string, string) {
	if iso := mockISODateRe.FindAllString(lower, 2); len(iso) > 0 {
		if len(iso) == 2 {
			return iso[0], iso[1]
		}
		return iso[0], ""
	}
	if md := mockMonthDayRe.FindStringSubmatch(lower); md != nil {
		month := titleCase(md[1])
		start := month + " " + md[2]
		if md[3] != "" {
			return start, month + " " + md[3]
		}
		return start, ""
	}
	if rel := mockRelativeRe.FindString(lower); rel != "" {
		return rel, ""
	}
	return "", ""
}

// findDatesWithHistory falls back to the latest user message that named dates.
func findDatesWithHistory(lower string, history []Message) (string, string) {
	if a, b := findDates(lower); a != "" {
		return a, b
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != RoleUser {
			continue
		}
		if a, b := findDates(strings.ToLower(history[i].Text())); a != "" {
			return a, b
		}
	}
	return "", ""
}

func findTravelers(lower string) int {
	if m := mockTravelersRe.FindStringSubmatch(lower); m != nil {
		if n, ok := mockNumbers[m[1]]; ok {
			return n
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if containsAny(lower, "my partner", "my wife", "my husband", "my girlfriend", "my boyfriend", "a couple") {
		return 2
	}
	return 0
}

func findInterests(lower string) []any {
	var out []any
	for _, in := range mockInterests {
		if matchWord(lower, in) {
			out = append(out, in)
		}
	}
	return out
}

func findAmenities(lower string) []any {
	var out []any
	if strings.Contains(lower, "pool") {
		out = append(out, "Swimming Pool")
	}
	if strings.Contains(lower, "wifi") || strings.Contains(lower, "wi-fi") {
		out = append(out, "Free WiFi")
	}
	return out
}

func findTopic(lower string) string {
	for _, t := range mockInfoTopics {
		if containsAny(lower, t.keywords...) {
			return t.topic
		}
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func matchWord(s, word string) bool {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`).MatchString(s)
}

func setIf(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func countWords(m *Message) int {
	if m == nil {
		return 0
	}
	return len(strings.Fields(m.Text()))
}
