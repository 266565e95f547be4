package orchestrator

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/metrics"
)

// RunTurn processes one user message against prior history and returns
// the reply and the updated history. prior is not modified.
func (o *Orchestrator) RunTurn(ctx context.Context, input string, prior []model.Message) (string, []model.Message) {
	st := o.Run(ctx, o.NewState(input, prior))
	return st.FinalResponse, st.History
}

// Run moves st through the pipeline: record input, classify, at most one
// handler, respond. It always ends with a non-empty FinalResponse and one
// more assistant message in the history.
func (o *Orchestrator) Run(ctx context.Context, st *agent.State) *agent.State {
	start := time.Now()

	st = o.processInput(ctx, st)
	st = o.classify(ctx, st)

	step := router.Next(st.Intent)
	if h, ok := o.registry.Get(step); ok {
		st = h.Handle(ctx, st)
	}

	intent := st.Intent
	st = o.respond(ctx, st)

	o.metrics.ObserveTurn(intentLabel(intent), time.Since(start))
	o.l.Infof(ctx, "%s: intent=%q step=%s", LogPrefixRun, intent, step)
	return st
}

// processInput records the user's message.
func (o *Orchestrator) processInput(ctx context.Context, st *agent.State) *agent.State {
	st.AppendMessage(model.RoleUser, st.UserInput)
	return st
}

// classify fills Intent and Parameters. Blank input is not classified.
func (o *Orchestrator) classify(ctx context.Context, st *agent.State) *agent.State {
	if strings.TrimSpace(st.UserInput) == "" {
		return st
	}

	out := o.router.Classify(ctx, st.UserInput, st.RecentContext(o.window))
	if out.Fallback {
		o.metrics.Fallback(metrics.StageClassify)
	}

	st.Intent = out.Intent
	st.Parameters = out.Parameters
	if st.Parameters == nil {
		st.Parameters = map[string]any{}
	}

	if _, err := st.Slots(); err != nil {
		o.l.Warnf(ctx, "%s: parameters do not fit intent %s: %v", LogPrefixRun, st.Intent, err)
	}
	return st
}

// respond generates the reply from the accumulated state. Capability
// failures are answered with a canned apology.
func (o *Orchestrator) respond(ctx context.Context, st *agent.State) *agent.State {
	sys := llmprovider.NewTextMessage(llmprovider.RoleSystem, SystemPromptResponder+ContextHeader+o.responseContext(ctx, st))

	reply := ""
	resp, err := o.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &sys,
		Messages:          router.ProviderMessages(st.History),
		Temperature:       ResponderTemperature,
	})
	switch {
	case err != nil:
		o.l.Warnf(ctx, "%s: generation failed: %v", LogPrefixRespond, err)
	case strings.TrimSpace(resp.Text()) == "":
		o.l.Warnf(ctx, "%s: empty generation", LogPrefixRespond)
	default:
		reply = resp.Text()
	}

	if reply == "" {
		o.metrics.Fallback(metrics.StageRespond)
		reply = o.fallbackReply(st.History)
	}

	st.FinalResponse = reply
	st.AppendMessage(model.RoleAssistant, reply)
	st.UserInput = ""
	st.ClearTransient()
	return st
}

// responseContext renders what the turn has learned as JSON. The draft and
// search results are included only when they hold something.
func (o *Orchestrator) responseContext(ctx context.Context, st *agent.State) string {
	c := map[string]any{
		"intent":     st.Intent,
		"parameters": st.Parameters,
		"user_input": st.UserInput,
	}
	if !st.Draft.IsEmpty() {
		c["draft_package"] = st.Draft
	}
	if len(st.FlightResults) > 0 {
		c["flight_results"] = st.FlightResults
	}
	if len(st.HotelResults) > 0 {
		c["hotel_results"] = st.HotelResults
	}

	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		o.l.Warnf(ctx, "%s: cannot encode context: %v", LogPrefixRespond, err)
		return "{}"
	}
	return string(raw)
}

// fallbackReply picks an apology that matches the latest user message.
func (o *Orchestrator) fallbackReply(history []model.Message) string {
	input := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == model.RoleUser {
			input = strings.ToLower(history[i].Content)
			break
		}
	}

	switch {
	case strings.Contains(input, "flight"):
		return FallbackFlight
	case strings.Contains(input, "hotel"):
		return FallbackHotel
	}
	for _, w := range weatherKeywords {
		if strings.Contains(input, w) {
			return FallbackWeather
		}
	}
	return fallbackGeneric[o.pick(len(fallbackGeneric))]
}

func intentLabel(intent router.Intent) string {
	switch intent {
	case "":
		return intentLabelNone
	case router.IntentStartDraft, router.IntentUpdateDraft, router.IntentSearchFlights,
		router.IntentSearchHotels, router.IntentGetInfo, router.IntentGeneralInfo,
		router.IntentFlightSearch, router.IntentHotelSearch:
		return string(intent)
	default:
		return intentLabelOther
	}
}
