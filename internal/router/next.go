package router

// Next returns the step that follows classification of intent. Every
// value, including unknown and empty ones, has exactly one next step.
func Next(intent Intent) Step {
	switch intent {
	case IntentStartDraft, IntentUpdateDraft:
		return StepDraft
	case IntentSearchFlights:
		return StepFlight
	case IntentSearchHotels:
		return StepHotel
	case IntentGetInfo:
		return StepInfo
	default:
		return StepRespond
	}
}
