package conversation

import "travel-assistant/internal/model"

// MaxSessionIDLength bounds caller-chosen session identifiers.
const MaxSessionIDLength = 128

// --- UseCase Inputs ---

type ChatInput struct {
	SessionID string
	Message   string

	// History, when non-empty, replaces the stored history for this turn.
	History []model.Message
}

// --- UseCase Outputs ---

type ChatOutput struct {
	SessionID string
	Response  string
	History   []model.Message
	Draft     model.DraftPackage
}

type HistoryOutput struct {
	Session model.Session
}
