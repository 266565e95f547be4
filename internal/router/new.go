package router

import (
	"context"
	"time"

	"travel-assistant/internal/model"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
)

// Router is the interface for intent classification
type Router interface {
	Classify(ctx context.Context, text string, history []model.Message) Classification
}

// SemanticRouter classifies user intent using the language capability
type SemanticRouter struct {
	llm llmprovider.Provider
	l   log.Logger
	loc *time.Location
	now func() time.Time
}

// Ensure SemanticRouter implements Router interface
var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter. loc is used for the "today" context of
// the prompt; nil means UTC.
func New(llm llmprovider.Provider, l log.Logger, loc *time.Location) *SemanticRouter {
	if loc == nil {
		loc = time.UTC
	}
	return &SemanticRouter{
		llm: llm,
		l:   l,
		loc: loc,
		now: time.Now,
	}
}
