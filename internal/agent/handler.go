package agent

import (
	"context"
	"sort"

	"travel-assistant/internal/router"
)

// Handler is one optional pipeline step between classification and the
// response. A handler that does not apply to the state's intent returns
// the state untouched.
type Handler interface {
	// Step returns the router step this handler serves.
	Step() router.Step

	// Handle enriches st and returns it.
	Handle(ctx context.Context, st *State) *State
}

// Registry maps router steps to handlers.
type Registry struct {
	handlers map[router.Step]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[router.Step]Handler),
	}
}

// Register adds a handler, replacing any handler for the same step.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Step()] = h
}

// Get retrieves the handler for step.
func (r *Registry) Get(step router.Step) (Handler, bool) {
	h, ok := r.handlers[step]
	return h, ok
}

// Steps lists the registered steps in name order.
func (r *Registry) Steps() []router.Step {
	steps := make([]router.Step, 0, len(r.handlers))
	for s := range r.handlers {
		steps = append(steps, s)
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i] < steps[j] })
	return steps
}
