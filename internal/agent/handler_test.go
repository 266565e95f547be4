package agent_test

import (
	"context"
	"testing"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/router"
)

type mockHandler struct {
	step router.Step
}

func (m *mockHandler) Step() router.Step { return m.step }
func (m *mockHandler) Handle(ctx context.Context, st *agent.State) *agent.State {
	return st
}

func TestRegistry(t *testing.T) {
	registry := agent.NewRegistry()

	registry.Register(&mockHandler{step: router.StepHotel})
	registry.Register(&mockHandler{step: router.StepDraft})

	t.Run("Get existing handler", func(t *testing.T) {
		got, ok := registry.Get(router.StepDraft)
		if !ok || got.Step() != router.StepDraft {
			t.Errorf("expected draft handler to be found")
		}
	})

	t.Run("Get non-existing handler", func(t *testing.T) {
		_, ok := registry.Get(router.StepRespond)
		if ok {
			t.Errorf("expected respond step to have no handler")
		}
	})

	t.Run("Steps", func(t *testing.T) {
		steps := registry.Steps()
		if len(steps) != 2 || steps[0] != router.StepDraft || steps[1] != router.StepHotel {
			t.Errorf("unexpected steps %v", steps)
		}
	})
}
