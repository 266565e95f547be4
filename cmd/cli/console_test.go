package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/internal/app"
	"travel-assistant/internal/conversation"
	"travel-assistant/internal/conversation/repository/memory"
	"travel-assistant/internal/conversation/usecase"
	"travel-assistant/pkg/log"
)

func newTestUseCase(t *testing.T) conversation.UseCase {
	t.Helper()
	cfg := &config.Config{
		LLM:       config.LLMConfig{Mock: true, Timezone: "UTC"},
		Assistant: config.AssistantConfig{ContextWindow: 5},
	}
	pipeline, err := app.NewPipeline(cfg, log.NewNop(), nil)
	require.NoError(t, err)
	return usecase.New(pipeline, memory.New(8, 0), log.NewNop())
}

func newTestConsole(t *testing.T, uc conversation.UseCase, sessionID string) (*console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c := newConsole(uc, sessionID, &out, func(s string) string { return s })
	c.sleep = func(time.Duration) {}
	return c, &out
}

func TestConsole_LoopSendsUntilExit(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	c, out := newTestConsole(t, uc, "")

	err := c.loop(ctx, strings.NewReader("Can you find flights from New York to Paris for June 15-22?\n\nexit\nignored\n"), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, c.sessionID, "generated session id is adopted")
	assert.Equal(t, 1, c.turns)
	assert.Contains(t, out.String(), "Assistant:")

	h, err := uc.History(ctx, c.sessionID)
	require.NoError(t, err)
	assert.Len(t, h.Session.History, 2)
}

func TestRunDemo_AutoPlaysWholeScript(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)
	c, out := newTestConsole(t, uc, "demo_test")

	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	cmd.SetOut(out)
	require.NoError(t, runDemo(cmd, c, true, 0))

	h, err := uc.History(ctx, "demo_test")
	require.NoError(t, err)
	assert.Len(t, h.Session.History, 2*len(demoConversation))
	assert.Equal(t, "Paris", h.Session.Draft.Destination)
	assert.Contains(t, out.String(), "Demo completed")
}

func TestRunDemo_InteractiveAutoResumesScript(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	// Two scripted turns already stored.
	seed, _ := newTestConsole(t, uc, "demo_resume")
	require.NoError(t, seed.replay(ctx, demoConversation[:2], 0))

	c, out := newTestConsole(t, uc, "demo_resume")
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("auto\n"))
	require.NoError(t, runDemo(cmd, c, false, 0))

	assert.Contains(t, out.String(), "Loaded existing conversation.")
	h, err := uc.History(ctx, "demo_resume")
	require.NoError(t, err)
	assert.Len(t, h.Session.History, 2*len(demoConversation))
}

func TestRemainingDemo(t *testing.T) {
	assert.Len(t, remainingDemo(0), len(demoConversation))
	assert.Len(t, remainingDemo(3), len(demoConversation)-3)
	assert.Empty(t, remainingDemo(len(demoConversation)+4))
}
