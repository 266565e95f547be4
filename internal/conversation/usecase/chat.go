package usecase

import (
	"context"
	"strings"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/conversation"
	repo "travel-assistant/internal/conversation/repository"
)

// Chat runs one turn. A non-empty caller history takes precedence over the
// stored one; the stored draft is always carried forward.
func (uc *implUseCase) Chat(ctx context.Context, input conversation.ChatInput) (conversation.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return conversation.ChatOutput{}, conversation.ErrEmptyMessage
	}

	sessionID := uc.newID()
	if strings.TrimSpace(input.SessionID) != "" {
		id, err := validateSessionID(input.SessionID)
		if err != nil {
			return conversation.ChatOutput{}, err
		}
		sessionID = id
	}

	stored, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat GetSession: %v", err)
		return conversation.ChatOutput{}, err
	}

	history := stored.History
	if len(input.History) > 0 {
		history = input.History
	}
	var opts []agent.StateOption
	if stored.ID != "" {
		opts = append(opts, agent.WithDraft(stored.Draft))
	}

	st := uc.pipeline.Run(ctx, uc.pipeline.NewState(message, history, opts...))

	if err := uc.repo.UpsertSession(ctx, repo.UpsertSessionOptions{
		ID:      sessionID,
		History: st.History,
		Draft:   st.Draft,
		Now:     uc.now(),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.Chat UpsertSession: %v", err)
		return conversation.ChatOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Chat: session=%s intent=%s turns=%d", sessionID, st.Intent, len(st.History)/2)
	return conversation.ChatOutput{
		SessionID: sessionID,
		Response:  st.FinalResponse,
		History:   st.History,
		Draft:     st.Draft,
	}, nil
}
