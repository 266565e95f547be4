package usecase

import (
	"context"

	"travel-assistant/internal/conversation"
)

func (uc *implUseCase) History(ctx context.Context, sessionID string) (conversation.HistoryOutput, error) {
	id, err := validateSessionID(sessionID)
	if err != nil {
		return conversation.HistoryOutput{}, err
	}

	s, err := uc.repo.GetSession(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History GetSession: %v", err)
		return conversation.HistoryOutput{}, err
	}
	if s.ID == "" {
		return conversation.HistoryOutput{}, conversation.ErrSessionNotFound
	}
	return conversation.HistoryOutput{Session: s}, nil
}

func (uc *implUseCase) Reset(ctx context.Context, sessionID string) error {
	id, err := validateSessionID(sessionID)
	if err != nil {
		return err
	}
	if err := uc.repo.DeleteSession(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Reset DeleteSession: %v", err)
		return err
	}
	return nil
}
