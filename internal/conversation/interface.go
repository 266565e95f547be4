package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one turn for a session and persists the result.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)
	// History returns the stored conversation of a session.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)
	// Reset forgets a session. Resetting an unknown session is not an error.
	Reset(ctx context.Context, sessionID string) error
}
