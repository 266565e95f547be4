package repository

import (
	"context"

	"travel-assistant/internal/model"
)

// Repository is the composed interface for the conversation data store.
type Repository interface {
	SessionRepository
}

// SessionRepository defines data access for persisted sessions. Writes are
// last-write-wins per session id.
type SessionRepository interface {
	// GetSession returns a zero Session (ID == "") when none is stored.
	GetSession(ctx context.Context, id string) (model.Session, error)
	UpsertSession(ctx context.Context, opt UpsertSessionOptions) error
	DeleteSession(ctx context.Context, id string) error
}
