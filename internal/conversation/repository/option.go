package repository

import (
	"time"

	"travel-assistant/internal/model"
)

// UpsertSessionOptions holds the full replacement of a session.
type UpsertSessionOptions struct {
	ID      string
	History []model.Message
	Draft   model.DraftPackage
	Now     time.Time
}
