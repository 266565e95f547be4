package model

import "time"

// Session is the persisted projection of a conversation.
type Session struct {
	ID        string
	History   []Message
	Draft     DraftPackage
	CreatedAt time.Time
	UpdatedAt time.Time
}
