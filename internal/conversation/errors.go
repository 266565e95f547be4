package conversation

import "errors"

var (
	ErrEmptyMessage     = errors.New("message is required")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("session not found")
)
