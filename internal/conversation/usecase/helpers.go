package usecase

import (
	"strings"

	"github.com/google/uuid"

	"travel-assistant/internal/conversation"
)

func newSessionID() string {
	return uuid.NewString()
}

// validateSessionID trims id and rejects empty or oversized values.
func validateSessionID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > conversation.MaxSessionIDLength {
		return "", conversation.ErrInvalidSessionID
	}
	return id, nil
}
