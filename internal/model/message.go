package model

import "time"

// Role tags the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is one entry of a conversation history. Histories are ordered
// oldest first.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// CloneMessages returns a copy of msgs that can be appended to without
// affecting the caller's slice.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs), len(msgs)+2)
	copy(out, msgs)
	return out
}
