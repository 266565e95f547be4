package http

import (
	"travel-assistant/internal/conversation"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/response"
)

// --- Request DTOs ---

type messageReq struct {
	Role    string `json:"role"    binding:"required,oneof=user assistant system"`
	Content string `json:"content"`
}

type chatReq struct {
	Message     string       `json:"message"`
	SessionID   string       `json:"session_id"   binding:"omitempty,max=128"`
	ChatHistory []messageReq `json:"chat_history" binding:"omitempty,dive"`
}

func (r chatReq) validate() error {
	if r.Message == "" {
		return conversation.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() conversation.ChatInput {
	in := conversation.ChatInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
	if r.ChatHistory != nil {
		in.History = make([]model.Message, len(r.ChatHistory))
		for i, m := range r.ChatHistory {
			in.History[i] = model.Message{Role: model.Role(m.Role), Content: m.Content}
		}
	}
	return in
}

// --- Response DTOs ---

type chatResp struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (h *handler) newChatResp(out conversation.ChatOutput) chatResp {
	return chatResp{
		Response:  out.Response,
		SessionID: out.SessionID,
	}
}

type messageResp struct {
	Role      string              `json:"role"`
	Content   string              `json:"content"`
	Timestamp *response.Timestamp `json:"timestamp,omitempty"`
}

type sessionResp struct {
	SessionID string             `json:"session_id"`
	History   []messageResp      `json:"history"`
	Draft     model.DraftPackage `json:"draft"`
	CreatedAt response.Timestamp `json:"created_at"`
	UpdatedAt response.Timestamp `json:"updated_at"`
}

func (h *handler) newSessionResp(out conversation.HistoryOutput) sessionResp {
	s := out.Session
	history := make([]messageResp, len(s.History))
	for i, m := range s.History {
		history[i] = messageResp{Role: string(m.Role), Content: m.Content}
		if !m.Timestamp.IsZero() {
			ts := response.Timestamp(m.Timestamp)
			history[i].Timestamp = &ts
		}
	}
	return sessionResp{
		SessionID: s.ID,
		History:   history,
		Draft:     s.Draft,
		CreatedAt: response.Timestamp(s.CreatedAt),
		UpdatedAt: response.Timestamp(s.UpdatedAt),
	}
}
