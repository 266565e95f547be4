package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"travel-assistant/internal/model"
)

// Record is the serialized form of a session shared by the SQL and
// key-value backends. Timestamps are Unix milliseconds.
type Record struct {
	ID        string          `json:"session_id"`
	History   json.RawMessage `json:"history"`
	Draft     json.RawMessage `json:"draft"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
}

// NewRecord serializes opt. CreatedAt is set to the write time; backends
// keep the stored value on update.
func NewRecord(opt UpsertSessionOptions) (Record, error) {
	history := opt.History
	if history == nil {
		history = []model.Message{}
	}
	h, err := json.Marshal(history)
	if err != nil {
		return Record{}, fmt.Errorf("encode history: %w", err)
	}
	d, err := json.Marshal(opt.Draft)
	if err != nil {
		return Record{}, fmt.Errorf("encode draft: %w", err)
	}

	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Record{
		ID:        opt.ID,
		History:   h,
		Draft:     d,
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
	}, nil
}

// Session decodes the record.
func (r Record) Session() (model.Session, error) {
	s := model.Session{
		ID:        r.ID,
		Draft:     model.NewDraftPackage(),
		CreatedAt: time.UnixMilli(r.CreatedAt),
		UpdatedAt: time.UnixMilli(r.UpdatedAt),
	}
	if len(r.History) > 0 {
		if err := json.Unmarshal(r.History, &s.History); err != nil {
			return model.Session{}, fmt.Errorf("decode history: %w", err)
		}
	}
	if len(r.Draft) > 0 {
		if err := json.Unmarshal(r.Draft, &s.Draft); err != nil {
			return model.Session{}, fmt.Errorf("decode draft: %w", err)
		}
	}
	if s.Draft.Preferences == nil {
		s.Draft.Preferences = map[string]any{}
	}
	if s.Draft.Activities == nil {
		s.Draft.Activities = []any{}
	}
	return s, nil
}
