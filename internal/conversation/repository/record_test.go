package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/model"
)

func TestRecord_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	draft := model.NewDraftPackage()
	draft.Destination = "Paris"
	draft.Dates = map[string]any{"start": "2025-06-15", "end": "2025-06-22"}
	draft.CreatedAt = now

	rec, err := NewRecord(UpsertSessionOptions{
		ID:      "s1",
		History: []model.Message{{Role: model.RoleUser, Content: "hi", Timestamp: now}},
		Draft:   draft,
		Now:     now,
	})
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), rec.CreatedAt)

	s, err := rec.Session()
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	require.Len(t, s.History, 1)
	assert.True(t, s.History[0].Timestamp.Equal(now))
	assert.Equal(t, "Paris", s.Draft.Destination)
	assert.Equal(t, map[string]any{"start": "2025-06-15", "end": "2025-06-22"}, s.Draft.Dates)
	assert.True(t, s.Draft.CreatedAt.Equal(now))
	assert.True(t, s.UpdatedAt.Equal(now))
}

func TestRecord_EmptyHistoryEncodesAsArray(t *testing.T) {
	rec, err := NewRecord(UpsertSessionOptions{ID: "s1"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(rec.History))

	s, err := rec.Session()
	require.NoError(t, err)
	assert.Empty(t, s.History)
	assert.NotNil(t, s.Draft.Preferences)
}
