package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
	"travel-assistant/pkg/log"
)

func setup(t *testing.T, opts ...Option) (repository.Repository, *miniredis.Miniredis) {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := backend.NewClient(&backend.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, log.NewNop(), opts...), s
}

func TestSession_Lifecycle(t *testing.T) {
	ctx := context.Background()
	r, s := setup(t, WithPrefix("test:"))
	first := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	got, err := r.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)

	draft := model.NewDraftPackage()
	draft.Destination = "Rome"
	require.NoError(t, r.UpsertSession(ctx, repository.UpsertSessionOptions{
		ID:      "s1",
		History: []model.Message{{Role: model.RoleUser, Content: "Rome"}},
		Draft:   draft,
		Now:     first,
	}))
	assert.True(t, s.Exists("test:s1"))

	require.NoError(t, r.UpsertSession(ctx, repository.UpsertSessionOptions{
		ID:    "s1",
		Draft: draft,
		Now:   first.Add(time.Hour),
	}))

	got, err = r.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Draft.Destination)
	assert.True(t, got.CreatedAt.Equal(first))
	assert.True(t, got.UpdatedAt.Equal(first.Add(time.Hour)))

	require.NoError(t, r.DeleteSession(ctx, "s1"))
	assert.False(t, s.Exists("test:s1"))
}

func TestSession_TTLExpires(t *testing.T) {
	ctx := context.Background()
	r, s := setup(t, WithTTL(time.Minute))

	require.NoError(t, r.UpsertSession(ctx, repository.UpsertSessionOptions{ID: "s1"}))
	assert.Equal(t, time.Minute, s.TTL(DefaultPrefix+"s1"))

	s.FastForward(2 * time.Minute)
	got, err := r.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestGetSession_CorruptValue(t *testing.T) {
	r, s := setup(t)
	require.NoError(t, s.Set(DefaultPrefix+"bad", "not json"))

	_, err := r.GetSession(context.Background(), "bad")
	assert.ErrorIs(t, err, repository.ErrFailedToGet)
}
