// Package memory keeps sessions in a bounded in-process LRU. It is the
// default store for local runs and tests.
package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

const DefaultSize = 1024

type implRepository struct {
	cache *expirable.LRU[string, repository.Record]
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a memory Repository holding at most size sessions. A zero ttl
// disables expiry.
func New(size int, ttl time.Duration) repository.Repository {
	if size <= 0 {
		size = DefaultSize
	}
	return &implRepository{cache: expirable.NewLRU[string, repository.Record](size, nil, ttl)}
}

func (r *implRepository) GetSession(_ context.Context, id string) (model.Session, error) {
	rec, ok := r.cache.Get(id)
	if !ok {
		return model.Session{}, nil
	}
	s, err := rec.Session()
	if err != nil {
		return model.Session{}, repository.ErrFailedToGet
	}
	return s, nil
}

// UpsertSession stores a serialized copy so callers cannot mutate it later.
func (r *implRepository) UpsertSession(_ context.Context, opt repository.UpsertSessionOptions) error {
	rec, err := repository.NewRecord(opt)
	if err != nil {
		return repository.ErrFailedToUpsert
	}
	if prev, ok := r.cache.Peek(opt.ID); ok {
		rec.CreatedAt = prev.CreatedAt
	}
	r.cache.Add(opt.ID, rec)
	return nil
}

func (r *implRepository) DeleteSession(_ context.Context, id string) error {
	r.cache.Remove(id)
	return nil
}
