package redis

import (
	"context"
	"encoding/json"
	"errors"

	backend "github.com/redis/go-redis/v9"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

func (r *implRepository) load(ctx context.Context, id string) (repository.Record, bool, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, backend.Nil) {
		return repository.Record{}, false, nil
	}
	if err != nil {
		return repository.Record{}, false, err
	}
	var rec repository.Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return repository.Record{}, false, err
	}
	return rec, true, nil
}

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	rec, ok, err := r.load(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	if !ok {
		return model.Session{}, nil
	}

	s, err := rec.Session()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return s, nil
}

// UpsertSession overwrites the stored value and refreshes the TTL.
func (r *implRepository) UpsertSession(ctx context.Context, opt repository.UpsertSessionOptions) error {
	rec, err := repository.NewRecord(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}

	prev, ok, err := r.load(ctx, opt.ID)
	if err != nil {
		r.l.Warnf(ctx, "%s: reading previous value: %v", r.dsn("UpsertSession"), err)
	}
	if ok {
		rec.CreatedAt = prev.CreatedAt
	}

	data, err := json.Marshal(rec)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	if err := r.client.Set(ctx, r.key(opt.ID), data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
