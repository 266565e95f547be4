package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	const query = `
		SELECT session_id, history, draft, created_at, updated_at
		FROM conversations WHERE session_id = ?`

	var (
		rec            repository.Record
		history, draft string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &history, &draft, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	rec.History = []byte(history)
	rec.Draft = []byte(draft)

	s, err := rec.Session()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return s, nil
}

func (r *implRepository) UpsertSession(ctx context.Context, opt repository.UpsertSessionOptions) error {
	const query = `
		INSERT INTO conversations (session_id, history, draft, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			history = excluded.history,
			draft = excluded.draft,
			updated_at = excluded.updated_at`

	rec, err := repository.NewRecord(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, string(rec.History), string(rec.Draft), rec.CreatedAt, rec.UpdatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE session_id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
