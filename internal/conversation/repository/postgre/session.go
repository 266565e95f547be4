package postgre

import (
	"context"
	"database/sql"

	"travel-assistant/internal/conversation/repository"
	"travel-assistant/internal/model"
)

const (
	getSessionQuery = `
		SELECT session_id, history, draft, created_at, updated_at
		FROM conversations WHERE session_id = $1`

	// created_at is left out of the update set so the first insert wins.
	upsertSessionQuery = `
		INSERT INTO conversations (session_id, history, draft, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE SET
			history = EXCLUDED.history,
			draft = EXCLUDED.draft,
			updated_at = EXCLUDED.updated_at`

	deleteSessionQuery = `DELETE FROM conversations WHERE session_id = $1`
)

// GetSession returns a zero-value Session when the id is not stored.
func (r *implRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	var rec repository.Record
	err := r.db.QueryRowContext(ctx, getSessionQuery, id).Scan(
		&rec.ID, &rec.History, &rec.Draft, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}

	s, err := rec.Session()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetSession"), err)
		return model.Session{}, repository.ErrFailedToGet
	}
	return s, nil
}

// UpsertSession replaces history and draft. created_at is kept on update.
func (r *implRepository) UpsertSession(ctx context.Context, opt repository.UpsertSessionOptions) error {
	rec, err := repository.NewRecord(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	if _, err := r.db.ExecContext(ctx, upsertSessionQuery,
		rec.ID, string(rec.History), string(rec.Draft), rec.CreatedAt, rec.UpdatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertSession"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionQuery, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteSession"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
