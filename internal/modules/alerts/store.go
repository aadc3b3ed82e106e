// README: Alert store backed by PostgreSQL.
package alerts

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"khusela/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, a *Alert) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO alerts (id, user_id, title, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(a.ID), string(a.UserID), a.Title, a.Type, string(a.Status), a.CreatedAt,
	)
	return err
}

// ListByUser returns the user's alerts, newest first.
func (s *Store) ListByUser(ctx context.Context, userID types.ID, limit, offset int) ([]Alert, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, type, status, created_at
		FROM alerts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		string(userID), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Alert
	for rows.Next() {
		var a Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Type, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE alerts SET status = $1 WHERE id = $2`,
		string(status), string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM alerts WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
