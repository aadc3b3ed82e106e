// README: Saved route store backed by PostgreSQL.
package routes

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"khusela/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Route) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO routes (
			id, user_id, title, origin, destination,
			category, frequency, encoded_polyline, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		string(r.ID),
		string(r.UserID),
		r.Title,
		r.Origin,
		r.Destination,
		r.Category,
		r.Frequency,
		r.EncodedPolyline,
		r.CreatedAt,
		r.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Route, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, origin, destination,
		       category, frequency, encoded_polyline, created_at, updated_at
		FROM routes
		WHERE id = $1`, string(id),
	)

	var r Route
	err := row.Scan(
		&r.ID, &r.UserID, &r.Title, &r.Origin, &r.Destination,
		&r.Category, &r.Frequency, &r.EncodedPolyline, &r.CreatedAt, &r.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListByUser returns the user's routes, newest first.
func (s *Store) ListByUser(ctx context.Context, userID types.ID, limit, offset int) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, origin, destination,
		       category, frequency, encoded_polyline, created_at, updated_at
		FROM routes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		string(userID), limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Title, &r.Origin, &r.Destination,
			&r.Category, &r.Frequency, &r.EncodedPolyline, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, r *Route) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE routes
		SET title = $1, origin = $2, destination = $3,
		    category = $4, frequency = $5, encoded_polyline = $6, updated_at = $7
		WHERE id = $8`,
		r.Title, r.Origin, r.Destination,
		r.Category, r.Frequency, r.EncodedPolyline, r.UpdatedAt,
		string(r.ID),
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
	tag, err := s.db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
