// README: Monitored destination store backed by PostgreSQL.
package destinations

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

func (s *Store) Create(ctx context.Context, d *Destination) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO monitored_destinations (
			id, user_id, location, lat, lng, risk_level,
			last_checked, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(d.ID), string(d.UserID), d.Location,
		d.Coordinate.Lat, d.Coordinate.Lng, d.RiskLevel,
		d.LastChecked, d.CreatedAt, d.UpdatedAt,
	)
	return err
}

// Get fetches a destination scoped to its owner.
func (s *Store) Get(ctx context.Context, id, userID types.ID) (*Destination, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, location, lat, lng, risk_level,
		       last_checked, created_at, updated_at
		FROM monitored_destinations
		WHERE id = $1 AND user_id = $2`,
		string(id), string(userID),
	)

	var d Destination
	err := row.Scan(
		&d.ID, &d.UserID, &d.Location, &d.Coordinate.Lat, &d.Coordinate.Lng,
		&d.RiskLevel, &d.LastChecked, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByUser returns the user's destinations, newest first.
func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Destination, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, location, lat, lng, risk_level,
		       last_checked, created_at, updated_at
		FROM monitored_destinations
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Destination
	for rows.Next() {
		var d Destination
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Location, &d.Coordinate.Lat, &d.Coordinate.Lng,
			&d.RiskLevel, &d.LastChecked, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, d *Destination) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE monitored_destinations
		SET location = $1, lat = $2, lng = $3, risk_level = $4,
		    last_checked = $5, updated_at = $6
		WHERE id = $7 AND user_id = $8`,
		d.Location, d.Coordinate.Lat, d.Coordinate.Lng, d.RiskLevel,
		d.LastChecked, d.UpdatedAt,
		string(d.ID), string(d.UserID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id, userID types.ID) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM monitored_destinations WHERE id = $1 AND user_id = $2`,
		string(id), string(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
