// README: Insured asset store backed by PostgreSQL.
package assets

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

const assetColumns = `
	id, user_id, item_name, category, policy_number,
	make, model, year, primary_location, main_driver_age, description,
	status, risk_score, risk_level, monthly_payment, coverage_amount,
	created_at, updated_at`

func scanAsset(row pgx.Row) (*Asset, error) {
	var a Asset
	err := row.Scan(
		&a.ID, &a.UserID, &a.ItemName, &a.Category, &a.PolicyNumber,
		&a.Make, &a.Model, &a.Year, &a.PrimaryLocation, &a.MainDriverAge, &a.Description,
		&a.Status, &a.RiskScore, &a.RiskLevel, &a.MonthlyPayment, &a.CoverageAmount,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// NextPolicySeq draws the next value from the policy number sequence.
func (s *Store) NextPolicySeq(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRow(ctx, `SELECT nextval('policy_number_seq')`).Scan(&seq)
	return seq, err
}

func (s *Store) Create(ctx context.Context, a *Asset) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO insured_assets (`+assetColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		string(a.ID), string(a.UserID), a.ItemName, a.Category, a.PolicyNumber,
		a.Make, a.Model, a.Year, a.PrimaryLocation, a.MainDriverAge, a.Description,
		string(a.Status), a.RiskScore, a.RiskLevel, a.MonthlyPayment, a.CoverageAmount,
		a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id, userID types.ID) (*Asset, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+assetColumns+`
		FROM insured_assets
		WHERE id = $1 AND user_id = $2`,
		string(id), string(userID),
	)
	return scanAsset(row)
}

func (s *Store) GetByPolicyNumber(ctx context.Context, policyNumber string, userID types.ID) (*Asset, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+assetColumns+`
		FROM insured_assets
		WHERE policy_number = $1 AND user_id = $2`,
		policyNumber, string(userID),
	)
	return scanAsset(row)
}

// ListByUser returns the user's assets, newest first. An empty status matches
// every status.
func (s *Store) ListByUser(ctx context.Context, userID types.ID, status Status) ([]Asset, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+assetColumns+`
		FROM insured_assets
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`,
		string(userID), string(status),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, a *Asset) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE insured_assets
		SET item_name = $1, make = $2, model = $3, year = $4,
		    primary_location = $5, main_driver_age = $6, description = $7,
		    status = $8, risk_score = $9, risk_level = $10,
		    monthly_payment = $11, coverage_amount = $12, updated_at = $13
		WHERE id = $14 AND user_id = $15`,
		a.ItemName, a.Make, a.Model, a.Year,
		a.PrimaryLocation, a.MainDriverAge, a.Description,
		string(a.Status), a.RiskScore, a.RiskLevel,
		a.MonthlyPayment, a.CoverageAmount, a.UpdatedAt,
		string(a.ID), string(a.UserID),
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
		DELETE FROM insured_assets WHERE id = $1 AND user_id = $2`,
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
