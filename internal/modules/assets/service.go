// README: Insured asset service: policy issuance, CRUD, and underwriting.
package assets

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"khusela/internal/types"
)

var (
	ErrNotFound         = errors.New("asset not found")
	ErrBadRequest       = errors.New("bad request")
	ErrAlreadyProcessed = errors.New("asset has already been processed")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID          types.ID
	Make            string
	Model           string
	Year            int
	PrimaryLocation string
	MainDriverAge   int
	Description     string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Asset, error) {
	vehicleMake := strings.TrimSpace(cmd.Make)
	vehicleModel := strings.TrimSpace(cmd.Model)
	location := strings.TrimSpace(cmd.PrimaryLocation)
	if cmd.UserID == "" || vehicleMake == "" || vehicleModel == "" || location == "" {
		return nil, ErrBadRequest
	}
	now := time.Now().UTC()
	if cmd.Year < 1900 || cmd.Year > now.Year()+1 {
		return nil, ErrBadRequest
	}
	if cmd.MainDriverAge < 16 || cmd.MainDriverAge > 100 {
		return nil, ErrBadRequest
	}

	a := &Asset{
		ID:              newID(),
		UserID:          cmd.UserID,
		ItemName:        itemName(cmd.Year, vehicleMake, vehicleModel),
		Category:        "Vehicle",
		PolicyNumber:    s.nextPolicyNumber(ctx, now),
		Make:            vehicleMake,
		Model:           vehicleModel,
		Year:            cmd.Year,
		PrimaryLocation: location,
		MainDriverAge:   cmd.MainDriverAge,
		Description:     strings.TrimSpace(cmd.Description),
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id, userID types.ID) (*Asset, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id, userID)
}

func (s *Service) GetByPolicyNumber(ctx context.Context, policyNumber string, userID types.ID) (*Asset, error) {
	if policyNumber == "" || userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.GetByPolicyNumber(ctx, policyNumber, userID)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Asset, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID, "")
}

func (s *Service) ListByStatus(ctx context.Context, userID types.ID, status Status) ([]Asset, error) {
	if userID == "" || !ValidStatus(status) {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID, status)
}

type UpdateCommand struct {
	Make            string
	Model           string
	Year            int
	PrimaryLocation string
	MainDriverAge   int
	Description     string
}

func (s *Service) Update(ctx context.Context, id, userID types.ID, cmd UpdateCommand) (*Asset, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}

	existing, err := s.store.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if vehicleMake := strings.TrimSpace(cmd.Make); vehicleMake != "" {
		existing.Make = vehicleMake
	}
	if vehicleModel := strings.TrimSpace(cmd.Model); vehicleModel != "" {
		existing.Model = vehicleModel
	}
	if cmd.Year != 0 {
		if cmd.Year < 1900 || cmd.Year > time.Now().Year()+1 {
			return nil, ErrBadRequest
		}
		existing.Year = cmd.Year
	}
	if location := strings.TrimSpace(cmd.PrimaryLocation); location != "" {
		existing.PrimaryLocation = location
	}
	if cmd.MainDriverAge != 0 {
		if cmd.MainDriverAge < 16 || cmd.MainDriverAge > 100 {
			return nil, ErrBadRequest
		}
		existing.MainDriverAge = cmd.MainDriverAge
	}
	if description := strings.TrimSpace(cmd.Description); description != "" {
		existing.Description = description
	}
	existing.ItemName = itemName(existing.Year, existing.Make, existing.Model)
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id, userID types.ID) error {
	if id == "" || userID == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, id, userID)
}

// ProcessResult pairs the activated asset with the quote that priced it.
type ProcessResult struct {
	Asset *Asset `json:"asset"`
	Quote Quote  `json:"assessment"`
}

// Process underwrites a pending asset and activates its policy.
func (s *Service) Process(ctx context.Context, id, userID types.ID) (*ProcessResult, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}

	a, err := s.store.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusPending {
		return nil, ErrAlreadyProcessed
	}

	quote := quoteFor(a, time.Now().UTC().Year())
	a.RiskScore = quote.RiskScore
	a.RiskLevel = quote.RiskLevel
	a.MonthlyPayment = quote.MonthlyPayment
	a.CoverageAmount = quote.CoverageAmount
	a.Status = StatusActive
	a.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, a); err != nil {
		return nil, err
	}
	return &ProcessResult{Asset: a, Quote: quote}, nil
}

func (s *Service) Summary(ctx context.Context, userID types.ID) (*Summary, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	list, err := s.store.ListByUser(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	return summarize(list), nil
}

func summarize(list []Asset) *Summary {
	summary := &Summary{
		TotalAssets: len(list),
		RiskDistribution: map[string]int{
			"Low": 0, "Medium": 0, "High": 0, "Critical": 0,
		},
	}
	for _, a := range list {
		switch a.Status {
		case StatusActive:
			summary.ActiveAssets++
			summary.TotalMonthlyPremium += a.MonthlyPayment
		case StatusPending:
			summary.PendingAssets++
		}
		if _, ok := summary.RiskDistribution[a.RiskLevel]; ok {
			summary.RiskDistribution[a.RiskLevel]++
		}
	}
	return summary
}

// nextPolicyNumber issues INS-YYYY-NNNNNN from the database sequence, falling
// back to a timestamp-derived suffix when the sequence is unavailable.
func (s *Service) nextPolicyNumber(ctx context.Context, now time.Time) string {
	seq, err := s.store.NextPolicySeq(ctx)
	if err != nil {
		log.Printf("policy sequence unavailable, using timestamp suffix: %v", err)
		return formatPolicyNumber(now.Year(), now.UnixMilli())
	}
	return formatPolicyNumber(now.Year(), seq)
}

func formatPolicyNumber(year int, seq int64) string {
	return fmt.Sprintf("INS-%d-%06d", year, seq%1000000)
}

func itemName(year int, vehicleMake, vehicleModel string) string {
	return fmt.Sprintf("%d %s %s", year, vehicleMake, vehicleModel)
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
