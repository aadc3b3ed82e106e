// README: Saved route service: validation and persistence.
package routes

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"khusela/internal/types"
)

var (
	ErrNotFound   = errors.New("route not found")
	ErrBadRequest = errors.New("bad request")
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID          types.ID
	Title           string
	Origin          string
	Destination     string
	Category        string
	Frequency       string
	EncodedPolyline string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Route, error) {
	if cmd.UserID == "" || cmd.Title == "" || cmd.Origin == "" || cmd.Destination == "" {
		return nil, ErrBadRequest
	}

	now := time.Now().UTC()
	r := &Route{
		ID:              newID(),
		UserID:          cmd.UserID,
		Title:           cmd.Title,
		Origin:          cmd.Origin,
		Destination:     cmd.Destination,
		Category:        cmd.Category,
		Frequency:       cmd.Frequency,
		EncodedPolyline: cmd.EncodedPolyline,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Route, error) {
	if id == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID, limit, offset int) ([]Route, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.ListByUser(ctx, userID, limit, offset)
}

type UpdateCommand struct {
	Title           string
	Origin          string
	Destination     string
	Category        string
	Frequency       string
	EncodedPolyline string
}

func (s *Service) Update(ctx context.Context, id types.ID, cmd UpdateCommand) (*Route, error) {
	if id == "" {
		return nil, ErrBadRequest
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Title != "" {
		existing.Title = cmd.Title
	}
	if cmd.Origin != "" {
		existing.Origin = cmd.Origin
	}
	if cmd.Destination != "" {
		existing.Destination = cmd.Destination
	}
	if cmd.Category != "" {
		existing.Category = cmd.Category
	}
	if cmd.Frequency != "" {
		existing.Frequency = cmd.Frequency
	}
	if cmd.EncodedPolyline != "" {
		existing.EncodedPolyline = cmd.EncodedPolyline
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, id)
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
