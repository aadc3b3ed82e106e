// README: Alert service: validation and persistence.
package alerts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"khusela/internal/types"
)

var (
	ErrNotFound   = errors.New("alert not found")
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
	UserID types.ID
	Title  string
	Type   string
	Status Status
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Alert, error) {
	if cmd.UserID == "" || cmd.Title == "" {
		return nil, ErrBadRequest
	}
	status := cmd.Status
	if status == "" {
		status = StatusUnread
	}
	if !ValidStatus(status) {
		return nil, ErrBadRequest
	}

	a := &Alert{
		ID:        newID(),
		UserID:    cmd.UserID,
		Title:     cmd.Title,
		Type:      cmd.Type,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID, limit, offset int) ([]Alert, error) {
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

// MarkStatus updates an alert's read state.
func (s *Service) MarkStatus(ctx context.Context, id types.ID, status Status) error {
	if id == "" || !ValidStatus(status) {
		return ErrBadRequest
	}
	return s.store.UpdateStatus(ctx, id, status)
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
