// README: Monitored destination service. Resolves free-form locations to
// coordinates through the geocoder when one is configured.
package destinations

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"khusela/internal/types"
)

var (
	ErrNotFound   = errors.New("destination not found")
	ErrBadRequest = errors.New("bad request")
)

// Geocoder resolves an address to coordinates and a formatted address.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Coordinate, string, error)
}

type Service struct {
	store    *Store
	geocoder Geocoder
}

// NewService creates the service. geocoder may be nil; destinations are then
// stored without coordinates.
func NewService(store *Store, geocoder Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

type CreateCommand struct {
	UserID    types.ID
	Location  string
	RiskLevel string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Destination, error) {
	location := strings.TrimSpace(cmd.Location)
	if cmd.UserID == "" || location == "" {
		return nil, ErrBadRequest
	}

	now := time.Now().UTC()
	d := &Destination{
		ID:          newID(),
		UserID:      cmd.UserID,
		Location:    location,
		RiskLevel:   cmd.RiskLevel,
		LastChecked: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if s.geocoder != nil {
		coord, formatted, err := s.geocoder.Geocode(ctx, location)
		if err != nil {
			// Geocoding is best-effort on create; the address still gets saved.
			log.Printf("geocode failed for %q: %v", location, err)
		} else {
			d.Coordinate = coord
			d.Location = formatted
		}
	}

	if err := s.store.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id, userID types.ID) (*Destination, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.Get(ctx, id, userID)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Destination, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}

type UpdateCommand struct {
	Location  string
	RiskLevel string
}

func (s *Service) Update(ctx context.Context, id, userID types.ID, cmd UpdateCommand) (*Destination, error) {
	if id == "" || userID == "" {
		return nil, ErrBadRequest
	}

	existing, err := s.store.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if location := strings.TrimSpace(cmd.Location); location != "" && location != existing.Location {
		existing.Location = location
		if s.geocoder != nil {
			coord, formatted, err := s.geocoder.Geocode(ctx, location)
			if err != nil {
				log.Printf("geocode failed for %q: %v", location, err)
			} else {
				existing.Coordinate = coord
				existing.Location = formatted
			}
		}
	}
	if cmd.RiskLevel != "" {
		existing.RiskLevel = cmd.RiskLevel
	}
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

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
