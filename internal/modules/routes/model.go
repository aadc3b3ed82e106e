// README: Saved route aggregate.
package routes

import (
	"time"

	"khusela/internal/types"
)

type Route struct {
	ID              types.ID  `json:"id"`
	UserID          types.ID  `json:"userId"`
	Title           string    `json:"title"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	Category        string    `json:"category,omitempty"`
	Frequency       string    `json:"frequency,omitempty"`
	EncodedPolyline string    `json:"encodedPolyline,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
