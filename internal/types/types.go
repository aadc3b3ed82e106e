// README: Common value objects shared across modules.
package types

import "fmt"

// ID is an opaque identifier for persisted entities.
type ID string

// Coordinate is a geographic point in decimal degrees, normalised to
// 6 decimal places for display stability.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
