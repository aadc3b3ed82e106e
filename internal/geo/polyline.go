// Package geo contains pure geographic helpers: polyline decoding and
// encoding, deterministic coordinate sampling, and distance math.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/twpayne/go-polyline"

	"khusela/internal/types"
)

// ErrDecode marks a malformed encoded polyline (truncated byte runs,
// integer overflow). Mapped to a 400 at the API boundary.
var ErrDecode = errors.New("malformed polyline")

// DefaultSampleStride is the interval at which decoded coordinates are
// selected for per-point weather lookups. Every 11th point keeps the
// downstream forecast fan-out small even on long routes.
const DefaultSampleStride = 11

// Decode converts an encoded polyline string into its coordinate sequence.
// Coordinates are rounded to 6 decimal places.
func Decode(encoded string) ([]types.Coordinate, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	coords, remaining, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, len(remaining))
	}

	out := make([]types.Coordinate, len(coords))
	for i, c := range coords {
		out[i] = types.Coordinate{Lat: round6(c[0]), Lng: round6(c[1])}
		if !validCoordinate(out[i]) {
			return nil, fmt.Errorf("%w: coordinate %d out of range", ErrDecode, i)
		}
	}
	return out, nil
}

// Encode is the inverse of Decode, used by tests and for persisting
// route geometry compactly.
func Encode(coords []types.Coordinate) string {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.Lat, c.Lng}
	}
	return string(polyline.EncodeCoords(pairs))
}

// Sample selects every stride-th coordinate starting at index 0. The result
// always contains index 0 for non-empty input and has length
// ceil(len(coords)/stride). An empty input yields an empty (non-nil) slice.
func Sample(coords []types.Coordinate, stride int) []types.Coordinate {
	if stride < 1 {
		stride = 1
	}
	out := make([]types.Coordinate, 0, (len(coords)+stride-1)/stride)
	for i := 0; i < len(coords); i += stride {
		out = append(out, coords[i])
	}
	return out
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func validCoordinate(c types.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
