package geo

import (
	"errors"
	"math"
	"testing"

	"khusela/internal/types"
)

// googleExample is the worked example from the polyline encoding reference:
// (38.5,-120.2) (40.7,-120.95) (43.252,-126.453).
const googleExample = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func TestDecode_KnownFixture(t *testing.T) {
	got, err := Decode(googleExample)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []types.Coordinate{
		{Lat: 38.5, Lng: -120.2},
		{Lat: 40.7, Lng: -120.95},
		{Lat: 43.252, Lng: -126.453},
	}
	if len(got) != len(want) {
		t.Fatalf("Decode() returned %d coordinates, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i].Lat-want[i].Lat) > 1e-5 || math.Abs(got[i].Lng-want[i].Lng) > 1e-5 {
			t.Errorf("coordinate %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"truncated sequence", "_p~iF~ps|U_ulLnnqC_"},
		{"lone continuation byte", "_"},
		{"odd value run", "_p~iF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.encoded)
			if err == nil {
				t.Fatalf("Decode(%q) expected error", tt.encoded)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("Decode(%q) error = %v, want ErrDecode", tt.encoded, err)
			}
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	original, err := Decode(googleExample)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	again, err := Decode(Encode(original))
	if err != nil {
		t.Fatalf("Decode(Encode()) error = %v", err)
	}
	if len(again) != len(original) {
		t.Fatalf("round trip changed length: %d != %d", len(again), len(original))
	}
	for i := range original {
		if math.Abs(again[i].Lat-original[i].Lat) > 1e-5 || math.Abs(again[i].Lng-original[i].Lng) > 1e-5 {
			t.Errorf("round trip coordinate %d = %v, want %v", i, again[i], original[i])
		}
	}
}

func TestSample(t *testing.T) {
	coords := make([]types.Coordinate, 25)
	for i := range coords {
		coords[i] = types.Coordinate{Lat: float64(i), Lng: float64(-i)}
	}

	tests := []struct {
		name    string
		in      []types.Coordinate
		stride  int
		wantLen int
	}{
		{"stride 1 keeps all", coords, 1, 25},
		{"default stride", coords, DefaultSampleStride, 3}, // ceil(25/11)
		{"stride larger than input", coords, 100, 1},
		{"empty input", nil, 4, 0},
		{"stride below 1 clamps to 1", coords[:5], 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sample(tt.in, tt.stride)
			if got == nil {
				t.Fatal("Sample() returned nil, want empty slice")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("Sample() length = %d, want %d", len(got), tt.wantLen)
			}
			if len(tt.in) > 0 && got[0] != tt.in[0] {
				t.Errorf("Sample() first element = %v, want index 0 (%v)", got[0], tt.in[0])
			}
		})
	}
}

func TestSample_Deterministic(t *testing.T) {
	coords, err := Decode(googleExample)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	a := Sample(coords, 2)
	b := Sample(coords, 2)
	if len(a) != len(b) {
		t.Fatalf("repeated sampling differs in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("repeated sampling differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestHaversineKm(t *testing.T) {
	jhb := types.Coordinate{Lat: -26.2041, Lng: 28.0473}
	soweto := types.Coordinate{Lat: -26.2678, Lng: 27.8546}

	d := HaversineKm(jhb, soweto)
	// Johannesburg CBD to Soweto is roughly 20km as the crow flies.
	if d < 15 || d > 25 {
		t.Errorf("HaversineKm() = %.1f, want roughly 20", d)
	}
	if HaversineKm(jhb, jhb) != 0 {
		t.Errorf("distance to self should be 0")
	}
}
