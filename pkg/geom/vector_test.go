package geom

import (
	"math"
	"testing"
)

// TestDisplacement_CardinalAngles verifies exact displacements along the
// four axis-aligned directions where rounding cannot introduce error.
func TestDisplacement_CardinalAngles(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		angle    float64
		want     Vector
	}{
		{"right", 100, 0, Vector{100, 0}},
		{"down", 100, 90, Vector{0, 100}},
		{"left", 100, 180, Vector{-100, 0}},
		{"up", 100, 270, Vector{0, -100}},
		{"full turn", 50, 360, Vector{50, 0}},
		{"negative angle", 50, -90, Vector{0, -50}},
	}

	for _, tc := range cases {
		got := Displacement(tc.distance, tc.angle)
		if got != tc.want {
			t.Errorf("%s: Displacement(%v, %v) = %v, want %v",
				tc.name, tc.distance, tc.angle, got, tc.want)
		}
	}
}

// TestDisplacement_MagnitudePreserved checks that the displacement keeps
// the requested travel distance within rounding tolerance (≤ 1 per axis).
func TestDisplacement_MagnitudePreserved(t *testing.T) {
	for _, distance := range []float64{0, 1, 10, 100, 333.3} {
		for angle := -360.0; angle <= 720.0; angle += 7.0 {
			got := Displacement(distance, angle)

			rad := angle * math.Pi / 180.0
			if dx := math.Abs(got.X - distance*math.Cos(rad)); dx > 0.5 {
				t.Fatalf("Displacement(%v, %v).X off by %v", distance, angle, dx)
			}
			if dy := math.Abs(got.Y - distance*math.Sin(rad)); dy > 0.5 {
				t.Fatalf("Displacement(%v, %v).Y off by %v", distance, angle, dy)
			}
		}
	}
}

// TestDisplacement_RoundsNotTruncates pins the rounding policy: components
// must snap to the nearest pixel, not toward zero.
func TestDisplacement_RoundsNotTruncates(t *testing.T) {
	// 45°: 10·cos(45°) ≈ 7.071 → 7; 10·sin(45°) ≈ 7.071 → 7
	if got := Displacement(10, 45); got != (Vector{7, 7}) {
		t.Errorf("Displacement(10, 45) = %v, want {7 7}", got)
	}
	// 60°: 10·cos(60°) = 5 (exact), 10·sin(60°) ≈ 8.66 → 9 (truncation would give 8)
	if got := Displacement(10, 60); got != (Vector{5, 9}) {
		t.Errorf("Displacement(10, 60) = %v, want {5 9}", got)
	}
}

// TestEndpoint_ZeroDistance verifies that zero travel distance leaves the
// start position unchanged for any angle.
func TestEndpoint_ZeroDistance(t *testing.T) {
	start := Vector{X: 12.5, Y: -3}
	for angle := 0.0; angle < 360.0; angle += 15.0 {
		if got := Endpoint(start, 0, angle); got != start {
			t.Errorf("Endpoint(start, 0, %v) = %v, want %v", angle, got, start)
		}
	}
}

func TestEndpoint_AddsDisplacement(t *testing.T) {
	start := Vector{X: 10, Y: 20}
	got := Endpoint(start, 100, 90)
	want := Vector{X: 10, Y: 120}
	if got != want {
		t.Errorf("Endpoint(%v, 100, 90) = %v, want %v", start, got, want)
	}
}

func TestVectorAdd(t *testing.T) {
	got := Vector{1, 2}.Add(Vector{-3, 4})
	if got != (Vector{-2, 6}) {
		t.Errorf("Add: got %v, want {-2 6}", got)
	}
}
