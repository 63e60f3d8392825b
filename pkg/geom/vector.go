// Package geom provides the 2D vector math used to compute particle
// trajectories: a displacement from a travel distance and an angle, and
// the endpoint reached from a start position.
package geom

import "math"

// Vector is a 2D point or displacement in pixel space.
type Vector struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Displacement rotates the vector (distance, 0) by angleDeg degrees using
// the standard 2D rotation and rounds both components to the nearest
// integer. Rounding (not truncation) is the pixel-snapping policy: the
// returned displacement lands on whole pixels.
//
// Angles are measured from the positive X axis; with a screen coordinate
// system (Y down) positive angles turn clockwise.
func Displacement(distance, angleDeg float64) Vector {
	rad := angleDeg * math.Pi / 180.0
	// Rotation of (d, 0): x' = d·cosθ − 0·sinθ, y' = d·sinθ + 0·cosθ
	return Vector{
		X: math.Round(distance * math.Cos(rad)),
		Y: math.Round(distance * math.Sin(rad)),
	}
}

// Endpoint returns start displaced by distance pixels along angleDeg.
func Endpoint(start Vector, distance, angleDeg float64) Vector {
	return start.Add(Displacement(distance, angleDeg))
}
