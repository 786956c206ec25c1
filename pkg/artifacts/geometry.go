package artifacts

import "math"

// Point is an integer pixel position. It doubles as a size, where X is width
// and Y is height.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vector is a 2-D real vector, used for orientation fields.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Length returns the vector magnitude.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the vector heading in [0,2π).
func (v Vector) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Rect is an axis-aligned block of pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the block's center in pixel coordinates.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Radius is half the smaller extent, the largest circle radius that fits.
func (r Rect) Radius() float64 {
	return float64(min(r.Width, r.Height)) / 2
}
