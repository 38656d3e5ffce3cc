// Package geom holds the small amount of plane geometry shared by the dial and
// the knob. Angles are in degrees, measured clockwise from +X in a Y-down
// coordinate space, matching how the dial is painted.
package geom

import "math"

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Square returns the rectangle bounding a circle of radius r around c.
func Square(c Point, r float64) Rect {
	return Rect{Left: c.X - r, Top: c.Y - r, Right: c.X + r, Bottom: c.Y + r}
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func Deg2Rad(x float64) float64 {
	return x * math.Pi / 180
}

func Rad2Deg(x float64) float64 {
	return x * 180 / math.Pi
}

// NormalizeAngle folds deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// PointAt returns the point at angle deg on the circle of radius r around c.
func PointAt(c Point, r, deg float64) Point {
	s, co := math.Sincos(Deg2Rad(deg))
	return Point{X: c.X + r*co, Y: c.Y + r*s}
}

// AngleOf returns the direction of p as seen from c, in [0, 360).
func AngleOf(c, p Point) float64 {
	return NormalizeAngle(Rad2Deg(math.Atan2(p.Y-c.Y, p.X-c.X)))
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Rotate turns p by deg about pivot.
func Rotate(p, pivot Point, deg float64) Point {
	s, c := math.Sincos(Deg2Rad(deg))
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{
		X: pivot.X + dx*c - dy*s,
		Y: pivot.Y + dx*s + dy*c,
	}
}

// WithinSweep reports whether angle lies in the arc that starts at start and
// extends clockwise by sweep degrees. The start edge is inclusive.
func WithinSweep(angle, start, sweep float64) bool {
	if sweep >= 360 {
		return true
	}
	return NormalizeAngle(angle-start) < sweep
}

// SignedAngle returns the shortest turn from a to b, in (-180, 180].
func SignedAngle(a, b float64) float64 {
	d := NormalizeAngle(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}
