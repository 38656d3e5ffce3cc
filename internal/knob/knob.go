package knob

import (
	"github.com/alkime/selector/internal/geom"
)

const (
	bodyStart  = 230
	bodySweep  = 260
	notchStart = 90
	notchSweep = 180

	// Build draws the knob pointing at 180°. Heading turns it to 0° so that a
	// rotation of θ points at θ.
	Heading = 180
)

// Build returns the knob outline around (cx, cy): a body arc, a notch arc at
// the end of the handle, and the quadrilateral handle joining them.
func Build(cx, cy, bodyRadius, notchRadius, handleLength float64) *Path {
	p := &Path{}

	p.AddArc(geom.Point{X: cx, Y: cy}, bodyRadius, bodyStart, bodySweep)

	notchX := cx - bodyRadius - handleLength
	p.AddArc(geom.Point{X: notchX, Y: cy}, notchRadius, notchStart, notchSweep)

	neckX := cx - handleLength + notchRadius/2
	p.MoveTo(geom.Point{X: neckX, Y: cy - bodyRadius*3/4})
	p.LineTo(geom.Point{X: notchX, Y: cy - notchRadius})
	p.LineTo(geom.Point{X: notchX, Y: cy + notchRadius})
	p.LineTo(geom.Point{X: neckX, Y: cy + bodyRadius*3/4})
	p.Close()

	return p
}

// Knob keeps an untouched base outline and a cumulative rotation. The drawn
// outline is derived from both on demand, so repeated small rotations never
// accumulate floating point drift in the path.
type Knob struct {
	base  *Path
	pivot geom.Point
	angle float64
}

// New builds a knob pivoting about (cx, cy).
func New(cx, cy, bodyRadius, notchRadius, handleLength float64) *Knob {
	return &Knob{
		base:  Build(cx, cy, bodyRadius, notchRadius, handleLength),
		pivot: geom.Point{X: cx, Y: cy},
	}
}

// Pivot returns the point the knob rotates about.
func (k *Knob) Pivot() geom.Point { return k.pivot }

// RotateBy adds delta degrees to the knob rotation.
func (k *Knob) RotateBy(delta float64) {
	k.SetAngle(k.angle + delta)
}

// SetAngle sets the knob rotation, wrapped into [0, 360).
func (k *Knob) SetAngle(deg float64) {
	k.angle = geom.NormalizeAngle(deg)
}

// Rotation returns the knob rotation in [0, 360).
func (k *Knob) Rotation() float64 { return k.angle }

// Outline returns the knob outline at its current rotation.
func (k *Knob) Outline() *Path {
	return k.base.Rotated(Heading+k.angle, k.pivot)
}

// Base returns a copy of the unrotated outline.
func (k *Knob) Base() *Path { return k.base.Clone() }
