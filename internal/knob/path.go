// Package knob builds and rotates the outline of the selector's pointer.
package knob

import (
	"slices"

	"github.com/alkime/selector/internal/geom"
)

// Op identifies a path segment kind.
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpClose
)

// Segment is one path command. Move and Line use At. Arc uses At as its
// centre plus Radius, Start and Sweep, and begins a new contour.
type Segment struct {
	Op     Op
	At     geom.Point
	Radius float64
	Start  float64
	Sweep  float64
}

// Path is an outline made of contours. Open contours are closed implicitly
// when filled.
type Path struct {
	segs []Segment
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(at geom.Point) {
	p.segs = append(p.segs, Segment{Op: OpMove, At: at})
}

// LineTo extends the current contour to p.
func (p *Path) LineTo(at geom.Point) {
	p.segs = append(p.segs, Segment{Op: OpLine, At: at})
}

// AddArc appends a standalone arc contour.
func (p *Path) AddArc(center geom.Point, radius, start, sweep float64) {
	p.segs = append(p.segs, Segment{Op: OpArc, At: center, Radius: radius, Start: start, Sweep: sweep})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Op: OpClose})
}

// Segments returns a copy of the path commands.
func (p *Path) Segments() []Segment {
	return slices.Clone(p.segs)
}

// Clone returns an independent copy of p.
func (p *Path) Clone() *Path {
	return &Path{segs: slices.Clone(p.segs)}
}

// Rotate turns every point of p by deg about pivot, in place. Arc centres move
// and their start angles advance by deg.
func (p *Path) Rotate(deg float64, pivot geom.Point) {
	for i := range p.segs {
		s := &p.segs[i]
		if s.Op == OpClose {
			continue
		}

		s.At = geom.Rotate(s.At, pivot, deg)
		if s.Op == OpArc {
			s.Start = geom.NormalizeAngle(s.Start + deg)
		}
	}
}

// Rotated returns a copy of p turned by deg about pivot.
func (p *Path) Rotated(deg float64, pivot geom.Point) *Path {
	out := p.Clone()
	out.Rotate(deg, pivot)

	return out
}

// Polygon is a flattened closed contour.
type Polygon []geom.Point

// Flatten approximates each contour with straight edges, using arcSteps edges
// per arc.
func (p *Path) Flatten(arcSteps int) []Polygon {
	arcSteps = max(arcSteps, 1)

	var (
		out []Polygon
		cur Polygon
	)

	flush := func() {
		if len(cur) >= 3 {
			out = append(out, cur)
		}
		cur = nil
	}

	for _, s := range p.segs {
		switch s.Op {
		case OpMove:
			flush()
			cur = Polygon{s.At}
		case OpLine:
			cur = append(cur, s.At)
		case OpArc:
			flush()
			for k := 0; k <= arcSteps; k++ {
				deg := s.Start + s.Sweep*float64(k)/float64(arcSteps)
				cur = append(cur, geom.PointAt(s.At, s.Radius, deg))
			}
			flush()
		case OpClose:
			flush()
		}
	}
	flush()

	return out
}

// Contains reports whether pt lies inside the polygon (even-odd rule).
func (poly Polygon) Contains(pt geom.Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// Bounds returns the smallest rectangle containing every polygon.
func Bounds(polys []Polygon) geom.Rect {
	first := true
	var r geom.Rect
	for _, poly := range polys {
		for _, pt := range poly {
			if first {
				r = geom.Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
				first = false
				continue
			}
			r.Left = min(r.Left, pt.X)
			r.Top = min(r.Top, pt.Y)
			r.Right = max(r.Right, pt.X)
			r.Bottom = max(r.Bottom, pt.Y)
		}
	}

	return r
}
