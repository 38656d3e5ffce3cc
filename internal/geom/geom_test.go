package geom_test

import (
	"testing"

	"github.com/alkime/selector/internal/geom"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestNormalizeAngle(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, geom.NormalizeAngle(360), eps)
	assert.InDelta(t, 90.0, geom.NormalizeAngle(450), eps)
	assert.InDelta(t, 270.0, geom.NormalizeAngle(-90), eps)
	assert.InDelta(t, 0.0, geom.NormalizeAngle(-720), eps)
}

func TestRotate(t *testing.T) {
	t.Parallel()

	pivot := geom.Point{X: 10, Y: 10}
	p := geom.Point{X: 20, Y: 10}

	// clockwise on a Y-down screen: +X turns into +Y
	got := geom.Rotate(p, pivot, 90)
	assert.InDelta(t, 10.0, got.X, eps)
	assert.InDelta(t, 20.0, got.Y, eps)

	got = geom.Rotate(p, pivot, 360)
	assert.InDelta(t, p.X, got.X, eps)
	assert.InDelta(t, p.Y, got.Y, eps)
}

func TestAngleOfRoundTrip(t *testing.T) {
	t.Parallel()

	c := geom.Point{X: 5, Y: 5}
	for _, deg := range []float64{0, 45, 130, 230, 359} {
		p := geom.PointAt(c, 3, deg)
		assert.InDelta(t, deg, geom.AngleOf(c, p), 1e-6)
		assert.InDelta(t, 3.0, geom.Distance(c, p), eps)
	}
}

func TestWithinSweep(t *testing.T) {
	t.Parallel()

	assert.True(t, geom.WithinSweep(0, 0, 120))
	assert.False(t, geom.WithinSweep(120, 0, 120))
	assert.True(t, geom.WithinSweep(10, 300, 90), "wraps through zero")
	assert.False(t, geom.WithinSweep(200, 300, 90))
	assert.True(t, geom.WithinSweep(200, 0, 360))
}

func TestRect(t *testing.T) {
	t.Parallel()

	r := geom.Square(geom.Point{X: 44, Y: 44}, 28)
	assert.Equal(t, geom.Rect{Left: 16, Top: 16, Right: 72, Bottom: 72}, r)
	assert.Equal(t, geom.Point{X: 44, Y: 44}, r.Center())
	assert.InDelta(t, 56.0, r.Width(), eps)
	assert.InDelta(t, 56.0, r.Height(), eps)
}

func TestSignedAngle(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 20.0, geom.SignedAngle(350, 10), eps)
	assert.InDelta(t, -20.0, geom.SignedAngle(10, 350), eps)
	assert.InDelta(t, 180.0, geom.SignedAngle(0, 180), eps)
	assert.InDelta(t, 0.0, geom.SignedAngle(480, 120), eps)
}
