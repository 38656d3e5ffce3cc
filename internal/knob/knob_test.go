package knob_test

import (
	"testing"

	"github.com/alkime/selector/internal/geom"
	"github.com/alkime/selector/internal/knob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cx, cy = 44.0, 44.0
	body   = 8.0
	notch  = 2.0
	handle = 6.0
	eps    = 1e-9
)

func assertPathsEqual(t *testing.T, want, got *knob.Path) {
	t.Helper()

	ws, gs := want.Segments(), got.Segments()
	require.Len(t, gs, len(ws))
	for i := range ws {
		assert.Equal(t, ws[i].Op, gs[i].Op, "segment %d", i)
		assert.InDelta(t, ws[i].At.X, gs[i].At.X, 1e-6, "segment %d x", i)
		assert.InDelta(t, ws[i].At.Y, gs[i].At.Y, 1e-6, "segment %d y", i)
		assert.InDelta(t, ws[i].Start, gs[i].Start, 1e-6, "segment %d start", i)
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	segs := knob.Build(cx, cy, body, notch, handle).Segments()
	require.Len(t, segs, 7)

	bodyArc := segs[0]
	assert.Equal(t, knob.OpArc, bodyArc.Op)
	assert.Equal(t, geom.Point{X: cx, Y: cy}, bodyArc.At)
	assert.InDelta(t, body, bodyArc.Radius, eps)
	assert.InDelta(t, 230.0, bodyArc.Start, eps)
	assert.InDelta(t, 260.0, bodyArc.Sweep, eps)

	notchArc := segs[1]
	assert.Equal(t, knob.OpArc, notchArc.Op)
	assert.Equal(t, geom.Point{X: cx - body - handle, Y: cy}, notchArc.At)
	assert.InDelta(t, notch, notchArc.Radius, eps)
	assert.InDelta(t, 90.0, notchArc.Start, eps)
	assert.InDelta(t, 180.0, notchArc.Sweep, eps)

	assert.Equal(t, knob.OpMove, segs[2].Op)
	assert.Equal(t, geom.Point{X: 39, Y: 38}, segs[2].At)
	assert.Equal(t, geom.Point{X: 30, Y: 42}, segs[3].At)
	assert.Equal(t, geom.Point{X: 30, Y: 46}, segs[4].At)
	assert.Equal(t, geom.Point{X: 39, Y: 50}, segs[5].At)
	assert.Equal(t, knob.OpClose, segs[6].Op)
}

func TestPathRotate(t *testing.T) {
	t.Parallel()

	pivot := geom.Point{X: cx, Y: cy}

	t.Run("full turn is identity", func(t *testing.T) {
		base := knob.Build(cx, cy, body, notch, handle)
		assertPathsEqual(t, base, base.Rotated(360, pivot))
	})

	t.Run("increments compose", func(t *testing.T) {
		base := knob.Build(cx, cy, body, notch, handle)
		stepped := base.Clone()
		for range 40 {
			stepped.Rotate(3, pivot)
		}
		assertPathsEqual(t, base.Rotated(120, pivot), stepped)
	})

	t.Run("rotate mutates, rotated copies", func(t *testing.T) {
		p := knob.Build(cx, cy, body, notch, handle)
		before := p.Segments()

		_ = p.Rotated(90, pivot)
		assert.Equal(t, before, p.Segments())

		p.Rotate(90, pivot)
		assert.NotEqual(t, before, p.Segments())
	})
}

func TestFlattenContains(t *testing.T) {
	t.Parallel()

	polys := knob.Build(cx, cy, body, notch, handle).Flatten(24)
	require.Len(t, polys, 3, "body, notch and handle contours")

	inside := func(pt geom.Point) bool {
		for _, poly := range polys {
			if poly.Contains(pt) {
				return true
			}
		}
		return false
	}

	assert.True(t, inside(geom.Point{X: cx, Y: cy}), "pivot")
	assert.True(t, inside(geom.Point{X: cx - body - handle/2, Y: cy}), "handle")
	assert.True(t, inside(geom.Point{X: cx - body - handle - notch/2, Y: cy}), "notch")
	assert.False(t, inside(geom.Point{X: cx + body + 1, Y: cy}), "right of body")
	assert.False(t, inside(geom.Point{X: cx - body - handle/2, Y: cy + body}), "below handle")

	r := knob.Bounds(polys)
	assert.InDelta(t, cx-body-handle-notch, r.Left, 1e-6)
	assert.InDelta(t, cx+body, r.Right, 1e-6)
}

func TestKnob(t *testing.T) {
	t.Parallel()

	k := knob.New(cx, cy, body, notch, handle)
	assert.InDelta(t, 0.0, k.Rotation(), eps)
	assert.Equal(t, geom.Point{X: cx, Y: cy}, k.Pivot())

	notchAt := func() geom.Point { return k.Outline().Segments()[1].At }

	t.Run("rest heading points at zero degrees", func(t *testing.T) {
		at := notchAt()
		assert.InDelta(t, cx+body+handle, at.X, 1e-6)
		assert.InDelta(t, cy, at.Y, 1e-6)
	})

	t.Run("rotation turns the outline", func(t *testing.T) {
		k.SetAngle(90)
		at := notchAt()
		assert.InDelta(t, cx, at.X, 1e-6)
		assert.InDelta(t, cy+body+handle, at.Y, 1e-6)
	})

	t.Run("angle wraps", func(t *testing.T) {
		k.SetAngle(-90)
		assert.InDelta(t, 270.0, k.Rotation(), eps)

		k.SetAngle(0)
		k.RotateBy(400)
		assert.InDelta(t, 40.0, k.Rotation(), eps)

		k.RotateBy(-40)
		assert.InDelta(t, 0.0, k.Rotation(), eps)
	})

	t.Run("base stays untouched", func(t *testing.T) {
		k.SetAngle(123)
		_ = k.Outline()
		assertPathsEqual(t, knob.Build(cx, cy, body, notch, handle), k.Base())
	})
}
