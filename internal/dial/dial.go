// Package dial computes the angular layout of a selector dial: how many modes
// it has, the sweep each mode occupies and the colour painted in each wedge.
package dial

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/geom"
)

// ErrModeCount is returned when a mode count falls outside a Bounds policy.
var ErrModeCount = errors.New("mode count out of bounds")

// Bounds is a mode-count validation policy.
type Bounds struct {
	Name     string
	Min, Max int
}

var (
	// ConstructionBounds applies when a dial is first built.
	ConstructionBounds = Bounds{Name: "construction", Min: 1, Max: 8}

	// ResizeBounds applies when an existing dial changes its mode count.
	ResizeBounds = Bounds{Name: "resize", Min: 1, Max: 10}
)

// Validate fails with ErrModeCount when n is outside [b.Min, b.Max].
func (b Bounds) Validate(n int) error {
	if n < b.Min {
		return fmt.Errorf("%w: %d is fewer than the %s minimum of %d", ErrModeCount, n, b.Name, b.Min)
	}

	if n > b.Max {
		return fmt.Errorf("%w: %d is more than the %s maximum of %d", ErrModeCount, n, b.Name, b.Max)
	}

	return nil
}

// SweepAngle returns the angular width of each of n modes.
func SweepAngle(n int) float64 {
	return 360 / float64(n)
}

// StartingAngles returns the angle each mode starts at, i*sweep for i in [0, n).
func StartingAngles(n int, sweep float64) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i) * sweep
	}

	return angles
}

// Resize fits colors to newCount. Growing re-blends the whole list from its
// first to its last colour; shrinking (or keeping the size) truncates.
func Resize(colors []color.RGBA, oldCount, newCount int) []color.RGBA {
	if newCount > oldCount {
		first := blend.ColorForIndex(colors, len(colors), 0)
		last := blend.ColorForIndex(colors, len(colors), len(colors)-1)

		return blend.Blend(newCount, first, last)
	}

	return slices.Clone(colors[:min(newCount, len(colors))])
}

// Wedge is one painted sector of the dial.
type Wedge struct {
	Mode   int
	Bounds geom.Rect
	Start  float64
	Sweep  float64
	Color  color.RGBA
}

// Dial is an immutable snapshot of a dial layout. Mutators return a new Dial.
type Dial struct {
	count  int
	sweep  float64
	starts []float64
	colors []color.RGBA
}

// New validates count against bounds and lays out a dial with the given
// colours. len(colors) must equal count.
func New(bounds Bounds, colors []color.RGBA) (Dial, error) {
	if err := bounds.Validate(len(colors)); err != nil {
		return Dial{}, err
	}

	return layout(slices.Clone(colors)), nil
}

// NewBlended validates count against bounds and fills it with colours blended
// from start to end.
func NewBlended(bounds Bounds, count int, start, end color.RGBA) (Dial, error) {
	if err := bounds.Validate(count); err != nil {
		return Dial{}, err
	}

	return layout(blend.Blend(count, start, end)), nil
}

func layout(colors []color.RGBA) Dial {
	n := len(colors)
	sweep := SweepAngle(n)

	return Dial{
		count:  n,
		sweep:  sweep,
		starts: StartingAngles(n, sweep),
		colors: colors,
	}
}

// Count returns the number of modes.
func (d Dial) Count() int { return d.count }

// Sweep returns the angle each mode spans.
func (d Dial) Sweep() float64 { return d.sweep }

// StartingAngles returns a copy of the per-mode starting angles.
func (d Dial) StartingAngles() []float64 { return slices.Clone(d.starts) }

// Colors returns a copy of the per-mode colours.
func (d Dial) Colors() []color.RGBA { return slices.Clone(d.colors) }

// StartingAngle returns the starting angle of mode, clamped to a valid mode.
func (d Dial) StartingAngle(mode int) float64 {
	if d.count == 0 {
		return 0
	}

	return d.starts[max(0, min(mode, d.count-1))]
}

// Color returns the colour of mode, clamped to a valid mode.
func (d Dial) Color(mode int) color.RGBA {
	return blend.ColorForIndex(d.colors, d.count, mode)
}

// WithColors replaces every colour. len(colors) must equal Count.
func (d Dial) WithColors(colors []color.RGBA) (Dial, error) {
	if len(colors) != d.count {
		return d, fmt.Errorf("%w: got %d colours for %d modes", ErrModeCount, len(colors), d.count)
	}

	return layout(slices.Clone(colors)), nil
}

// WithBlend replaces every colour with a blend from start to end.
func (d Dial) WithBlend(start, end color.RGBA) Dial {
	return layout(blend.Blend(d.count, start, end))
}

// WithColor replaces the colour of one mode. Out-of-range modes leave the dial
// unchanged and report false.
func (d Dial) WithColor(mode int, c color.RGBA) (Dial, bool) {
	if mode < 0 || mode >= d.count {
		return d, false
	}

	colors := slices.Clone(d.colors)
	colors[mode] = c

	return layout(colors), true
}

// Resized validates n against bounds and returns the dial with n modes,
// re-blending or truncating colours per Resize.
func (d Dial) Resized(bounds Bounds, n int) (Dial, error) {
	if err := bounds.Validate(n); err != nil {
		return d, err
	}

	return layout(Resize(d.colors, d.count, n)), nil
}

// Wedges returns one sector per mode, in mode order, bounded by rect.
func (d Dial) Wedges(rect geom.Rect) []Wedge {
	wedges := make([]Wedge, d.count)
	for i := range wedges {
		wedges[i] = Wedge{
			Mode:   i,
			Bounds: rect,
			Start:  d.starts[i],
			Sweep:  d.sweep,
			Color:  d.colors[i],
		}
	}

	return wedges
}

// ModeAt returns the mode whose wedge contains angle.
func (d Dial) ModeAt(angle float64) int {
	for i, start := range d.starts {
		if geom.WithinSweep(angle, start, d.sweep) {
			return i
		}
	}

	return 0
}
