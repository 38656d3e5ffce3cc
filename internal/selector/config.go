package selector

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"github.com/alkime/selector/internal/animate"
	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/pkg/collections"
)

// ErrInvalidConfiguration is returned, wrapped, for every rejected
// construction or mutation. State is never partially changed.
var ErrInvalidConfiguration = errors.New("invalid selector configuration")

// DefaultColors are the three dial colours used when none are configured.
func DefaultColors() []color.RGBA {
	return []color.RGBA{
		blend.HSV(29, 0.231, 0.949),
		blend.HSV(59, 0.263, 0.894),
		blend.HSV(129, 0.217, 0.776),
	}
}

// DefaultNames label the default three-mode dial.
func DefaultNames() []string {
	return []string{"LOW", "MID", "HIGH"}
}

// ModeLabel is the name given to modes that have none.
func ModeLabel(mode int) string {
	return "MODE " + strconv.Itoa(mode+1)
}

// Metrics holds the switch dimensions in density-independent units.
type Metrics struct {
	Density float64

	Space        float64
	BaseRadius   float64
	DialRadius   float64
	KnobBody     float64
	KnobNotch    float64
	HandleLength float64
}

// DefaultMetrics returns the stock dimensions at density 1.
func DefaultMetrics() Metrics {
	return Metrics{
		Density:      1,
		Space:        6,
		BaseRadius:   16,
		DialRadius:   14,
		KnobBody:     4,
		KnobNotch:    1,
		HandleLength: 3,
	}
}

// Pixels converts dp to pixels.
func (m Metrics) Pixels(dp float64) float64 {
	return m.Density * dp / 0.5
}

func (m Metrics) validate() error {
	if m.Density <= 0 {
		return fmt.Errorf("%w: density must be positive, got %g", ErrInvalidConfiguration, m.Density)
	}

	if m.DialRadius > m.BaseRadius {
		return fmt.Errorf("%w: dial radius %g exceeds base radius %g", ErrInvalidConfiguration, m.DialRadius, m.BaseRadius)
	}

	for name, v := range map[string]float64{
		"space": m.Space, "base radius": m.BaseRadius, "dial radius": m.DialRadius,
		"knob body": m.KnobBody, "knob notch": m.KnobNotch, "handle length": m.HandleLength,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfiguration, name, v)
		}
	}

	return nil
}

// ColorRange asks for colours blended from Start to End.
type ColorRange struct {
	Start, End color.RGBA
}

// Config describes a switch. With Colors set the mode count is len(Colors).
// Otherwise Blend (when set) fills ModeCount modes, falling back to len(Names)
// and then 3. With neither, DefaultColors are used.
type Config struct {
	ModeCount int
	Names     []string
	Colors    []color.RGBA
	Blend     *ColorRange

	Metrics   Metrics
	Animation animate.Config
	Logger    *slog.Logger
}

// DefaultConfig is the three-mode LOW/MID/HIGH switch.
func DefaultConfig() Config {
	return Config{
		Names:     DefaultNames(),
		Colors:    DefaultColors(),
		Metrics:   DefaultMetrics(),
		Animation: animate.DefaultConfig(),
	}
}

// resolve returns the colours and names the switch starts with.
func (c Config) resolve() ([]color.RGBA, []string, error) {
	var colors []color.RGBA

	switch {
	case len(c.Colors) > 0:
		colors = c.Colors

	case c.Blend != nil:
		n := c.ModeCount
		if n == 0 {
			n = len(c.Names)
		}
		if n == 0 {
			n = 3
		}
		colors = blend.Blend(n, c.Blend.Start, c.Blend.End)

	default:
		colors = DefaultColors()
		if c.ModeCount != 0 && c.ModeCount != len(colors) {
			return nil, nil, fmt.Errorf("%w: mode count %d needs explicit colours or a colour range",
				ErrInvalidConfiguration, c.ModeCount)
		}
	}

	if c.ModeCount != 0 && c.ModeCount != len(colors) {
		return nil, nil, fmt.Errorf("%w: mode count %d does not match %d colours",
			ErrInvalidConfiguration, c.ModeCount, len(colors))
	}

	if len(c.Names) == 0 {
		return colors, collections.Fit(DefaultNames(), len(colors), ModeLabel), nil
	}

	if len(c.Names) != len(colors) {
		return nil, nil, fmt.Errorf("%w: unequal number of modes (%d) and colours (%d)",
			ErrInvalidConfiguration, len(c.Names), len(colors))
	}

	return colors, collections.Fit(c.Names, len(colors), ModeLabel), nil
}
