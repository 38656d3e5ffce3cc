// Package blend generates dial colours by stepping through HSV space.
package blend

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Black is returned for lookups into an empty colour list.
var Black = color.RGBA{A: 0xff}

// Blend returns count colours starting at start and stepping by the full
// start→end difference per index in hue, saturation and value.
//
// Element i is start + i*(end-start), so element 0 is start and element 1 is
// end; further elements continue past end. Hue wraps and saturation/value
// clamp only when converting back to RGB.
func Blend(count int, start, end color.Color) []color.RGBA {
	if count <= 0 {
		return []color.RGBA{}
	}

	h0, s0, v0 := toHSV(start)
	h1, s1, v1 := toHSV(end)
	hInc, sInc, vInc := h1-h0, s1-s0, v1-v0

	out := make([]color.RGBA, count)
	for i := range count {
		step := float64(i)
		out[i] = HSV(h0+step*hInc, s0+step*sInc, v0+step*vInc)
	}

	return out
}

// ColorForIndex returns colors[index] with index saturated to [0, count) and to
// the bounds of colors. It never fails; an empty list yields Black.
func ColorForIndex(colors []color.RGBA, count, index int) color.RGBA {
	limit := min(count, len(colors))
	if limit <= 0 {
		return Black
	}

	index = max(0, min(index, limit-1))

	return colors[index]
}

// HSV converts hue (degrees), saturation and value to an opaque RGBA colour.
// Hue wraps modulo 360; saturation and value clamp to [0, 1].
func HSV(h, s, v float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := colorful.Hsv(h, clamp01(s), clamp01(v)).Clamped()
	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Hex renders c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rrggbb (the leading # is optional) into an opaque colour.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()

	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func toHSV(c color.Color) (h, s, v float64) {
	cf, _ := colorful.MakeColor(c)
	return cf.Hsv()
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
