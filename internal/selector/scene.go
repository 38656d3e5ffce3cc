package selector

import (
	"github.com/alkime/selector/internal/dial"
	"github.com/alkime/selector/internal/geom"
	"github.com/alkime/selector/internal/knob"
)

// Scene is everything a host paints, in paint order: the base circle, the
// dial wedges in mode order, then the knob outline. Coordinates are pixels
// with the origin at the top left of a Size x Size square.
type Scene struct {
	Size       float64
	Center     geom.Point
	BaseRadius float64
	DialRadius float64
	Wedges     []dial.Wedge
	Knob       *knob.Path
	Mode       int
	ModeName   string
}

// Scene returns the current render contract.
func (s *Switch) Scene() Scene {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.metrics
	dialR := m.Pixels(m.DialRadius)
	mode := s.currentMode()

	return Scene{
		Size:       2 * (m.Pixels(m.Space) + m.Pixels(m.BaseRadius)),
		Center:     s.center,
		BaseRadius: m.Pixels(m.BaseRadius),
		DialRadius: dialR,
		Wedges:     s.dial.Wedges(geom.Square(s.center, dialR)),
		Knob:       s.knob.Outline(),
		Mode:       mode,
		ModeName:   s.names[mode],
	}
}
