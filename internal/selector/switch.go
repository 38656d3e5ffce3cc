// Package selector is the rotary selector switch: a dial split into equal
// coloured modes and a knob that turns to the selected one.
//
// The Switch mutex is the render context. Mutators, accessors and animation
// frames all run under it, so a host reading Scene always sees a consistent
// dial and knob.
package selector

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"sync"

	"github.com/alkime/selector/internal/animate"
	"github.com/alkime/selector/internal/dial"
	"github.com/alkime/selector/internal/geom"
	"github.com/alkime/selector/internal/knob"
	"github.com/alkime/selector/pkg/collections"
	"github.com/alkime/selector/pkg/uictl"
)

var _ uictl.Selector = (*Switch)(nil)

// Rotation is the knob movement requested by a selection. From and To are the
// starting angles of the previous and new mode, with a target of 0 expressed
// as 360 so that returning to mode 0 always turns forward.
type Rotation struct {
	From  float64
	To    float64
	Delta float64
}

// Switch is a multi-position selector.
type Switch struct {
	mu sync.Mutex

	dial    dial.Dial
	names   []string
	mode    int
	metrics Metrics
	center  geom.Point
	knob    *knob.Knob

	// rest is the unwrapped angle the knob settles at once the latest task ends.
	rest      float64
	animSeq   uint64
	animating bool
	animator  *animate.Animator

	subs   []chan<- Event
	logger *slog.Logger
}

// New builds a switch at mode 0 with the knob at rest.
func New(cfg Config) (*Switch, error) {
	if cfg.Metrics == (Metrics{}) {
		cfg.Metrics = DefaultMetrics()
	}

	if err := cfg.Metrics.validate(); err != nil {
		return nil, err
	}

	colors, names, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	d, err := dial.New(dial.ConstructionBounds, colors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := cfg.Metrics
	c := m.Pixels(m.Space) + m.Pixels(m.BaseRadius)

	s := &Switch{
		dial:    d,
		names:   names,
		metrics: m,
		center:  geom.Point{X: c, Y: c},
		knob:    knob.New(c, c, m.Pixels(m.KnobBody), m.Pixels(m.KnobNotch), m.Pixels(m.HandleLength)),
		logger:  logger,
	}
	s.animator = animate.New(cfg.Animation, s.applyFrame, logger)

	logger.Debug("selector created", "modes", d.Count(), "names", names)

	return s, nil
}

// Run animates the knob until ctx is cancelled. Without it selections still
// commit, but the knob never moves.
func (s *Switch) Run(ctx context.Context) {
	s.animator.Run(ctx)
}

// SelectMode turns the knob to target, taken modulo the mode count. The mode
// is committed before the animation starts, and a selection made while the
// knob is still turning takes over from wherever the knob is.
func (s *Switch) SelectMode(target int) Rotation {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.dial.Count()
	sweep := s.dial.Sweep()

	target = uictl.Wrap(target, n)
	current := s.currentMode()

	rot := Rotation{
		From: float64(current) * sweep,
		To:   float64(target) * sweep,
	}
	if rot.To == 0 {
		rot.To = 360
	}
	rot.Delta = rot.To - rot.From

	// after a resize the knob may rest off its mode; fold the gap into the turn
	end := s.rest + rot.Delta
	end += geom.SignedAngle(end, rot.To)

	task := s.animator.Submit(s.rest, end)
	s.animSeq = task.Seq
	s.animating = true
	s.rest = end
	s.mode = target

	s.logger.Debug("mode selected",
		"mode", target, "name", s.names[target], "from", rot.From, "to", rot.To, "delta", rot.Delta)
	s.publish(Event{Kind: ModeSelected, Mode: target, Angle: s.knob.Rotation()})

	return rot
}

// SelectNextMode selects the mode after the current one, wrapping to 0.
func (s *Switch) SelectNextMode() Rotation {
	return s.SelectMode(s.CurrentMode() + 1)
}

// SelectPreviousMode selects the mode before the current one, wrapping to the last.
func (s *Switch) SelectPreviousMode() Rotation {
	return s.SelectMode(s.CurrentMode() - 1)
}

// SelectDefaultMode selects mode 0.
func (s *Switch) SelectDefaultMode() Rotation {
	return s.SelectMode(0)
}

func (s *Switch) applyFrame(f animate.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f.Seq != s.animSeq {
		return
	}

	s.knob.SetAngle(f.Angle)
	if f.Done {
		s.animating = false
	}

	s.publish(Event{Kind: KnobMoved, Mode: s.mode, Angle: s.knob.Rotation(), Done: f.Done})
}

// SetDialColors replaces every dial colour. There must be one per mode.
func (s *Switch) SetDialColors(colors []color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.dial.WithColors(colors)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	s.dial = d
	s.publish(Event{Kind: ColorsChanged, Mode: s.currentMode(), Angle: s.knob.Rotation()})

	return nil
}

// SetDialColorRange re-blends the dial from start to end.
func (s *Switch) SetDialColorRange(start, end color.RGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dial = s.dial.WithBlend(start, end)
	s.publish(Event{Kind: ColorsChanged, Mode: s.currentMode(), Angle: s.knob.Rotation()})
}

// SetColorForMode recolours one mode. Modes out of range are ignored and
// reported as false.
func (s *Switch) SetColorForMode(mode int, c color.RGBA) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.dial.WithColor(mode, c)
	if !ok {
		s.logger.Debug("ignoring colour for unknown mode", "mode", mode, "modes", s.dial.Count())
		return false
	}

	s.dial = d
	s.publish(Event{Kind: ColorsChanged, Mode: s.currentMode(), Angle: s.knob.Rotation()})

	return true
}

// SetModeCount changes the number of modes. Growing re-blends the colours
// from the current first and last; shrinking truncates them. The committed
// mode is left as is and reads back clamped.
func (s *Switch) SetModeCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.dial.Resized(dial.ResizeBounds, n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	old := s.dial.Count()
	s.dial = d
	s.names = collections.Fit(s.names, n, ModeLabel)

	s.logger.Debug("mode count changed", "from", old, "to", n)
	s.publish(Event{Kind: ModeCountChanged, Mode: s.currentMode(), Angle: s.knob.Rotation()})

	return nil
}

func (s *Switch) currentMode() int {
	return min(s.mode, s.dial.Count()-1)
}

// CurrentMode returns the selected mode, clamped to the current mode count.
func (s *Switch) CurrentMode() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentMode()
}

// ModeName returns the name of mode, clamped to a valid mode.
func (s *Switch) ModeName(mode int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.names[uictl.Clamp(mode, 0, len(s.names)-1)]
}

// ModeNames returns a copy of every mode name.
func (s *Switch) ModeNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.names)
}

// ModeCount returns the number of modes.
func (s *Switch) ModeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dial.Count()
}

// DialColors returns a copy of the dial colours.
func (s *Switch) DialColors() []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dial.Colors()
}

// DialRadius returns the dial radius in pixels.
func (s *Switch) DialRadius() float64 {
	return s.metrics.Pixels(s.metrics.DialRadius)
}

// StartingAngle returns the starting angle of mode, clamped to a valid mode.
func (s *Switch) StartingAngle(mode int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dial.StartingAngle(mode)
}

// SweepAngle returns the angle each mode spans.
func (s *Switch) SweepAngle() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dial.Sweep()
}

// KnobRotation returns the displayed knob rotation in [0, 360).
func (s *Switch) KnobRotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.knob.Rotation()
}

// KnobOutline returns the knob outline as currently displayed.
func (s *Switch) KnobOutline() *knob.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.knob.Outline()
}

// Snapshot is a copy of the switch state.
type Snapshot struct {
	Mode           int
	ModeName       string
	Names          []string
	Colors         []color.RGBA
	StartingAngles []float64
	Sweep          float64
	KnobRotation   float64
	Animating      bool
}

// Snapshot copies the current state.
func (s *Switch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := s.currentMode()

	return Snapshot{
		Mode:           mode,
		ModeName:       s.names[mode],
		Names:          slices.Clone(s.names),
		Colors:         s.dial.Colors(),
		StartingAngles: s.dial.StartingAngles(),
		Sweep:          s.dial.Sweep(),
		KnobRotation:   s.knob.Rotation(),
		Animating:      s.animating,
	}
}

// Read implements uictl.Selector.
func (s *Switch) Read() int { return s.CurrentMode() }

// Cap implements uictl.Selector.
func (s *Switch) Cap() (num, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentMode(), s.dial.Count()
}

// Select implements uictl.Selector.
func (s *Switch) Select(position int) { s.SelectMode(position) }

// Next implements uictl.Selector.
func (s *Switch) Next() { s.SelectNextMode() }

// Previous implements uictl.Selector.
func (s *Switch) Previous() { s.SelectPreviousMode() }

// Reset implements uictl.Selector.
func (s *Switch) Reset() { s.SelectDefaultMode() }
