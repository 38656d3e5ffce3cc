package selector

import (
	"errors"

	"github.com/alkime/selector/pkg/channels"
)

// EventKind names what changed.
type EventKind string

const (
	ModeSelected     EventKind = "mode_selected"
	ColorsChanged    EventKind = "colors_changed"
	ModeCountChanged EventKind = "mode_count_changed"
	KnobMoved        EventKind = "knob_moved"
)

// Event asks subscribers to redraw. Redraws are idempotent, so events are
// dropped rather than queued when a subscriber falls behind.
type Event struct {
	Kind  EventKind
	Mode  int
	Angle float64
	Done  bool
}

// Subscribe registers ch for redraw events. Sends never block.
func (s *Switch) Subscribe(ch chan<- Event) error {
	if ch == nil {
		return channels.ErrNilChannel
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, ch)

	return nil
}

// publish must be called with s.mu held. Closed subscribers are forgotten.
func (s *Switch) publish(ev Event) {
	kept := s.subs[:0]
	for _, ch := range s.subs {
		err := channels.SendNonBlock(ch, ev)
		if errors.Is(err, channels.ErrChannelClosed) {
			s.logger.Debug("dropping closed subscriber")
			continue
		}
		if err != nil {
			s.logger.Debug("redraw event dropped", "kind", ev.Kind, "error", err)
		}
		kept = append(kept, ch)
	}
	s.subs = kept
}
