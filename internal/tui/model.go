// Package tui is the terminal host for a selector switch.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/internal/tui/components/dialview"
	"github.com/alkime/selector/internal/tui/components/motion"
	"github.com/alkime/selector/internal/tui/style"
	"github.com/alkime/selector/pkg/uictl"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Switch is the part of a selector the terminal host drives.
type Switch interface {
	uictl.Selector
	dialview.Source
	ModeCount() int
	SetModeCount(n int) error
	Snapshot() selector.Snapshot
}

// Config controls the layout.
type Config struct {
	Title    string
	DialRows int
}

// redrawMsg carries a switch event into the update loop.
type redrawMsg selector.Event

// closedMsg reports that the event channel was closed.
type closedMsg struct{}

type model struct {
	cancel context.CancelFunc
	sw     Switch
	events <-chan selector.Event
	config Config

	keys   KeyMap
	help   help.Model
	dial   dialview.Model
	motion motion.Model
	err    error
}

// New creates the terminal model. events should be subscribed to sw; the model
// repaints whenever one arrives.
func New(cancel context.CancelFunc, sw Switch, events <-chan selector.Event, config Config) tea.Model {
	if config.Title == "" {
		config.Title = "Selector"
	}

	if config.DialRows == 0 {
		config.DialRows = 15
	}

	return model{
		cancel: cancel,
		sw:     sw,
		events: events,
		config: config,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		dial:   dialview.New(sw, config.DialRows),
		motion: motion.New(spinner.MiniDot),
	}
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan selector.Event) tea.Cmd {
	if events == nil {
		return nil
	}

	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return redrawMsg(ev)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

		return m, nil

	case redrawMsg:
		var cmd tea.Cmd
		if msg.Kind == selector.KnobMoved {
			if msg.Done {
				m.motion = m.motion.Stop()
			} else {
				m.motion, cmd = m.motion.Start()
			}
		}

		return m, tea.Batch(waitForEvent(m.events), cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.motion, cmd = m.motion.Update(msg)

		return m, cmd

	case closedMsg:
		slog.Debug("switch event channel closed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.sw.Next()
		m.err = nil

	case key.Matches(msg, m.keys.Previous):
		m.sw.Previous()
		m.err = nil

	case key.Matches(msg, m.keys.Default):
		m.sw.Reset()
		m.err = nil

	case key.Matches(msg, m.keys.Select):
		m.sw.Select(int(msg.Runes[0]-'1'))
		m.err = nil

	case key.Matches(msg, m.keys.More):
		m.err = m.resize(+1)

	case key.Matches(msg, m.keys.Fewer):
		m.err = m.resize(-1)
	}

	return m, nil
}

func (m model) resize(by int) error {
	n := m.sw.ModeCount() + by
	if err := m.sw.SetModeCount(n); err != nil {
		slog.Warn("mode count rejected", "count", n, "error", err)
		return err
	}

	return nil
}

func (m model) View() string {
	snap := m.sw.Snapshot()

	var sb strings.Builder

	sb.WriteString(style.Title.Render(m.config.Title))
	sb.WriteString("\n\n")
	sb.WriteString(m.dial.View())
	sb.WriteString("\n\n")

	sb.WriteString(style.Swatch(snap.Colors[snap.Mode]).Render(m.motion.View("●")))
	sb.WriteString(" ")
	sb.WriteString(style.Label.Render(snap.ModeName))
	sb.WriteString(" ")
	sb.WriteString(style.Subtitle.Render(fmt.Sprintf("%d/%d", snap.Mode+1, len(snap.Names))))
	sb.WriteString(" ")
	sb.WriteString(style.Muted.Render(fmt.Sprintf("%5.1f°", snap.KnobRotation)))
	sb.WriteString("\n")

	sb.WriteString(renderLegend(snap))
	sb.WriteString("\n")

	if m.err != nil {
		sb.WriteString(style.Error.Render(m.err.Error()))
	}
	sb.WriteString("\n")

	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")

	return sb.String()
}

func renderLegend(snap selector.Snapshot) string {
	parts := make([]string, len(snap.Names))
	for i, name := range snap.Names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == snap.Mode {
			label = "[" + label + "]"
		}
		parts[i] = style.Swatch(snap.Colors[i]).Render(label)
	}

	return strings.Join(parts, "  ")
}
