// Package motion shows a spinner while the knob is turning.
package motion

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a spinner that only ticks while Active.
type Model struct {
	Spinner spinner.Model
	Active  bool
}

// New creates an idle indicator using s.
func New(s spinner.Spinner) Model {
	sp := spinner.New()
	sp.Spinner = s

	return Model{Spinner: sp}
}

// Start marks the knob as moving. The returned command starts the tick loop
// when the indicator was idle.
func (m Model) Start() (Model, tea.Cmd) {
	if m.Active {
		return m, nil
	}

	m.Active = true

	return m, m.Spinner.Tick
}

// Stop marks the knob as settled. The tick loop ends on the next tick.
func (m Model) Stop() Model {
	m.Active = false
	return m
}

// Update advances the spinner on its own ticks.
func (m Model) Update(teaMsg tea.Msg) (Model, tea.Cmd) {
	tickMsg, ok := teaMsg.(spinner.TickMsg)
	if !ok || !m.Active {
		return m, nil
	}

	var cmd tea.Cmd
	m.Spinner, cmd = m.Spinner.Update(tickMsg)

	return m, cmd
}

// View renders the current spinner frame, or idle when the knob is at rest.
func (m Model) View(idle string) string {
	if !m.Active {
		return idle
	}

	return m.Spinner.View()
}
