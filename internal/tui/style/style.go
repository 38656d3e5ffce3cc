// Package style defines lipgloss styles for the TUI.
package style

import (
	"image/color"

	"github.com/alkime/selector/internal/blend"
	"github.com/charmbracelet/lipgloss"
)

// Variable names omit the "Style" suffix since they're accessed via the
// package (style.Title rather than style.TitleStyle).
var (
	// Title is used for the header.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Error is used for rejected changes.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Label is used for the selected mode name.
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for de-emphasized text such as the knob angle.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Base paints the switch body behind the dial.
	Base = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	// Knob paints the knob over the dial.
	Knob = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Bold(true)
)

// Swatch paints text in the given dial colour.
func Swatch(c color.RGBA) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(blend.Hex(c)))
}
