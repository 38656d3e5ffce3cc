// Package dialview paints a selector scene into terminal cells.
package dialview

import (
	"strconv"
	"strings"

	"github.com/alkime/selector/internal/dial"
	"github.com/alkime/selector/internal/geom"
	"github.com/alkime/selector/internal/knob"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/internal/tui/style"
	"github.com/charmbracelet/lipgloss"
)

// Glyphs used for each layer, back to front.
const (
	GlyphEmpty = ' '
	GlyphBase  = '░'
	GlyphWedge = '█'
	GlyphKnob  = '▓'
)

// arcSteps is how finely the knob arcs are flattened before hit testing.
const arcSteps = 24

// Source provides the scene to paint.
type Source interface {
	Scene() selector.Scene
}

// Model renders a Source as a square of rows x 2*rows cells (terminal cells
// are about twice as tall as they are wide).
type Model struct {
	source Source
	rows   int
}

// New creates a dial view rows cells tall.
func New(source Source, rows int) Model {
	return Model{
		source: source,
		rows:   max(rows, 3),
	}
}

// Rows returns the view height.
func (m Model) Rows() int { return m.rows }

// View paints the current scene.
func (m Model) View() string {
	if m.source == nil {
		return ""
	}

	return Render(m.source.Scene(), m.rows)
}

// cell is one painted terminal cell.
type cell struct {
	glyph rune
	style lipgloss.Style
	key   string
}

// Render paints scene into rows lines of 2*rows cells, sampling each cell at
// its centre.
func Render(scene selector.Scene, rows int) string {
	cols := 2 * rows
	knobPolys := scene.Knob.Flatten(arcSteps)

	var sb strings.Builder
	for r := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}

		line := make([]cell, cols)
		for c := range cols {
			p := geom.Point{
				X: (float64(c) + 0.5) / float64(cols) * scene.Size,
				Y: (float64(r) + 0.5) / float64(rows) * scene.Size,
			}
			line[c] = classify(scene, knobPolys, p)
		}

		writeRuns(&sb, line)
	}

	return sb.String()
}

func classify(scene selector.Scene, knobPolys []knob.Polygon, p geom.Point) cell {
	for _, poly := range knobPolys {
		if poly.Contains(p) {
			return cell{glyph: GlyphKnob, style: style.Knob, key: "knob"}
		}
	}

	d := geom.Distance(scene.Center, p)

	if d <= scene.DialRadius {
		if w, ok := wedgeAt(scene.Wedges, geom.AngleOf(scene.Center, p)); ok {
			return cell{glyph: GlyphWedge, style: style.Swatch(w.Color), key: "wedge" + strconv.Itoa(w.Mode)}
		}
	}

	if d <= scene.BaseRadius {
		return cell{glyph: GlyphBase, style: style.Base, key: "base"}
	}

	return cell{glyph: GlyphEmpty, key: "empty"}
}

func wedgeAt(wedges []dial.Wedge, angle float64) (dial.Wedge, bool) {
	for _, w := range wedges {
		if geom.WithinSweep(angle, w.Start, w.Sweep) {
			return w, true
		}
	}

	return dial.Wedge{}, false
}

// writeRuns renders consecutive cells that share a style together.
func writeRuns(sb *strings.Builder, line []cell) {
	for start := 0; start < len(line); {
		end := start + 1
		for end < len(line) && line[end].key == line[start].key {
			end++
		}

		run := strings.Repeat(string(line[start].glyph), end-start)
		if line[start].key == "empty" {
			sb.WriteString(run)
		} else {
			sb.WriteString(line[start].style.Render(run))
		}

		start = end
	}
}
