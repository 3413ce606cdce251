// Package views provides TUI view components for the yume application.
package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/tui"
)

// CircleRadius is the circle radius, in rows, at neutral scale.
const CircleRadius = 4

const maxScale = 1.25

// BreathingModel renders the breathing circle and session status.
type BreathingModel struct {
	Styles tui.Styles
	State  breath.State
	// Frac is the part of the running second already elapsed.
	Frac       float64
	Mantra     string
	ShowMantra bool
	Width      int
}

// View renders the breathing view.
func (m BreathingModel) View() string {
	s := m.State
	st := m.Styles
	var b strings.Builder

	b.WriteString(st.Dim.Render(fmt.Sprintf("%s  ·  %s", s.Pattern.Name, s.Pattern.Summary())))
	b.WriteString("\n\n")

	b.WriteString(st.Circle.Render(Circle(breath.CurrentScale(s, m.Frac), CircleRadius)))
	b.WriteString("\n\n")

	label := s.Phase.Label()
	if s.Phase.Breathing() {
		label = fmt.Sprintf("%s  %d", label, s.PhaseRemaining)
	}
	b.WriteString(st.Title.Render(label))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render(s.Phase.Instruction()))
	b.WriteString("\n\n")

	remaining := s.SessionRemaining
	if s.Phase == breath.PhaseStopped {
		remaining = s.SessionMinutes * 60
	}
	b.WriteString(st.Text.Render(fmt.Sprintf("Session %s  ·  Cycles %d", breath.FormatTime(remaining), s.Cycles)))

	if m.ShowMantra && m.Mantra != "" {
		b.WriteString("\n\n")
		b.WriteString(st.Mantra.Render(fmt.Sprintf("“%s”", m.Mantra)))
	}

	out := b.String()
	if m.Width > 0 {
		out = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, out)
	}
	return out
}

// Circle draws a ring of the given radius times scale. The canvas is sized
// for the largest scale so the layout does not shift as the ring grows.
// Columns are doubled to compensate for the terminal cell aspect ratio.
func Circle(scale float64, radius int) string {
	r := scale * float64(radius)
	half := int(math.Ceil(maxScale * float64(radius)))
	rows := 2*half + 1
	cols := 4*half + 1

	lines := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		y := float64(row - half)
		var line strings.Builder
		for col := 0; col < cols; col++ {
			x := float64(col-2*half) / 2
			d := math.Hypot(x, y)
			switch {
			case math.Abs(d-r) < 0.5:
				line.WriteString("●")
			case d < r:
				line.WriteString("·")
			default:
				line.WriteString(" ")
			}
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return strings.Join(lines, "\n")
}
