package views

import (
	"fmt"
	"strings"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/tui"
)

// SettingsModel renders the pattern picker and session length.
type SettingsModel struct {
	Styles   tui.Styles
	Patterns []breath.Pattern
	Selected string
	Cursor   int
	Minutes  int
	// Active marks a session in progress, where length changes wait for
	// the next start.
	Active bool
}

// View renders the settings panel.
func (m SettingsModel) View() string {
	st := m.Styles
	var b strings.Builder

	b.WriteString(st.Title.Render("Breathing Patterns"))
	b.WriteString("\n\n")

	for i, p := range m.Patterns {
		cursor := "  "
		if i == m.Cursor {
			cursor = st.Selected.Render("› ")
		}
		mark := st.StepPending
		if p.Name == m.Selected {
			mark = st.StepDone
		}
		name := p.Name
		if i == m.Cursor {
			name = st.Selected.Render(name)
		}
		b.WriteString(fmt.Sprintf("%s%s %s", cursor, mark, name))
		if p.Recommended {
			b.WriteString(" " + st.Success.Render("recommended"))
		}
		b.WriteString("\n")
	}

	if m.Cursor >= 0 && m.Cursor < len(m.Patterns) {
		p := m.Patterns[m.Cursor]
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(st.Text.Render(p.Description))
			b.WriteString("\n")
		}
		if p.UseCase != "" {
			b.WriteString(st.Dim.Render("Best for: " + p.UseCase))
			b.WriteString("\n")
		}
		b.WriteString(st.Dim.Render(fmt.Sprintf("One cycle: %ds", p.CycleSeconds())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(st.Text.Render(fmt.Sprintf("Session length  ‹ %d min ›", m.Minutes)))
	if m.Active {
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("Applies to the next session"))
	}
	return b.String()
}
