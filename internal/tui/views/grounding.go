package views

import (
	"fmt"
	"strings"

	"github.com/yume-app/yume/internal/grounding"
	"github.com/yume-app/yume/internal/tui"
)

// GroundingModel renders the 5-4-3-2-1 grounding exercise.
type GroundingModel struct {
	Styles tui.Styles
	Steps  []grounding.Step
	State  grounding.State
}

// View renders the grounding view.
func (m GroundingModel) View() string {
	st := m.Styles
	var b strings.Builder

	b.WriteString(st.Title.Render("5-4-3-2-1 Grounding"))
	b.WriteString("\n\n")

	if !m.State.Active {
		b.WriteString(st.Text.Render("Bring your attention back to the present, one sense at a time."))
		b.WriteString("\n\n")
		for _, step := range m.Steps {
			b.WriteString(fmt.Sprintf("  %s %s\n", st.StepPending, step.Label()))
		}
		b.WriteString("\n")
		b.WriteString(st.Dim.Render("Press space to begin"))
		return b.String()
	}

	done := make(map[int]bool, len(m.State.Completed))
	for _, i := range m.State.Completed {
		done[i] = true
	}
	for i, step := range m.Steps {
		icon := st.StepPending
		line := fmt.Sprintf("%d %s", step.Count, step.Sense)
		switch {
		case done[i]:
			icon = st.StepDone
			line = st.Dim.Render(line)
		case i == m.State.Current:
			icon = st.StepCurrent
			line = st.Selected.Render(line)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", icon, line))
	}

	if m.State.Current < len(m.Steps) {
		b.WriteString("\n")
		b.WriteString(st.Text.Render(m.Steps[m.State.Current].Instruction))
		b.WriteString("\n\n")
		b.WriteString(st.Dim.Render(fmt.Sprintf("Step %d of %d  ·  space when done  ·  r to stop", m.State.Current+1, len(m.Steps))))
	}
	return b.String()
}
