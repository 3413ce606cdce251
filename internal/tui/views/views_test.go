package views

import (
	"strings"
	"testing"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/grounding"
	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/tui"
)

func ringRows(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, "●") {
			n++
		}
	}
	return n
}

func TestCircleCanvasIsStable(t *testing.T) {
	small := strings.Split(Circle(0.75, CircleRadius), "\n")
	large := strings.Split(Circle(1.25, CircleRadius), "\n")
	if len(small) != len(large) {
		t.Errorf("rows: got %d and %d, want equal", len(small), len(large))
	}
	if want := 2*5 + 1; len(large) != want {
		t.Errorf("rows = %d, want %d", len(large), want)
	}
}

func TestCircleGrowsWithScale(t *testing.T) {
	small := ringRows(Circle(0.75, CircleRadius))
	large := ringRows(Circle(1.25, CircleRadius))
	if large <= small {
		t.Errorf("ring rows: scale 1.25 = %d, scale 0.75 = %d", large, small)
	}
}

func TestBreathingViewStopped(t *testing.T) {
	p, _ := breath.Find(breath.Presets(), "4-4 Basic")
	m := BreathingModel{
		Styles: tui.NewStyles(tui.ThemeLight),
		State:  breath.NewState(p, 5),
		Mantra: "I am calm",
	}
	out := m.View()
	for _, want := range []string{"4-4 Basic", "Ready to Begin", "5:00", "Cycles 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(out, "I am calm") {
		t.Error("mantra shown while display is off")
	}
}

func TestBreathingViewRunning(t *testing.T) {
	p, _ := breath.Find(breath.Presets(), "4-7-8 Relaxing")
	s := breath.Start(breath.NewState(p, 2))
	m := BreathingModel{
		Styles:     tui.NewStyles(tui.ThemeDark),
		State:      s,
		Mantra:     "I am calm",
		ShowMantra: true,
		Width:      80,
	}
	out := m.View()
	for _, want := range []string{"Breathe In  4", "2:00", "I am calm"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGroundingView(t *testing.T) {
	steps := grounding.Steps()
	idle := GroundingModel{Styles: tui.NewStyles(tui.ThemeLight), Steps: steps}
	if out := idle.View(); !strings.Contains(out, "Press space to begin") || !strings.Contains(out, "5 things you can see") {
		t.Errorf("idle view = %q", out)
	}
	if out := idle.View(); !strings.Contains(out, "1 thing you can taste") || strings.Contains(out, "1 things") {
		t.Errorf("idle view taste step = %q, want singular", out)
	}

	active := GroundingModel{
		Styles: tui.NewStyles(tui.ThemeLight),
		Steps:  steps,
		State:  grounding.State{Active: true, Current: 2, Completed: []int{0, 1}},
	}
	out := active.View()
	if !strings.Contains(out, "Step 3 of 5") {
		t.Errorf("active view missing progress: %q", out)
	}
	if !strings.Contains(out, steps[2].Instruction) {
		t.Errorf("active view missing instruction %q", steps[2].Instruction)
	}
}

func TestSettingsView(t *testing.T) {
	m := SettingsModel{
		Styles:   tui.NewStyles(tui.ThemeLight),
		Patterns: breath.Presets(),
		Selected: "4-4 Basic",
		Cursor:   1,
		Minutes:  7,
		Active:   true,
	}
	out := m.View()
	for _, want := range []string{"recommended", "7 min", "Applies to the next session", "One cycle: 10s"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMantraListView(t *testing.T) {
	locked := 3
	m := MantraListModel{
		Styles: tui.NewStyles(tui.ThemeLight),
		Texts:  mantra.All(),
		Prefs:  mantra.Preferences{Favorites: []int{0, 4}, Locked: &locked},
		Cursor: 0,
		Rows:   5,
	}
	out := m.View()
	if !strings.Contains(out, "2 favorites") || !strings.Contains(out, "pinned #4") {
		t.Errorf("summary missing: %q", out)
	}
	if strings.Contains(out, " 6. ") {
		t.Error("rows beyond the window rendered")
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, cursor, rows int
		start, end      int
	}{
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{3, 2, 5, 0, 3},
		{20, 4, 0, 0, 20},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.cursor, tt.rows)
		if start != tt.start || end != tt.end {
			t.Errorf("window(%d, %d, %d) = %d, %d, want %d, %d", tt.n, tt.cursor, tt.rows, start, end, tt.start, tt.end)
		}
	}
}
