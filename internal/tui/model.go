package tui

// Mode is the exercise on screen.
type Mode int

const (
	ModeBreathing Mode = iota
	ModeGrounding
)

// Panel is the side panel open next to the breathing view.
type Panel int

const (
	PanelNone Panel = iota
	PanelSettings
	PanelMantras
)

// Model holds the screen state that is not owned by the session controller.
type Model struct {
	Mode   Mode
	Panel  Panel
	Cursor int

	Styles   Styles
	ShowHelp bool

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a Model rendering with theme t.
func NewModel(t Theme) *Model {
	return &Model{
		Mode:   ModeBreathing,
		Styles: NewStyles(t),

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
}

// SwitchMode flips between breathing and grounding and closes any panel.
func (m *Model) SwitchMode() {
	if m.Mode == ModeBreathing {
		m.Mode = ModeGrounding
	} else {
		m.Mode = ModeBreathing
	}
	m.Panel = PanelNone
	m.Cursor = 0
}

// TogglePanel opens p, or closes it when it is already open. Opening moves
// the cursor to start.
func (m *Model) TogglePanel(p Panel, start int) {
	if m.Panel == p {
		m.Panel = PanelNone
		return
	}
	m.Panel = p
	m.Cursor = start
}

// MoveCursor moves the cursor by delta, wrapping within n rows.
func (m *Model) MoveCursor(delta, n int) {
	if n <= 0 {
		m.Cursor = 0
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}
