// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Common key binding constants.
const (
	KeyCtrlC = "ctrl+c"
	KeyTab   = "tab"
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// HeartbeatInterval is how often the running program advances the session
// clock and redraws the breathing circle.
const HeartbeatInterval = 100 * time.Millisecond

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model.
// If stdout is a TTY, it runs in alternate screen mode.
// Otherwise, it prints guidance towards the headless commands.
func Run(m tea.Model) error {
	if IsTTY() {
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	return runFallback(os.Stdout)
}

// Heartbeat schedules the next HeartbeatMsg.
func Heartbeat() tea.Cmd {
	return tea.Tick(HeartbeatInterval, func(t time.Time) tea.Msg {
		return HeartbeatMsg{Time: t}
	})
}
