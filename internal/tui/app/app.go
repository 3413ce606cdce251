// Package app provides the main TUI application that wires all views together.
package app

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/config"
	"github.com/yume-app/yume/internal/log"
	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/prefs"
	"github.com/yume-app/yume/internal/session"
	"github.com/yume-app/yume/internal/timer"
	"github.com/yume-app/yume/internal/tui"
	"github.com/yume-app/yume/internal/tui/views"
)

// Options are the dependencies of an App.
type Options struct {
	Config   *config.Config
	Book     *mantra.Book
	Prefs    prefs.Store
	Reporter log.Reporter
	// Start is the clock origin. Zero means time.Now().
	Start time.Time
}

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model
	keys  tui.KeyMap
	help  help.Model

	sched *timer.Scheduler
	ctl   *session.Controller

	// phaseAt is the clock reading when the current phase was entered.
	phaseAt time.Time
}

// New creates a new App. The session clock is advanced by heartbeats, so
// every timer callback runs inside Update.
func New(opts Options) *App {
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = log.Discard
	}

	a := &App{
		keys:  tui.DefaultKeyMap,
		help:  help.New(),
		sched: timer.NewScheduler(start),
	}
	a.model = tui.NewModel(tui.LoadTheme(opts.Prefs, start))
	a.ctl = session.New(a.sched, opts.Config, opts.Book,
		session.WithReporter(reporter),
		session.WithHook(a.onEvent),
	)
	return a
}

// Controller returns the session controller behind the screen.
func (a *App) Controller() *session.Controller {
	return a.ctl
}

// Init starts the heartbeat.
func (a *App) Init() tea.Cmd {
	return tui.Heartbeat()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tui.HeartbeatMsg:
		a.sched.AdvanceTo(msg.Time)
		return a, tui.Heartbeat()

	case tui.CtrlCResetMsg:
		// Reset Ctrl+C confirmation state after timeout
		a.model.CtrlCPending = false
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.CtrlC) {
		if a.model.CtrlCPending {
			// Second press within timeout - exit
			return a, a.quit()
		}
		a.model.CtrlCPending = true
		return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
			return tui.CtrlCResetMsg{}
		})
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, a.quit()
	case key.Matches(msg, a.keys.Help):
		a.model.ShowHelp = !a.model.ShowHelp
		a.help.ShowAll = a.model.ShowHelp
		return a, nil
	case key.Matches(msg, a.keys.Tab):
		a.model.SwitchMode()
		return a, nil
	case key.Matches(msg, a.keys.Escape):
		a.model.Panel = tui.PanelNone
		return a, nil
	}

	if a.model.Mode == tui.ModeGrounding {
		a.updateGrounding(msg)
	} else {
		a.updateBreathing(msg)
	}
	return a, nil
}

func (a *App) updateGrounding(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Toggle, a.keys.Enter):
		if a.ctl.Grounding().Active {
			a.ctl.GroundingAdvance()
		} else {
			a.ctl.GroundingStart()
		}
	case key.Matches(msg, a.keys.Reset):
		a.ctl.GroundingReset()
	}
}

func (a *App) updateBreathing(msg tea.KeyMsg) {
	s := a.ctl.State()
	book := a.ctl.Book()

	switch {
	case key.Matches(msg, a.keys.Toggle):
		a.ctl.Toggle()
	case key.Matches(msg, a.keys.Reset):
		a.ctl.Reset()
	case key.Matches(msg, a.keys.Settings):
		a.model.TogglePanel(tui.PanelSettings, breath.Index(a.ctl.Patterns(), s.Pattern.Name))
	case key.Matches(msg, a.keys.Mantras):
		a.model.TogglePanel(tui.PanelMantras, book.Current())
	case key.Matches(msg, a.keys.Up):
		a.model.MoveCursor(-1, a.panelRows())
	case key.Matches(msg, a.keys.Down):
		a.model.MoveCursor(1, a.panelRows())
	case key.Matches(msg, a.keys.Enter):
		if a.model.Panel == tui.PanelSettings {
			a.ctl.SelectPattern(a.model.Cursor)
		}
	case key.Matches(msg, a.keys.Shorter):
		a.ctl.SetSessionLength(s.SessionMinutes - 1)
	case key.Matches(msg, a.keys.Longer):
		a.ctl.SetSessionLength(s.SessionMinutes + 1)
	case key.Matches(msg, a.keys.Favorite):
		a.ctl.ToggleFavorite(a.mantraTarget())
	case key.Matches(msg, a.keys.Lock):
		a.ctl.ToggleLock(a.mantraTarget())
	case key.Matches(msg, a.keys.Random):
		a.ctl.RandomMantra()
	case key.Matches(msg, a.keys.Display):
		a.ctl.ToggleMantraDisplay()
	}
}

func (a *App) quit() tea.Cmd {
	a.ctl.Close()
	return tea.Quit
}

func (a *App) onEvent(ev breath.Event) {
	if ev.Kind == breath.EventPhaseEntered {
		a.phaseAt = a.sched.Now()
	}
}

// panelRows is the number of rows the cursor moves over.
func (a *App) panelRows() int {
	switch a.model.Panel {
	case tui.PanelSettings:
		return len(a.ctl.Patterns())
	case tui.PanelMantras:
		return a.ctl.Book().Len()
	}
	return 0
}

// mantraTarget is the mantra under the cursor when the list is open, and
// the mantra on display otherwise.
func (a *App) mantraTarget() int {
	if a.model.Panel == tui.PanelMantras {
		return a.model.Cursor
	}
	return a.ctl.Book().Current()
}

// frac is the part of the running phase second already elapsed.
func (a *App) frac() float64 {
	d := a.sched.Now().Sub(a.phaseAt).Seconds()
	if d <= 0 {
		return 0
	}
	return d - math.Floor(d)
}

// View renders the current application state.
func (a *App) View() string {
	st := a.model.Styles

	var body string
	if a.model.Mode == tui.ModeGrounding {
		body = views.GroundingModel{
			Styles: st,
			Steps:  a.ctl.GroundingSteps(),
			State:  a.ctl.Grounding(),
		}.View()
	} else {
		body = a.renderBreathing()
	}

	parts := []string{a.renderTabBar(), "", st.Box.Render(body)}
	if err := a.ctl.Err(); err != nil {
		parts = append(parts, st.Error.Render("Error: "+err.Error()))
	}
	if a.model.CtrlCPending {
		parts = append(parts, st.Warning.Render("Press Ctrl+C again to exit"))
	}
	parts = append(parts, a.help.View(a.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(
		a.model.Width,
		a.model.Height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func (a *App) renderBreathing() string {
	st := a.model.Styles
	s := a.ctl.State()
	book := a.ctl.Book()

	circle := views.BreathingModel{
		Styles:     st,
		State:      s,
		Frac:       a.frac(),
		Mantra:     book.CurrentText(),
		ShowMantra: a.ctl.ShowMantras() && s.Active,
	}.View()

	var side string
	switch a.model.Panel {
	case tui.PanelSettings:
		side = views.SettingsModel{
			Styles:   st,
			Patterns: a.ctl.Patterns(),
			Selected: s.Pattern.Name,
			Cursor:   a.model.Cursor,
			Minutes:  s.SessionMinutes,
			Active:   s.Phase != breath.PhaseStopped,
		}.View()
	case tui.PanelMantras:
		side = views.MantraListModel{
			Styles:  st,
			Texts:   book.Texts(),
			Prefs:   book.Preferences(),
			Current: book.Current(),
			Cursor:  a.model.Cursor,
			Rows:    max(3, a.model.Height-16),
		}.View()
	}
	if side == "" {
		return circle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, circle, "    ", side)
}

func (a *App) renderTabBar() string {
	st := a.model.Styles
	tabs := []struct {
		name string
		mode tui.Mode
	}{
		{"Breathe", tui.ModeBreathing},
		{"Ground", tui.ModeGrounding},
	}

	var rendered []string
	for _, t := range tabs {
		if t.mode == a.model.Mode {
			rendered = append(rendered, st.ActiveTab.Render(t.name))
		} else {
			rendered = append(rendered, st.InactiveTab.Render(t.name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
