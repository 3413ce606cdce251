package app

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/config"
	"github.com/yume-app/yume/internal/mantra"
	"github.com/yume-app/yume/internal/prefs"
	"github.com/yume-app/yume/internal/tui"
)

var noon = time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)

func newTestApp(t *testing.T, store *prefs.MemoryStore) *App {
	t.Helper()
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	return New(Options{
		Config: config.DefaultConfig(),
		Book:   mantra.Load(store, mantra.All(), rand.New(rand.NewSource(7))),
		Prefs:  store,
		Start:  noon,
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

func beat(a *App, d time.Duration) tea.Cmd {
	_, cmd := a.Update(tui.HeartbeatMsg{Time: noon.Add(d)})
	return cmd
}

func TestHeartbeatDrivesSession(t *testing.T) {
	a := newTestApp(t, nil)
	if a.Init() == nil {
		t.Fatal("Init should start the heartbeat")
	}

	press(a, "space")
	if !a.ctl.State().Active {
		t.Fatal("space should start the session")
	}

	if cmd := beat(a, 4*time.Second); cmd == nil {
		t.Error("heartbeat should schedule the next heartbeat")
	}
	if got := a.ctl.State().Phase; got != breath.PhaseExhale {
		t.Errorf("phase after 4s = %s, want exhale", got)
	}

	beat(a, 5500*time.Millisecond)
	if got := a.frac(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("frac = %v, want 0.5", got)
	}

	press(a, "space")
	if got := a.ctl.State().Phase; got != breath.PhasePaused {
		t.Errorf("phase after second space = %s, want paused", got)
	}
	press(a, "r")
	if got := a.ctl.State().Phase; got != breath.PhaseStopped {
		t.Errorf("phase after reset = %s, want stopped", got)
	}
}

func TestMantraShownOnlyWhileBreathing(t *testing.T) {
	a := newTestApp(t, nil)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	quoted := "“" + a.ctl.Book().CurrentText() + "”"

	if strings.Contains(a.View(), quoted) {
		t.Error("mantra shown before the session started")
	}

	press(a, "space")
	quoted = "“" + a.ctl.Book().CurrentText() + "”"
	if !strings.Contains(a.View(), quoted) {
		t.Error("mantra hidden at the start of the session")
	}

	beat(a, 9*time.Second)
	quoted = "“" + a.ctl.Book().CurrentText() + "”"
	if !strings.Contains(a.View(), quoted) {
		t.Error("mantra hidden while breathing")
	}

	press(a, "space")
	if a.ctl.State().Phase != breath.PhasePaused {
		t.Fatalf("phase = %s, want paused", a.ctl.State().Phase)
	}
	if strings.Contains(a.View(), quoted) {
		t.Error("mantra still shown while paused")
	}

	press(a, "space")
	if !strings.Contains(a.View(), quoted) {
		t.Error("mantra hidden after resume")
	}

	press(a, "v")
	if strings.Contains(a.View(), quoted) {
		t.Error("mantra shown with display turned off")
	}
}

func TestSettingsPanelSelectsPattern(t *testing.T) {
	a := newTestApp(t, nil)
	press(a, "s")
	if a.model.Panel != tui.PanelSettings {
		t.Fatal("s should open the settings panel")
	}
	press(a, "down", "down", "enter")
	if got := a.ctl.State().Pattern.Name; got != "4-7-8 Relaxing" {
		t.Errorf("pattern = %q, want 4-7-8 Relaxing", got)
	}
	press(a, "up", "up", "up")
	if a.model.Cursor != len(a.ctl.Patterns())-1 {
		t.Errorf("cursor = %d, want wrap to last row", a.model.Cursor)
	}
	press(a, "esc")
	if a.model.Panel != tui.PanelNone {
		t.Error("esc should close the panel")
	}
}

func TestSessionLengthKeysClamp(t *testing.T) {
	a := newTestApp(t, nil)
	press(a, "right", "l")
	if got := a.ctl.State().SessionMinutes; got != 7 {
		t.Errorf("minutes = %d, want 7", got)
	}
	for i := 0; i < 10; i++ {
		press(a, "left")
	}
	if got := a.ctl.State().SessionMinutes; got != breath.MinSessionMinutes {
		t.Errorf("minutes = %d, want %d", got, breath.MinSessionMinutes)
	}
}

func TestMantraPanelTogglesPreferences(t *testing.T) {
	store := prefs.NewMemoryStore()
	a := newTestApp(t, store)

	press(a, "m", "down", "f", "p")
	p := a.ctl.Book().Preferences()
	if !p.IsFavorite(1) {
		t.Errorf("favorites = %v, want [1]", p.Favorites)
	}
	if !p.IsLocked(1) {
		t.Errorf("locked = %v, want 1", p.Locked)
	}
	if v, _, _ := store.Get(prefs.KeyFavoriteMantras); v != "[1]" {
		t.Errorf("stored favorites = %q, want [1]", v)
	}
	if v, _, _ := store.Get(prefs.KeyLockedMantra); v != "1" {
		t.Errorf("stored lock = %q, want 1", v)
	}

	press(a, "n")
	if got := a.ctl.Book().Current(); got != 1 {
		t.Errorf("random mantra = %d, want locked 1", got)
	}
}

func TestGroundingMode(t *testing.T) {
	a := newTestApp(t, nil)
	press(a, "tab")
	if a.model.Mode != tui.ModeGrounding {
		t.Fatal("tab should switch to grounding")
	}
	press(a, "space")
	if !a.ctl.Grounding().Active {
		t.Fatal("space should start grounding")
	}
	press(a, "space", "enter")
	if got := a.ctl.Grounding().Current; got != 2 {
		t.Errorf("current step = %d, want 2", got)
	}
	press(a, "space", "space", "space")
	if a.ctl.Grounding().Active {
		t.Error("grounding should finish after five steps")
	}
	if a.ctl.State().Active {
		t.Error("space in grounding mode must not start breathing")
	}
}

func TestDoubleCtrlCQuits(t *testing.T) {
	a := newTestApp(t, nil)
	press(a, "space")

	if cmd := press(a, "ctrl+c"); cmd == nil || !a.model.CtrlCPending {
		t.Fatal("first ctrl+c should arm the confirmation")
	}
	a.Update(tui.CtrlCResetMsg{})
	if a.model.CtrlCPending {
		t.Fatal("reset message should disarm the confirmation")
	}

	press(a, "ctrl+c")
	cmd := press(a, "ctrl+c")
	if cmd == nil {
		t.Fatal("second ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second ctrl+c should return tea.Quit")
	}
	if a.sched.Len() != 0 {
		t.Errorf("timers after quit = %d, want 0", a.sched.Len())
	}
}

func TestThemeFollowsPreference(t *testing.T) {
	store := prefs.NewMemoryStore()
	a := newTestApp(t, store)
	if a.model.Styles.Theme != tui.ThemeLight {
		t.Fatalf("theme at noon = %s, want light", a.model.Styles.Theme)
	}

	_ = store.Set(prefs.KeyTheme, "dark")
	b := newTestApp(t, store)
	if b.model.Styles.Theme != tui.ThemeDark {
		t.Errorf("saved theme = %s, want dark", b.model.Styles.Theme)
	}
}

func TestView(t *testing.T) {
	a := newTestApp(t, nil)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := a.View()
	for _, want := range []string{"Breathe", "Ground", "Ready to Begin", "5:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	press(a, "s")
	if out := a.View(); !strings.Contains(out, "Breathing Patterns") {
		t.Error("settings panel not rendered")
	}
	press(a, "m")
	if out := a.View(); !strings.Contains(out, "Mantras") {
		t.Error("mantra panel not rendered")
	}
	press(a, "tab")
	if out := a.View(); !strings.Contains(out, "5-4-3-2-1 Grounding") {
		t.Error("grounding view not rendered")
	}
}
