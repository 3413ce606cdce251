// Package session wires the breathing engine, the grounding walker, and the
// mantra book into the set of user controls the front ends expose, and
// reports what happens to the event log.
package session

import (
	"github.com/google/uuid"

	"github.com/yume-app/yume/internal/breath"
	"github.com/yume-app/yume/internal/config"
	"github.com/yume-app/yume/internal/grounding"
	"github.com/yume-app/yume/internal/log"
	"github.com/yume-app/yume/internal/mantra"
)

// Option configures a Controller.
type Option func(*Controller)

// WithReporter sets where events are reported. The default drops them.
func WithReporter(r log.Reporter) Option {
	return func(c *Controller) { c.reporter = r }
}

// WithHook registers fn to see every engine event after the controller
// has handled it.
func WithHook(fn func(breath.Event)) Option {
	return func(c *Controller) { c.hook = fn }
}

// WithIDs replaces the session id generator.
func WithIDs(fn func() string) Option {
	return func(c *Controller) { c.newID = fn }
}

// Controller owns one screen's worth of state. Like the engine it wraps,
// it must be driven from the goroutine that advances the clock.
type Controller struct {
	engine   *breath.Engine
	book     *mantra.Book
	walker   *grounding.Walker
	steps    []grounding.Step
	patterns []breath.Pattern
	reporter log.Reporter
	hook     func(breath.Event)
	newID    func() string

	showMantras bool
	sessionID   string
	cycles      int
	lastErr     error
}

// New builds a Controller from cfg. The default pattern falls back to the
// first preset if cfg names one that does not exist.
func New(clock breath.Clock, cfg *config.Config, book *mantra.Book, opts ...Option) *Controller {
	c := &Controller{
		book:        book,
		steps:       grounding.Steps(),
		patterns:    cfg.Patterns(),
		reporter:    log.Discard,
		newID:       uuid.NewString,
		showMantras: cfg.Mantras.Show,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.walker = grounding.NewWalker(len(c.steps))

	p, err := breath.Find(c.patterns, cfg.Breathing.DefaultPattern)
	if err != nil {
		p = c.patterns[0]
	}
	c.engine = breath.NewEngine(clock, p, cfg.Breathing.SessionMinutes,
		breath.WithObserver(c.handle),
		breath.WithResumeMidPhase(cfg.Breathing.ResumeMidPhase),
	)
	return c
}

// State returns the breathing session state.
func (c *Controller) State() breath.State {
	return c.engine.State()
}

// Patterns returns the selectable patterns.
func (c *Controller) Patterns() []breath.Pattern {
	return c.patterns
}

// Book returns the mantra book.
func (c *Controller) Book() *mantra.Book {
	return c.book
}

// SessionID returns the id of the running or paused session, or "".
func (c *Controller) SessionID() string {
	return c.sessionID
}

// ShowMantras reports whether the mantra is displayed during a session.
func (c *Controller) ShowMantras() bool {
	return c.showMantras
}

// Err returns the most recent reporting or storage error, if any.
func (c *Controller) Err() error {
	return c.lastErr
}

// Start begins a breathing session.
func (c *Controller) Start() { c.engine.Start() }

// Pause pauses the breathing session.
func (c *Controller) Pause() { c.engine.Pause() }

// Resume resumes a paused breathing session.
func (c *Controller) Resume() { c.engine.Resume() }

// Reset stops the breathing session.
func (c *Controller) Reset() { c.engine.Reset() }

// Toggle starts, pauses, or resumes depending on the current phase.
func (c *Controller) Toggle() {
	s := c.engine.State()
	switch {
	case s.Active:
		c.engine.Pause()
	case s.Phase == breath.PhasePaused:
		c.engine.Resume()
	default:
		c.engine.Start()
	}
}

// SelectPattern selects the i-th pattern. Out-of-range indices are ignored.
func (c *Controller) SelectPattern(i int) {
	if i < 0 || i >= len(c.patterns) {
		return
	}
	c.engine.SelectPattern(c.patterns[i])
}

// SetSessionLength sets the next session's length, clamped to 1-15 minutes.
func (c *Controller) SetSessionLength(minutes int) {
	c.engine.SetSessionLength(minutes)
}

// ToggleFavorite flips favorite status of mantra i. The error is also
// kept for Err.
func (c *Controller) ToggleFavorite(i int) error {
	if err := c.book.ToggleFavorite(i); err != nil {
		c.lastErr = err
		return err
	}
	on := c.book.Preferences().IsFavorite(i)
	c.report(log.LogEvent{Event: log.EventMantraFavorite, Mantra: &i, Enabled: &on})
	return nil
}

// ToggleLock locks mantra i, or unlocks it.
func (c *Controller) ToggleLock(i int) error {
	if err := c.book.ToggleLock(i); err != nil {
		c.lastErr = err
		return err
	}
	on := c.book.Preferences().IsLocked(i)
	c.report(log.LogEvent{Event: log.EventMantraLock, Mantra: &i, Enabled: &on})
	return nil
}

// Unlock clears the pinned mantra. It returns the index that was pinned, and
// false when nothing was.
func (c *Controller) Unlock() (int, bool, error) {
	locked := c.book.Preferences().Locked
	if locked == nil {
		return 0, false, nil
	}
	i := *locked
	if err := c.book.Unlock(); err != nil {
		c.lastErr = err
		return i, true, err
	}
	off := false
	c.report(log.LogEvent{Event: log.EventMantraLock, Mantra: &i, Enabled: &off})
	return i, true, nil
}

// RandomMantra picks a new mantra for display.
func (c *Controller) RandomMantra() int {
	return c.book.Next()
}

// ToggleMantraDisplay shows or hides the mantra.
func (c *Controller) ToggleMantraDisplay() {
	c.showMantras = !c.showMantras
}

// Grounding returns the grounding walker state.
func (c *Controller) Grounding() grounding.State {
	return c.walker.State()
}

// GroundingSteps returns the grounding step table.
func (c *Controller) GroundingSteps() []grounding.Step {
	return c.steps
}

// GroundingStart begins the grounding exercise.
func (c *Controller) GroundingStart() {
	c.walker.Start()
	c.report(log.LogEvent{Event: log.EventGroundingStarted})
}

// GroundingAdvance completes the current grounding step. It returns true
// when the exercise has just been completed.
func (c *Controller) GroundingAdvance() bool {
	step := c.walker.State().Current
	if !c.walker.Advance() {
		return false
	}
	c.report(log.LogEvent{Event: log.EventGroundingCompleted, Step: step + 1})
	return true
}

// GroundingReset abandons the grounding exercise.
func (c *Controller) GroundingReset() {
	if !c.walker.State().Active {
		return
	}
	step := c.walker.State().Current
	c.walker.Reset()
	c.report(log.LogEvent{Event: log.EventGroundingReset, Step: step + 1})
}

// Close cancels the session timers. The controller ignores breathing
// commands afterwards. Close is idempotent.
func (c *Controller) Close() {
	c.engine.Close()
}

func (c *Controller) handle(ev breath.Event) {
	s := ev.State
	switch ev.Kind {
	case breath.EventStarted:
		c.sessionID = c.newID()
		c.cycles = 0
		c.report(c.sessionEvent(log.EventSessionStarted, s))
	case breath.EventCycleCompleted:
		c.cycles = s.Cycles
		i := c.book.Next()
		e := c.sessionEvent(log.EventCycleCompleted, s)
		e.Mantra = &i
		c.report(e)
	case breath.EventPaused:
		c.report(c.sessionEvent(log.EventSessionPaused, s))
	case breath.EventResumed:
		c.report(c.sessionEvent(log.EventSessionResumed, s))
	case breath.EventPatternSelected:
		c.report(c.sessionEvent(log.EventPatternSelected, s))
	case breath.EventReset, breath.EventCompleted:
		name := log.EventSessionReset
		if ev.Kind == breath.EventCompleted {
			name = log.EventSessionCompleted
		}
		// The state is already zeroed; report the cycles the session reached.
		e := c.sessionEvent(name, s)
		e.Cycles = c.cycles
		c.report(e)
		c.sessionID = ""
		c.cycles = 0
	}
	if c.hook != nil {
		c.hook(ev)
	}
}

func (c *Controller) sessionEvent(name string, s breath.State) log.LogEvent {
	e := log.LogEvent{
		Event:            name,
		SessionID:        c.sessionID,
		Pattern:          s.Pattern.Name,
		Cycles:           s.Cycles,
		SessionMinutes:   s.SessionMinutes,
		SessionRemaining: s.SessionRemaining,
	}
	if s.Phase.Breathing() || s.Phase == breath.PhasePaused {
		e.Phase = string(s.Phase)
	}
	return e
}

func (c *Controller) report(e log.LogEvent) {
	if err := c.reporter.Append(e); err != nil {
		c.lastErr = err
	}
}
