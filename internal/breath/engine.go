package breath

import (
	"time"

	"github.com/yume-app/yume/internal/timer"
)

// Clock schedules one-second ticks. *timer.Scheduler satisfies it.
type Clock interface {
	Every(d time.Duration, fn func()) timer.Token
	Cancel(tok timer.Token)
}

// EventKind names something the engine did.
type EventKind string

const (
	EventStarted         EventKind = "started"
	EventPhaseEntered    EventKind = "phase_entered"
	EventCycleCompleted  EventKind = "cycle_completed"
	EventPaused          EventKind = "paused"
	EventResumed         EventKind = "resumed"
	EventReset           EventKind = "reset"
	EventCompleted       EventKind = "completed"
	EventPatternSelected EventKind = "pattern_selected"
)

// Event is delivered to the observer after the state has been updated.
type Event struct {
	Kind  EventKind
	State State
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver registers fn to receive every Event.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) { e.observer = fn }
}

// WithResumeMidPhase makes Resume continue the interrupted phase instead of
// restarting the cycle at inhale.
func WithResumeMidPhase(on bool) Option {
	return func(e *Engine) { e.midPhase = on }
}

// Engine drives a State from two one-second intervals, the session tick and
// the phase tick. It must be used from the goroutine that advances its Clock.
type Engine struct {
	clock    Clock
	state    State
	observer func(Event)
	midPhase bool

	sessionTok timer.Token
	phaseTok   timer.Token
	closed     bool
}

// NewEngine returns a stopped engine for pattern p and a session of minutes.
func NewEngine(clock Clock, p Pattern, minutes int, opts ...Option) *Engine {
	e := &Engine{
		clock: clock,
		state: NewState(p, minutes),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Start begins a new session, replacing any session in progress.
func (e *Engine) Start() {
	if e.closed {
		return
	}
	e.stopTimers()
	e.state = Start(e.state)
	e.sessionTok = e.clock.Every(time.Second, e.onSessionTick)
	e.startPhaseTimer()
	e.emit(EventStarted)
	e.emit(EventPhaseEntered)
}

// Pause stops both ticks and keeps the counters. Pausing a session that is
// not running does nothing.
func (e *Engine) Pause() {
	if e.closed || !e.state.Active {
		return
	}
	e.stopTimers()
	e.state = Pause(e.state)
	e.emit(EventPaused)
}

// Resume restarts both ticks for a paused session.
func (e *Engine) Resume() {
	if e.closed || e.state.Phase != PhasePaused {
		return
	}
	e.stopTimers()
	e.state = Resume(e.state, e.midPhase)
	e.sessionTok = e.clock.Every(time.Second, e.onSessionTick)
	e.startPhaseTimer()
	e.emit(EventResumed)
	e.emit(EventPhaseEntered)
}

// Reset stops the session and zeroes the counters. Resetting a stopped
// engine does nothing and emits nothing.
func (e *Engine) Reset() {
	if e.closed {
		return
	}
	e.stopTimers()
	if e.state.Phase == PhaseStopped && !e.state.Active {
		return
	}
	e.state = Reset(e.state)
	e.emit(EventReset)
}

// SelectPattern switches the pattern; see SelectPattern for how a running
// session reacts.
func (e *Engine) SelectPattern(p Pattern) {
	if e.closed {
		return
	}
	e.state = SelectPattern(e.state, p)
	e.emit(EventPatternSelected)
	if e.state.Active {
		e.startPhaseTimer()
		e.emit(EventPhaseEntered)
	}
}

// SetSessionLength sets the length of the next session, clamped to
// [MinSessionMinutes, MaxSessionMinutes].
func (e *Engine) SetSessionLength(minutes int) {
	if e.closed {
		return
	}
	e.state = SetSessionLength(e.state, minutes)
}

// Close cancels both ticks. After Close every command is ignored, so
// callbacks already queued cannot touch the state. Close is idempotent.
func (e *Engine) Close() {
	e.stopTimers()
	e.closed = true
}

func (e *Engine) onPhaseTick() {
	next, step := TickPhase(e.state)
	e.state = next
	for i := 0; i < step.Cycles; i++ {
		e.emit(EventCycleCompleted)
	}
	if step.Entered {
		e.startPhaseTimer()
		e.emit(EventPhaseEntered)
	}
}

func (e *Engine) onSessionTick() {
	next, ended := TickSession(e.state)
	e.state = next
	if ended {
		e.stopTimers()
		e.emit(EventCompleted)
	}
}

// startPhaseTimer restarts the phase tick so the next decrement lands one
// second after phase entry.
func (e *Engine) startPhaseTimer() {
	e.clock.Cancel(e.phaseTok)
	e.phaseTok = 0
	if e.state.PhaseRemaining > 0 {
		e.phaseTok = e.clock.Every(time.Second, e.onPhaseTick)
	}
}

func (e *Engine) stopTimers() {
	e.clock.Cancel(e.sessionTok)
	e.clock.Cancel(e.phaseTok)
	e.sessionTok = 0
	e.phaseTok = 0
}

func (e *Engine) emit(kind EventKind) {
	if e.observer != nil {
		e.observer(Event{Kind: kind, State: e.state})
	}
}
