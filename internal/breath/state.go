package breath

// Session length bounds, in minutes.
const (
	MinSessionMinutes     = 1
	MaxSessionMinutes     = 15
	DefaultSessionMinutes = 5
)

// State is the complete session state. It is a plain value: the functions
// in this file take a State and return the next one, and the Engine is the
// only thing that stores it.
type State struct {
	Active           bool
	Phase            Phase
	PhaseRemaining   int
	SessionRemaining int
	SessionTotal     int
	Cycles           int
	Pattern          Pattern
	SessionMinutes   int

	// Interrupted is the breathing phase that was running when the session
	// was paused. It is empty unless Phase is PhasePaused.
	Interrupted Phase
}

// Step describes what a phase tick did.
type Step struct {
	// Entered is true when the tick finished a phase and entered another.
	Entered bool
	// Cycles is the number of breath cycles completed by the tick.
	Cycles int
}

// ClampMinutes bounds a session length to [MinSessionMinutes, MaxSessionMinutes].
func ClampMinutes(minutes int) int {
	if minutes < MinSessionMinutes {
		return MinSessionMinutes
	}
	if minutes > MaxSessionMinutes {
		return MaxSessionMinutes
	}
	return minutes
}

// NewState returns a stopped session for p.
func NewState(p Pattern, minutes int) State {
	return State{
		Phase:          PhaseStopped,
		Pattern:        p,
		SessionMinutes: ClampMinutes(minutes),
	}
}

// Start begins a session from any prior state: the countdown is set to the
// full length, cycles are zeroed, and the cycle begins at inhale.
func Start(s State) State {
	s.Active = true
	s.SessionTotal = s.SessionMinutes * 60
	s.SessionRemaining = s.SessionTotal
	s.Cycles = 0
	s.Interrupted = ""
	s, _ = Enter(s, PhaseInhale)
	return s
}

// Enter moves s into ph and loads the phase countdown. Phases with no
// configured duration are passed through immediately; the returned count is
// the number of cycles completed while passing through.
func Enter(s State, ph Phase) (State, int) {
	cycles := 0
	// Four hops visit every breathing phase once; more means the pattern
	// has no timed phase at all.
	for i := 0; i < 4; i++ {
		s.Phase = ph
		s.PhaseRemaining = s.Pattern.Duration(ph)
		if s.PhaseRemaining > 0 {
			return s, cycles
		}
		next := Next(ph, s.Pattern)
		if completesCycle(ph, next) {
			s.Cycles++
			cycles++
		}
		ph = next
	}
	return s, cycles
}

// TickPhase applies one second of phase time. It is a no-op unless the
// session is active in a breathing phase.
func TickPhase(s State) (State, Step) {
	if !s.Active || !s.Phase.Breathing() || s.PhaseRemaining <= 0 {
		return s, Step{}
	}
	if s.PhaseRemaining > 1 {
		s.PhaseRemaining--
		return s, Step{}
	}

	s.PhaseRemaining = 0
	step := Step{Entered: true}
	next := Next(s.Phase, s.Pattern)
	if completesCycle(s.Phase, next) {
		s.Cycles++
		step.Cycles++
	}
	var passed int
	s, passed = Enter(s, next)
	step.Cycles += passed
	return s, step
}

// TickSession applies one second of session time. When the countdown runs
// out the session is reset and ended is true.
func TickSession(s State) (next State, ended bool) {
	if !s.Active {
		return s, false
	}
	if s.SessionRemaining <= 1 {
		return Reset(s), true
	}
	s.SessionRemaining--
	return s, false
}

// Pause freezes an active session. Counters are kept; the phase becomes
// PhasePaused and the running phase is remembered in Interrupted.
func Pause(s State) State {
	if !s.Active {
		return s
	}
	s.Active = false
	s.Interrupted = s.Phase
	s.Phase = PhasePaused
	return s
}

// Resume continues a paused session with the retained session countdown.
// With midPhase false the cycle restarts at inhale; with midPhase true the
// interrupted phase continues with its remaining seconds.
func Resume(s State, midPhase bool) State {
	if s.Phase != PhasePaused {
		return s
	}
	s.Active = true
	interrupted := s.Interrupted
	s.Interrupted = ""
	if midPhase && interrupted.Breathing() && s.PhaseRemaining > 0 &&
		s.PhaseRemaining <= s.Pattern.Duration(interrupted) {
		s.Phase = interrupted
		return s
	}
	s, _ = Enter(s, PhaseInhale)
	return s
}

// Reset stops the session and zeroes every counter. Pattern and length
// are kept. Resetting a stopped session returns it unchanged.
func Reset(s State) State {
	return State{
		Phase:          PhaseStopped,
		Pattern:        s.Pattern,
		SessionMinutes: s.SessionMinutes,
	}
}

// SelectPattern switches the pattern. A running session restarts its
// cycle at inhale under the new pattern; a paused one will resume at
// inhale. The session countdown and cycle count are kept.
func SelectPattern(s State, p Pattern) State {
	s.Pattern = p
	switch {
	case s.Active:
		s, _ = Enter(s, PhaseInhale)
	case s.Phase == PhasePaused:
		s.Interrupted = PhaseInhale
		s.PhaseRemaining = p.Inhale
	}
	return s
}

// SetSessionLength changes the length used by the next Start. A running
// countdown is not affected.
func SetSessionLength(s State, minutes int) State {
	s.SessionMinutes = ClampMinutes(minutes)
	return s
}

// PhaseElapsed returns the seconds spent in the current phase.
func (s State) PhaseElapsed() int {
	ph := s.Phase
	if ph == PhasePaused {
		ph = s.Interrupted
	}
	elapsed := s.Pattern.Duration(ph) - s.PhaseRemaining
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// SessionElapsed returns the seconds spent in the current session.
func (s State) SessionElapsed() int {
	return s.SessionTotal - s.SessionRemaining
}
