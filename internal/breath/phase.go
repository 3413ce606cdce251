package breath

// Phase tags the current position of a session.
type Phase string

const (
	PhaseInhale    Phase = "inhale"
	PhaseHold      Phase = "hold"
	PhaseExhale    Phase = "exhale"
	PhaseHoldAfter Phase = "holdAfter"
	PhasePaused    Phase = "paused"
	PhaseStopped   Phase = "stopped"
)

// Breathing reports whether ph is one of the four timed phases.
func (ph Phase) Breathing() bool {
	switch ph {
	case PhaseInhale, PhaseHold, PhaseExhale, PhaseHoldAfter:
		return true
	}
	return false
}

// Next returns the phase that follows ph under p. Holds the pattern does
// not have are skipped. Meta phases lead back to inhale.
func Next(ph Phase, p Pattern) Phase {
	switch ph {
	case PhaseInhale:
		if p.Hold > 0 {
			return PhaseHold
		}
		return PhaseExhale
	case PhaseHold:
		return PhaseExhale
	case PhaseExhale:
		if p.HoldAfter > 0 {
			return PhaseHoldAfter
		}
		return PhaseInhale
	default:
		return PhaseInhale
	}
}

// completesCycle reports whether moving from ph to next closes a breath.
func completesCycle(ph, next Phase) bool {
	return next == PhaseInhale && (ph == PhaseExhale || ph == PhaseHoldAfter)
}

// Label is the headline shown for ph.
func (ph Phase) Label() string {
	switch ph {
	case PhaseInhale:
		return "Breathe In"
	case PhaseHold, PhaseHoldAfter:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	case PhasePaused:
		return "Paused"
	default:
		return "Ready to Begin"
	}
}

// Instruction is the guidance sentence shown under the label.
func (ph Phase) Instruction() string {
	switch ph {
	case PhaseInhale:
		return "Slowly fill your lungs with air"
	case PhaseHold:
		return "Hold your breath gently"
	case PhaseExhale:
		return "Slowly release the air"
	case PhaseHoldAfter:
		return "Rest before the next breath"
	case PhasePaused:
		return "Take your time, resume when ready"
	default:
		return "Find a comfortable position and relax"
	}
}
