package breath

import (
	"fmt"
	"math"
)

// Scale is the relative size of the breathing circle in ph: expanded while
// the lungs are full, contracted while empty, neutral otherwise.
func Scale(ph Phase) float64 {
	switch ph {
	case PhaseInhale, PhaseHold:
		return 1.25
	case PhaseExhale, PhaseHoldAfter:
		return 0.75
	default:
		return 1.0
	}
}

// TransitionSeconds is how long the circle takes to reach Scale(ph) after
// entering ph under p.
func TransitionSeconds(ph Phase, p Pattern) float64 {
	switch ph {
	case PhaseHold, PhaseHoldAfter:
		return 0
	}
	if d := p.Duration(ph); d > 0 {
		return float64(d)
	}
	return 0.5
}

// CurrentScale interpolates the circle size from the start of the current
// phase towards its target, using whole seconds elapsed plus frac of the
// running second (0 <= frac < 1).
func CurrentScale(s State, frac float64) float64 {
	ph := s.Phase
	target := Scale(ph)
	if ph != PhaseInhale && ph != PhaseExhale {
		return target
	}
	from := Scale(PhaseExhale)
	if ph == PhaseExhale {
		from = Scale(PhaseInhale)
	}
	total := TransitionSeconds(ph, s.Pattern)
	if total <= 0 {
		return target
	}
	t := (float64(s.PhaseElapsed()) + math.Max(0, math.Min(frac, 1))) / total
	if t > 1 {
		t = 1
	}
	return from + (target-from)*easeInOut(t)
}

func easeInOut(t float64) float64 {
	return 0.5 - math.Cos(t*math.Pi)/2
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
