// Package breath implements guided breathing sessions: the pattern table,
// the phase cycle, and the session countdown that bounds it.
package breath

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPattern is returned when a pattern cannot drive a cycle.
	ErrInvalidPattern = errors.New("invalid breathing pattern")

	// ErrUnknownPattern is returned when a pattern name is not in the table.
	ErrUnknownPattern = errors.New("unknown breathing pattern")
)

// Pattern is a named set of phase durations, in seconds.
// A zero Hold or HoldAfter means that phase is skipped.
type Pattern struct {
	Name        string `yaml:"name"`
	Inhale      int    `yaml:"inhale"`
	Hold        int    `yaml:"hold,omitempty"`
	Exhale      int    `yaml:"exhale"`
	HoldAfter   int    `yaml:"hold_after,omitempty"`
	Description string `yaml:"description,omitempty"`
	UseCase     string `yaml:"use_case,omitempty"`
	Recommended bool   `yaml:"recommended,omitempty"`
}

// Validate checks that the pattern has a name, a positive inhale and exhale,
// and no negative holds.
func (p Pattern) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: missing name", ErrInvalidPattern)
	case p.Inhale <= 0:
		return fmt.Errorf("%w: %s: inhale must be positive", ErrInvalidPattern, p.Name)
	case p.Exhale <= 0:
		return fmt.Errorf("%w: %s: exhale must be positive", ErrInvalidPattern, p.Name)
	case p.Hold < 0 || p.HoldAfter < 0:
		return fmt.Errorf("%w: %s: holds cannot be negative", ErrInvalidPattern, p.Name)
	}
	return nil
}

// Duration returns the configured length of ph in seconds, 0 for phases the
// pattern does not have and for the meta phases.
func (p Pattern) Duration(ph Phase) int {
	switch ph {
	case PhaseInhale:
		return p.Inhale
	case PhaseHold:
		return p.Hold
	case PhaseExhale:
		return p.Exhale
	case PhaseHoldAfter:
		return p.HoldAfter
	default:
		return 0
	}
}

// CycleSeconds returns the length of one full breath.
func (p Pattern) CycleSeconds() int {
	return p.Inhale + p.Hold + p.Exhale + p.HoldAfter
}

// Summary renders the durations as "4-7-8" style text.
func (p Pattern) Summary() string {
	parts := []string{fmt.Sprint(p.Inhale)}
	if p.Hold > 0 {
		parts = append(parts, fmt.Sprint(p.Hold))
	}
	parts = append(parts, fmt.Sprint(p.Exhale))
	if p.HoldAfter > 0 {
		parts = append(parts, fmt.Sprint(p.HoldAfter))
	}
	return strings.Join(parts, "-")
}

var presets = []Pattern{
	{
		Name:        "4-4 Basic",
		Inhale:      4,
		Exhale:      4,
		Description: "Paced Breathing - The most common anti-anxiety pattern",
		UseCase:     "Perfect for panic attacks and general anxiety relief. Keep breaths gentle, not deep.",
		Recommended: true,
	},
	{
		Name:        "4-6 Extended Exhale",
		Inhale:      4,
		Exhale:      6,
		Description: "Extended Exhale Breathing - Highly recommended for panic attacks",
		UseCase:     "Longer exhales signal your body to calm down faster. Best for acute anxiety.",
		Recommended: true,
	},
	{
		Name:        "4-7-8 Relaxing",
		Inhale:      4,
		Hold:        7,
		Exhale:      8,
		Description: "4-7-8 Technique - Strongly activates the parasympathetic nervous system",
		UseCase:     "Excellent for anxiety and sleep preparation. Like blowing out a candle slowly.",
	},
	{
		Name:        "4-4-4-4 Box",
		Inhale:      4,
		Hold:        4,
		Exhale:      4,
		HoldAfter:   4,
		Description: "Box Breathing - Used by Navy SEALs for calm focus",
		UseCase:     "Great for grounding during acute stress and improving concentration.",
	},
	{
		Name:        "6-6 Deep",
		Inhale:      6,
		Exhale:      6,
		Description: "Deep Breathing - Slower, more meditative pace",
		UseCase:     "For deeper relaxation when you have more time and aren't in acute distress.",
	},
}

// Presets returns a copy of the built-in pattern table.
func Presets() []Pattern {
	out := make([]Pattern, len(presets))
	copy(out, presets)
	return out
}

// Catalog returns the presets followed by extra, skipping any extra pattern
// that is invalid or reuses an existing name.
func Catalog(extra []Pattern) []Pattern {
	out := Presets()
	seen := make(map[string]bool, len(out)+len(extra))
	for _, p := range out {
		seen[strings.ToLower(p.Name)] = true
	}
	for _, p := range extra {
		key := strings.ToLower(p.Name)
		if p.Validate() != nil || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// Find looks up a pattern by name, case-insensitively.
func Find(patterns []Pattern, name string) (Pattern, error) {
	for _, p := range patterns {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Index returns the position of the named pattern, or -1.
func Index(patterns []Pattern, name string) int {
	for i, p := range patterns {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
