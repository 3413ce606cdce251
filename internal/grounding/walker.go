// Package grounding implements the 5-4-3-2-1 sensory grounding exercise.
package grounding

import (
	"fmt"
	"strings"
)

// Step is one sense in the exercise.
type Step struct {
	Count       int
	Sense       string
	Instruction string
}

var steps = []Step{
	{Count: 5, Sense: "See", Instruction: "Name 5 things you can see around you"},
	{Count: 4, Sense: "Touch", Instruction: "Touch 4 things around you and notice their texture"},
	{Count: 3, Sense: "Hear", Instruction: "Listen for 3 sounds in your environment"},
	{Count: 2, Sense: "Smell", Instruction: "Notice 2 things you can smell"},
	{Count: 1, Sense: "Taste", Instruction: "Focus on 1 thing you can taste"},
}

// Label is the short prompt for the step, e.g. "5 things you can see".
func (s Step) Label() string {
	noun := "things"
	if s.Count == 1 {
		noun = "thing"
	}
	return fmt.Sprintf("%d %s you can %s", s.Count, noun, strings.ToLower(s.Sense))
}

// Steps returns a copy of the step table, in exercise order.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// State is the walker's position.
type State struct {
	Active    bool
	Current   int
	Completed []int
}

// Walker moves linearly through a fixed number of steps.
type Walker struct {
	total int
	state State
}

// NewWalker returns an inactive walker over total steps.
func NewWalker(total int) *Walker {
	return &Walker{total: total, state: State{Completed: []int{}}}
}

// State returns a copy of the current position.
func (w *Walker) State() State {
	s := w.state
	s.Completed = append([]int{}, w.state.Completed...)
	return s
}

// Start begins the exercise at the first step.
func (w *Walker) Start() {
	w.state = State{Active: true, Completed: []int{}}
}

// Advance marks the current step done and moves to the next one. It returns
// true when that was the last step, in which case the walker is back in its
// initial state. Advancing an inactive walker does nothing.
func (w *Walker) Advance() (done bool) {
	if !w.state.Active {
		return false
	}
	w.state.Completed = append(w.state.Completed, w.state.Current)
	if w.state.Current >= w.total-1 {
		w.Reset()
		return true
	}
	w.state.Current++
	return false
}

// Reset abandons the exercise.
func (w *Walker) Reset() {
	w.state = State{Completed: []int{}}
}
