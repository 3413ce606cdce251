package grounding

import "testing"

func TestStepsDescendFromFive(t *testing.T) {
	s := Steps()
	if len(s) != 5 {
		t.Fatalf("len(Steps) = %d, want 5", len(s))
	}
	senses := []string{"See", "Touch", "Hear", "Smell", "Taste"}
	for i, step := range s {
		if step.Count != 5-i {
			t.Errorf("Steps[%d].Count = %d, want %d", i, step.Count, 5-i)
		}
		if step.Sense != senses[i] {
			t.Errorf("Steps[%d].Sense = %q, want %q", i, step.Sense, senses[i])
		}
	}
}

func TestStepLabel(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Count: 5, Sense: "See"}, "5 things you can see"},
		{Step{Count: 2, Sense: "Smell"}, "2 things you can smell"},
		{Step{Count: 1, Sense: "Taste"}, "1 thing you can taste"},
	}
	for _, tt := range tests {
		if got := tt.step.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}

func TestWalkerCompletesAfterFiveAdvances(t *testing.T) {
	w := NewWalker(len(Steps()))
	w.Start()

	for i := 0; i < 4; i++ {
		if w.Advance() {
			t.Fatalf("Advance %d reported done", i+1)
		}
		s := w.State()
		if s.Current != i+1 {
			t.Errorf("Current = %d, want %d", s.Current, i+1)
		}
		if len(s.Completed) != i+1 || s.Completed[i] != i {
			t.Errorf("Completed = %v after %d advances", s.Completed, i+1)
		}
	}

	if !w.Advance() {
		t.Fatal("fifth Advance should report done")
	}
	s := w.State()
	if s.Active || s.Current != 0 || len(s.Completed) != 0 {
		t.Errorf("state after completion = %+v, want initial", s)
	}
}

func TestWalkerAdvanceInactiveIsNoOp(t *testing.T) {
	w := NewWalker(5)
	if w.Advance() {
		t.Error("Advance on inactive walker reported done")
	}
	if s := w.State(); s.Active || s.Current != 0 || len(s.Completed) != 0 {
		t.Errorf("state = %+v, want initial", s)
	}
}

func TestWalkerReset(t *testing.T) {
	w := NewWalker(5)
	w.Start()
	w.Advance()
	w.Advance()
	w.Reset()
	w.Reset()

	s := w.State()
	if s.Active || s.Current != 0 || len(s.Completed) != 0 {
		t.Errorf("state after reset = %+v, want initial", s)
	}
}

func TestWalkerStartRestarts(t *testing.T) {
	w := NewWalker(5)
	w.Start()
	w.Advance()
	w.Start()
	if s := w.State(); !s.Active || s.Current != 0 || len(s.Completed) != 0 {
		t.Errorf("state after restart = %+v", s)
	}
}

func TestWalkerStateIsCopy(t *testing.T) {
	w := NewWalker(5)
	w.Start()
	w.Advance()
	s := w.State()
	s.Completed[0] = 99
	if w.State().Completed[0] != 0 {
		t.Error("mutating State().Completed changed the walker")
	}
}
