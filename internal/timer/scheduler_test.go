package timer

import (
	"context"
	"testing"
	"time"
)

var epoch = time.Unix(0, 0)

func TestEveryFiresOncePerInterval(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0
	s.Every(time.Second, func() { count++ })

	s.Advance(999 * time.Millisecond)
	if count != 0 {
		t.Fatalf("count = %d before first interval, want 0", count)
	}
	s.Advance(time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d after 1s, want 1", count)
	}
	s.Advance(5 * time.Second)
	if count != 6 {
		t.Errorf("count = %d after 6s, want 6", count)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0
	tok := s.Every(time.Second, func() { count++ })

	s.Cancel(tok)
	s.Cancel(tok)
	s.Cancel(0)
	s.Cancel(Token(42))

	s.Advance(3 * time.Second)
	if count != 0 {
		t.Errorf("count = %d after cancel, want 0", count)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestTiesFireInScheduleOrder(t *testing.T) {
	s := NewScheduler(epoch)
	var order []string
	s.Every(time.Second, func() { order = append(order, "a") })
	s.Every(time.Second, func() { order = append(order, "b") })

	s.Advance(2 * time.Second)

	want := []string{"a", "b", "a", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestCancelFromCallbackStopsSibling(t *testing.T) {
	s := NewScheduler(epoch)
	var other Token
	fired := 0
	s.Every(time.Second, func() { s.Cancel(other) })
	other = s.Every(time.Second, func() { fired++ })

	s.Advance(3 * time.Second)
	if fired != 0 {
		t.Errorf("cancelled sibling fired %d times, want 0", fired)
	}
}

func TestScheduleFromCallbackStartsAtCallbackTime(t *testing.T) {
	s := NewScheduler(epoch)
	var firedAt []time.Duration
	var tok Token
	tok = s.Every(1500*time.Millisecond, func() {
		s.Cancel(tok)
		s.Every(time.Second, func() { firedAt = append(firedAt, s.Now().Sub(epoch)) })
	})

	s.Advance(4 * time.Second)

	want := []time.Duration{2500 * time.Millisecond, 3500 * time.Millisecond}
	if len(firedAt) != len(want) {
		t.Fatalf("firedAt = %v, want %v", firedAt, want)
	}
	for i := range want {
		if firedAt[i] != want[i] {
			t.Errorf("firedAt[%d] = %v, want %v", i, firedAt[i], want[i])
		}
	}
}

func TestAdvanceToIgnoresPast(t *testing.T) {
	s := NewScheduler(epoch.Add(time.Minute))
	s.AdvanceTo(epoch)
	if !s.Now().Equal(epoch.Add(time.Minute)) {
		t.Errorf("Now = %v, want unchanged", s.Now())
	}
}

func TestNonPositiveIntervalDefaultsToSecond(t *testing.T) {
	s := NewScheduler(epoch)
	count := 0
	s.Every(0, func() { count++ })
	s.Advance(2 * time.Second)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestPumpStopsOnCancel(t *testing.T) {
	s := NewScheduler(time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Pump(ctx, s, 5*time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pump did not return after context cancel")
	}
}
