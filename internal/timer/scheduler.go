// Package timer provides a cooperative interval scheduler with explicit
// cancellation tokens. Time only moves when the owner advances it, so the
// same code runs against wall-clock time (see Pump) and a logical clock in
// tests.
package timer

import (
	"context"
	"time"
)

// Token identifies a scheduled interval. The zero Token is never issued.
type Token uint64

type entry struct {
	every time.Duration
	next  time.Time
	fn    func()
}

// Scheduler fires interval callbacks as time is advanced.
//
// A Scheduler is not safe for concurrent use. All callbacks run on the
// goroutine that calls Advance or AdvanceTo, which is what gives the
// single-threaded, non-preemptive model the breathing engine relies on.
type Scheduler struct {
	now     time.Time
	last    Token
	entries map[Token]*entry
}

// NewScheduler creates a Scheduler whose clock starts at start.
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:     start,
		entries: make(map[Token]*entry),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// Every schedules fn to run every d, first at Now()+d.
// Non-positive intervals are treated as one second.
func (s *Scheduler) Every(d time.Duration, fn func()) Token {
	if d <= 0 {
		d = time.Second
	}
	s.last++
	s.entries[s.last] = &entry{every: d, next: s.now.Add(d), fn: fn}
	return s.last
}

// Cancel stops the interval identified by tok. Cancelling an unknown,
// zero, or already cancelled token is a no-op.
func (s *Scheduler) Cancel(tok Token) {
	delete(s.entries, tok)
}

// Len returns the number of scheduled intervals.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Advance moves the clock forward by d, firing every callback that comes
// due on the way.
func (s *Scheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo moves the clock forward to t. Callbacks fire in due-time order;
// ties go to the interval that was scheduled first. Intervals scheduled or
// cancelled from inside a callback take effect immediately. Moving
// backwards is ignored.
func (s *Scheduler) AdvanceTo(t time.Time) {
	for {
		e := s.due(t)
		if e == nil {
			break
		}
		s.now = e.next
		e.next = e.next.Add(e.every)
		e.fn()
	}
	if t.After(s.now) {
		s.now = t
	}
}

func (s *Scheduler) due(t time.Time) *entry {
	var (
		bestTok Token
		best    *entry
	)
	for tok, e := range s.entries {
		if e.next.After(t) {
			continue
		}
		if best == nil || e.next.Before(best.next) || (e.next.Equal(best.next) && tok < bestTok) {
			bestTok, best = tok, e
		}
	}
	return best
}

// Pump advances s with wall-clock time every resolution until ctx is done.
// It must be the only goroutine touching s while it runs.
func Pump(ctx context.Context, s *Scheduler, resolution time.Duration) {
	if resolution <= 0 {
		resolution = 100 * time.Millisecond
	}
	ticker := time.NewTicker(resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.AdvanceTo(now)
		}
	}
}
