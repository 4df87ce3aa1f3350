// Package timer provides repeating timers that are advanced by the game loop
// instead of the wall clock, so callbacks always run on the loop's goroutine.
package timer

import "time"

// Interval is a repeating callback registered with a Scheduler.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
	fn      func()
	stopped bool
}

// Stop cancels the interval. Stopping twice is harmless.
func (i *Interval) Stop() {
	i.stopped = true
}

// Active reports whether the interval will fire again.
func (i *Interval) Active() bool {
	return !i.stopped
}

// Period returns the time between two firings.
func (i *Interval) Period() time.Duration {
	return i.period
}

// Scheduler owns a set of intervals and fires them as game time advances.
// It is not safe for concurrent use; the frame loop is its only caller.
type Scheduler struct {
	intervals []*Interval
	now       time.Duration
	advancing bool
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		intervals: make([]*Interval, 0, 8),
	}
}

// Every registers fn to run once per period of advanced time. The first call
// happens one full period after registration.
func (s *Scheduler) Every(period time.Duration, fn func()) *Interval {
	if period <= 0 {
		panic("timer: non-positive interval period")
	}
	iv := &Interval{period: period, fn: fn}
	s.intervals = append(s.intervals, iv)
	return iv
}

// Advance moves game time forward by dt and fires every interval once for
// each whole period that elapsed. Intervals registered by a callback start
// counting from the next Advance.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s.now += dt
	s.advancing = true

	n := len(s.intervals)
	for idx := 0; idx < n; idx++ {
		iv := s.intervals[idx]
		if iv.stopped {
			continue
		}
		iv.elapsed += dt
		for iv.elapsed >= iv.period && !iv.stopped {
			iv.elapsed -= iv.period
			iv.fn()
		}
	}

	s.advancing = false
	s.compact()
}

// Now returns the total advanced time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of live intervals.
func (s *Scheduler) Len() int {
	count := 0
	for _, iv := range s.intervals {
		if !iv.stopped {
			count++
		}
	}
	return count
}

// StopAll cancels every interval. Like Stop, it may be called from inside a
// callback; the slice is only compacted once Advance is done with it.
func (s *Scheduler) StopAll() {
	for _, iv := range s.intervals {
		iv.Stop()
	}
	if !s.advancing {
		s.compact()
	}
}

// compact drops stopped intervals in place.
func (s *Scheduler) compact() {
	live := s.intervals[:0]
	for _, iv := range s.intervals {
		if !iv.stopped {
			live = append(live, iv)
		}
	}
	for i := len(live); i < len(s.intervals); i++ {
		s.intervals[i] = nil
	}
	s.intervals = live
}
