// Package clock provides the single-context timer source that drives the
// visual effects. Timers only fire from inside Advance, which the game loop
// calls once per frame, so callbacks never race with each other.
package clock

import "time"

// Scheduler owns a simulated timeline and the timers registered on it.
type Scheduler struct {
	now    time.Duration
	seq    uint64
	timers []*Timer
}

// Timer is a handle to a one-shot or recurring callback.
type Timer struct {
	s        *Scheduler
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	seq      uint64
	fn       func()
	stopped  bool
}

// NewScheduler creates a scheduler positioned at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make([]*Timer, 0),
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After registers fn to run once, delay after the current time.
// A non-positive delay fires on the next Advance.
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	return s.add(s.now+delay, 0, fn)
}

// Every registers fn to run once per interval, first firing one interval
// from now. A non-positive interval yields an already stopped timer.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		return &Timer{s: s, stopped: true}
	}
	return s.add(s.now+interval, interval, fn)
}

func (s *Scheduler) add(due, interval time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		s:        s,
		due:      due,
		interval: interval,
		seq:      s.seq,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the timeline forward by dt and runs every callback that
// falls due, in due-time order (ties by registration order). Recurring
// timers fire once for each elapsed interval. Timers registered by a
// callback fire within the same Advance when they fall due before its end.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.stopped = true
		}
		if next.fn != nil {
			next.fn()
		}
	}

	s.now = target
	s.compact()
}

// nextDue returns the earliest live timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.stopped || t.due > target {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Pending reports how many timers are still scheduled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Stop cancels the timer. It reports whether the timer was still live;
// stopping an already fired or stopped timer is a no-op.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}
