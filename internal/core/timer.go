package core

import "time"

// Interval gates simulation ticks to a fixed period. Ticks that are missed
// while the caller was busy are dropped, never replayed.
type Interval struct {
	step time.Duration
	last time.Time
}

// NewInterval constructs an Interval that first fires one period after start.
func NewInterval(step time.Duration, start time.Time) *Interval {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	return &Interval{step: step, last: start}
}

// Ready reports whether a tick is due at now and, if so, restarts the period
// from now.
func (iv *Interval) Ready(now time.Time) bool {
	if now.Sub(iv.last) < iv.step {
		return false
	}
	iv.last = now
	return true
}

// Until returns how long remains before the next tick is due.
func (iv *Interval) Until(now time.Time) time.Duration {
	d := iv.step - now.Sub(iv.last)
	if d < 0 {
		return 0
	}
	return d
}
