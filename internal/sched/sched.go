// Package sched abstracts the host's delayed-callback primitive so timing
// logic can be driven by synthetic clocks in tests instead of wall time.
package sched

import (
	"time"
)

// Cancel clears a pending callback. It is idempotent and safe to call
// after the callback has already fired.
type Cancel func()

// Scheduler schedules a callback after a delay.
type Scheduler interface {
	After(d time.Duration, fn func()) Cancel
}

// Wall schedules on real time via time.AfterFunc.
type Wall struct{}

func (Wall) After(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
