package frametime

import (
	"time"
)

// Limiter provides high-precision frame rate limiting.
type Limiter struct {
	next time.Time
}

// NewLimiter creates a new frame limiter.
func NewLimiter() *Limiter {
	return &Limiter{}
}

// Wait blocks until the next frame should start for the given FPS cap.
// A cap of zero or less disables limiting and clears the schedule.
// Uses a hybrid sleep/spin approach for better precision on high caps.
func (l *Limiter) Wait(capFPS int) {
	if capFPS <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(capFPS)

	if l.next.IsZero() {
		l.next = time.Now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(l.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(l.next); late > target {
		l.next = time.Now().Add(target)
	}
}
