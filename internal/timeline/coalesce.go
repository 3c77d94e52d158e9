package timeline

import (
	"sync"
	"time"

	"rendergov/internal/sched"
)

// Debounce wraps fn so rapid triggers coalesce into one trailing-edge call
// after delay of quiet. Each trigger resets the timer. cancel clears any
// pending invocation and is safe at any time, including after fn has
// fired. Wall schedulers fire callbacks on a timer goroutine, so the
// shared state lives behind a mutex; fn itself runs outside the lock.
func Debounce(s sched.Scheduler, delay time.Duration, fn func()) (trigger func(), cancel func()) {
	var (
		mu      sync.Mutex
		pending sched.Cancel
	)
	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending()
		}
		pending = s.After(delay, func() {
			mu.Lock()
			pending = nil
			mu.Unlock()
			fn()
		})
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if pending != nil {
			pending()
			pending = nil
		}
	}
	return trigger, cancel
}

// Throttle wraps fn so it runs on the leading edge and then at most once
// per interval; triggers inside the window mark one trailing call so the
// final event is never lost. cancel clears the pending trailing call.
// Locking follows the same discipline as Debounce.
func Throttle(s sched.Scheduler, interval time.Duration, fn func()) (trigger func(), cancel func()) {
	var (
		mu       sync.Mutex
		inWindow bool
		trailing bool
		pending  sched.Cancel
	)
	var openWindow func() // schedules under mu
	openWindow = func() {
		inWindow = true
		pending = s.After(interval, func() {
			mu.Lock()
			pending = nil
			runTrailing := trailing
			trailing = false
			if runTrailing {
				openWindow()
			} else {
				inWindow = false
			}
			mu.Unlock()
			if runTrailing {
				fn()
			}
		})
	}
	trigger = func() {
		mu.Lock()
		if inWindow {
			trailing = true
			mu.Unlock()
			return
		}
		openWindow()
		mu.Unlock()
		fn()
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		trailing = false
		inWindow = false
		if pending != nil {
			pending()
			pending = nil
		}
	}
	return trigger, cancel
}
