package timeline

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rendergov/internal/sched"
)

func TestDebounceCoalesces(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, _ := Debounce(s, 100*time.Millisecond, func() { calls++ })

	for i := 0; i < 10; i++ {
		trigger()
		s.Advance(50 * time.Millisecond) // always inside the window
	}
	if calls != 0 {
		t.Fatalf("debounced fn fired during rapid triggers: %d", calls)
	}
	s.Advance(100 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("want exactly 1 trailing call, got %d", calls)
	}
}

func TestDebounceCancelClearsPending(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, cancel := Debounce(s, 50*time.Millisecond, func() { calls++ })
	trigger()
	cancel()
	s.Advance(time.Second)
	if calls != 0 {
		t.Fatalf("canceled debounce still fired: %d", calls)
	}
	if s.Pending() != 0 {
		t.Fatalf("cancel left a dangling scheduled callback")
	}
}

func TestDebounceCancelAfterFireIsSafe(t *testing.T) {
	s := sched.NewManual()
	trigger, cancel := Debounce(s, 10*time.Millisecond, func() {})
	trigger()
	s.Advance(20 * time.Millisecond)
	cancel() // already fired; must be a no-op
	cancel()
}

func TestDebounceReusableAfterFire(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, _ := Debounce(s, 10*time.Millisecond, func() { calls++ })
	trigger()
	s.Advance(20 * time.Millisecond)
	trigger()
	s.Advance(20 * time.Millisecond)
	if calls != 2 {
		t.Fatalf("want 2 calls across separate bursts, got %d", calls)
	}
}

func TestThrottleLeadingEdge(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, _ := Throttle(s, 100*time.Millisecond, func() { calls++ })
	trigger()
	if calls != 1 {
		t.Fatalf("throttle must fire on the leading edge, got %d", calls)
	}
}

func TestThrottleRateLimits(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, _ := Throttle(s, 100*time.Millisecond, func() { calls++ })

	// 20 triggers over 200ms: leading call, one trailing call at 100ms,
	// then one more trailing at 200ms.
	for i := 0; i < 20; i++ {
		trigger()
		s.Advance(10 * time.Millisecond)
	}
	if calls > 3 {
		t.Fatalf("throttle allowed %d calls in 200ms at a 100ms interval", calls)
	}
	if calls < 2 {
		t.Fatalf("trailing calls lost: got %d", calls)
	}
}

func TestThrottleTrailingCallPreserved(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, _ := Throttle(s, 100*time.Millisecond, func() { calls++ })
	trigger() // leading
	trigger() // inside window, becomes trailing
	s.Advance(150 * time.Millisecond)
	if calls != 2 {
		t.Fatalf("final event inside the window must not be lost, got %d", calls)
	}
}

func TestDebounceWallConcurrent(t *testing.T) {
	var calls atomic.Int32
	trigger, cancel := Debounce(sched.Wall{}, 100*time.Microsecond, func() { calls.Add(1) })

	// Hammer trigger from several goroutines while timer callbacks fire
	// concurrently; the race detector verifies the shared state.
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				trigger()
				time.Sleep(30 * time.Microsecond)
			}
		}()
	}
	wg.Wait()
	time.Sleep(5 * time.Millisecond)
	cancel()
	cancel()
	if calls.Load() == 0 {
		t.Fatal("debounced fn never fired")
	}
}

func TestThrottleWallConcurrent(t *testing.T) {
	var calls atomic.Int32
	trigger, cancel := Throttle(sched.Wall{}, 100*time.Microsecond, func() { calls.Add(1) })

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				trigger()
				time.Sleep(30 * time.Microsecond)
			}
		}()
	}
	wg.Wait()
	time.Sleep(5 * time.Millisecond)
	cancel()
	if calls.Load() == 0 {
		t.Fatal("throttled fn never fired on the leading edge")
	}
}

func TestThrottleCancel(t *testing.T) {
	s := sched.NewManual()
	calls := 0
	trigger, cancel := Throttle(s, 100*time.Millisecond, func() { calls++ })
	trigger()
	trigger()
	cancel()
	s.Advance(time.Second)
	if calls != 1 {
		t.Fatalf("cancel must clear the pending trailing call, got %d", calls)
	}
}
