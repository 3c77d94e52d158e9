package sched

import (
	"sort"
	"time"
)

// Manual is a deterministic scheduler for tests: callbacks fire only when
// the fake clock is advanced past their deadline, in deadline order.
type Manual struct {
	now     time.Time
	nextID  int
	pending []*manualEntry
}

type manualEntry struct {
	id       int
	deadline time.Time
	fn       func()
	canceled bool
}

// NewManual creates a manual scheduler starting at an arbitrary epoch.
func NewManual() *Manual {
	return &Manual{now: time.Unix(0, 0)}
}

// Now returns the fake clock's current time.
func (m *Manual) Now() time.Time {
	return m.now
}

func (m *Manual) After(d time.Duration, fn func()) Cancel {
	e := &manualEntry{id: m.nextID, deadline: m.now.Add(d), fn: fn}
	m.nextID++
	m.pending = append(m.pending, e)
	return func() { e.canceled = true }
}

// Advance moves the clock forward and runs every due callback in deadline
// order (insertion order breaks ties). Callbacks scheduled during Advance
// run too if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		e := m.nextDue(target)
		if e == nil {
			break
		}
		if e.deadline.After(m.now) {
			m.now = e.deadline
		}
		if !e.canceled {
			e.fn()
		}
	}
	m.now = target
}

func (m *Manual) nextDue(target time.Time) *manualEntry {
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].deadline.Equal(m.pending[j].deadline) {
			return m.pending[i].id < m.pending[j].id
		}
		return m.pending[i].deadline.Before(m.pending[j].deadline)
	})
	for i, e := range m.pending {
		if !e.deadline.After(target) {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return e
		}
	}
	return nil
}

// Pending returns the number of scheduled, uncanceled callbacks.
func (m *Manual) Pending() int {
	n := 0
	for _, e := range m.pending {
		if !e.canceled {
			n++
		}
	}
	return n
}
