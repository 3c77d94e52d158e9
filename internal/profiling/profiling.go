// Package profiling provides lightweight per-frame CPU timing for
// tick-level insights, feeding the slow-frame diagnostic log line.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates named stage durations for the current tick. It is
// owned by the render loop and reset at the start of every frame.
type Frame struct {
	totals map[string]time.Duration
}

// NewFrame creates an empty frame profiler.
func NewFrame() *Frame {
	return &Frame{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records elapsed time under name.
// Usage: defer f.Track("culling.Apply")()
func (f *Frame) Track(name string) func() {
	start := time.Now()
	return func() {
		f.totals[name] += time.Since(start)
	}
}

// Reset clears the current frame's totals. Call at the start of each tick.
func (f *Frame) Reset() {
	for k := range f.totals {
		delete(f.totals, k)
	}
}

// TopN formats the N most expensive stages of the current frame, e.g.
// "culling.Apply:4.2ms, pool.spawn:0.3ms".
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{k, v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
