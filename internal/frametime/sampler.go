package frametime

import (
	"time"
)

// WindowSize is the number of instantaneous FPS samples retained.
// 60 samples is one second of history at the target refresh rate.
const WindowSize = 60

// Metrics is a snapshot of frame-rate statistics over the sample window.
// All values are frames per second; everything is zero before the first
// complete sample.
type Metrics struct {
	Current     float64
	Average     float64
	Min         float64
	Max         float64
	SampleCount int
}

// Sampler records elapsed time between successive frame ticks and derives
// FPS statistics over a bounded sliding window.
type Sampler struct {
	samples [WindowSize]float64
	head    int
	count   int
	last    time.Time
	metrics Metrics
}

// NewSampler returns an empty sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Update records one frame tick at the given time and returns the current
// metrics. The first call and any call with a non-positive delta produce no
// sample; metrics stay zero until at least one valid delta is seen.
func (s *Sampler) Update(now time.Time) Metrics {
	if s.last.IsZero() {
		s.last = now
		return s.metrics
	}
	dt := now.Sub(s.last)
	s.last = now
	if dt <= 0 {
		return s.metrics
	}

	fps := 1000.0 / (float64(dt) / float64(time.Millisecond))
	s.samples[s.head] = fps
	s.head = (s.head + 1) % WindowSize
	if s.count < WindowSize {
		s.count++
	}
	s.recompute(fps)
	return s.metrics
}

// Metrics returns the statistics from the last Update without sampling.
func (s *Sampler) Metrics() Metrics {
	return s.metrics
}

// Reset clears the window and the previous-tick timestamp.
func (s *Sampler) Reset() {
	*s = Sampler{}
}

func (s *Sampler) recompute(current float64) {
	min := s.samples[0]
	max := s.samples[0]
	sum := 0.0
	for i := 0; i < s.count; i++ {
		v := s.samples[i]
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	s.metrics = Metrics{
		Current:     current,
		Average:     sum / float64(s.count),
		Min:         min,
		Max:         max,
		SampleCount: s.count,
	}
}
