package config

import (
	"sync"
	"time"
)

// Config holds the tunables for the performance controller and demo loop.
// It is an owned instance constructed by whoever owns the render loop;
// getters and setters are safe to call from input callbacks.
type Config struct {
	mu sync.RWMutex

	fpsCap          int
	checkInterval   time.Duration
	initialPool     int
	maxPool         int
	spawnsPerSecond int
}

// Default limits for clamping. Values outside these ranges come from
// UI sliders and are pulled back rather than rejected.
const (
	minCheckInterval = 250 * time.Millisecond
	maxCheckInterval = 30 * time.Second
	maxFPSCap        = 480
	maxPoolCap       = 4096
)

// New returns a config with the demo defaults.
func New() *Config {
	return &Config{
		fpsCap:          0, // uncapped
		checkInterval:   2 * time.Second,
		initialPool:     50,
		maxPool:         200,
		spawnsPerSecond: 120,
	}
}

// FPSCap returns the frame cap; zero means uncapped.
func (c *Config) FPSCap() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fpsCap
}

// SetFPSCap sets the frame cap, clamped to [0, 480]; zero disables.
func (c *Config) SetFPSCap(cap int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cap < 0 {
		cap = 0
	}
	if cap > maxFPSCap {
		cap = maxFPSCap
	}
	c.fpsCap = cap
}

// CheckInterval returns how often the quality controller re-evaluates.
func (c *Config) CheckInterval() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.checkInterval
}

// SetCheckInterval clamps to [250ms, 30s].
func (c *Config) SetCheckInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < minCheckInterval {
		d = minCheckInterval
	}
	if d > maxCheckInterval {
		d = maxCheckInterval
	}
	c.checkInterval = d
}

// PoolSizes returns the particle pool's initial and maximum sizes.
func (c *Config) PoolSizes() (initial, max int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.initialPool, c.maxPool
}

// SetPoolSizes clamps both into [1, 4096] and forces initial <= max.
func (c *Config) SetPoolSizes(initial, max int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if max < 1 {
		max = 1
	}
	if max > maxPoolCap {
		max = maxPoolCap
	}
	if initial < 1 {
		initial = 1
	}
	if initial > max {
		initial = max
	}
	c.initialPool = initial
	c.maxPool = max
}

// SpawnsPerSecond returns the demo's particle spawn rate.
func (c *Config) SpawnsPerSecond() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.spawnsPerSecond
}

// SetSpawnsPerSecond clamps to [0, 10000].
func (c *Config) SetSpawnsPerSecond(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > 10000 {
		n = 10000
	}
	c.spawnsPerSecond = n
}
