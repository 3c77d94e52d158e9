package quality

import (
	"log"
	"time"

	"rendergov/internal/frametime"
)

// FPS thresholds for stepping quality down and up. The gap between them is
// part of the hysteresis: an average between the two leaves the tier alone.
const (
	FPSLow  = 30.0
	FPSHigh = 55.0
)

// DefaultCheckInterval gates how often the controller re-evaluates; checks
// inside the window are ignored so a transient dip cannot thrash the tier.
const DefaultCheckInterval = 2 * time.Second

// Controller is a closed-loop quality governor. It reads averaged frame
// metrics on a fixed interval and steps the tier at most one level per
// check, in either direction. Sustained degradation or recovery therefore
// takes multiple intervals to fully escalate, which is what keeps the loop
// from oscillating.
type Controller struct {
	current   Tier
	interval  time.Duration
	lastCheck time.Time
}

// NewController starts at the given tier with the default check interval.
func NewController(start Tier) *Controller {
	return &Controller{current: start, interval: DefaultCheckInterval}
}

// SetCheckInterval overrides the evaluation interval; non-positive values
// are ignored.
func (c *Controller) SetCheckInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Update runs one periodic check. Returns the active tier and whether it
// changed on this call. Calls inside the check interval are no-ops, as are
// checks with no samples yet.
func (c *Controller) Update(now time.Time, m frametime.Metrics) (Tier, bool) {
	if !c.lastCheck.IsZero() && now.Sub(c.lastCheck) < c.interval {
		return c.current, false
	}
	c.lastCheck = now
	if m.SampleCount == 0 {
		return c.current, false
	}

	switch {
	case m.Average < FPSLow && c.current > Low:
		c.current--
		log.Printf("quality: average %.1f FPS below %.0f, stepping down to %s", m.Average, FPSLow, c.current)
		return c.current, true
	case m.Average < FPSLow:
		log.Printf("quality: average %.1f FPS below %.0f at lowest tier", m.Average, FPSLow)
		return c.current, false
	case m.Average >= FPSHigh && c.current < High:
		c.current++
		return c.current, true
	}
	return c.current, false
}

// SetQuality is a manual override. It bypasses the automatic logic until
// the next full interval elapses, at which point automatic checks resume
// from the new tier.
func (c *Controller) SetQuality(now time.Time, t Tier) {
	if t < Low {
		t = Low
	}
	if t > High {
		t = High
	}
	c.current = t
	c.lastCheck = now
}

// Current returns the active tier.
func (c *Controller) Current() Tier {
	return c.current
}

// Settings returns the renderer settings for the active tier.
func (c *Controller) Settings() Settings {
	return SettingsFor(c.current)
}
