package common

import "time"

// Clock measures the wall time between frames. A non-zero fixed step
// replaces the measurement, which makes runs reproducible.
type Clock struct {
	now   func() time.Time
	last  time.Time
	fixed float64
	delta float64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func NewFixedClock(step float64) *Clock {
	return &Clock{now: time.Now, fixed: step}
}

// Tick advances the clock by one frame and returns the new delta. The first
// tick of a wall clock returns zero.
func (c *Clock) Tick() float64 {
	if c == nil {
		return 0
	}
	if c.fixed > 0 {
		c.delta = c.fixed
		return c.delta
	}
	t := c.now()
	if c.last.IsZero() {
		c.delta = 0
	} else {
		c.delta = t.Sub(c.last).Seconds()
	}
	c.last = t
	return c.delta
}

// DeltaSeconds returns the delta produced by the most recent Tick.
func (c *Clock) DeltaSeconds() float64 {
	if c == nil {
		return 0
	}
	return c.delta
}
