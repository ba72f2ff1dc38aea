package timer

import "time"

// Cadence turns elapsed time into a whole number of fixed-interval steps.
// The remainder carries over, so a 25ms cadence driven by 1/60s ticks
// fires 40 times per simulated second.
type Cadence struct {
	interval time.Duration
	acc      time.Duration
}

// NewCadence returns a cadence firing every interval
func NewCadence(interval time.Duration) Cadence {
	return Cadence{interval: interval}
}

// Interval returns the step length
func (c *Cadence) Interval() time.Duration {
	return c.interval
}

// Advance adds dt and returns how many steps fell due
func (c *Cadence) Advance(dt time.Duration) int {
	if c.interval <= 0 {
		return 0
	}
	c.acc += dt
	n := c.acc / c.interval
	c.acc -= n * c.interval
	return int(n)
}

// Reset drops the accumulated remainder
func (c *Cadence) Reset() {
	c.acc = 0
}
