package engine

// TickClock is game time accumulated from tick deltas. It only moves when the
// scene updates, so a paused game does not age footstep timers.
type TickClock struct {
	elapsed float64
}

func (c *TickClock) Advance(deltaTime float32) {
	c.elapsed += float64(deltaTime)
}

func (c *TickClock) Now() float64 {
	return c.elapsed
}

func (c *TickClock) Reset() {
	c.elapsed = 0
}
