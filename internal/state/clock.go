package state

import "sync/atomic"

// Clock hands out sequence numbers for emitted board events so observers
// can tell when they missed some.
type Clock struct {
	counter atomic.Uint64
}

// Tick increments the clock and returns the new value
func (c *Clock) Tick() uint64 {
	return c.counter.Add(1)
}
