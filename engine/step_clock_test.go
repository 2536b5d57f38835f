package engine

import "time"

var clockEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// stepClock only moves when told to; its Sleep stands in for the chronometer's idle wait
type stepClock struct {
	now    time.Time
	sleeps int
}

func newStepClock() *stepClock {
	return &stepClock{now: clockEpoch}
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func (c *stepClock) Sleep(d time.Duration) {
	c.sleeps++
	c.Advance(d)
}

// elapsed is the simulated time since the epoch
func (c *stepClock) elapsed() time.Duration { return c.now.Sub(clockEpoch) }
