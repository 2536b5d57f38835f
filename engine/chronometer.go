package engine

import "time"

// idleSleep is how long a not-ready tick yields the CPU
const idleSleep = time.Millisecond

// Chronometer gates the loop to a fixed frame interval
// Ready is true at most once per interval; the measured interval feeds Delta and FPS.
type Chronometer struct {
	time  TimeProvider
	sleep func(time.Duration)

	frame time.Duration
	real  time.Duration
	last  time.Time
}

// NewChronometer targets fps frames per second
func NewChronometer(fps int, tp TimeProvider) *Chronometer {
	if fps < 1 {
		fps = 1
	}
	frame := time.Second / time.Duration(fps)
	return &Chronometer{
		time:  tp,
		sleep: time.Sleep,
		frame: frame,
		real:  frame,
		last:  tp.Now(),
	}
}

// Ready reports whether a frame interval has elapsed since the last ready tick
// A not-ready call sleeps for a millisecond.
func (c *Chronometer) Ready() bool {
	now := c.time.Now()
	elapsed := now.Sub(c.last)
	if elapsed >= c.frame {
		c.real = elapsed
		c.last = now
		return true
	}
	c.sleep(idleSleep)
	return false
}

// Frame returns the target interval
func (c *Chronometer) Frame() time.Duration {
	return c.frame
}

// Delta returns the measured duration of the last frame in seconds
func (c *Chronometer) Delta() float64 {
	return c.real.Seconds()
}

// FPS returns the rate implied by the last measured frame
func (c *Chronometer) FPS() float64 {
	return 1 / c.real.Seconds()
}
