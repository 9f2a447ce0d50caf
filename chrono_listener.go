package dpllsat

import "time"

// ChronoListener measures the wall-clock duration of one solve: it starts
// the clock on Init and stops it on Cleanup.
type ChronoListener struct {
	NoopListener

	start   time.Time
	Elapsed time.Duration
}

func (c *ChronoListener) Init() {
	c.start = time.Now()
}

func (c *ChronoListener) Cleanup() {
	c.Elapsed = time.Since(c.start)
}
