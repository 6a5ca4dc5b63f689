package hw

import "time"

// Clock is the per-instruction cycle accumulator. It only ever counts up
// during execution; Reset zeroes it. The configured frequency converts
// ticks to wall time for external pacing and has no effect on emulation.
type Clock struct {
	ticks uint64
	mhz   float64
}

func (c *Clock) Add(n uint64)       { c.ticks += n }
func (c *Clock) Ticks() uint64      { return c.ticks }
func (c *Clock) Reset()             { c.ticks = 0 }
func (c *Clock) SetMHz(mhz float64) { c.mhz = mhz }

// Elapsed returns the wall-clock time the counted cycles represent at the
// configured frequency: ticks * 1000 / MHz nanoseconds.
func (c *Clock) Elapsed() time.Duration {
	if c.mhz == 0 {
		return 0
	}
	return time.Duration(float64(c.ticks) * 1000.0 / c.mhz)
}
