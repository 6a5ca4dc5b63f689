package hw

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	var c Clock
	c.Add(3)
	c.Add(4)
	if c.Ticks() != 7 {
		t.Errorf("got %d ticks, want 7", c.Ticks())
	}
	c.Reset()
	if c.Ticks() != 0 {
		t.Errorf("got %d ticks after reset, want 0", c.Ticks())
	}
}

func TestClockElapsed(t *testing.T) {
	tests := []struct {
		mhz   float64
		ticks uint64
		want  time.Duration
	}{
		{1, 6, 6 * time.Microsecond},
		{2, 1000, 500 * time.Microsecond},
		{0.1, 1, 10 * time.Microsecond},
	}
	for _, tt := range tests {
		var c Clock
		c.SetMHz(tt.mhz)
		c.Add(tt.ticks)
		if got := c.Elapsed(); got != tt.want {
			t.Errorf("%g MHz, %d ticks: got %s, want %s", tt.mhz, tt.ticks, got, tt.want)
		}
	}
}

func TestClockUnconfigured(t *testing.T) {
	var c Clock
	c.Add(1000)
	if got := c.Elapsed(); got != 0 {
		t.Errorf("got %s, want 0", got)
	}
}
