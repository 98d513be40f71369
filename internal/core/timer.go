package core

import "time"

const (
	// MinInterval is the shortest tick interval interactive drivers accept,
	// so input handling is never starved.
	MinInterval = 10 * time.Millisecond
	// DefaultInterval is the tick interval drivers start with.
	DefaultInterval = 200 * time.Millisecond
)

// ClampInterval applies the interactive floor to d.
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// FixedStep gates simulation updates to a steady interval while the caller
// runs a faster frame loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires every interval. The first
// call to ShouldStep fires immediately.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the tick interval, clamped to MinInterval. It is safe
// to call from the main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	f.step = ClampInterval(d)
}

// Interval returns the effective tick interval.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
