package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	return &FixedStep{step: step, accumulator: step}
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
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

// Budget tracks a wall-clock allowance checked between whole steps. A step
// in progress is never interrupted; granularity is one step.
type Budget struct {
	start time.Time
	limit time.Duration
}

// NewBudget starts a budget of the given duration. A non-positive duration
// yields a budget that is spent immediately.
func NewBudget(d time.Duration) *Budget {
	return &Budget{start: time.Now(), limit: d}
}

// Spent reports whether the allowance has elapsed.
func (b *Budget) Spent() bool {
	return time.Since(b.start) >= b.limit
}

// Elapsed returns the time consumed so far.
func (b *Budget) Elapsed() time.Duration {
	return time.Since(b.start)
}
