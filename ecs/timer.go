package ecs

import "math"

// TimerMode selects what a Timer does once its duration has elapsed.
type TimerMode int

const (
	// TimerOnce stays finished until Reset is called.
	TimerOnce TimerMode = iota
	// TimerRepeating wraps around and keeps counting.
	TimerRepeating
)

// Timer is a countdown driven by frame deltas. It is a plain value meant to be
// embedded in components; it does nothing unless ticked.
type Timer struct {
	Duration float64
	Mode     TimerMode

	elapsed     float64
	finished    bool
	timesTicked int
}

// NewTimer creates a timer with the given duration in seconds.
func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if t.Mode == TimerOnce && t.finished {
		t.timesTicked = 0
		return
	}

	t.elapsed += dt
	if t.elapsed < t.Duration {
		t.timesTicked = 0
		if t.Mode == TimerRepeating {
			t.finished = false
		}
		return
	}

	t.finished = true
	if t.Mode == TimerOnce {
		t.elapsed = t.Duration
		t.timesTicked = 1
		return
	}

	if t.Duration <= 0 {
		t.elapsed = 0
		t.timesTicked = 1
		return
	}

	completions := math.Floor(t.elapsed / t.Duration)
	t.elapsed -= completions * t.Duration
	t.timesTicked = int(completions)
}

// Finished reports whether the timer has reached its duration. A repeating
// timer is only finished on the tick that wrapped it.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick completed the timer at least once.
func (t *Timer) JustFinished() bool {
	return t.timesTicked > 0
}

// TimesFinishedThisTick returns how many times the last Tick completed the
// timer. Only repeating timers can complete more than once per tick.
func (t *Timer) TimesFinishedThisTick() int {
	return t.timesTicked
}

// Elapsed returns the seconds accumulated since the last completion or reset.
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Remaining returns the seconds left until the next completion.
func (t *Timer) Remaining() float64 {
	return max(t.Duration-t.elapsed, 0)
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.timesTicked = 0
}
