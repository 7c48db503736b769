package calculation

import "time"

// Clock returns the instant a projection treats as "now". It is read once
// per run.
type Clock func() time.Time

// SystemClock is the wall-clock Clock.
func SystemClock() time.Time { return time.Now() }

// FixedClock returns a Clock pinned to t (use for reproducible runs and tests).
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
