package executor

import "time"

// Clock abstracts the wall-clock sleeps the crane runner, entry feeder,
// and outgoing drainer perform, so tests can run the real concurrent
// actors on a time-compressed Clock instead of waiting on real seconds —
// see reactor_test.go's scaledClock.
type Clock interface {
	// After returns a channel that receives once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// realClock is the production Clock: a thin wrapper over time.After.
type realClock struct{}

// RealClock returns the production Clock backed by the wall clock.
func RealClock() Clock { return realClock{} }

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
