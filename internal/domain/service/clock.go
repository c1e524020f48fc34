package service

import "time"

// Clock abstracts wall-clock reads so jobs and the scheduler can be driven by
// a fake time source in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
