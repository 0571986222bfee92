// Package clock abstracts wall-clock time so token expiry and record
// timestamps can be controlled in tests.
package clock

import "time"

// Clock yields the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// New returns a SystemClock.
func New() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
