package mocks

import (
	"time"

	"github.com/tenpinclub/rollbook/internal/dependencies/clock"
)

// MockClock is a Clock frozen at a settable instant. Tests advance it to
// exercise token expiry and guest-name generation.
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock returns a MockClock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set pins the clock to t.
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
