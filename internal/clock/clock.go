package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the duration since the given time
	Since(t time.Time) time.Duration
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the duration since the given time
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// SimulatedClock allows time manipulation for testing
type SimulatedClock struct {
	mu      sync.Mutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{
		current: start,
	}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Since returns the duration since the given time
func (c *SimulatedClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// AdvanceHours moves the simulated time forward by the given number of hours
func (c *SimulatedClock) AdvanceHours(hours float64) {
	c.Advance(time.Duration(hours * float64(time.Hour)))
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// HoursAgo returns the simulated time minus the given number of hours
func (c *SimulatedClock) HoursAgo(hours float64) time.Time {
	return c.Now().Add(-time.Duration(hours * float64(time.Hour)))
}
