package engine

import "time"

// TimeProvider abstracts the clock so systems never read the system
// time directly. Tests substitute MockTimeProvider to advance time
// deterministically.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real clock. time.Time carries a
// monotonic reading, so Sub/After comparisons are wall-clock safe.
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-clock provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
