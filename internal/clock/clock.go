package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time for expiry checks
type Clock interface {
	Now() time.Time
}

// System reads the wall clock. Readings keep their monotonic component so
// expiry comparisons are immune to wall clock steps; stores convert to UTC.
type System struct{}

// Now returns the current local time with its monotonic reading
func (System) Now() time.Time {
	return time.Now()
}

// Fake is a manually driven Clock for tests
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake returns a Fake frozen at now
func NewFake(now time.Time) *Fake {
	return &Fake{now: now.UTC()}
}

// Now returns the frozen time
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set moves the clock to t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t.UTC()
}

// Advance moves the clock forward by d
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
