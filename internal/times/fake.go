package times

import (
	"sync"
	"time"
)

// FakeClock is a Clock whose waits complete immediately and advance its time.
// It records every requested wait.
type FakeClock struct {
	mu    sync.Mutex
	now   time.Time
	waits []time.Duration

	// OnWait, if set, runs on every wait after the clock has advanced.
	OnWait func(d time.Duration)
}

// NewFakeClock returns a FakeClock starting at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the fake time.
func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

// After advances the clock by d and returns an already-fired channel.
func (f *FakeClock) After(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.waits = append(f.waits, d)
	now := f.now
	onWait := f.OnWait
	f.mu.Unlock()

	if onWait != nil {
		onWait(d)
	}

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// Waits returns a copy of every wait requested so far.
func (f *FakeClock) Waits() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.waits...)
}
