package monotonic

import (
	"sync"
	"time"
)

// Deadline represents a point in monotonic time after which something has
// expired. Because it is anchored to the resolved monotonic clock rather
// than the wall clock, NTP corrections and manual time changes cannot cause
// premature or delayed expiration.
//
// Deadline is safe for concurrent use by multiple goroutines.
type Deadline struct {
	mu       sync.RWMutex
	clock    *Clock
	start    float64
	lifetime time.Duration
}

// NewDeadline creates a Deadline that expires after the given lifetime,
// starting now. Fails when the platform has no monotonic source.
//
// Panics if lifetime is negative.
func NewDeadline(lifetime time.Duration) (*Deadline, error) {
	if lifetime < 0 {
		panic("monotonic: negative lifetime")
	}
	c, err := Resolve()
	if err != nil {
		return nil, err
	}
	start, err := c.Now()
	if err != nil {
		return nil, err
	}
	return &Deadline{clock: c, start: start, lifetime: lifetime}, nil
}

// IsExpired reports whether the deadline has passed. The error is the
// clock's, not the deadline's: a reading failure leaves expiry unknown.
func (d *Deadline) IsExpired() (bool, error) {
	elapsed, err := d.Elapsed()
	if err != nil {
		return false, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return elapsed >= d.lifetime, nil
}

// Remaining returns the time left until expiry, or zero if already expired.
func (d *Deadline) Remaining() (time.Duration, error) {
	elapsed, err := d.Elapsed()
	if err != nil {
		return 0, err
	}
	d.mu.RLock()
	remaining := d.lifetime - elapsed
	d.mu.RUnlock()
	if remaining < 0 {
		return 0, nil
	}
	return remaining, nil
}

// Elapsed returns how much monotonic time has passed since the deadline was
// created or last restarted.
func (d *Deadline) Elapsed() (time.Duration, error) {
	now, err := d.clock.Now()
	if err != nil {
		return 0, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return AsDuration(now - d.start), nil
}

// Lifetime returns the total lifetime configured for this deadline.
func (d *Deadline) Lifetime() time.Duration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lifetime
}

// Extend adds additional time to the deadline's lifetime. The extension
// must be non-negative.
func (d *Deadline) Extend(additional time.Duration) {
	if additional < 0 {
		panic("monotonic: negative extension")
	}
	d.mu.Lock()
	d.lifetime += additional
	d.mu.Unlock()
}

// Restart re-arms the deadline from the current reading, keeping its
// configured lifetime.
func (d *Deadline) Restart() error {
	now, err := d.clock.Now()
	if err != nil {
		return err
	}
	d.mu.Lock()
	d.start = now
	d.mu.Unlock()
	return nil
}
