package monotonic

import "sync"

// Stopwatch measures elapsed time against the resolved monotonic clock.
// Unlike a pair of ad-hoc Now readings it keeps the clock and the starting
// reading together, so call sites cannot mix readings from different
// origins.
//
// Stopwatch is safe for concurrent use by multiple goroutines.
type Stopwatch struct {
	mu    sync.RWMutex
	clock *Clock
	start float64
}

// NewStopwatch resolves the process-wide clock and captures a starting
// reading. Fails when the platform has no monotonic source.
func NewStopwatch() (*Stopwatch, error) {
	c, err := Resolve()
	if err != nil {
		return nil, err
	}
	start, err := c.Now()
	if err != nil {
		return nil, err
	}
	return &Stopwatch{clock: c, start: start}, nil
}

// Elapsed returns fractional seconds since the stopwatch was created or
// last restarted.
func (s *Stopwatch) Elapsed() (float64, error) {
	now, err := s.clock.Now()
	if err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now - s.start, nil
}

// Restart moves the starting reading to now.
func (s *Stopwatch) Restart() error {
	now, err := s.clock.Now()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.start = now
	s.mu.Unlock()
	return nil
}
