package drift

import (
	"sync"
	"time"

	"github.com/go-i2p/go-monotime/lib/monotonic"
	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"golang.org/x/time/rate"
)

var log = logger.GetGoI2PLogger()

// Clock-reading functions, overridable for testing.
var (
	wallNow = time.Now
	monoNow = monotonic.Now
)

// warnInterval caps how often a tracker logs threshold violations. Drift
// persists across samples, so without the cap every sample past the
// threshold would repeat the same warning.
const warnInterval = time.Minute

// Sample is one drift measurement against the tracker's baseline.
type Sample struct {
	// At is the wall-clock timestamp of the measurement.
	At time.Time
	// Wall is how much the wall clock advanced since the baseline.
	Wall time.Duration
	// Monotonic is how much the monotonic clock advanced since the baseline.
	Monotonic time.Duration
	// Drift is Wall minus Monotonic. Positive means the wall clock ran
	// ahead, negative means it was set back or slewed down.
	Drift time.Duration
}

// Tracker compares wall and monotonic clocks against a baseline pair
// captured at construction. It is safe for concurrent use.
type Tracker struct {
	mu        sync.Mutex
	wallBase  time.Time
	monoBase  float64
	threshold time.Duration
	warn      rate.Sometimes
}

// NewTracker captures a wall/monotonic baseline pair and returns a tracker
// that warns when absolute drift exceeds threshold. A zero threshold
// disables warning logs; measurements still work.
func NewTracker(threshold time.Duration) (*Tracker, error) {
	base, err := monoNow()
	if err != nil {
		return nil, oops.Wrapf(err, "capturing monotonic baseline")
	}
	return &Tracker{
		// Round(0) strips the monotonic reading Go embeds in time.Now
		// values. Leaving it in would make Sub measure monotonic time
		// and the drift would always come out zero.
		wallBase:  wallNow().Round(0),
		monoBase:  base,
		threshold: threshold,
		warn:      rate.Sometimes{First: 1, Interval: warnInterval},
	}, nil
}

// Measure returns the drift accumulated since the baseline.
func (t *Tracker) Measure() (Sample, error) {
	mono, err := monoNow()
	if err != nil {
		return Sample{}, oops.Wrapf(err, "reading monotonic clock")
	}
	wall := wallNow().Round(0)

	t.mu.Lock()
	wallElapsed := wall.Sub(t.wallBase)
	monoElapsed := mono - t.monoBase
	threshold := t.threshold
	t.mu.Unlock()

	s := Sample{
		At:        wall,
		Wall:      wallElapsed,
		Monotonic: monotonic.AsDuration(monoElapsed),
	}
	s.Drift = s.Wall - s.Monotonic

	if threshold > 0 && absDuration(s.Drift) > threshold {
		t.warn.Do(func() {
			log.WithFields(logger.Fields{
				"drift":     s.Drift,
				"wall":      s.Wall,
				"monotonic": s.Monotonic,
				"threshold": threshold,
			}).Warn("Wall clock diverged from monotonic clock")
		})
	}
	return s, nil
}

// Reset discards the accumulated drift by capturing a fresh baseline pair.
func (t *Tracker) Reset() error {
	base, err := monoNow()
	if err != nil {
		return oops.Wrapf(err, "capturing monotonic baseline")
	}
	wall := wallNow().Round(0)

	t.mu.Lock()
	t.wallBase = wall
	t.monoBase = base
	t.mu.Unlock()
	return nil
}

// SetThreshold updates the warn threshold, typically after a config reload.
func (t *Tracker) SetThreshold(threshold time.Duration) {
	t.mu.Lock()
	t.threshold = threshold
	t.mu.Unlock()
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
