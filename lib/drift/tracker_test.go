package drift

import (
	"testing"
	"time"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClocks swaps the package clock hooks for scripted ones and restores
// them when the test finishes.
func fakeClocks(t *testing.T, wall func() time.Time, mono func() (float64, error)) {
	t.Helper()
	origWall, origMono := wallNow, monoNow
	wallNow = wall
	monoNow = mono
	t.Cleanup(func() {
		wallNow = origWall
		monoNow = origMono
	})
}

// TestTrackerNoDrift verifies that clocks advancing in lockstep produce a
// zero drift sample.
func TestTrackerNoDrift(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(0)
	require.NoError(t, err)

	wall = base.Add(5 * time.Second)
	mono += 5.0

	s, err := tracker.Measure()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, s.Wall)
	assert.Equal(t, 5*time.Second, s.Monotonic)
	assert.Equal(t, time.Duration(0), s.Drift)
	assert.Equal(t, wall, s.At)
}

// TestTrackerForwardStep verifies a wall clock stepped ahead shows up as
// positive drift.
func TestTrackerForwardStep(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(0)
	require.NoError(t, err)

	// One second of real time passes while the wall clock jumps four.
	mono += 1.0
	wall = base.Add(4 * time.Second)

	s, err := tracker.Measure()
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, s.Wall)
	assert.Equal(t, time.Second, s.Monotonic)
	assert.Equal(t, 3*time.Second, s.Drift)
}

// TestTrackerBackwardStep verifies a wall clock set back shows up as
// negative drift while the monotonic elapsed stays positive.
func TestTrackerBackwardStep(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(250*time.Millisecond)
	require.NoError(t, err)

	mono += 1.0
	wall = base.Add(-time.Second)

	s, err := tracker.Measure()
	require.NoError(t, err)
	assert.Equal(t, -time.Second, s.Wall)
	assert.Equal(t, time.Second, s.Monotonic)
	assert.Equal(t, -2*time.Second, s.Drift)
}

// TestTrackerSubSecondDrift verifies fractional drift survives the
// float-to-duration conversion.
func TestTrackerSubSecondDrift(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(0)
	require.NoError(t, err)

	mono += 1.0
	wall = base.Add(1250 * time.Millisecond)

	s, err := tracker.Measure()
	require.NoError(t, err)
	assert.InDelta(t, float64(250*time.Millisecond), float64(s.Drift), float64(time.Microsecond))
}

// TestTrackerReset verifies a reset discards accumulated drift.
func TestTrackerReset(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(0)
	require.NoError(t, err)

	mono += 1.0
	wall = base.Add(10 * time.Second)

	s, err := tracker.Measure()
	require.NoError(t, err)
	assert.Equal(t, 9*time.Second, s.Drift)

	require.NoError(t, tracker.Reset())

	s, err = tracker.Measure()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), s.Drift)
}

// TestTrackerMonotonicFailure verifies monotonic read errors surface from
// both construction and measurement.
func TestTrackerMonotonicFailure(t *testing.T) {
	readErr := oops.New("native source gone")
	fakeClocks(t, time.Now, func() (float64, error) { return 0, readErr })

	_, err := NewTracker(0)
	assert.Error(t, err)

	fakeClocks(t, time.Now, func() (float64, error) { return 100.0, nil })
	tracker, err := NewTracker(0)
	require.NoError(t, err)

	fakeClocks(t, time.Now, func() (float64, error) { return 0, readErr })
	_, err = tracker.Measure()
	assert.Error(t, err)
}

// TestTrackerSetThreshold verifies threshold updates take effect without a
// new tracker.
func TestTrackerSetThreshold(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	wall := base
	mono := 100.0
	fakeClocks(t, func() time.Time { return wall }, func() (float64, error) { return mono, nil })

	tracker, err := NewTracker(time.Second)
	require.NoError(t, err)
	tracker.SetThreshold(50 * time.Millisecond)

	tracker.mu.Lock()
	got := tracker.threshold
	tracker.mu.Unlock()
	assert.Equal(t, 50*time.Millisecond, got)
}

// TestAbsDuration covers both signs and zero.
func TestAbsDuration(t *testing.T) {
	assert.Equal(t, time.Second, absDuration(time.Second))
	assert.Equal(t, time.Second, absDuration(-time.Second))
	assert.Equal(t, time.Duration(0), absDuration(0))
}
