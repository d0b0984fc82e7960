package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-i2p/go-monotime/lib/config"
)

// testConfig returns a configuration safe for tests: fast sampling, no
// network probe, no listening socket.
func testConfig() *config.MonitorConfig {
	return &config.MonitorConfig{
		Interval:      5 * time.Millisecond,
		WarnThreshold: 0,
		NTP:           &config.NTPConfig{Enabled: false},
		Metrics:       &config.MetricsConfig{Listen: ""},
	}
}

// TestCreateMonitor verifies creation resolves the clock and primes the
// snapshot before the first sample.
func TestCreateMonitor(t *testing.T) {
	m, err := CreateMonitor(testConfig())
	require.NoError(t, err)

	snap := m.snapshot()
	assert.NotEmpty(t, snap.Source)
	assert.True(t, snap.Healthy)
	assert.Nil(t, m.probe)
	assert.Nil(t, m.srv)
}

// TestCreateMonitorNilConfig verifies defaults are applied. The default
// metrics address is only bound at Start, so creating is side-effect free.
func TestCreateMonitorNilConfig(t *testing.T) {
	m, err := CreateMonitor(nil)
	require.NoError(t, err)
	assert.NotNil(t, m.srv)
	assert.Nil(t, m.probe)
}

// TestCreateMonitorWithProbe verifies an enabled NTP config wires the probe
// without touching the network.
func TestCreateMonitorWithProbe(t *testing.T) {
	cfg := testConfig()
	cfg.NTP = &config.NTPConfig{
		Enabled:  true,
		Server:   "0.pool.ntp.org",
		Timeout:  time.Second,
		Interval: time.Hour,
	}

	m, err := CreateMonitor(cfg)
	require.NoError(t, err)
	require.NotNil(t, m.probe)
	assert.Equal(t, "0.pool.ntp.org", m.probe.Server())
	require.NotNil(t, m.probeDue)
}

// TestMonitorStartStop verifies the full lifecycle: samples accumulate
// while running and Wait unblocks after Stop.
func TestMonitorStartStop(t *testing.T) {
	m, err := CreateMonitor(testConfig())
	require.NoError(t, err)

	before := m.snapshot()
	m.Start()
	time.Sleep(50 * time.Millisecond)
	m.Stop()
	m.Wait()
	require.NoError(t, m.Close())

	after := m.snapshot()
	assert.True(t, after.Healthy)
	assert.Greater(t, after.Reading, before.Reading)
}

// TestMonitorStopIdempotent verifies repeated and premature stops are
// harmless.
func TestMonitorStopIdempotent(t *testing.T) {
	m, err := CreateMonitor(testConfig())
	require.NoError(t, err)

	m.Stop() // not yet started

	m.Start()
	m.Stop()
	m.Stop() // second stop must not panic on the closed quit channel
	m.Wait()
}

// TestMonitorStartTwice verifies a second Start is refused while running.
func TestMonitorStartTwice(t *testing.T) {
	m, err := CreateMonitor(testConfig())
	require.NoError(t, err)

	m.Start()
	m.Start()

	m.runMux.RLock()
	running := m.running
	m.runMux.RUnlock()
	assert.True(t, running)

	m.Stop()
	m.Wait()
}

// TestMonitorReload verifies reload tolerates nil and applies thresholds
// without disturbing a running monitor.
func TestMonitorReload(t *testing.T) {
	m, err := CreateMonitor(testConfig())
	require.NoError(t, err)

	m.Start()
	m.Reload(nil)
	cfg := testConfig()
	cfg.WarnThreshold = time.Second
	m.Reload(cfg)
	m.Stop()
	m.Wait()
}
