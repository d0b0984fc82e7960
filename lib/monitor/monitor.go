package monitor

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-i2p/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"

	"github.com/go-i2p/go-monotime/lib/config"
	"github.com/go-i2p/go-monotime/lib/drift"
	"github.com/go-i2p/go-monotime/lib/metrics"
	"github.com/go-i2p/go-monotime/lib/monotonic"
)

var log = logger.GetGoI2PLogger()

// Monitor periodically measures wall-vs-monotonic drift and publishes the
// latest sample over a Prometheus endpoint.
type Monitor struct {
	// monitor configuration
	cfg *config.MonitorConfig
	// the resolved native clock
	clock *monotonic.Clock
	// drift measurement against the startup baseline
	tracker *drift.Tracker
	// optional NTP corroboration, nil when disabled
	probe *drift.Probe
	// schedules NTP probes independently of the sampler interval
	probeDue *monotonic.Deadline
	// metrics endpoint, nil when disabled
	srv *http.Server

	// close channel, signalled once when the monitor stops
	closeChnl chan bool
	// quit wakes the mainloop so shutdown does not wait out a tick
	quit chan struct{}
	// running flag and mutex for thread-safe access
	running bool
	runMux  sync.RWMutex

	// latest sample as the scrape endpoint sees it
	snapMux sync.RWMutex
	snap    metrics.Snapshot
}

// CreateMonitor creates a monitor with the provided configuration. The
// monotonic clock is resolved here, so an unsupported platform fails fast
// rather than at the first sample.
func CreateMonitor(cfg *config.MonitorConfig) (*Monitor, error) {
	if cfg == nil {
		cfg = config.DefaultMonitorConfig()
	}
	log.Debug("Creating monitor with provided configuration")

	clock, err := monotonic.Resolve()
	if err != nil {
		log.WithError(err).Error("Failed to resolve monotonic clock")
		return nil, err
	}

	tracker, err := drift.NewTracker(cfg.WarnThreshold)
	if err != nil {
		log.WithError(err).Error("Failed to create drift tracker")
		return nil, err
	}

	m := &Monitor{
		cfg:       cfg,
		clock:     clock,
		tracker:   tracker,
		closeChnl: make(chan bool, 1),
		quit:      make(chan struct{}),
	}

	if err := m.initializeProbe(); err != nil {
		return nil, err
	}
	if err := m.initializeMetrics(); err != nil {
		return nil, err
	}

	reading, err := clock.Now()
	if err != nil {
		log.WithError(err).Error("Failed to take initial clock reading")
		return nil, err
	}
	m.snap = metrics.Snapshot{
		Reading: reading,
		Source:  clock.Source(),
		Healthy: true,
	}

	log.WithFields(logger.Fields{
		"source":   clock.Source(),
		"interval": cfg.Interval,
	}).Debug("Monitor created successfully")
	return m, nil
}

// initializeProbe wires the NTP corroboration probe when enabled.
func (m *Monitor) initializeProbe() error {
	ntpCfg := m.cfg.NTP
	if ntpCfg == nil || !ntpCfg.Enabled {
		log.Debug("NTP probe disabled")
		return nil
	}

	due, err := monotonic.NewDeadline(ntpCfg.Interval)
	if err != nil {
		log.WithError(err).Error("Failed to schedule NTP probe")
		return err
	}
	m.probe = drift.NewProbe(ntpCfg.Server, ntpCfg.Timeout, nil)
	m.probeDue = due
	log.WithFields(logger.Fields{
		"server":   ntpCfg.Server,
		"interval": ntpCfg.Interval,
	}).Debug("NTP probe enabled")
	return nil
}

// initializeMetrics wires the Prometheus endpoint when a listen address is
// configured. The monitor keeps its own registry so the endpoint serves
// exactly the clock metrics and nothing else.
func (m *Monitor) initializeMetrics() error {
	metricsCfg := m.cfg.Metrics
	if metricsCfg == nil || metricsCfg.Listen == "" {
		log.Debug("Metrics endpoint disabled")
		return nil
	}

	registry := prometheus.NewRegistry()
	if err := metrics.Register(registry, m.snapshot); err != nil {
		log.WithError(err).Error("Failed to register clock metrics")
		return oops.Wrapf(err, "registering clock metrics")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	m.srv = &http.Server{
		Addr:              metricsCfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.WithField("listen", metricsCfg.Listen).Debug("Metrics endpoint enabled")
	return nil
}

// Start starts the monitor mainloop.
func (m *Monitor) Start() {
	m.runMux.Lock()
	defer m.runMux.Unlock()

	if m.running {
		log.WithFields(logger.Fields{
			"at":     "(Monitor) Start",
			"reason": "monitor is already running",
		}).Error("Error starting monitor")
		return
	}
	log.Debug("Starting monitor")
	m.running = true
	if m.srv != nil {
		go m.serveMetrics()
	}
	go m.mainloop()
}

// Stop begins stopping the monitor. It returns immediately; use Wait to
// block until the mainloop has exited.
func (m *Monitor) Stop() {
	log.Debug("Stopping monitor")
	m.runMux.Lock()
	defer m.runMux.Unlock()

	if !m.running {
		log.Debug("Monitor already stopped")
		return
	}

	m.running = false
	close(m.quit)

	// Buffered channel: the signal is kept even when nobody is in Wait yet.
	select {
	case m.closeChnl <- true:
		log.Debug("Monitor stop signal sent")
	default:
		log.Debug("Monitor stop signal already sent")
	}
}

// Wait blocks until the monitor has stopped.
func (m *Monitor) Wait() {
	log.Debug("Waiting for monitor to stop")
	<-m.closeChnl
	log.Debug("Monitor has stopped")
}

// Close releases the monitor's resources, shutting down the metrics
// endpoint if one is running. The monitor cannot be started again.
func (m *Monitor) Close() error {
	if m.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.srv.Shutdown(ctx); err != nil {
		return oops.Wrapf(err, "shutting down metrics endpoint")
	}
	return nil
}

// Reload applies the parts of the configuration that can change at
// runtime. The warn threshold takes effect immediately; sampler interval,
// NTP settings and the metrics listen address need a restart.
func (m *Monitor) Reload(cfg *config.MonitorConfig) {
	if cfg == nil {
		return
	}
	m.tracker.SetThreshold(cfg.WarnThreshold)
	log.WithField("warn_threshold", cfg.WarnThreshold).Debug("Monitor configuration reloaded")
}

// run monitor mainloop
func (m *Monitor) mainloop() {
	log.Debug("Entering monitor mainloop")

	// First sample and corroboration happen immediately so the endpoint
	// has fresh data before the first full interval elapses.
	m.sample()
	m.probeNTP()

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.quit:
			log.Debug("Exiting monitor mainloop")
			return
		case <-ticker.C:
			m.sample()
			m.maybeProbe()
		}
	}
}

// sample takes one drift measurement plus a clock reading and stores them
// for the scrape endpoint.
func (m *Monitor) sample() {
	s, err := m.tracker.Measure()
	if err != nil {
		log.WithError(err).Error("Drift measurement failed")
		m.setUnhealthy()
		return
	}
	reading, err := m.clock.Now()
	if err != nil {
		log.WithError(err).Error("Clock reading failed")
		m.setUnhealthy()
		return
	}

	m.snapMux.Lock()
	m.snap = metrics.Snapshot{
		Reading: reading,
		Drift:   s.Drift,
		Source:  m.clock.Source(),
		Healthy: true,
	}
	m.snapMux.Unlock()
}

// maybeProbe runs the NTP probe when its deadline has expired.
func (m *Monitor) maybeProbe() {
	if m.probe == nil {
		return
	}
	due, err := m.probeDue.IsExpired()
	if err != nil || !due {
		return
	}
	m.probeNTP()
	if err := m.probeDue.Restart(); err != nil {
		log.WithError(err).Error("Failed to reschedule NTP probe")
	}
}

// probeNTP asks the configured server for the wall clock offset and logs
// it next to the locally observed drift. The two agreeing points at a wall
// clock adjustment; the tracker alone cannot tell which clock moved.
func (m *Monitor) probeNTP() {
	if m.probe == nil {
		return
	}
	offset, err := m.probe.Offset()
	if err != nil {
		log.WithError(err).Warn("NTP probe failed")
		return
	}
	s, err := m.tracker.Measure()
	if err != nil {
		log.WithError(err).Error("Drift measurement failed")
		return
	}
	log.WithFields(logger.Fields{
		"server":     m.probe.Server(),
		"ntp_offset": offset,
		"drift":      s.Drift,
	}).Debug("NTP corroboration")
}

func (m *Monitor) setUnhealthy() {
	m.snapMux.Lock()
	m.snap.Healthy = false
	m.snapMux.Unlock()
}

// snapshot is the fetch function handed to the metrics collector.
func (m *Monitor) snapshot() metrics.Snapshot {
	m.snapMux.RLock()
	defer m.snapMux.RUnlock()
	return m.snap
}

func (m *Monitor) serveMetrics() {
	log.WithField("listen", m.srv.Addr).Debug("Serving metrics endpoint")
	if err := m.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("Metrics endpoint failed")
	}
}
