package config

import (
	"time"
)

// monitor.config options
type MonitorConfig struct {
	// Interval is how long the sampler waits between drift measurements.
	// Default: 10 seconds
	Interval time.Duration
	// WarnThreshold is the absolute wall-vs-monotonic divergence that
	// triggers warning logs. Default: 250 milliseconds
	WarnThreshold time.Duration
	// optional NTP corroboration of observed drift
	NTP *NTPConfig
	// Prometheus scrape endpoint
	Metrics *MetricsConfig
}

// defaults for the monitor daemon
var defaultMonitorConfig = &MonitorConfig{
	Interval:      10 * time.Second,
	WarnThreshold: 250 * time.Millisecond,
	NTP:           &DefaultNTPConfig,
	Metrics:       &DefaultMetricsConfig,
}

func DefaultMonitorConfig() *MonitorConfig {
	return defaultMonitorConfig
}
