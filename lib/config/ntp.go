package config

import "time"

// NTPConfig controls the optional NTP probe that corroborates locally
// observed drift against an external reference. Disabled by default so the
// monitor generates no network traffic unless asked to.
type NTPConfig struct {
	// Enabled turns the probe on.
	// Default: false
	Enabled bool
	// Server is the NTP host to query.
	// Default: 0.pool.ntp.org
	Server string
	// Timeout bounds a single query.
	// Default: 10 seconds
	Timeout time.Duration
	// Interval is the minimum spacing between queries, independent of the
	// sampler interval. Default: 11 minutes
	Interval time.Duration
}

var DefaultNTPConfig = NTPConfig{
	Enabled:  false,
	Server:   "0.pool.ntp.org",
	Timeout:  10 * time.Second,
	Interval: 11 * time.Minute,
}
