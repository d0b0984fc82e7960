package config

// MetricsConfig controls the Prometheus scrape endpoint of the monitor
// daemon.
type MetricsConfig struct {
	// Listen is the host:port the /metrics handler binds. An empty string
	// disables the endpoint entirely.
	// Default: 127.0.0.1:9209
	Listen string
}

var DefaultMetricsConfig = MetricsConfig{
	Listen: "127.0.0.1:9209",
}
