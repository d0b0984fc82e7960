// Package metrics exposes the monitor's clock state to Prometheus.
//
// The collector reads a snapshot at scrape time instead of keeping its own
// gauges, so scrapes always see the monitor's latest sample and there is no
// metric state to keep in sync.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Snapshot is everything a scrape reports about the resolved clock.
type Snapshot struct {
	// Reading is the current monotonic reading in fractional seconds.
	Reading float64
	// Drift is the wall-vs-monotonic divergence of the latest sample.
	Drift time.Duration
	// Source names the bound native primitive.
	Source string
	// Healthy is false once a clock read or drift measurement has failed.
	Healthy bool
}

// FetchFunc returns the snapshot a scrape should report.
type FetchFunc func() Snapshot

type clockCollector struct {
	fetch FetchFunc

	readingSeconds *prometheus.Desc
	driftSeconds   *prometheus.Desc
	sourceInfo     *prometheus.Desc
	healthy        *prometheus.Desc
}

func (c *clockCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.readingSeconds
	ch <- c.driftSeconds
	ch <- c.sourceInfo
	ch <- c.healthy
}

func (c *clockCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.fetch()
	ch <- prometheus.MustNewConstMetric(c.readingSeconds, prometheus.GaugeValue, s.Reading)
	ch <- prometheus.MustNewConstMetric(c.driftSeconds, prometheus.GaugeValue, s.Drift.Seconds())
	ch <- prometheus.MustNewConstMetric(c.sourceInfo, prometheus.GaugeValue, 1, s.Source)
	var healthy float64
	if s.Healthy {
		healthy = 1
	}
	ch <- prometheus.MustNewConstMetric(c.healthy, prometheus.GaugeValue, healthy)
}

// Register registers the clock metrics collector with reg.
func Register(reg prometheus.Registerer, fetch FetchFunc) error {
	collector := &clockCollector{
		fetch: fetch,
		readingSeconds: prometheus.NewDesc(
			"monotime_reading_seconds",
			"Current monotonic clock reading in seconds since its arbitrary origin",
			nil, nil,
		),
		driftSeconds: prometheus.NewDesc(
			"monotime_drift_seconds",
			"Positive means the wall clock ran ahead of the monotonic clock",
			nil, nil,
		),
		sourceInfo: prometheus.NewDesc(
			"monotime_source_info",
			"Constant 1, labeled with the bound native time source",
			[]string{"source"}, nil,
		),
		healthy: prometheus.NewDesc(
			"monotime_healthy",
			"1 if clock reads are succeeding, otherwise 0",
			nil, nil,
		),
	}
	return reg.Register(collector)
}
