package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brackets_scans_total",
		Help: "Total number of completed scans of the target file.",
	})

	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brackets_scan_seconds",
		Help:    "Time spent reading and scanning the target file.",
		Buckets: prometheus.DefBuckets,
	})

	LinesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brackets_lines_scanned_total",
		Help: "Total number of input lines scanned across all scans.",
	})

	FinalCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "brackets_final_count",
		Help: "Final open-minus-close balance of the most recent scan, per bracket kind.",
	}, []string{"kind"})

	Balanced = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brackets_balanced",
		Help: "Whether the most recent scan found the file balanced (1) or not (0).",
	})

	ScanErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brackets_scan_errors_total",
		Help: "Total number of scans that failed to read the target file.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brackets_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})
)
