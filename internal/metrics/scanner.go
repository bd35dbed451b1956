// Package metrics exposes Prometheus instrumentation for the scanner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/zecscope/zecscope-backend/internal/model"
)

var (
	scansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zecscope",
		Subsystem: "scanner",
		Name:      "scans_total",
		Help:      "Count of scan calls.",
	}, []string{"network", "status"})

	scanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zecscope",
		Subsystem: "scanner",
		Name:      "scan_duration_seconds",
		Help:      "Duration of whole scan calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	scanBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zecscope",
		Subsystem: "scanner",
		Name:      "scan_blocks",
		Help:      "Number of compact blocks per scan call.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	blockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "zecscope",
		Subsystem: "scanner",
		Name:      "block_duration_seconds",
		Help:      "Duration of scanning a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	notesFoundTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "zecscope",
		Subsystem: "scanner",
		Name:      "notes_found_total",
		Help:      "Count of qualifying notes and spends discovered.",
	}, []string{"network", "pool", "direction"})
)

// Scanner records scan observations for one network.
type Scanner struct {
	network model.Network
}

// NewScanner returns scan metrics labeled with the given network.
func NewScanner(network model.Network) *Scanner {
	if network == "" {
		network = "unknown"
	}
	return &Scanner{network: network}
}

func (m Scanner) ObserveScan(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	scansTotal.WithLabelValues(string(m.network), status).Inc()
	scanDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	scanBlocks.WithLabelValues(string(m.network)).Observe(float64(blocks))
}

func (m Scanner) ObserveBlock(err error, height uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	blockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

func (m Scanner) ObserveNotes(pool model.Pool, direction model.Direction, count int) {
	notesFoundTotal.WithLabelValues(string(m.network), string(pool), string(direction)).
		Add(float64(count))
}
