// SPDX-License-Identifier: MIT
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pushTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chain_push_total",
		Help: "Total number of values appended to chains",
	})

	chainLength = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chain_length",
		Help: "Number of nodes in the most recently built chain",
	})

	snapshotWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chain_snapshot_writes_total",
		Help: "Snapshot file writes by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	snapshotReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chain_snapshot_reads_total",
		Help: "Snapshot file reads by outcome",
	}, []string{"outcome"}) // outcome=success|failure
)

// RecordPushes adds n appended values.
func RecordPushes(n int) {
	if n > 0 {
		pushTotal.Add(float64(n))
	}
}

// SetChainLength records the length of the chain that was just built.
func SetChainLength(n int) {
	chainLength.Set(float64(n))
}

// RecordSnapshotWrite records a snapshot write attempt.
func RecordSnapshotWrite(err error) {
	snapshotWrites.WithLabelValues(outcome(err)).Inc()
}

// RecordSnapshotRead records a snapshot read attempt.
func RecordSnapshotRead(err error) {
	snapshotReads.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// WriteTextfile writes every metric of the default registry to path in the
// Prometheus text format, for pickup by the node_exporter textfile collector.
// The file is replaced atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
