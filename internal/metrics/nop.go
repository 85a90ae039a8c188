// Package metrics provides MetricsCollector implementations for the Bucketidx library.
package metrics

import "github.com/arloliu/bucketidx/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RouterMetrics implementation

// RecordRouted discards the routed record metric.
func (n *NopMetrics) RecordRouted(_ /* tag */ string) {
	// No-op
}

// RecordIndexSize discards the index size metric.
func (n *NopMetrics) RecordIndexSize(_ /* size */ int) {
	// No-op
}

// BootstrapMetrics implementation

// RecordBootstrapDuration discards the bootstrap duration metric.
func (n *NopMetrics) RecordBootstrapDuration(_ /* duration */ float64) {
	// No-op
}

// RecordBootstrapLoaded discards the bootstrap loaded-count metric.
func (n *NopMetrics) RecordBootstrapLoaded(_ /* count */ int) {
	// No-op
}

// RecordPartitionsBootstrapped discards the bootstrapped-partitions metric.
func (n *NopMetrics) RecordPartitionsBootstrapped(_ /* count */ int) {
	// No-op
}

// CheckpointMetrics implementation

// RecordCheckpointCleared discards the checkpoint cleared-count metric.
func (n *NopMetrics) RecordCheckpointCleared(_ /* count */ int) {
	// No-op
}
