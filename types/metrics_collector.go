package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from the task's processing thread on the hot path, so
// they must be cheap.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	RouterMetrics
	BootstrapMetrics
	CheckpointMetrics
}

// RouterMetrics defines metrics for per-record routing decisions.
type RouterMetrics interface {
	// RecordRouted records one routed record by decision tag.
	//
	// Parameters:
	//   - tag: Routing decision ("insert" or "update")
	RecordRouted(tag string)

	// RecordIndexSize sets the current number of bucket mappings held in the
	// local index (gauge metric).
	RecordIndexSize(size int)
}

// BootstrapMetrics defines metrics for partition bootstrap operations.
type BootstrapMetrics interface {
	// RecordBootstrapDuration records the time taken to bootstrap one partition.
	//
	// Parameters:
	//   - duration: Time taken in seconds
	RecordBootstrapDuration(duration float64)

	// RecordBootstrapLoaded records the number of file groups loaded while
	// bootstrapping one partition.
	RecordBootstrapLoaded(count int)

	// RecordPartitionsBootstrapped sets the current number of bootstrapped
	// partitions (gauge metric).
	RecordPartitionsBootstrapped(count int)
}

// CheckpointMetrics defines metrics for checkpoint boundary handling.
type CheckpointMetrics interface {
	// RecordCheckpointCleared records the number of insert-tracker entries
	// dropped at a checkpoint boundary.
	RecordCheckpointCleared(count int)
}
