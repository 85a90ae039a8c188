// Package bucketidx provides a per-task local bucket-hash index for routing
// streaming ingestion records to on-disk file groups.
//
// Bucketidx decides, for each arriving record, whether the record is the
// first write into its hash bucket (insert) or a continuation of an existing
// bucket (update), so the write path downstream can choose create-vs-append
// semantics. The index is local: bucket ownership is statically partitioned
// across tasks by a deterministic modulo rule, so no task ever needs another
// task's bucket state and no centralized index service is required.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/arloliu/bucketidx"
//
//	cfg := bucketidx.Config{
//	    NumBuckets:     256,
//	    IndexKeyFields: []string{"uuid"},
//	    TaskID:         0,
//	    TotalTasks:     4,
//	}
//
//	view := timeline.NewFS("/data/table")
//	buf := buffer.NewMemory()
//	router, err := bucketidx.NewRouter(&cfg, view, buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for rec := range records {
//	    if err := router.RouteRecord(ctx, rec); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	router.CheckpointComplete(ctx) // at each checkpoint barrier
//
// # Key Features
//
//   - Static Bucket Ownership: bucket b belongs to task b % totalTasks, with
//     no cross-task coordination
//   - Lazy Partition Bootstrap: the committed file-group view is loaded once
//     per partition, on the first record for that partition
//   - Checkpoint-Scoped Insert Tracking: records landing in a file group
//     created within the current checkpoint interval stay tagged insert until
//     the interval completes
//   - Stable File Group IDs: minted ids encode their bucket number, so a
//     restart rebuilds the same bucket-to-file-group mapping from storage
//
// # Architecture
//
// Records flow through the router in a fixed sequence:
//
//	record → bucket hash → partition bootstrap → tracker/index decision → buffer
//
// The surrounding operator framework owns checkpoint coordination, record
// flushing and shuffle; bucketidx consumes only a TableView (durable metadata
// reads) and a RecordBuffer (downstream hand-off).
//
// # Advanced Usage
//
// Custom observability with options:
//
//	collector := metrics.NewPrometheus(nil, "myapp")
//	hooks := &bucketidx.Hooks{
//	    OnPartitionBootstrapped: func(ctx context.Context, partition string, loaded int) error {
//	        // React to partition bootstrap
//	        return nil
//	    },
//	}
//
//	router, err := bucketidx.NewRouter(&cfg, view, buf,
//	    bucketidx.WithMetrics(collector),
//	    bucketidx.WithHooks(hooks),
//	)
//
// See the examples/ directory for complete working examples.
package bucketidx
