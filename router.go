package bucketidx

import (
	"context"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/arloliu/bucketidx/internal/bucket"
	"github.com/arloliu/bucketidx/internal/hooks"
	"github.com/arloliu/bucketidx/internal/index"
	"github.com/arloliu/bucketidx/internal/logging"
	"github.com/arloliu/bucketidx/internal/metrics"
	"github.com/arloliu/bucketidx/types"
)

// Router routes streaming records to their bucket's file group and tags each
// record insert or update for the downstream write path.
//
// Router is the main entry point of the Bucketidx library. It holds the
// task-local bucket index {(partition, bucket) → fileGroupId} and reconciles
// it with the durable table's committed file-group view, lazily per
// partition. The index is local because bucket ownership is statically
// partitioned: task T owns bucket b iff b % TotalTasks == T, so no task ever
// routes another task's buckets.
//
// Thread Safety:
//   - Router is NOT safe for concurrent use. It is owned by exactly one
//     task's processing thread; records are routed strictly sequentially.
//   - CheckpointComplete must be invoked as a barrier-aligned callback by the
//     surrounding framework, never concurrently with RouteRecord. The notify
//     package provides a channel-based bridge that preserves this.
//
// Lifecycle:
//   - Create with NewRouter() at task startup
//   - Call RouteRecord() once per incoming record
//   - Call CheckpointComplete() at each checkpoint boundary
//   - Drop the Router at task teardown; a restart rebuilds the index from the
//     committed table view
type Router struct {
	cfg    Config
	view   TableView
	buffer RecordBuffer

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	// owned is the set of buckets this task loads and mints, fixed at startup.
	owned *roaring.Bitmap

	// Task-local mutable state, touched only by the task's processing thread.
	index   *index.Index
	tracker *index.Tracker
}

// NewRouter creates a new Router instance with the provided configuration.
//
// Returns a concrete *Router struct following the "accept interfaces, return
// structs" principle. Consumers can define their own interfaces for testing
// if needed.
//
// Parameters:
//   - cfg: Runtime configuration (defaults applied, then validated)
//   - view: Read access to the durable table's committed metadata
//   - buffer: Downstream hand-off for routed records
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Router: Initialized router instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := bucketidx.Config{NumBuckets: 256, IndexKeyFields: []string{"uuid"}, TaskID: 0, TotalTasks: 4}
//	view := timeline.NewFS("/data/table")
//	router, err := bucketidx.NewRouter(&cfg, view, buffer.NewMemory())
func NewRouter(cfg *Config, view TableView, buffer RecordBuffer, opts ...Option) (*Router, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if view == nil {
		return nil, ErrTableViewRequired
	}
	if buffer == nil {
		return nil, ErrBufferRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &routerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Fill unset hook callbacks with no-ops so call sites need no nil checks.
	routerHooks := hooks.NewNop()
	if options.hooks != nil {
		if options.hooks.OnPartitionBootstrapped != nil {
			routerHooks.OnPartitionBootstrapped = options.hooks.OnPartitionBootstrapped
		}
		if options.hooks.OnCheckpointComplete != nil {
			routerHooks.OnCheckpointComplete = options.hooks.OnCheckpointComplete
		}
		if options.hooks.OnError != nil {
			routerHooks.OnError = options.hooks.OnError
		}
	}

	owned := bucket.Owned(cfg.TaskID, cfg.NumBuckets, cfg.TotalTasks)
	loggerInstance.Info("computed owned buckets",
		"taskId", cfg.TaskID,
		"totalTasks", cfg.TotalTasks,
		"numBuckets", cfg.NumBuckets,
		"owned", owned.GetCardinality(),
	)

	return &Router{
		cfg:     *cfg,
		view:    view,
		buffer:  buffer,
		hooks:   &routerHooks,
		metrics: metricsCollector,
		logger:  loggerInstance,
		owned:   owned,
		index:   index.New(),
		tracker: index.NewTracker(),
	}, nil
}

// RouteRecord routes one incoming record.
//
// The record's bucket is computed from its configured index key fields, the
// record's partition is bootstrapped from the committed table view if this is
// the first record for it, and the insert/update decision is made:
//
//   - The bucket's file group was created in the current checkpoint interval:
//     insert, reusing that file group (all records in an uncommitted file
//     group carry the same tag).
//   - The bucket is already mapped: update.
//   - Brand-new bucket: a fresh bucket-encoded file group id is minted,
//     recorded in the index, and the bucket is tracked for the rest of the
//     interval; insert.
//
// The routed record is forwarded to the buffer as an immutable value
// combining the original record and its location.
//
// Returns:
//   - error: Fatal bootstrap failure, ownership violation, or buffer error
func (r *Router) RouteRecord(ctx context.Context, rec Record) error {
	if err := r.routeRecord(ctx, rec); err != nil {
		r.notifyError(ctx, err)
		return err
	}

	return nil
}

func (r *Router) routeRecord(ctx context.Context, rec Record) error {
	partition := rec.Key.Partition

	if err := r.bootstrapPartition(ctx, partition); err != nil {
		return err
	}

	b := bucket.ForKey(rec.Key, r.cfg.IndexKeyFields, r.cfg.NumBuckets, r.cfg.HashSeed)
	key := index.Key{Partition: partition, Bucket: b}

	var location Location
	switch {
	case r.tracker.Contains(key):
		// The file group was minted earlier in this interval and is not
		// committed yet; keep tagging its records insert.
		fg, _ := r.index.Get(partition, b)
		location = Location{Tag: TagInsert, FileGroup: fg}

	default:
		if fg, ok := r.index.Get(partition, b); ok {
			location = Location{Tag: TagUpdate, FileGroup: fg}
			break
		}

		// Brand-new bucket: only the owning task may create the entry.
		if !r.owned.Contains(uint32(b)) {
			return fmt.Errorf("%w: bucket %d, task %d of %d",
				types.ErrBucketNotOwned, b, r.cfg.TaskID, r.cfg.TotalTasks)
		}

		fg := bucket.NewFileGroupID(b)
		r.index.Put(partition, b, fg)
		r.tracker.Add(key)
		location = Location{Tag: TagInsert, FileGroup: fg}
		r.logger.Debug("minted file group for new bucket",
			"partition", partition, "bucket", b, "fileGroup", fg)
	}

	r.metrics.RecordRouted(location.Tag.String())
	r.metrics.RecordIndexSize(r.index.Len())

	routed := RoutedRecord{Record: rec, Location: location}
	if err := r.buffer.BufferRecord(ctx, routed); err != nil {
		return fmt.Errorf("failed to buffer routed record: %w", err)
	}

	return nil
}

// CheckpointComplete clears the checkpoint-scoped insert tracker.
//
// It must be invoked exactly once per checkpoint completion, after the
// interval's state snapshot is taken and before the next record batch is
// routed. The tracker is never persisted: after a restart it starts empty and
// insert/update tagging is derived from the committed table view alone.
func (r *Router) CheckpointComplete(ctx context.Context) {
	cleared := r.tracker.Clear()
	r.metrics.RecordCheckpointCleared(cleared)
	r.logger.Debug("checkpoint complete, insert tracker cleared", "cleared", cleared)

	if err := r.hooks.OnCheckpointComplete(ctx, cleared); err != nil {
		r.logger.Warn("OnCheckpointComplete hook failed", "error", err)
	}
}

// OwnedBuckets returns a copy of the bucket set this task owns.
func (r *Router) OwnedBuckets() []uint32 {
	return r.owned.ToArray()
}

// IndexSize returns the number of bucket mappings held in the local index.
func (r *Router) IndexSize() int {
	return r.index.Len()
}

// bootstrapPartition loads the partition's bucket-to-file-group mapping from
// the committed table view, at most once per partition per task lifetime.
//
// The mapping is restricted to owned buckets. Loading an existing table is
// required after every restart to avoid minting duplicate file group ids for
// a bucket. Failures are not memoized: the next record for the partition
// retries the load.
func (r *Router) bootstrapPartition(ctx context.Context, partition string) error {
	if r.index.Bootstrapped(partition) {
		return nil
	}

	start := time.Now()

	commit, ok, err := r.view.LatestCompletedCommit(ctx)
	if err != nil {
		return fmt.Errorf("failed to read latest completed commit: %w", err)
	}
	if !ok {
		// Fresh table: nothing committed yet, start with an empty mapping.
		r.index.MarkBootstrapped(partition)
		r.metrics.RecordPartitionsBootstrapped(r.index.Partitions())
		r.logger.Info("no completed commits, starting partition with empty index",
			"partition", partition)
		r.runBootstrapHook(ctx, partition, 0)

		return nil
	}

	groups, err := r.view.ListFileGroups(ctx, commit, partition)
	if err != nil {
		return fmt.Errorf("failed to list file groups for partition %q: %w", partition, err)
	}

	// Build the mapping fully before touching the index so that a failed
	// load leaves no partial state behind.
	loaded := make(map[int]types.FileGroupID)
	for _, fg := range groups {
		b, err := bucket.DecodeFileGroupID(fg)
		if err != nil {
			return fmt.Errorf("partition %q: %w", partition, err)
		}
		if !r.owned.Contains(uint32(b)) {
			continue
		}
		if prev, exists := loaded[b]; exists {
			return fmt.Errorf("%w: file groups %q and %q both decode to bucket %d in partition %q",
				types.ErrCorruptTableLayout, prev, fg, b, partition)
		}
		loaded[b] = fg
	}

	for b, fg := range loaded {
		r.index.Put(partition, b, fg)
	}
	r.index.MarkBootstrapped(partition)

	r.metrics.RecordBootstrapDuration(time.Since(start).Seconds())
	r.metrics.RecordBootstrapLoaded(len(loaded))
	r.metrics.RecordPartitionsBootstrapped(r.index.Partitions())
	r.logger.Info("bootstrapped partition from committed view",
		"partition", partition,
		"commit", commit.ID,
		"fileGroups", len(groups),
		"loaded", len(loaded),
	)
	r.runBootstrapHook(ctx, partition, len(loaded))

	return nil
}

func (r *Router) runBootstrapHook(ctx context.Context, partition string, loaded int) {
	if err := r.hooks.OnPartitionBootstrapped(ctx, partition, loaded); err != nil {
		r.logger.Warn("OnPartitionBootstrapped hook failed",
			"partition", partition, "error", err)
	}
}

// notifyError hands a routing error to the OnError hook. The error is still
// propagated to the caller; the hook only observes it.
func (r *Router) notifyError(ctx context.Context, err error) {
	if hookErr := r.hooks.OnError(ctx, err); hookErr != nil {
		r.logger.Warn("OnError hook failed", "error", hookErr)
	}
}
