package types

import "context"

// CommitMarker identifies a completed commit on the table's timeline.
type CommitMarker struct {
	// ID is the commit identifier. IDs are lexicographically ordered by
	// commit time, so the latest completed commit has the greatest ID.
	ID string `json:"id"`
}

// TableView provides read access to the durable table's committed metadata.
//
// Implementations own their own retry and timeout policy; the router performs
// no retries of its own since masking a failed bootstrap read risks an
// inconsistent index.
type TableView interface {
	// LatestCompletedCommit returns the most recent completed commit on the
	// table timeline.
	//
	// A missing or not-yet-created timeline is not an error: implementations
	// return ok=false to signal an empty table. An I/O failure while reading
	// an existing timeline is returned as an error.
	//
	// Returns:
	//   - CommitMarker: The latest completed commit (zero value if none)
	//   - bool: false if the table has no completed commits
	//   - error: I/O failure reading the timeline
	LatestCompletedCommit(ctx context.Context) (CommitMarker, bool, error)

	// ListFileGroups returns the live file groups of a partition as visible
	// at the given commit.
	//
	// An unknown partition is not an error; implementations return an empty
	// list for partitions that have never been written.
	//
	// Returns:
	//   - []FileGroupID: File groups visible at the commit (may be empty)
	//   - error: I/O failure while listing
	ListFileGroups(ctx context.Context, commit CommitMarker, partition string) ([]FileGroupID, error)
}

// RecordBuffer receives routed records for downstream buffering and flushing.
//
// The buffer is the hand-off point between the routing core and the
// surrounding operator's write path. Implementations decide batching and
// flush timing; the router only forwards.
type RecordBuffer interface {
	// BufferRecord accepts a routed record for buffering.
	//
	// Returns:
	//   - error: Non-nil if the record cannot be accepted (propagated to the caller of RouteRecord)
	BufferRecord(ctx context.Context, rec RoutedRecord) error
}
