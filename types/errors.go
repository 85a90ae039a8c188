package types

import "errors"

// Sentinel errors for the Bucketidx library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Bootstrap errors - fatal conditions detected while reconciling the local
// index with durable table metadata. They signal corrupted table state and
// must abort task startup rather than be resolved silently.
var (
	// ErrCorruptTableLayout is returned when two file groups in one partition
	// decode to the same owned bucket number during bootstrap.
	ErrCorruptTableLayout = errors.New("corrupt table layout")

	// ErrMalformedFileGroupID is returned when a file group id does not carry
	// a decodable bucket number prefix.
	ErrMalformedFileGroupID = errors.New("malformed file group id")
)

// Routing errors.
var (
	// ErrBucketNotOwned is returned when a record hashes to a bucket that is
	// not statically owned by this task. It indicates a mis-routed shuffle or
	// a task/bucket configuration mismatch.
	ErrBucketNotOwned = errors.New("bucket not owned by this task")
)
