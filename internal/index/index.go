// Package index holds the task-local routing state: the bucket-to-file-group
// index and the checkpoint-scoped insert tracker.
//
// Both structures are owned exclusively by one task's processing thread and
// are deliberately unsynchronized. Static bucket ownership guarantees no
// cross-task contention, and within a task records are processed strictly
// sequentially.
package index

import "github.com/arloliu/bucketidx/types"

// Key identifies one bucket within one partition.
//
// Using a composite key in a single flat map avoids the double lookup of a
// nested partition-to-bucket structure.
type Key struct {
	Partition string
	Bucket    int
}

// Index maps (partition, bucket) to the file group assigned to that bucket.
//
// Entries are added lazily per partition on bootstrap or when a new bucket is
// minted, and never removed: the index grows monotonically until task
// teardown. For a given key at most one file group id is ever assigned during
// the task's lifetime.
type Index struct {
	entries      map[Key]types.FileGroupID
	bootstrapped map[string]struct{}
}

// New creates an empty index.
func New() *Index {
	return &Index{
		entries:      make(map[Key]types.FileGroupID),
		bootstrapped: make(map[string]struct{}),
	}
}

// Get returns the file group mapped to a bucket, if any.
func (ix *Index) Get(partition string, bucket int) (types.FileGroupID, bool) {
	fg, ok := ix.entries[Key{Partition: partition, Bucket: bucket}]
	return fg, ok
}

// Put maps a bucket to a file group, overwriting any existing entry.
func (ix *Index) Put(partition string, bucket int, fg types.FileGroupID) {
	ix.entries[Key{Partition: partition, Bucket: bucket}] = fg
}

// Bootstrapped reports whether a partition's mapping has been loaded.
func (ix *Index) Bootstrapped(partition string) bool {
	_, ok := ix.bootstrapped[partition]
	return ok
}

// MarkBootstrapped records that a partition's mapping has been loaded.
//
// Only successful loads are marked, so a failed bootstrap is retried on the
// next record for the partition.
func (ix *Index) MarkBootstrapped(partition string) {
	ix.bootstrapped[partition] = struct{}{}
}

// Len returns the number of bucket mappings held in the index.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Partitions returns the number of bootstrapped partitions.
func (ix *Index) Partitions() int {
	return len(ix.bootstrapped)
}
