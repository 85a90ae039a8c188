package timeline

import (
	"context"
	"sync"

	"github.com/arloliu/bucketidx/types"
)

// Static implements a table view with fixed in-memory metadata.
type Static struct {
	mu        sync.RWMutex
	commit    types.CommitMarker
	hasCommit bool
	groups    map[string][]types.FileGroupID
}

var _ types.TableView = (*Static)(nil)

// NewStatic creates a new static table view describing an empty table.
//
// The view reports no completed commits until SetCommit is called. Useful for
// testing and for fresh tables that have never been written.
//
// Returns:
//   - *Static: Initialized static view
//
// Example:
//
//	view := timeline.NewStatic()
//	view.SetCommit("20260831103000")
//	view.SetFileGroups("dt=2026-08-31", []types.FileGroupID{"00000003-abc"})
//	router, err := bucketidx.NewRouter(&cfg, view, buf)
func NewStatic() *Static {
	return &Static{
		groups: make(map[string][]types.FileGroupID),
	}
}

// SetCommit marks the table as having a completed commit with the given id.
//
// Parameters:
//   - id: Commit identifier (lexicographically ordered by commit time)
func (s *Static) SetCommit(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commit = types.CommitMarker{ID: id}
	s.hasCommit = true
}

// SetFileGroups replaces the file groups visible for a partition.
//
// Parameters:
//   - partition: Partition path
//   - groups: File groups visible at the latest commit
func (s *Static) SetFileGroups(partition string, groups []types.FileGroupID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups[partition] = append([]types.FileGroupID(nil), groups...)
}

// LatestCompletedCommit returns the configured commit, if any.
func (s *Static) LatestCompletedCommit(_ context.Context) (types.CommitMarker, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.commit, s.hasCommit, nil
}

// ListFileGroups returns a copy of the configured file groups for a partition.
//
// Unknown partitions yield an empty list, never an error.
func (s *Static) ListFileGroups(_ context.Context, _ types.CommitMarker, partition string) ([]types.FileGroupID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.FileGroupID, len(s.groups[partition]))
	copy(result, s.groups[partition])

	return result, nil
}
