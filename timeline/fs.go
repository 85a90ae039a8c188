package timeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/bucketidx/types"
)

const (
	// TimelineDir is the directory under the table root holding commit markers.
	TimelineDir = ".timeline"

	// CommitSuffix is the file name suffix of a completed commit marker.
	CommitSuffix = ".commit"
)

// FS implements a table view over a filesystem table layout:
//
//	<root>/.timeline/<commitID>.commit   completed commit markers
//	<root>/<partition>/<fileGroupID>_<commitID>   data files
//
// Commit ids are lexicographically ordered by commit time, so the latest
// completed commit is the greatest marker name. A partition's file groups at
// a commit are the distinct file group ids among data files whose commit
// suffix is not newer than that commit.
//
// FS is safe for concurrent use: one view is typically shared by all router
// tasks running in a process. Listings are immutable per (commit, partition)
// because committed files are never rewritten, so they are cached.
type FS struct {
	root  string
	cache *xsync.Map[string, []types.FileGroupID]
}

var _ types.TableView = (*FS)(nil)

// NewFS creates a table view over a filesystem table root.
//
// Parameters:
//   - root: Table root directory containing the timeline and partition dirs
//
// Returns:
//   - *FS: Initialized view
//
// Example:
//
//	view := timeline.NewFS("/data/events_table")
//	router, err := bucketidx.NewRouter(&cfg, view, buf)
func NewFS(root string) *FS {
	return &FS{
		root:  root,
		cache: xsync.NewMap[string, []types.FileGroupID](),
	}
}

// LatestCompletedCommit scans the timeline directory for the greatest commit
// marker.
//
// A missing timeline directory means the table has never been created and is
// reported as ok=false, not as an error.
func (v *FS) LatestCompletedCommit(_ context.Context) (types.CommitMarker, bool, error) {
	entries, err := os.ReadDir(filepath.Join(v.root, TimelineDir))
	if err != nil {
		if os.IsNotExist(err) {
			return types.CommitMarker{}, false, nil
		}

		return types.CommitMarker{}, false, fmt.Errorf("failed to read timeline directory: %w", err)
	}

	latest := ""
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, CommitSuffix) {
			continue
		}
		id := strings.TrimSuffix(name, CommitSuffix)
		if id > latest {
			latest = id
		}
	}

	if latest == "" {
		return types.CommitMarker{}, false, nil
	}

	return types.CommitMarker{ID: latest}, true, nil
}

// ListFileGroups lists the distinct file groups of a partition visible at the
// given commit.
//
// Data files written after the commit are excluded; a partition directory
// that does not exist yields an empty list.
func (v *FS) ListFileGroups(_ context.Context, commit types.CommitMarker, partition string) ([]types.FileGroupID, error) {
	cacheKey := commit.ID + "|" + partition
	if cached, ok := v.cache.Load(cacheKey); ok {
		return slices.Clone(cached), nil
	}

	entries, err := os.ReadDir(filepath.Join(v.root, partition))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read partition directory %q: %w", partition, err)
	}

	seen := make(map[types.FileGroupID]struct{})
	var groups []types.FileGroupID
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		sep := strings.LastIndexByte(name, '_')
		if sep < 0 {
			continue
		}
		fg, commitID := types.FileGroupID(name[:sep]), name[sep+1:]
		if commitID > commit.ID {
			// Written after the view's commit; not visible yet.
			continue
		}
		if _, dup := seen[fg]; dup {
			continue
		}
		seen[fg] = struct{}{}
		groups = append(groups, fg)
	}

	slices.Sort(groups)
	v.cache.Store(cacheKey, groups)

	return slices.Clone(groups), nil
}
