package timeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/bucketidx/types"
)

// writeTable lays out a minimal filesystem table for tests.
func writeTable(t *testing.T, commits []string, files map[string][]string) string {
	t.Helper()

	root := t.TempDir()
	if len(commits) > 0 {
		tl := filepath.Join(root, TimelineDir)
		require.NoError(t, os.MkdirAll(tl, 0o755))
		for _, c := range commits {
			require.NoError(t, os.WriteFile(filepath.Join(tl, c+CommitSuffix), nil, 0o644))
		}
	}
	for partition, names := range files {
		dir := filepath.Join(root, partition)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		for _, name := range names {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
		}
	}

	return root
}

func TestFSNoTimeline(t *testing.T) {
	view := NewFS(t.TempDir())

	_, ok, err := view.LatestCompletedCommit(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFSEmptyTimelineDir(t *testing.T) {
	root := writeTable(t, nil, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(root, TimelineDir), 0o755))

	view := NewFS(root)
	_, ok, err := view.LatestCompletedCommit(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFSLatestCompletedCommit(t *testing.T) {
	root := writeTable(t, []string{"20260830120000", "20260831103000", "20260831090000"}, nil)

	view := NewFS(root)
	commit, ok, err := view.LatestCompletedCommit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "20260831103000", commit.ID)
}

func TestFSListFileGroups(t *testing.T) {
	root := writeTable(t,
		[]string{"c1", "c2"},
		map[string][]string{
			"dt=2026-08-31": {
				"00000001-aaa_c1",
				"00000001-aaa_c2", // same group rewritten at c2: still one group
				"00000003-bbb_c2",
				"00000005-ccc_c3", // newer than the view's commit: invisible
				"junkfile",        // no commit suffix: ignored
			},
		},
	)

	view := NewFS(root)
	ctx := context.Background()

	groups, err := view.ListFileGroups(ctx, types.CommitMarker{ID: "c2"}, "dt=2026-08-31")
	require.NoError(t, err)
	require.Equal(t, []types.FileGroupID{"00000001-aaa", "00000003-bbb"}, groups)

	// At c1, only the first group exists.
	groups, err = view.ListFileGroups(ctx, types.CommitMarker{ID: "c1"}, "dt=2026-08-31")
	require.NoError(t, err)
	require.Equal(t, []types.FileGroupID{"00000001-aaa"}, groups)
}

func TestFSMissingPartition(t *testing.T) {
	root := writeTable(t, []string{"c1"}, nil)

	view := NewFS(root)
	groups, err := view.ListFileGroups(context.Background(), types.CommitMarker{ID: "c1"}, "dt=2026-09-01")
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestFSListingCache(t *testing.T) {
	root := writeTable(t,
		[]string{"c1"},
		map[string][]string{"p": {"00000000-aaa_c1"}},
	)

	view := NewFS(root)
	ctx := context.Background()

	first, err := view.ListFileGroups(ctx, types.CommitMarker{ID: "c1"}, "p")
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Remove the partition dir; the cached listing for (c1, p) still serves.
	require.NoError(t, os.RemoveAll(filepath.Join(root, "p")))

	second, err := view.ListFileGroups(ctx, types.CommitMarker{ID: "c1"}, "p")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
