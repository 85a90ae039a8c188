package index

// Tracker records the buckets whose file group was created during the current
// checkpoint interval.
//
// A bucket in the tracker keeps routing as insert even though its mapping now
// exists in the index: the file group is not committed yet, so the decision
// must not flip to update mid-interval. The tracker is cleared exactly once
// per checkpoint completion and is never persisted or restored across
// restarts.
type Tracker struct {
	keys map[Key]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{keys: make(map[Key]struct{})}
}

// Contains reports whether a bucket became new in the current interval.
func (t *Tracker) Contains(k Key) bool {
	_, ok := t.keys[k]
	return ok
}

// Add marks a bucket as new in the current interval.
func (t *Tracker) Add(k Key) {
	t.keys[k] = struct{}{}
}

// Clear drops all entries at a checkpoint boundary.
//
// Returns:
//   - int: Number of entries dropped
func (t *Tracker) Clear() int {
	n := len(t.keys)
	clear(t.keys)

	return n
}

// Len returns the number of tracked buckets.
func (t *Tracker) Len() int {
	return len(t.keys)
}
