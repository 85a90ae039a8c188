// Package bucket implements the deterministic bucketing scheme of the table
// format: record-key hashing, static bucket ownership, and the bucket-encoding
// file group id format.
//
// The hashing and modulo rules here are the table's published bucketing
// scheme. Compactors and query readers must compute identical bucket ids, so
// none of these functions may change behavior for existing tables.
package bucket

import (
	"fmt"
	"strconv"

	"github.com/RoaringBitmap/roaring"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/arloliu/bucketidx/types"
)

// prefixLen is the number of digits in the bucket-encoding file group id prefix.
const prefixLen = 8

// ForKey computes the bucket id for a record key.
//
// The configured index key field values are folded into a single xxh3 64-bit
// hash in configured field order, each value seeded with the hash of the
// previous one. This is zero-allocation and stable: no intermediate joined
// string is built. A field missing from the key hashes as the empty string.
//
// Parameters:
//   - key: Record key holding the identifying fields
//   - indexFields: Ordered list of field names to hash
//   - numBuckets: Total bucket count of the table
//   - seed: Table-level hash seed (0 for the default scheme)
//
// Returns:
//   - int: Bucket id in [0, numBuckets)
func ForKey(key types.Key, indexFields []string, numBuckets int, seed uint64) int {
	h := seed
	for _, field := range indexFields {
		h = xxh3.HashStringSeed(key.Fields[field], h)
	}

	return int(h % uint64(numBuckets))
}

// Owner returns the task that statically owns a bucket.
//
// Ownership is a pure modulo rule: task T owns bucket b iff b % totalTasks == T.
func Owner(b, totalTasks int) int {
	return b % totalTasks
}

// Owned builds the set of buckets owned by one task.
//
// Parameters:
//   - taskID: Index of this task in [0, totalTasks)
//   - numBuckets: Total bucket count of the table
//   - totalTasks: Total number of parallel tasks
//
// Returns:
//   - *roaring.Bitmap: Buckets owned by taskID
func Owned(taskID, numBuckets, totalTasks int) *roaring.Bitmap {
	owned := roaring.New()
	for b := 0; b < numBuckets; b++ {
		if Owner(b, totalTasks) == taskID {
			owned.Add(uint32(b))
		}
	}

	return owned
}

// NewFileGroupID mints a fresh file group id for a bucket.
//
// The id embeds the bucket number in a fixed-width decimal prefix followed by
// a random UUID token: "%08d-<uuid>". DecodeFileGroupID inverts the encoding.
func NewFileGroupID(b int) types.FileGroupID {
	return EncodeFileGroupID(b, uuid.NewString())
}

// EncodeFileGroupID builds a file group id from a bucket number and a token.
//
// Exposed separately from NewFileGroupID so tests and tooling can construct
// deterministic ids.
func EncodeFileGroupID(b int, token string) types.FileGroupID {
	return types.FileGroupID(fmt.Sprintf("%0*d-%s", prefixLen, b, token))
}

// DecodeFileGroupID extracts the bucket number from a file group id.
//
// Returns:
//   - int: Decoded bucket number
//   - error: types.ErrMalformedFileGroupID if the id has no decodable prefix
func DecodeFileGroupID(id types.FileGroupID) (int, error) {
	s := string(id)
	if len(s) < prefixLen+1 || s[prefixLen] != '-' {
		return 0, fmt.Errorf("%w: %q", types.ErrMalformedFileGroupID, id)
	}

	b, err := strconv.Atoi(s[:prefixLen])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", types.ErrMalformedFileGroupID, id)
	}

	return b, nil
}
