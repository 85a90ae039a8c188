package types

// LocationTag classifies the write semantics of a routed record.
//
// Downstream writers use the tag to choose between creating a new base file
// (insert) and appending/merging into an existing file group (update). All
// records landing in a file group created within the current checkpoint
// interval keep TagInsert until the interval completes.
type LocationTag int

const (
	// TagInsert marks the first writes into a bucket's file group.
	TagInsert LocationTag = iota

	// TagUpdate marks writes into a bucket whose file group already exists
	// in the committed table view.
	TagUpdate
)

// String returns the string representation of the tag.
func (t LocationTag) String() string {
	switch t {
	case TagInsert:
		return "insert"
	case TagUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// FileGroupID identifies the physical file group holding one bucket's records.
//
// The id is stable across all batches targeting the same bucket and encodes
// the bucket number in its 8-digit zero-padded prefix, e.g. "00000042-<uuid>".
type FileGroupID string

// Key identifies a record within a table.
type Key struct {
	// Partition is the partition path the record belongs to.
	Partition string `json:"partition"`

	// Fields holds the record's identifying key fields by name. The subset
	// configured as index key fields is hashed to compute the bucket.
	Fields map[string]string `json:"fields"`
}

// Record is a single incoming record to be routed.
type Record struct {
	// Key uniquely identifies the record within the table.
	Key Key `json:"key"`

	// Payload is the opaque record body. The router never inspects it.
	Payload []byte `json:"payload,omitempty"`
}

// Location is the routing decision for a record: the write semantics tag and
// the target file group.
type Location struct {
	Tag       LocationTag `json:"tag"`
	FileGroup FileGroupID `json:"fileGroup"`
}

// RoutedRecord combines an original record with its computed location.
//
// It is constructed as an immutable value; the original record is never
// mutated in place.
type RoutedRecord struct {
	Record   Record   `json:"record"`
	Location Location `json:"location"`
}
