package bucketidx

import "github.com/arloliu/bucketidx/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `bucketidx` package, while
// still providing a convenient `bucketidx.Record`, `bucketidx.Logger`, etc. for users.
type (
	Record       = types.Record
	Key          = types.Key
	Location     = types.Location
	LocationTag  = types.LocationTag
	RoutedRecord = types.RoutedRecord
	FileGroupID  = types.FileGroupID
	CommitMarker = types.CommitMarker
)

// Re-export interfaces from the internal types package for convenience.
type (
	TableView        = types.TableView
	RecordBuffer     = types.RecordBuffer
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export LocationTag constants from the internal types package.
const (
	TagInsert = types.TagInsert
	TagUpdate = types.TagUpdate
)

// Re-export domain sentinel errors from the internal types package.
var (
	ErrCorruptTableLayout   = types.ErrCorruptTableLayout
	ErrMalformedFileGroupID = types.ErrMalformedFileGroupID
	ErrBucketNotOwned       = types.ErrBucketNotOwned
)
