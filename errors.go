package bucketidx

import "errors"

// Sentinel errors returned by the Router.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTableViewRequired is returned when the table view is nil.
	ErrTableViewRequired = errors.New("table view is required")

	// ErrBufferRequired is returned when the record buffer is nil.
	ErrBufferRequired = errors.New("record buffer is required")
)
