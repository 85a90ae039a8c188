// Package testing provides test utilities for the Bucketidx library.
//
// This package offers helpers for setting up test environments, particularly
// an embedded NATS server for testing checkpoint notification delivery. It
// follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: In-process NATS server with automatic cleanup
//   - NewTestLogger: types.Logger writing to testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    bucketidxtest "github.com/arloliu/bucketidx/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := bucketidxtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
