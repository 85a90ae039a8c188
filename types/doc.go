// Package types provides core type definitions and interfaces for the Bucketidx library.
//
// This package contains shared types that are used across multiple packages in the
// Bucketidx library. By keeping these types in a separate package, we avoid import
// cycles between the main bucketidx package and its internal implementations.
//
// Key types:
//   - Record, Key: An incoming record and its identifying key
//   - Location, RoutedRecord: The routing decision attached to a record
//   - FileGroupID: Identifier of the physical file group holding a bucket
//   - TableView: Read access to durable table metadata
//   - RecordBuffer: Downstream hand-off for routed records
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
