// Package timeline provides TableView implementations.
//
// A TableView reads the durable table's committed metadata: the latest
// completed commit on the timeline and the file groups of a partition visible
// at that commit. The router consumes a TableView once per partition to
// bootstrap its local bucket index.
//
// Two implementations are provided:
//   - Static: fixed in-memory metadata, for tests and embedded scenarios
//   - FS: a filesystem-backed table layout with a commit timeline directory
package timeline
