// Package buffer provides RecordBuffer implementations.
package buffer

import (
	"context"
	"sync"

	"github.com/arloliu/bucketidx/types"
)

// Memory implements a record buffer that collects routed records in memory.
//
// It is the hand-off point between the router and a write path that drains
// buffered records at flush time. Useful for tests and for embedders that
// implement their own flushing on top.
type Memory struct {
	mu      sync.Mutex
	records []types.RoutedRecord
}

var _ types.RecordBuffer = (*Memory)(nil)

// NewMemory creates a new in-memory record buffer.
//
// Returns:
//   - *Memory: Initialized empty buffer
//
// Example:
//
//	buf := buffer.NewMemory()
//	router, err := bucketidx.NewRouter(&cfg, view, buf)
//	// ... route records ...
//	batch := buf.Drain() // hand to the write path
func NewMemory() *Memory {
	return &Memory{}
}

// BufferRecord appends a routed record.
//
// Returns:
//   - error: Always nil (never fails)
func (m *Memory) BufferRecord(_ context.Context, rec types.RoutedRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, rec)

	return nil
}

// Records returns a copy of the buffered records in arrival order.
func (m *Memory) Records() []types.RoutedRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]types.RoutedRecord, len(m.records))
	copy(result, m.records)

	return result
}

// Len returns the number of buffered records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}

// Drain returns all buffered records and empties the buffer.
//
// Called by the write path at flush time.
func (m *Memory) Drain() []types.RoutedRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	drained := m.records
	m.records = nil

	return drained
}
