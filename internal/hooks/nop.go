// Package hooks provides the default no-op Hooks implementation.
package hooks

import (
	"context"

	"github.com/arloliu/bucketidx/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, string, int) error = (*NopHooks)(nil).OnPartitionBootstrapped
	_ func(context.Context, int) error         = (*NopHooks)(nil).OnCheckpointComplete
	_ func(context.Context, error) error       = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPartitionBootstrapped: h.OnPartitionBootstrapped,
		OnCheckpointComplete:    h.OnCheckpointComplete,
		OnError:                 h.OnError,
	}
}

// OnPartitionBootstrapped is a no-op implementation.
func (h *NopHooks) OnPartitionBootstrapped(ctx context.Context, partition string, loaded int) error {
	return nil
}

// OnCheckpointComplete is a no-op implementation.
func (h *NopHooks) OnCheckpointComplete(ctx context.Context, cleared int) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
