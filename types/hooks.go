package types

import "context"

// Hooks defines callbacks for Router lifecycle events.
//
// All hooks are optional; unset callbacks are replaced with no-ops. Unlike
// background-driven systems, the router is
// single-threaded by design: hooks run synchronously on the task's processing
// thread, between routing steps. They must therefore complete quickly and
// never block on long I/O.
//
// Hook errors are logged by the router and do not fail the triggering
// operation.
//
// Example:
//
//	hooks := &bucketidx.Hooks{
//	    OnPartitionBootstrapped: func(ctx context.Context, partition string, loaded int) error {
//	        log.Printf("partition %s bootstrapped with %d file groups", partition, loaded)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnPartitionBootstrapped is called once after a partition's bucket
	// mapping has been loaded from the committed table view.
	// loaded: number of owned file groups loaded into the index.
	OnPartitionBootstrapped func(ctx context.Context, partition string, loaded int) error

	// OnCheckpointComplete is called after the insert tracker has been
	// cleared at a checkpoint boundary.
	// cleared: number of tracker entries dropped.
	OnCheckpointComplete func(ctx context.Context, cleared int) error

	// OnError is called when a recoverable error occurs.
	OnError func(ctx context.Context, err error) error
}
