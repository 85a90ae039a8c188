// Package notify bridges the surrounding framework's checkpoint barrier to
// the router over NATS.
//
// The operator's coordinator publishes a checkpoint-complete event once a
// checkpoint commits; every task must then clear its insert tracker. Because
// the router is single-threaded, the listener never invokes the router from
// the subscription goroutine: events are delivered on a channel that the
// task's processing loop drains between record batches, preserving barrier
// alignment.
//
// Example:
//
//	listener, err := notify.NewCheckpointListener(nc, "table.events.checkpoint")
//	if err != nil { /* handle */ }
//	if err := listener.Start(); err != nil { /* handle */ }
//	defer listener.Stop()
//
//	for {
//	    select {
//	    case rec := <-records:
//	        _ = router.RouteRecord(ctx, rec)
//	    case ev := <-listener.C():
//	        _ = ev
//	        router.CheckpointComplete(ctx)
//	    }
//	}
package notify

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go"

	"github.com/arloliu/bucketidx/internal/logging"
	"github.com/arloliu/bucketidx/types"
)

// Sentinel errors returned by the CheckpointListener.
var (
	// ErrConnRequired is returned when the NATS connection is nil.
	ErrConnRequired = errors.New("NATS connection is required")

	// ErrSubjectRequired is returned when the subject is empty.
	ErrSubjectRequired = errors.New("subject is required")

	// ErrAlreadyStarted is returned when Start is called on a running listener.
	ErrAlreadyStarted = errors.New("listener already started")

	// ErrNotStarted is returned when Stop is called before Start.
	ErrNotStarted = errors.New("listener not started")
)

// defaultBufferSize is the default capacity of the event channel.
const defaultBufferSize = 16

// CheckpointEvent is one checkpoint-complete notification.
type CheckpointEvent struct {
	// ID is the completed checkpoint's id as published by the coordinator.
	ID uint64
}

// Option configures a CheckpointListener.
type Option func(*listenerOptions)

type listenerOptions struct {
	logger     types.Logger
	bufferSize int
}

// WithLogger sets a logger for the listener.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewCheckpointListener
func WithLogger(logger types.Logger) Option {
	return func(o *listenerOptions) {
		o.logger = logger
	}
}

// WithBufferSize sets the event channel capacity (default 16).
//
// Events arriving while the channel is full are dropped with an error log;
// the task loop must drain C() at least once per barrier.
//
// Parameters:
//   - size: Channel capacity, must be >= 1
//
// Returns:
//   - Option: Functional option for NewCheckpointListener
func WithBufferSize(size int) Option {
	return func(o *listenerOptions) {
		o.bufferSize = size
	}
}

// CheckpointListener subscribes to a NATS subject carrying checkpoint-complete
// events and exposes them as a channel.
//
// The event payload is the decimal checkpoint id. Malformed payloads are
// logged and skipped rather than delivered.
type CheckpointListener struct {
	nc      *nats.Conn
	subject string
	logger  types.Logger
	events  chan CheckpointEvent
	sub     *nats.Subscription
}

// NewCheckpointListener creates a listener for a checkpoint subject.
//
// Parameters:
//   - nc: NATS connection
//   - subject: Subject the coordinator publishes checkpoint-complete events on
//   - opts: Optional configuration (logger, buffer size)
//
// Returns:
//   - *CheckpointListener: Initialized listener (not yet subscribed)
//   - error: Validation error for nil connection or empty subject
func NewCheckpointListener(nc *nats.Conn, subject string, opts ...Option) (*CheckpointListener, error) {
	if nc == nil {
		return nil, ErrConnRequired
	}
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	options := &listenerOptions{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.bufferSize < 1 {
		options.bufferSize = defaultBufferSize
	}

	return &CheckpointListener{
		nc:      nc,
		subject: subject,
		logger:  options.logger,
		events:  make(chan CheckpointEvent, options.bufferSize),
	}, nil
}

// Start subscribes to the checkpoint subject.
//
// Returns:
//   - error: ErrAlreadyStarted or subscription failure
func (l *CheckpointListener) Start() error {
	if l.sub != nil {
		return ErrAlreadyStarted
	}

	sub, err := l.nc.Subscribe(l.subject, l.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %q: %w", l.subject, err)
	}
	l.sub = sub
	l.logger.Info("checkpoint listener started", "subject", l.subject)

	return nil
}

// Stop unsubscribes from the checkpoint subject.
//
// The event channel is left open; events already delivered can still be
// drained after Stop.
//
// Returns:
//   - error: ErrNotStarted or unsubscribe failure
func (l *CheckpointListener) Stop() error {
	if l.sub == nil {
		return ErrNotStarted
	}

	err := l.sub.Unsubscribe()
	l.sub = nil
	if err != nil {
		return fmt.Errorf("failed to unsubscribe from %q: %w", l.subject, err)
	}

	return nil
}

// C returns the channel checkpoint events are delivered on.
//
// The task's processing loop must drain this channel between record batches;
// CheckpointComplete is then invoked from that loop, never from the
// subscription goroutine.
func (l *CheckpointListener) C() <-chan CheckpointEvent {
	return l.events
}

func (l *CheckpointListener) handleMessage(msg *nats.Msg) {
	id, err := strconv.ParseUint(string(msg.Data), 10, 64)
	if err != nil {
		l.logger.Warn("ignoring malformed checkpoint event",
			"subject", l.subject, "payload", string(msg.Data))

		return
	}

	select {
	case l.events <- CheckpointEvent{ID: id}:
	default:
		// The task loop is not draining; dropping here is loud on purpose,
		// since a missed barrier means the tracker is cleared late.
		l.logger.Error("checkpoint event channel full, dropping event",
			"subject", l.subject, "checkpointId", id)
	}
}
