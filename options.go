package bucketidx

// Option configures a Router with optional dependencies.
type Option func(*routerOptions)

// routerOptions holds optional Router configuration.
type routerOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets lifecycle event hooks.
//
// Hooks run synchronously on the task's processing thread and must complete
// quickly; see types.Hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewRouter
//
// Example:
//
//	hooks := &bucketidx.Hooks{
//	    OnCheckpointComplete: func(ctx context.Context, cleared int) error {
//	        return recordCheckpoint(cleared)
//	    },
//	}
//	router, err := bucketidx.NewRouter(&cfg, view, buf, bucketidx.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *routerOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewRouter
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "myapp")
//	router, err := bucketidx.NewRouter(&cfg, view, buf, bucketidx.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *routerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewRouter
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	router, err := bucketidx.NewRouter(&cfg, view, buf, bucketidx.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *routerOptions) {
		o.logger = logger
	}
}
