package solver

// Option configures a Solver with optional dependencies.
type Option func(*solverOptions)

// solverOptions holds optional Solver configuration.
type solverOptions struct {
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &solver.Hooks{
//	    OnSolutionFound: func(ctx context.Context, workerID int, candidate uint64) error {
//	        return recordWinner(workerID, candidate)
//	    },
//	}
//	s, err := solver.New(&cfg, pred, part, solver.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *solverOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	m := metrics.NewPrometheus(nil, "solver")
//	s, err := solver.New(&cfg, pred, part, solver.WithMetrics(m))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *solverOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	s, err := solver.New(&cfg, pred, part, solver.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *solverOptions) {
		o.logger = logger
	}
}
