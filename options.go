package meshgo

type options struct {
	name    string
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		name:    "Mesh",
		logger:  NewLogger(nil),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures mesh construction behavior.
//
// Options exist to avoid exploding the constructor surface; the zero
// configuration (text logging, no metrics) is always valid.
type Option func(*options)

// WithName sets the mesh name used in summaries and log fields.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger configures the logger used by edit operations.
//
// If nil is passed, the default text logger is kept.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures the collector notified after each edit
// operation.
//
// If nil is passed, metrics collection stays disabled.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}
