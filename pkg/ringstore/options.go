package ringstore

import (
	"log/slog"

	"github.com/c360/ringstore/metric"
)

// DefaultName is the component name used in logs when WithName is not given.
const DefaultName = "ringstore"

// Option configures a RingStore using the functional options pattern.
type Option func(*storeOptions)

// storeOptions holds internal configuration for store instances.
// Stats are always collected and are not an option.
type storeOptions struct {
	name           string
	logger         *slog.Logger
	releaseOnClear bool

	// metricsReg is optional; if set, statistics are also exported to Prometheus
	metricsReg *metric.MetricsRegistry

	// metricsPrefix is the component label and registration key for metrics
	metricsPrefix string
}

// WithName sets the component name attached to log records.
func WithName(name string) Option {
	return func(opts *storeOptions) {
		if name != "" {
			opts.name = name
		}
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *storeOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics enables Prometheus export of store statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry *metric.MetricsRegistry, prefix string) Option {
	return func(opts *storeOptions) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// WithReleaseOnClear makes Clear zero the occupied slots so that elements
// holding pointers can be garbage collected before they are overwritten.
func WithReleaseOnClear() Option {
	return func(opts *storeOptions) {
		opts.releaseOnClear = true
	}
}

// applyOptions applies functional options over the defaults.
func applyOptions(options ...Option) *storeOptions {
	opts := &storeOptions{
		name:   DefaultName,
		logger: slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}
