package eval

import (
	"log/slog"

	"github.com/huntgraph/irengine/backend"
)

// EvaluatorOption configures an [Evaluator] at construction.
type EvaluatorOption func(*evaluatorConfig)

type evaluatorConfig struct {
	logger   *slog.Logger
	backends backend.Registry
}

// WithLogger enables operation-boundary debug logging for Evaluate. Pass
// nil to disable logging (the default).
func WithLogger(logger *slog.Logger) EvaluatorOption {
	return func(cfg *evaluatorConfig) {
		cfg.logger = logger
	}
}

// WithBackend registers b to serve iface. Calling it more than once for
// the same iface overwrites the previous registration.
func WithBackend(iface string, b backend.Backend) EvaluatorOption {
	return func(cfg *evaluatorConfig) {
		if cfg.backends == nil {
			cfg.backends = make(backend.Registry)
		}
		cfg.backends[iface] = b
	}
}

// WithRegistry sets the full backend registry at once, replacing any
// backends registered via prior [WithBackend] options.
func WithRegistry(reg backend.Registry) EvaluatorOption {
	return func(cfg *evaluatorConfig) {
		cfg.backends = reg
	}
}
