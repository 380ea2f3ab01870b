package irgraph

import "log/slog"

// GraphOption configures a [Graph] at construction.
type GraphOption func(*graphConfig)

type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables operation-boundary debug logging for Add,
// AddWithPredecessor, AddJoin, and Union. Pass nil to disable logging
// (the default).
func WithLogger(logger *slog.Logger) GraphOption {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
