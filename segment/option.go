package segment

import "log/slog"

// SegmenterOption configures a [Segmenter] at construction.
type SegmenterOption func(*segmenterConfig)

type segmenterConfig struct {
	logger *slog.Logger
}

// WithLogger enables operation-boundary debug logging for Segment. Pass
// nil to disable logging (the default).
func WithLogger(logger *slog.Logger) SegmenterOption {
	return func(cfg *segmenterConfig) {
		cfg.logger = logger
	}
}
