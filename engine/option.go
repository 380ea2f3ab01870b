package engine

import (
	"github.com/huntgraph/irengine/eval"
	"github.com/huntgraph/irengine/irgraph"
	"github.com/huntgraph/irengine/segment"
)

// SessionOption configures a [Session] at construction.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	graphOpts      []irgraph.GraphOption
	segmenterOpts  []segment.SegmenterOption
	evaluatorOpts  []eval.EvaluatorOption
	collectorLimit int
}

// WithGraphOptions forwards opts to the Session's underlying [irgraph.Graph].
func WithGraphOptions(opts ...irgraph.GraphOption) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.graphOpts = append(cfg.graphOpts, opts...)
	}
}

// WithSegmenterOptions forwards opts to the Session's underlying
// [segment.Segmenter].
func WithSegmenterOptions(opts ...segment.SegmenterOption) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.segmenterOpts = append(cfg.segmenterOpts, opts...)
	}
}

// WithEvaluatorOptions forwards opts to the Session's underlying
// [eval.Evaluator].
func WithEvaluatorOptions(opts ...eval.EvaluatorOption) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.evaluatorOpts = append(cfg.evaluatorOpts, opts...)
	}
}

// WithCollectorLimit caps the Session's diag.Collector at n issues
// (see [diag.NewCollector]). The default is unlimited.
func WithCollectorLimit(n int) SessionOption {
	return func(cfg *sessionConfig) {
		cfg.collectorLimit = n
	}
}
