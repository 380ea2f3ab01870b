package engine

import (
	"context"
	"errors"

	"github.com/huntgraph/irengine/backend"
	"github.com/huntgraph/irengine/diag"
	"github.com/huntgraph/irengine/eval"
	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
	"github.com/huntgraph/irengine/segment"
)

// Session owns one graph-build/segment/evaluate lifecycle: an
// [irgraph.Graph], a [segment.Segmenter], an [eval.Evaluator], and a
// [diag.Collector] accumulating the recoverable-class issues those three
// raise. The zero Session is not usable; construct with [New].
type Session struct {
	graph     *irgraph.Graph
	segmenter *segment.Segmenter
	evaluator *eval.Evaluator
	collector *diag.Collector
}

// New returns a Session with an empty graph, collector, and artifact cache.
func New(opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Session{
		graph:     irgraph.New(cfg.graphOpts...),
		segmenter: segment.New(cfg.segmenterOpts...),
		evaluator: eval.New(cfg.evaluatorOpts...),
		collector: diag.NewCollector(cfg.collectorLimit),
	}
}

// Graph returns the Session's underlying graph, for callers that need
// direct access (e.g. to pass to [serialize.Encode]).
func (s *Session) Graph() *irgraph.Graph { return s.graph }

// Diagnostics returns a snapshot of every recoverable-class issue
// collected so far across all Session calls.
func (s *Session) Diagnostics() diag.Result { return s.collector.Result() }

// Add inserts node with no predecessor. See [irgraph.Graph.Add].
func (s *Session) Add(ctx context.Context, node ir.Instruction) (ir.Instruction, error) {
	instr, err := s.graph.Add(ctx, node)
	return instr, s.report(err)
}

// AddWithPredecessor inserts node wired to predecessor. See
// [irgraph.Graph.AddWithPredecessor].
func (s *Session) AddWithPredecessor(ctx context.Context, node ir.Instruction, predecessor ir.NodeID) (ir.Instruction, error) {
	instr, err := s.graph.AddWithPredecessor(ctx, node, predecessor)
	return instr, s.report(err)
}

// AddJoin inserts a two-predecessor Join node. See [irgraph.Graph.AddJoin].
func (s *Session) AddJoin(ctx context.Context, node ir.Instruction, left, right ir.NodeID) (ir.Instruction, error) {
	instr, err := s.graph.AddJoin(ctx, node, left, right)
	return instr, s.report(err)
}

// Union merges h's fragment into the Session's graph. See [irgraph.Graph.Union].
func (s *Session) Union(ctx context.Context, h *irgraph.Graph) error {
	return s.report(s.graph.Union(ctx, h))
}

// GetVariable returns the live instance of the named variable. See
// [irgraph.Graph.GetVariable].
func (s *Session) GetVariable(name string) (ir.Instruction, error) {
	instr, err := s.graph.GetVariable(name)
	return instr, s.report(err)
}

// GetVariables returns the live instance of every distinct variable name.
func (s *Session) GetVariables() []ir.Instruction {
	return s.graph.GetVariables()
}

// Segment extracts the EvaluableGraphs needed to make target evaluable,
// using the Session's own evaluator cache as the segmenter's cache probe
// (spec.md §8 property 6's fixpoint iteration across repeated Segment /
// Evaluate calls on the same Session).
func (s *Session) Segment(ctx context.Context, target ir.NodeID) ([]*segment.EvaluableGraph, error) {
	graphs, err := s.segmenter.Segment(ctx, s.graph, target, segment.CacheProbeFunc(s.evaluator.Cached))
	return graphs, s.report(err)
}

// Evaluate materializes eg against the Session's evaluator. See
// [eval.Evaluator.Evaluate].
func (s *Session) Evaluate(ctx context.Context, eg *segment.EvaluableGraph, targets ...ir.NodeID) (map[ir.NodeID]backend.Artifact, error) {
	result, err := s.evaluator.Evaluate(ctx, eg, targets...)
	return result, s.report(err)
}

// report classifies err (if non-nil) against [classifications] and, for
// the taxonomy's recoverable ("surface to caller") class, appends a
// diag.Issue to the Session's collector before returning err unchanged.
// Fatal-class errors and errors with no recognized [ir.NamedError] kind
// label pass through without touching the collector... except that an
// unrecognized kind label is itself a bug worth surfacing, so it is
// collected as E_INTERNAL.
func (s *Session) report(err error) error {
	if err == nil {
		return nil
	}

	var named ir.NamedError
	if !errors.As(err, &named) {
		return err
	}

	class, ok := classifications[named.Kind()]
	if !ok {
		s.collector.Collect(diag.NewIssue(diag.Error, diag.E_INTERNAL, err.Error()).Build())
		return err
	}
	if !class.recoverable {
		return err
	}

	builder := diag.NewIssue(diag.Error, class.code, err.Error())
	if id, ok := named.NodeID(); ok {
		builder = builder.WithNodeID(id.String())
	}
	if name, ok := named.Name(); ok {
		builder = builder.WithName(name)
	}
	s.collector.Collect(builder.Build())
	return err
}
