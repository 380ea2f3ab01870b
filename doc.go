// Package irengine is the intermediate-representation engine for a
// threat-hunting query language: graph construction with deduplication,
// variable versioning, and reference resolution; segmentation of a graph
// into dependency-ordered, cache-aware evaluable subgraphs; and a
// recursive evaluator that dispatches those subgraphs to pluggable
// backends.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - internal/ident: Unicode NFC identifier normalization
//	  - internal/trace: operation-boundary logging
//	  - diag: structured diagnostics with stable error codes
//	  - immutable: read-only wrappers for safe data sharing
//
//	Core library tier:
//	  - ir: the instruction model (C1) — node identity, kinds, attributes
//	  - irgraph: the graph algebra (C2/C3) — add, dedup, versioning, union
//	  - segment: dependency segmentation into evaluable subgraphs (C4)
//	  - eval: cache-aware recursive evaluation (C5)
//	  - backend: the pluggable backend interface (C6) and artifact type
//	  - backend/memory: a reference in-process backend (C12)
//
//	Adapter tier:
//	  - serialize: the graph document wire format (C11)
//	  - engine: a Session facade composing graph + segmenter + evaluator
//	    with dual error/diagnostics reporting
//
// # Entry Points
//
// Building and evaluating a graph directly:
//
//	g := irgraph.New()
//	ds, _ := g.Add(ctx, ir.NewDataSource("proc_events", "t1"))
//	f, _ := g.AddWithPredecessor(ctx, ir.NewFilter("proc==curl"), ds.ID())
//	ret, _ := g.AddWithPredecessor(ctx, ir.NewReturn(), f.ID())
//
//	seg := segment.New()
//	graphs, _ := seg.Segment(ctx, g, ret.ID(), nil)
//
//	ev := eval.New(eval.WithBackend("proc_events", backend))
//	for _, eg := range graphs {
//	    result, _ := ev.Evaluate(ctx, eg)
//	}
//
// Through the Session facade, with diagnostics accumulation:
//
//	s := engine.New(engine.WithEvaluatorOptions(eval.WithBackend("proc_events", backend)))
//	ds, _ := s.Add(ctx, ir.NewDataSource("proc_events", "t1"))
//	...
//	graphs, _ := s.Segment(ctx, ret.ID())
//	result, _ := s.Evaluate(ctx, graphs[0])
//	issues := s.Diagnostics()
//
// # Subpackages
//
//   - [github.com/huntgraph/irengine/ir]: instruction model
//   - [github.com/huntgraph/irengine/irgraph]: graph algebra
//   - [github.com/huntgraph/irengine/segment]: dependency segmentation
//   - [github.com/huntgraph/irengine/eval]: recursive evaluation
//   - [github.com/huntgraph/irengine/backend]: backend interface and artifacts
//   - [github.com/huntgraph/irengine/backend/memory]: reference backend
//   - [github.com/huntgraph/irengine/serialize]: graph document wire format
//   - [github.com/huntgraph/irengine/engine]: Session facade
//   - [github.com/huntgraph/irengine/diag]: structured diagnostics
//   - [github.com/huntgraph/irengine/immutable]: read-only data wrappers
package irengine
