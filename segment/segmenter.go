package segment

import (
	"context"
	"log/slog"

	"github.com/huntgraph/irengine/internal/trace"
	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
)

// Segmenter extracts evaluable subgraphs from a graph, per spec.md §4.4.
// The zero Segmenter (via [New] with no options) is immediately usable.
type Segmenter struct {
	config segmenterConfig
}

// New returns a Segmenter.
func New(opts ...SegmenterOption) *Segmenter {
	cfg := segmenterConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Segmenter{config: cfg}
}

// Segment computes the EvaluableGraphs needed to make target evaluable,
// given the current state of cache. A nil cache is treated as
// [EmptyCache].
//
// Fails with [ErrInstructionNotFound] if target is not in g, or with
// [ErrMultiInterfaces] / [ErrInevaluableInstruction] if a surviving bucket
// cannot be validated as an EvaluableGraph (a segmenter partitioning bug).
func (s *Segmenter) Segment(ctx context.Context, g *irgraph.Graph, target ir.NodeID, cache CacheProbe) ([]*EvaluableGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if cache == nil {
		cache = EmptyCache
	}
	op := trace.Begin(ctx, s.config.logger, "irengine.segment.segment",
		slog.String("target", target.String()))
	var retErr error
	defer func() { op.End(retErr) }()

	store := g.Store()
	if !store.Has(target) {
		retErr = wrapNode("InstructionNotFound", ErrInstructionNotFound, target)
		return nil, retErr
	}

	// Step 1: dependent subgraph.
	ancestors := store.Ancestors(target)
	ancestors[target] = struct{}{}
	g0 := store.Subgraph(ancestors)

	// Step 2: cache prune, then recompute the dependent subgraph within
	// the pruned result.
	g1 := prune(g0, cache, target)

	// Steps 3-4: interface partition and shared-node exclusion.
	buckets := partition(g1, cache)

	// Step 5: emit.
	var out []*EvaluableGraph
	for _, nodeSet := range buckets {
		if len(nodeSet) == 0 {
			continue
		}
		sub := g1.Subgraph(nodeSet)
		eg, err := newEvaluableGraph(sub)
		if err != nil {
			retErr = err
			return nil, err
		}
		out = append(out, eg)
	}
	return out, nil
}

// prune deletes incoming edges of every cached node in g0, then recomputes
// the dependent subgraph of target within the result, discarding upstream
// components that are now disconnected (spec.md §4.4 step 2).
func prune(g0 *irgraph.Store, cache CacheProbe, target ir.NodeID) *irgraph.Store {
	var toRemove []irgraph.Edge
	for n := range g0.Nodes() {
		if !cache.Has(n.ID()) {
			continue
		}
		for _, pred := range g0.InEdges(n.ID()) {
			toRemove = append(toRemove, irgraph.Edge{From: pred, To: n.ID()})
		}
	}
	g0.RemoveEdges(toRemove)

	ancestors := g0.Ancestors(target)
	ancestors[target] = struct{}{}
	return g0.Subgraph(ancestors)
}

// partition builds the interface -> node-set map of spec.md §4.4 steps
// 3-4: for each SourceInstruction, its own id, its full descendant set,
// and any cached predecessor of a member of that set join its interface's
// bucket; every node touched by no source bucket falls into
// [CacheInterface]; nodes touched by two or more source buckets are
// excluded from all of them.
func partition(g *irgraph.Store, cache CacheProbe) map[string]map[ir.NodeID]struct{} {
	buckets := make(map[string]map[ir.NodeID]struct{})
	assigned := make(map[ir.NodeID]struct{})

	for n := range g.Nodes() {
		if n.Kind() != ir.KindDataSource {
			continue
		}
		iface, _ := n.Interface()
		bucket := buckets[iface]
		if bucket == nil {
			bucket = make(map[ir.NodeID]struct{})
			buckets[iface] = bucket
		}

		members := append([]ir.NodeID{n.ID()}, keysOf(g.Descendants(n.ID()))...)
		for _, m := range members {
			bucket[m] = struct{}{}
			assigned[m] = struct{}{}
		}
		for _, m := range members {
			for _, pred := range g.InEdges(m) {
				if !cache.Has(pred) {
					continue
				}
				bucket[pred] = struct{}{}
				assigned[pred] = struct{}{}
			}
		}
	}

	cacheBucket := make(map[ir.NodeID]struct{})
	for n := range g.Nodes() {
		if _, ok := assigned[n.ID()]; !ok {
			cacheBucket[n.ID()] = struct{}{}
		}
	}
	if len(cacheBucket) > 0 {
		buckets[CacheInterface] = cacheBucket
	}

	counts := make(map[ir.NodeID]int)
	for _, bucket := range buckets {
		for id := range bucket {
			counts[id]++
		}
	}
	for _, bucket := range buckets {
		for id := range bucket {
			if counts[id] > 1 {
				delete(bucket, id)
			}
		}
	}
	return buckets
}

func keysOf(m map[ir.NodeID]struct{}) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
