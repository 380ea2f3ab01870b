package eval

import (
	"context"
	"log/slog"
	"sync"

	"github.com/huntgraph/irengine/backend"
	"github.com/huntgraph/irengine/internal/trace"
	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
	"github.com/huntgraph/irengine/segment"
)

// Evaluator recursively materializes [segment.EvaluableGraph]s against a
// registry of [backend.Backend]s, per spec.md §4.5. The zero value is not
// usable; construct with [New].
type Evaluator struct {
	config evaluatorConfig
	mu     sync.RWMutex

	cache   map[ir.NodeID]backend.Artifact
	catalog map[ir.NodeID]ir.NodeID
}

// New returns an Evaluator with an empty artifact cache.
func New(opts ...EvaluatorOption) *Evaluator {
	cfg := evaluatorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Evaluator{
		config:  cfg,
		cache:   make(map[ir.NodeID]backend.Artifact),
		catalog: make(map[ir.NodeID]ir.NodeID),
	}
}

// Cached reports whether id already has a memoized artifact, and is the
// natural [segment.CacheProbe] to pass back into the segmenter between
// rounds (spec.md §8 property 6's fixpoint iteration).
func (e *Evaluator) Cached(id ir.NodeID) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.cache[id]
	return ok
}

// Lookup returns the cached artifact for id via the catalog (node-id ->
// node-id alias table); for this evaluator the catalog and cache
// coincide, so this is equivalent to a direct cache hit, but external
// systems should prefer this accessor so a future catalog that diverges
// from the cache keeps working.
func (e *Evaluator) Lookup(id ir.NodeID) (backend.Artifact, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	canonical, ok := e.catalog[id]
	if !ok {
		return backend.Artifact{}, false
	}
	art, ok := e.cache[canonical]
	return art, ok
}

// Evaluate materializes targets (or, if empty, every zero-out-degree sink
// of eg) against eg's declared interface, returning a mapping of node-id
// to artifact.
//
// Fails with [ErrInterfaceNotFound] if materializing a node requires a
// backend for eg's interface and none is registered; otherwise propagates
// whatever error first aborts materialization.
func (e *Evaluator) Evaluate(ctx context.Context, eg *segment.EvaluableGraph, targets ...ir.NodeID) (map[ir.NodeID]backend.Artifact, error) {
	if eg == nil {
		return nil, ErrNilGraph
	}
	op := trace.Begin(ctx, e.config.logger, "irengine.eval.evaluate",
		slog.String("interface", eg.Interface()))
	var retErr error
	defer func() { op.End(retErr) }()

	store := eg.Store()
	if len(targets) == 0 {
		targets = eg.Sinks()
	}

	result := make(map[ir.NodeID]backend.Artifact, len(targets))
	for _, target := range targets {
		art, err := e.materialize(ctx, store, eg.Interface(), target)
		if err != nil {
			retErr = err
			return nil, err
		}
		result[target] = art
	}
	return result, nil
}

// backendFor resolves the backend registered for iface, failing with
// [ErrInterfaceNotFound] if none is registered. Resolution happens lazily,
// per materialized node, rather than once per Evaluate call: a
// CACHE-interface subgraph consisting entirely of cached boundaries and
// pass-through Variable/Return nodes never needs a backend at all.
func (e *Evaluator) backendFor(iface string) (backend.Backend, error) {
	b, ok := e.config.backends[iface]
	if !ok {
		return nil, wrapName("InterfaceNotFound", ErrInterfaceNotFound, iface)
	}
	return b, nil
}

func (e *Evaluator) materialize(ctx context.Context, store *irgraph.Store, iface string, id ir.NodeID) (backend.Artifact, error) {
	if art, ok := e.Lookup(id); ok {
		return art, nil
	}

	node, ok := store.Node(id)
	if !ok {
		return backend.Artifact{}, wrapNode("InstructionNotFound", ErrInstructionNotFound, id)
	}

	var (
		result backend.Artifact
		err    error
	)
	switch node.Kind() {
	case ir.KindReturn, ir.KindVariable, ir.KindFilter, ir.KindProject, ir.KindLimit, ir.KindSort:
		preds := store.Predecessors(id)
		if len(preds) != 1 {
			return backend.Artifact{}, wrapNode("InvalidInstruction", ErrInvalidInstruction, id)
		}
		input, ierr := e.materialize(ctx, store, iface, preds[0].ID())
		if ierr != nil {
			return backend.Artifact{}, ierr
		}
		if node.Kind() == ir.KindReturn || node.Kind() == ir.KindVariable {
			result = input
		} else {
			b, berr := e.backendFor(iface)
			if berr != nil {
				return backend.Artifact{}, berr
			}
			result, err = b.EvaluateTransform(ctx, node, input)
		}
	case ir.KindDataSource:
		b, berr := e.backendFor(iface)
		if berr != nil {
			return backend.Artifact{}, berr
		}
		result, err = b.EvaluateSource(ctx, node)
	case ir.KindJoin:
		return backend.Artifact{}, wrapNode("UnsupportedJoin", ErrUnsupportedJoin, id)
	default:
		return backend.Artifact{}, wrapNode("NotImplemented", ErrNotImplemented, id)
	}
	if err != nil {
		return backend.Artifact{}, err
	}

	e.mu.Lock()
	e.cache[id] = result
	e.catalog[id] = id
	e.mu.Unlock()
	return result, nil
}
