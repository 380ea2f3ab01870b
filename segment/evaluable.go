package segment

import (
	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
)

// CacheInterface is the reserved interface name for an EvaluableGraph with
// zero SourceInstruction nodes: every input is already cached and
// retrievable by node-id (spec.md §3.4, §4.6).
const CacheInterface = "CACHE"

// EvaluableGraph is a subgraph that targets exactly one backend interface
// (or [CacheInterface]) and contains no unresolved references. Construct
// via [Segmenter.Segment]; the zero value is not usable.
type EvaluableGraph struct {
	store     *irgraph.Store
	interface_ string
}

// Store returns the evaluable subgraph's nodes and edges.
func (e *EvaluableGraph) Store() *irgraph.Store { return e.store }

// Interface returns the backend interface this subgraph targets, or
// [CacheInterface] if it contains no SourceInstruction nodes.
func (e *EvaluableGraph) Interface() string { return e.interface_ }

// Sinks returns the node-ids with zero out-degree within the subgraph: the
// nodes a controller should insert into its cache after evaluating this
// EvaluableGraph.
func (e *EvaluableGraph) Sinks() []ir.NodeID {
	var out []ir.NodeID
	for n := range e.store.Nodes() {
		if e.store.OutDegree(n.ID()) == 0 {
			out = append(out, n.ID())
		}
	}
	return out
}

// newEvaluableGraph validates store against spec.md §3.4's EvaluableGraph
// definition and determines its interface.
func newEvaluableGraph(store *irgraph.Store) (*EvaluableGraph, error) {
	iface := ""
	for n := range store.Nodes() {
		if n.Kind() == ir.KindReference {
			return nil, wrapNode("InevaluableInstruction", ErrInevaluableInstruction, n.ID())
		}
		if n.Kind() != ir.KindDataSource {
			continue
		}
		nodeIface, _ := n.Interface()
		if iface == "" {
			iface = nodeIface
		} else if iface != nodeIface {
			return nil, wrapNode("MultiInterfacesInGraph", ErrMultiInterfaces, n.ID())
		}
	}
	if iface == "" {
		iface = CacheInterface
	}
	return &EvaluableGraph{store: store, interface_: iface}, nil
}
