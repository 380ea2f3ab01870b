package irgraph

import (
	"github.com/huntgraph/irengine/ir"
)

// LinkRecord is a portable directed edge between two node-ids, by analogy
// with [ir.Record] for nodes.
type LinkRecord struct {
	Source ir.NodeID
	Target ir.NodeID
}

// GraphRecord is the portable form of a Graph: a flat node list and a
// flat link list. Package serialize maps this onto the wire
// "{nodes, links}" JSON document (spec.md §6.1).
type GraphRecord struct {
	Nodes []ir.Record
	Links []LinkRecord
}

// ToRecord converts g to its portable record form. Node and link order
// is not significant and is not guaranteed stable across calls.
func (g *Graph) ToRecord() GraphRecord {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := GraphRecord{
		Nodes: make([]ir.Record, 0, g.store.Len()),
	}
	for n := range g.store.Nodes() {
		out.Nodes = append(out.Nodes, n.ToRecord())
	}
	for e := range g.store.Edges() {
		out.Links = append(out.Links, LinkRecord{Source: e.From, Target: e.To})
	}
	return out
}

// FromRecord reconstructs a Graph from its portable record form. Nodes
// are loaded exactly as authored via [ir.FromRecord]: FromRecord does
// not run the dedup, versioning, or deref logic [Graph.Add] applies to
// live construction, so a deserialized graph can faithfully represent
// shadowed variable versions or other states live construction could
// never produce on its own.
//
// FromRecord fails with [ErrInvalidSerializedGraph] if a link references
// a node-id absent from the record's node list, and passes through any
// [ir.ErrInvalidSerializedInstruction] a node fails to decode with.
func FromRecord(r GraphRecord, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)

	for _, nr := range r.Nodes {
		instr, err := ir.FromRecord(nr)
		if err != nil {
			return nil, err
		}
		g.store.AddNode(instr)
	}

	for _, lr := range r.Links {
		if !g.store.Has(lr.Source) {
			return nil, wrapNode("InvalidSerializedGraph", ErrInvalidSerializedGraph, lr.Source)
		}
		if !g.store.Has(lr.Target) {
			return nil, wrapNode("InvalidSerializedGraph", ErrInvalidSerializedGraph, lr.Target)
		}
		if err := g.store.AddEdge(lr.Source, lr.Target); err != nil {
			return nil, err
		}
	}

	g.rebuildBookkeeping()
	return g, nil
}

// rebuildBookkeeping recomputes g.liveVariable and g.nextSequence from
// g.store's current node set. Used after a bulk load via FromRecord,
// where nodes are inserted directly into the store rather than through
// addLocked/addWithPredecessorLocked.
func (g *Graph) rebuildBookkeeping() {
	for n := range g.store.Nodes() {
		switch n.Kind() {
		case ir.KindVariable:
			name, _ := n.Name()
			version, _ := n.Version()
			if cur, ok := g.liveVariable[name]; ok {
				curInstr, _ := g.store.Node(cur)
				curVersion, _ := curInstr.Version()
				if version <= curVersion {
					continue
				}
			}
			g.liveVariable[name] = n.ID()
		case ir.KindReturn:
			seq, _ := n.Sequence()
			if seq+1 > g.nextSequence {
				g.nextSequence = seq + 1
			}
		}
	}
}
