package irgraph

import (
	"iter"

	"github.com/huntgraph/irengine/ir"
)

// Edge is an unlabeled directed edge between two node-ids.
type Edge struct {
	From ir.NodeID
	To   ir.NodeID
}

// Store is a directed graph of [ir.Instruction] nodes. It enforces no
// invariant beyond "an edge's endpoints must already be nodes in the
// store"; singleton dedup, versioning, and deref are [Graph]'s concerns.
//
// Store carries no synchronization; concurrent use requires an external
// lock, which [Graph] provides for its own embedding.
type Store struct {
	nodes map[ir.NodeID]ir.Instruction
	out   map[ir.NodeID]map[ir.NodeID]struct{}
	in    map[ir.NodeID]map[ir.NodeID]struct{}
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		nodes: make(map[ir.NodeID]ir.Instruction),
		out:   make(map[ir.NodeID]map[ir.NodeID]struct{}),
		in:    make(map[ir.NodeID]map[ir.NodeID]struct{}),
	}
}

// AddNode inserts instr if its id is not already present. Re-inserting an
// id already present is a no-op (it does not overwrite the stored
// instruction); callers that need to replace a node's attributes must
// remove it first, which this package's algebra never needs to do.
func (s *Store) AddNode(instr ir.Instruction) {
	if _, ok := s.nodes[instr.ID()]; ok {
		return
	}
	s.nodes[instr.ID()] = instr
	s.out[instr.ID()] = make(map[ir.NodeID]struct{})
	s.in[instr.ID()] = make(map[ir.NodeID]struct{})
}

// AddEdge adds a directed edge from -> to. Fails with
// [ErrInstructionNotFound] if either endpoint is absent. Adding an edge
// that already exists is a no-op.
func (s *Store) AddEdge(from, to ir.NodeID) error {
	if _, ok := s.nodes[from]; !ok {
		return wrapNode("InstructionNotFound", ErrInstructionNotFound, from)
	}
	if _, ok := s.nodes[to]; !ok {
		return wrapNode("InstructionNotFound", ErrInstructionNotFound, to)
	}
	s.out[from][to] = struct{}{}
	s.in[to][from] = struct{}{}
	return nil
}

// Has reports whether id is a node in the store.
func (s *Store) Has(id ir.NodeID) bool {
	_, ok := s.nodes[id]
	return ok
}

// Node returns the instruction stored under id.
func (s *Store) Node(id ir.NodeID) (ir.Instruction, bool) {
	instr, ok := s.nodes[id]
	return instr, ok
}

// Len returns the number of nodes in the store.
func (s *Store) Len() int { return len(s.nodes) }

// Nodes iterates over every node in the store, in no particular order.
func (s *Store) Nodes() iter.Seq[ir.Instruction] {
	return func(yield func(ir.Instruction) bool) {
		for _, instr := range s.nodes {
			if !yield(instr) {
				return
			}
		}
	}
}

// Edges iterates over every edge in the store, in no particular order.
func (s *Store) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for from, tos := range s.out {
			for to := range tos {
				if !yield(Edge{From: from, To: to}) {
					return
				}
			}
		}
	}
}

// InEdges returns the ids of nodes with an edge into id.
func (s *Store) InEdges(id ir.NodeID) []ir.NodeID {
	return keysOf(s.in[id])
}

// OutEdges returns the ids of nodes id has an edge into.
func (s *Store) OutEdges(id ir.NodeID) []ir.NodeID {
	return keysOf(s.out[id])
}

// Predecessors returns the instructions with an edge into id.
func (s *Store) Predecessors(id ir.NodeID) []ir.Instruction {
	ids := s.in[id]
	out := make([]ir.Instruction, 0, len(ids))
	for pid := range ids {
		out = append(out, s.nodes[pid])
	}
	return out
}

// InDegree returns the number of edges into id.
func (s *Store) InDegree(id ir.NodeID) int { return len(s.in[id]) }

// OutDegree returns the number of edges out of id.
func (s *Store) OutDegree(id ir.NodeID) int { return len(s.out[id]) }

// Descendants returns the set of node-ids reachable from id by following
// outgoing edges, not including id itself.
func (s *Store) Descendants(id ir.NodeID) map[ir.NodeID]struct{} {
	visited := make(map[ir.NodeID]struct{})
	var visit func(ir.NodeID)
	visit = func(cur ir.NodeID) {
		for next := range s.out[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			visit(next)
		}
	}
	visit(id)
	return visited
}

// Ancestors returns the set of node-ids that can reach id by following
// outgoing edges, not including id itself.
func (s *Store) Ancestors(id ir.NodeID) map[ir.NodeID]struct{} {
	visited := make(map[ir.NodeID]struct{})
	var visit func(ir.NodeID)
	visit = func(cur ir.NodeID) {
		for prev := range s.in[cur] {
			if _, seen := visited[prev]; seen {
				continue
			}
			visited[prev] = struct{}{}
			visit(prev)
		}
	}
	visit(id)
	return visited
}

// Subgraph returns a new Store containing exactly the nodes in ids, and
// every edge of s whose endpoints are both in ids.
func (s *Store) Subgraph(ids map[ir.NodeID]struct{}) *Store {
	sub := NewStore()
	for id := range ids {
		if instr, ok := s.nodes[id]; ok {
			sub.AddNode(instr)
		}
	}
	for from, tos := range s.out {
		if _, ok := ids[from]; !ok {
			continue
		}
		for to := range tos {
			if _, ok := ids[to]; !ok {
				continue
			}
			// Both endpoints already inserted above; error impossible.
			_ = sub.AddEdge(from, to)
		}
	}
	return sub
}

// RemoveEdges deletes every edge in edges from the store. Removing an
// edge that does not exist is a no-op.
func (s *Store) RemoveEdges(edges []Edge) {
	for _, e := range edges {
		delete(s.out[e.From], e.To)
		delete(s.in[e.To], e.From)
	}
}

// clone returns a deep copy of s: same node ids and instruction values
// (Instruction is itself immutable), independent edge maps.
func (s *Store) clone() *Store {
	out := NewStore()
	for id, instr := range s.nodes {
		out.nodes[id] = instr
		out.out[id] = make(map[ir.NodeID]struct{}, len(s.out[id]))
		out.in[id] = make(map[ir.NodeID]struct{}, len(s.in[id]))
	}
	for from, tos := range s.out {
		for to := range tos {
			out.out[from][to] = struct{}{}
			out.in[to][from] = struct{}{}
		}
	}
	return out
}

func keysOf(m map[ir.NodeID]struct{}) []ir.NodeID {
	out := make([]ir.NodeID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
