// Package irgraph implements the directed-graph store and graph algebra of
// the hunt-graph intermediate representation: node/edge primitives
// ([Store]), and the higher-level [Graph] that layers singleton
// deduplication, variable versioning, reference dereferencing, a
// name-indexed symbol table, and graph union (compose) on top of it.
//
// # Store vs Graph
//
// [Store] is a plain directed-graph container: add/query nodes and edges,
// compute ancestor/descendant sets, take subgraphs. It enforces no
// semantic invariants beyond "edges reference existing nodes" and carries
// no synchronization of its own.
//
// [Graph] wraps a *Store (exposed via [Graph.Store]) and adds everything spec.md calls "graph
// algebra": [Graph.Add] and [Graph.AddWithPredecessor] dispatch by
// instruction kind to implement singleton uniqueness, SSA-style variable
// versioning, and reference deref; [Graph.Union] merges a second graph in
// with correct version/sequence shifting; [Graph.GetVariable] and
// [Graph.GetVariables] are the symbol-table view.
//
// # Thread Safety
//
// [Graph] guards its own bookkeeping (the live-variable index, the
// sequence counter, and the underlying Store) with a sync.RWMutex, so a
// single Graph may be shared read-mostly across goroutines; [Graph.Add],
// [Graph.AddWithPredecessor], and [Graph.Union] serialize against each
// other. The engine's wider concurrency model (see package eval) is still
// single-actor-per-graph: two independent sessions must not share a Graph
// without external coordination beyond this mutex.
//
// # Error Handling
//
// Every failure mode of spec.md §7 that originates in this package is a
// sentinel error wrapped with the offending node-id or name via
// [ir.WrapNodeError] / [ir.WrapNameError], satisfying [ir.NamedError].
// [ErrCycleDetected] and [ErrNilGraph] are returned bare. See errors.go for
// the full sentinel list.
package irgraph
