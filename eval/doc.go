// Package eval implements the cache-aware recursive evaluator (spec.md
// §4.5): given a [segment.EvaluableGraph], materialize its sinks (or an
// explicit target set) by walking each target's predecessor chain,
// dispatching SourceInstruction and TransformingInstruction nodes to a
// [backend.Backend] selected by the subgraph's interface, and memoizing
// every artifact under its producing node's id.
//
// # Memoization
//
// Before recursing into a node, [Evaluator.Evaluate] checks the artifact
// cache; a hit short-circuits the whole predecessor chain below it. The
// evaluator also maintains a catalog (node-id -> node-id) so external
// systems may look up artifacts by alias; for this package's own use both
// mappings coincide.
//
// # Thread Safety
//
// An Evaluator's cache and catalog are guarded by a sync.RWMutex, so one
// Evaluator instance may serve concurrent Evaluate calls against disjoint
// sink sets (spec.md §5 expansion).
package eval
