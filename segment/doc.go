// Package segment implements dependency segmentation (spec.md §4.4): given
// a target node and a cache probe, it extracts zero or more [EvaluableGraph]
// subgraphs that each target exactly one backend interface (or the
// reserved "CACHE" interface) and contain no unresolved references.
//
// # Algorithm
//
// [Segmenter.Segment] runs five steps per call: compute the target's
// dependent subgraph, prune edges already satisfied by the cache probe and
// recompute the now-possibly-smaller dependent subgraph, partition nodes by
// the interface of the SourceInstruction they are reachable from, exclude nodes
// shared by two or more interfaces (they cannot be evaluated without
// coordination this round), and emit one [EvaluableGraph] per surviving
// non-empty bucket.
//
// Repeated calls against a controller-maintained cache converge: each round
// strictly shrinks the target's ancestor set, reaching a fixpoint where a
// single subgraph containing the target remains (spec.md §8 property 6).
//
// # Thread Safety
//
// A Segmenter holds no mutable state; [Segmenter.Segment] is safe for
// concurrent use against the same or different graphs.
package segment
