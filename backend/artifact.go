package backend

import "github.com/huntgraph/irengine/immutable"

// Artifact is the materialized, tabular value produced by evaluating a
// node: an ordered sequence of rows, each an opaque attribute bag. The
// evaluator never interprets row contents; only a Backend does.
//
// Artifact wraps its rows in [immutable.Slice]/[immutable.Map] so cached
// artifacts may be shared across goroutines without copying (mirroring
// how [github.com/huntgraph/irengine/ir] wraps instruction attributes).
type Artifact struct {
	rows immutable.Slice
}

// NewArtifact builds an Artifact from a slice of rows, deep-cloning them
// so the caller may freely mutate rows after this call returns.
func NewArtifact(rows []map[string]any) Artifact {
	boxed := make([]any, len(rows))
	for i, r := range rows {
		boxed[i] = r
	}
	return Artifact{rows: immutable.WrapSliceClone(boxed)}
}

// Rows returns the artifact's rows.
func (a Artifact) Rows() immutable.Slice { return a.rows }

// Len returns the number of rows in the artifact.
func (a Artifact) Len() int { return a.rows.Len() }

// Row returns the row at index i as an immutable.Map, or false if i is out
// of range or the row is not a map-shaped value.
func (a Artifact) Row(i int) (immutable.Map[string], bool) {
	v, ok := a.rows.GetOK(i)
	if !ok {
		return immutable.Map[string]{}, false
	}
	return v.Map()
}
