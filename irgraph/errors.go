package irgraph

import (
	"errors"

	"github.com/huntgraph/irengine/ir"
)

// Sentinel errors for the graph store and graph algebra (spec.md §7).
// Except for ErrCycleDetected and ErrNilGraph, which are returned bare,
// each is wrapped with the offending node-id or name via ir.WrapNodeError
// or ir.WrapNameError before being returned, so callers can errors.As down
// to an *ir.IdentityError for programmatic inspection.
var (
	// ErrInstructionNotFound indicates a lookup by id failed: an edge
	// endpoint, a predecessor argument, or a subgraph member that is not
	// present in the store.
	ErrInstructionNotFound = errors.New("irgraph: instruction not found")

	// ErrVariableNotFound indicates GetVariable found no live variable
	// for a name.
	ErrVariableNotFound = errors.New("irgraph: variable not found")

	// ErrReferenceNotFound indicates a lookup for an unresolved reference
	// by name failed.
	ErrReferenceNotFound = errors.New("irgraph: reference not found")

	// ErrDataSourceNotFound indicates a lookup for a DataSource node by
	// (interface, datasource) failed.
	ErrDataSourceNotFound = errors.New("irgraph: datasource not found")

	// ErrDuplicatedVariable indicates two variable nodes share a
	// (name, version) pair: invariant 4 of spec.md §3.2 violated.
	ErrDuplicatedVariable = errors.New("irgraph: duplicated variable version")

	// ErrDuplicatedReference indicates more than one un-derefed reference
	// shares a name.
	ErrDuplicatedReference = errors.New("irgraph: duplicated reference")

	// ErrDuplicatedDataSource indicates more than one DataSource node
	// shares a (interface, datasource) pair.
	ErrDuplicatedDataSource = errors.New("irgraph: duplicated datasource")

	// ErrDuplicatedSingleton indicates more than one zero-in-degree node
	// matched a singleton's content-equality class: invariant 3 violated.
	ErrDuplicatedSingleton = errors.New("irgraph: duplicated singleton instruction")

	// ErrInvalidSerializedGraph indicates a deserialized link referenced
	// a node id absent from the document's node list.
	ErrInvalidSerializedGraph = errors.New("irgraph: invalid serialized graph")

	// ErrCycleDetected indicates a union introduced a cycle; this is an
	// internal invariant failure (spec.md §9 "An implementation should
	// assert acyclicity after union"), never expected in correct use.
	ErrCycleDetected = errors.New("irgraph: cycle detected")

	// ErrNilGraph indicates a method was called on a nil *Graph receiver.
	ErrNilGraph = errors.New("irgraph: nil *Graph receiver")
)

// wrapNode wraps sentinel with node identity via ir.WrapNodeError, so the
// result matches sentinel under errors.Is and yields an *ir.IdentityError
// under errors.As.
func wrapNode(kind string, sentinel error, id ir.NodeID) error {
	return ir.WrapNodeError(kind, sentinel, id)
}

func wrapName(kind string, sentinel error, name string) error {
	return ir.WrapNameError(kind, sentinel, name)
}
