package eval

import (
	"errors"

	"github.com/huntgraph/irengine/ir"
)

// Sentinel errors raised by the evaluator (spec.md §7).
var (
	// ErrInstructionNotFound indicates a predecessor edge points at a
	// node-id absent from the subgraph being evaluated.
	ErrInstructionNotFound = errors.New("eval: instruction not found")

	// ErrInterfaceNotFound indicates no backend is registered for the
	// interface an EvaluableGraph declares.
	ErrInterfaceNotFound = errors.New("eval: backend for interface not found")

	// ErrInvalidInstruction indicates a node was structurally wrong for
	// its kind at evaluation time (e.g. a transform with no predecessor).
	ErrInvalidInstruction = errors.New("eval: invalid instruction")

	// ErrUnsupportedJoin indicates a Join node was reached during
	// materialization. The data model permits multi-predecessor Join
	// nodes (spec.md §9 Open Question); this reference evaluator does
	// not materialize them.
	ErrUnsupportedJoin = errors.New("eval: join evaluation not supported")

	// ErrNotImplemented indicates a node kind with no evaluator dispatch
	// rule was reached: a fatal, should-never-happen condition for any
	// kind defined by package ir.
	ErrNotImplemented = errors.New("eval: node kind not implemented")

	// ErrNilGraph indicates Evaluate was called with a nil EvaluableGraph.
	ErrNilGraph = errors.New("eval: nil evaluable graph")
)

func wrapNode(kind string, sentinel error, id ir.NodeID) error {
	return ir.WrapNodeError(kind, sentinel, id)
}

func wrapName(kind string, sentinel error, name string) error {
	return ir.WrapNameError(kind, sentinel, name)
}
