package segment

import (
	"errors"

	"github.com/huntgraph/irengine/ir"
)

// Sentinel errors for segmentation (spec.md §7).
var (
	// ErrInstructionNotFound indicates the requested target is not present
	// in the graph.
	ErrInstructionNotFound = errors.New("segment: target instruction not found")

	// ErrMultiInterfaces indicates an EvaluableGraph was constructed with
	// more than one distinct source interface surviving in its node set:
	// a segmenter partitioning bug, fatal to that subgraph.
	ErrMultiInterfaces = errors.New("segment: multiple source interfaces in one evaluable graph")

	// ErrInevaluableInstruction indicates an EvaluableGraph would contain
	// an IntermediateInstruction (an unresolved Reference), fatal to that
	// subgraph.
	ErrInevaluableInstruction = errors.New("segment: evaluable graph contains an unresolved reference")

	// ErrNilGraph indicates Segment was called with a nil graph.
	ErrNilGraph = errors.New("segment: nil graph")
)

func wrapNode(kind string, sentinel error, id ir.NodeID) error {
	return ir.WrapNodeError(kind, sentinel, id)
}
