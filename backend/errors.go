package backend

import (
	"errors"

	"github.com/huntgraph/irengine/ir"
)

// Sentinel errors a Backend implementation returns (spec.md §7).
var (
	// ErrDataSourceError indicates a backend's I/O or translation failed.
	// The evaluator propagates it unchanged; already-cached artifacts
	// remain valid.
	ErrDataSourceError = errors.New("backend: data source error")

	// ErrInvalidInstruction indicates a backend was asked to evaluate an
	// instruction it cannot handle (a malformed or unsupported
	// transform parameter, for instance).
	ErrInvalidInstruction = errors.New("backend: invalid instruction")
)

func wrapNode(kind string, sentinel error, id ir.NodeID) error {
	return ir.WrapNodeError(kind, sentinel, id)
}
