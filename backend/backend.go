package backend

import (
	"context"

	"github.com/huntgraph/irengine/ir"
)

// Backend is the abstract contract the evaluator (package eval) dispatches
// to for the two operations spec.md §4.6 names.
type Backend interface {
	// EvaluateSource returns the tabular artifact a SourceInstruction
	// pulls. Failures should be wrapped with [ErrDataSourceError].
	EvaluateSource(ctx context.Context, instr ir.Instruction) (Artifact, error)

	// EvaluateTransform applies a TransformingInstruction to input and
	// returns the result. Failures should be wrapped with
	// [ErrInvalidInstruction] or [ErrDataSourceError].
	EvaluateTransform(ctx context.Context, instr ir.Instruction, input Artifact) (Artifact, error)
}

// Registry maps an interface name to the Backend that serves it. The
// reserved name "CACHE" (see package segment's CacheInterface) is never
// looked up: the evaluator handles it specially.
type Registry map[string]Backend
