// Package trace provides optional debug logging helpers for the IR engine.
//
// This package is an internal utility for developer observability. It is distinct
// from [diag.Result] (caller-facing, collectible diagnostics) and error returns
// (system failures and invariant violations).
//
// # Internal Package
//
// This package is internal to the module and is not importable by external
// consumers per Go's internal/ package semantics. It is used for coordination
// across library packages (irgraph, segment, eval).
//
// # Design Principles
//
//   - Near-zero cost when disabled: when the logger is nil, overhead is a single
//     nil check (~2ns); when non-nil but the level is disabled, overhead is a nil
//     check plus a level test. The Lazy variants guarantee no allocation from
//     attribute construction when disabled.
//   - Stdlib only: uses [log/slog] (Go 1.21+), preserving dependency hygiene.
//   - Logger injection: loggers are passed via options at API boundaries, not
//     stored in globals or read from environment variables.
//
// # Separation of Concerns
//
//   - [diag.Result]: caller-facing, collectible issues (surfaced backend errors,
//     cache-probe anomalies). Structured diagnostics with error codes.
//   - error returns: invariant violations and programmer errors (spec.md §7's
//     "fatal" and "surface" rows alike), always returned, never swallowed.
//   - trace logging: developer observability (segmentation bucket decisions,
//     evaluation recursion, union merge steps). This package.
//
// # Usage Patterns
//
//   - [Begin]/[Op.End]: operation boundaries (start/end of public API calls).
//   - [Debug], [Info], [Warn], [Error]: simple, pre-computed attributes.
//   - [DebugLazy], [InfoLazy], [WarnLazy], [ErrorLazy]: computed attributes,
//     never evaluated when logging is disabled.
//   - [Enabled]: for complex control flow or multiple log calls at different levels.
//
// # Context Handling
//
// All logging functions accept a context and pass it through to the underlying
// [log/slog.Logger]. The Op runner additionally includes "request_id" if present
// in context (via [WithRequestID]) and checks context cancellation for "ctx_err".
//
//	func (g *Graph) Add(ctx context.Context, node ir.Instruction, pred ir.NodeID) (ir.Instruction, error) {
//	    op := trace.Begin(ctx, g.logger, "irengine.irgraph.add", slog.String("kind", node.Kind().String()))
//	    var retErr error
//	    defer func() { op.End(retErr) }()
//	    ...
//	}
//
// # Operation Names
//
// Operation names follow the format irengine.<package>.<operation>:
//   - irengine.irgraph.add
//   - irengine.irgraph.union
//   - irengine.segment.segment
//   - irengine.eval.evaluate
//
// Operation names are implementation details and may change without notice.
package trace
