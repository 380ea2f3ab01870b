// Package diag provides structured diagnostics for the IR engine.
//
// This package sits at the foundation tier, providing the single diagnostic
// infrastructure optionally used alongside the engine's plain error returns
// (see the root package doc for how the two channels divide responsibility).
//
// # Design Principles
//
// The diag package follows several key design principles:
//
//   - Structured data, string-last presentation: a node id or symbol name is
//     stored as data, never embedded only in the message string.
//   - Immutable results: [Result] stores issues in unexported fields and
//     exposes accessor methods that return defensive copies.
//   - Stable error codes: [Code] values are stable identifiers that tools can
//     match on, even when message text changes. The Code type uses an
//     unexported struct to enforce a closed set of valid codes.
//   - Deterministic ordering: [Collector.Result] sorts issues by code,
//     severity, and message to ensure stable output across runs.
//   - Builder pattern: [IssueBuilder] is the only valid construction path for
//     [Issue] values, eliminating common construction mistakes.
//   - Precomputed counts: [Collector] maintains O(1) severity queries via
//     precomputed counts updated during collection.
//
// # Entry Point Pattern
//
// Engine entry points follow a consistent pattern:
//
//   - err != nil: a programmer/invariant error (see spec error taxonomy);
//     the caller should stop.
//   - err == nil and !result.OK(): a surfaced, recoverable condition
//     represented as structured issues (e.g. a backend reporting a
//     datasource fetch failure mid-huntflow).
//   - err == nil and result.OK(): success (may still include warnings/info/hints).
//
// # Severity Semantics
//
// [Severity] is an ordered enumeration where lower values are more severe:
//
//   - [Fatal]: unrecoverable condition or collection limit reached sentinel
//   - [Error]: a surfaced failure, but collection can continue
//   - [Warning], [Info], [Hint]: non-blocking diagnostics
//
// The [Severity.IsFailure] method returns true for Fatal and Error severities,
// matching the !result.OK() check.
//
// # Issue Construction
//
// Issues must be constructed using [NewIssue] and [IssueBuilder]:
//
//	issue := diag.NewIssue(diag.Error, diag.E_DATASOURCE_ERROR, `interface "splunk" returned no rows`).
//	    WithName("splunk").
//	    WithHint("check backend connectivity").
//	    Build()
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected.
//
// # Collection and Results
//
// Use [Collector] to aggregate issues across a long-running session:
//
//	collector := diag.NewCollector(100) // limit of 100 issues
//	collector.Collect(issue)
//	result := collector.Result()
//
//	if !result.OK() {
//	    // handle surfaced failures
//	}
//
// [Collector] is thread-safe and provides O(1) severity queries via
// [Collector.OK], [Collector.HasErrors], and [Collector.HasFatal].
//
// # Package Dependencies
//
// diag imports only the standard library. It must not import higher-level
// packages like ir, irgraph, segment, eval, or backend.
package diag
