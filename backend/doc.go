// Package backend defines the contract the evaluator (package eval)
// dispatches to for materializing IR nodes: fetching a SourceInstruction's
// rows, and applying a TransformingInstruction to its input (spec.md
// §4.6).
//
// [Backend] implementations are out of scope for this module's own
// functionality per spec.md §1 ("the per-backend code generators... are
// out of scope"); package backend/memory provides a reference, fully
// in-process implementation used by this module's own tests and as a
// template for real backends (SQL emitters, STIX translators, adapter
// transports).
package backend
