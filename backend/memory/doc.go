// Package memory is a reference, fully in-process [backend.Backend]
// implementation (C12): SourceInstruction fetches are served from a
// static dataset keyed by (interface, datasource), and row-level
// transforms (filter, project, limit, sort) are applied with the
// package's own minimal predicate/column interpretation.
//
// It exists for this module's own tests and as a template for real
// backends (SQL emitters, STIX translators, adapter transports), which
// remain out of scope per spec.md §1.
package memory
