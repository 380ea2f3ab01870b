// Package ir defines the instruction model of the hunt-graph intermediate
// representation: node identity, the closed sum of instruction kinds,
// content equality, and serialization to and from a portable record form.
//
// # Node Identity
//
// Every [Instruction] carries an immutable [NodeID] assigned at
// construction. Equality between two Instructions as graph nodes is always
// by NodeID; [Instruction.HasSameContentAs] is a separate, kind-specific
// predicate used only for singleton deduplication of zero-predecessor
// source and reference nodes (see package irgraph).
//
// # Kind Taxonomy
//
// [Kind] is a flat enum; [Kind.Category] recovers the coarser grouping
// (source, transforming, intermediate) that the segmenter buckets on. New
// kinds are a semver change.
//
// # Identifier Normalization
//
// Constructors that accept a name-like string ([NewVariable], [NewReference],
// [NewDataSource]) normalize it through internal/ident.Normalize (Unicode
// NFC) before storing it, so two textually-equal names authored with
// different Unicode forms are never treated as distinct symbols.
//
// # Package Dependencies
//
// ir depends on immutable (attribute bags) and internal/ident (name
// normalization), plus github.com/google/uuid for node identifiers. It must
// not import irgraph, segment, eval, or backend.
package ir
