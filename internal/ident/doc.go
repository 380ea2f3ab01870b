// Package ident provides Unicode normalization for the symbol strings that
// identify graph nodes: variable names, backend interface names, and
// datasource names.
//
// # Internal Package
//
// This package is internal to the module and is not importable by external
// consumers per Go's internal/ package semantics. It is used by the ir
// package at node-construction time.
//
// # Why Normalize
//
// Two textually-equal identifiers authored with different Unicode forms
// (e.g. a precomposed "é" versus an "e" followed by a combining acute
// accent) must compare equal for content-equality and symbol-table lookups
// to behave as users expect. [Normalize] puts a string into Unicode
// Normalization Form C (NFC) so that downstream equality checks, map keys,
// and serialized output are defined over one canonical byte sequence per
// visual identifier.
//
// # Thread Safety
//
// Normalize is stateless and safe for concurrent use. No global state is
// maintained.
//
// # Dependencies
//
// This package depends on golang.org/x/text/unicode/norm and otherwise only
// on stdlib. It has no dependency on any other package in this module and
// can be imported by any layer.
package ident
