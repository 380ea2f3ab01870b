// Package serialize maps an [irgraph.Graph] onto the wire document
// described by spec.md §6.1: a "{nodes, links}" JSON object where each
// node carries an "id", a "kind" tag (one of data_source, variable,
// return, reference, filter, project, join, limit, sort), and the
// kind's own attributes flattened alongside id/kind.
//
// Decode accepts JSON-with-comments via [jsonc], so hand-authored
// documents can carry "//" and "/* */" annotations that a strict JSON
// parser would reject; Encode always emits strict JSON.
package serialize
