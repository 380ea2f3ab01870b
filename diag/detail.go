package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or type.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or type received.
	DetailKeyGot = "got"

	// DetailKeyNodeID is the instruction node id involved in the diagnostic.
	DetailKeyNodeID = "node_id"

	// DetailKeyKind is the instruction kind involved (e.g., "variable", "filter").
	DetailKeyKind = "kind"

	// DetailKeyName is the variable, reference, or datasource name involved.
	DetailKeyName = "name"

	// DetailKeyVersion is a variable's SSA version number.
	DetailKeyVersion = "version"

	// DetailKeyInterface is the source interface name (backend registration key).
	DetailKeyInterface = "interface"

	// DetailKeyReason is the failure reason discriminant.
	DetailKeyReason = "reason"

	// DetailKeyField is the serialized-document field name involved in a
	// deserialization error.
	DetailKeyField = "field"

	// DetailKeyCount is a generic numeric count (e.g., number of matching
	// singleton candidates, number of dropped issues).
	DetailKeyCount = "count"
)

// ExpectedGot creates a pair of details for type or kind mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// NodeKind creates detail entries identifying a node by id and kind.
//
// Use for diagnostics like E_INSTRUCTION_NOT_FOUND or
// E_INVALID_SERIALIZED_INSTRUCTION where both the id and the offending kind
// tag are useful to a caller.
func NodeKind(nodeID, kind string) []Detail {
	return []Detail{
		{Key: DetailKeyNodeID, Value: nodeID},
		{Key: DetailKeyKind, Value: kind},
	}
}

// NamedSymbol creates detail entries for symbol-table diagnostics.
//
// Use for diagnostics like E_VARIABLE_NOT_FOUND, E_DUPLICATED_VARIABLE, or
// E_DUPLICATED_REFERENCE where a name (and optionally a version) identifies
// the offending symbol.
func NamedSymbol(name, version string) []Detail {
	return []Detail{
		{Key: DetailKeyName, Value: name},
		{Key: DetailKeyVersion, Value: version},
	}
}
