package engine

import "github.com/huntgraph/irengine/diag"

// classification records how one IdentityError "kind" label (see
// ir.NamedError.Kind) maps onto a diag code and the error taxonomy's
// recovery class (spec.md §7).
type classification struct {
	code        diag.Code
	recoverable bool
}

// classifications is keyed by the kind labels irgraph, segment, eval, and
// backend construct via ir.WrapNodeError/WrapNameError/WrapNodeAndNameError.
// A kind absent from this table is reported to the collector as E_INTERNAL
// so no failure silently escapes diagnosis.
var classifications = map[string]classification{
	"InstructionNotFound":          {diag.E_INSTRUCTION_NOT_FOUND, true},
	"VariableNotFound":             {diag.E_VARIABLE_NOT_FOUND, true},
	"ReferenceNotFound":            {diag.E_REFERENCE_NOT_FOUND, true},
	"DataSourceNotFound":           {diag.E_DATASOURCE_NOT_FOUND, true},
	"InvalidInstruction":           {diag.E_INVALID_INSTRUCTION, true},
	"InvalidSerializedInstruction": {diag.E_INVALID_SERIALIZED_INSTRUCTION, true},
	"InvalidSerializedGraph":       {diag.E_INVALID_SERIALIZED_GRAPH, true},
	"InterfaceNotFound":            {diag.E_INTERFACE_NOT_FOUND, true},
	"DataSourceError":              {diag.E_DATASOURCE_ERROR, true},

	"DuplicatedVariable":             {diag.E_DUPLICATED_VARIABLE, false},
	"DuplicatedReference":            {diag.E_DUPLICATED_REFERENCE, false},
	"DuplicatedDataSource":           {diag.E_DUPLICATED_DATASOURCE, false},
	"DuplicatedSingletonInstruction": {diag.E_DUPLICATED_SINGLETON, false},
	"MultiInterfacesInGraph":         {diag.E_MULTI_INTERFACES, false},
	"InevaluableInstruction":         {diag.E_INEVALUABLE_INSTRUCTION, false},
	"NotImplemented":                 {diag.E_NOT_IMPLEMENTED, false},
	"UnsupportedJoin":                {diag.E_UNSUPPORTED_JOIN, false},
}
