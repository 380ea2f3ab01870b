package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// package that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryInstruction is for instruction-model errors (C1): malformed
	// serialized instructions, unknown kind tags.
	CategoryInstruction

	// CategoryGraph is for graph-algebra errors (C2/C3): lookups, invariant
	// violations, and serialization faults.
	CategoryGraph

	// CategorySegment is for segmenter errors (C4): evaluability faults in an
	// emitted subgraph.
	CategorySegment

	// CategoryEval is for evaluator errors (C5): unimplemented node kinds.
	CategoryEval

	// CategoryBackend is for backend-dispatch errors (C6): missing
	// interfaces, source/transform failures.
	CategoryBackend
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryInstruction:
		return "instruction"
	case CategoryGraph:
		return "graph"
	case CategorySegment:
		return "segment"
	case CategoryEval:
		return "eval"
	case CategoryBackend:
		return "backend"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_VARIABLE_NOT_FOUND").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Instruction-model codes (C1).
var (
	// E_INVALID_SERIALIZED_INSTRUCTION indicates an unknown kind tag or a
	// missing required attribute while deserializing a single instruction.
	E_INVALID_SERIALIZED_INSTRUCTION = code("E_INVALID_SERIALIZED_INSTRUCTION", CategoryInstruction)
)

// Graph-algebra codes (C2/C3).
var (
	// E_INSTRUCTION_NOT_FOUND indicates a lookup by id or name failed.
	E_INSTRUCTION_NOT_FOUND = code("E_INSTRUCTION_NOT_FOUND", CategoryGraph)

	// E_VARIABLE_NOT_FOUND indicates get_variable found no live variable for a name.
	E_VARIABLE_NOT_FOUND = code("E_VARIABLE_NOT_FOUND", CategoryGraph)

	// E_REFERENCE_NOT_FOUND indicates get_reference found no reference for a name.
	E_REFERENCE_NOT_FOUND = code("E_REFERENCE_NOT_FOUND", CategoryGraph)

	// E_DATASOURCE_NOT_FOUND indicates get_datasource found no matching node.
	E_DATASOURCE_NOT_FOUND = code("E_DATASOURCE_NOT_FOUND", CategoryGraph)

	// E_DUPLICATED_VARIABLE indicates two variable nodes share a (name, version) pair.
	E_DUPLICATED_VARIABLE = code("E_DUPLICATED_VARIABLE", CategoryGraph)

	// E_DUPLICATED_REFERENCE indicates more than one un-derefed reference shares a name.
	E_DUPLICATED_REFERENCE = code("E_DUPLICATED_REFERENCE", CategoryGraph)

	// E_DUPLICATED_DATASOURCE indicates more than one DataSource node shares a URI.
	E_DUPLICATED_DATASOURCE = code("E_DUPLICATED_DATASOURCE", CategoryGraph)

	// E_DUPLICATED_SINGLETON indicates more than one zero-in-degree node matches
	// a singleton's content-equality class.
	E_DUPLICATED_SINGLETON = code("E_DUPLICATED_SINGLETON", CategoryGraph)

	// E_INVALID_SERIALIZED_GRAPH indicates a deserialized link referenced a node
	// id absent from the document's node list.
	E_INVALID_SERIALIZED_GRAPH = code("E_INVALID_SERIALIZED_GRAPH", CategoryGraph)
)

// Segmenter codes (C4).
var (
	// E_MULTI_INTERFACES indicates an EvaluableGraph was built spanning more
	// than one source interface; a segmenter bug.
	E_MULTI_INTERFACES = code("E_MULTI_INTERFACES", CategorySegment)

	// E_INEVALUABLE_INSTRUCTION indicates an EvaluableGraph still contains an
	// IntermediateInstruction node.
	E_INEVALUABLE_INSTRUCTION = code("E_INEVALUABLE_INSTRUCTION", CategorySegment)
)

// Evaluator codes (C5).
var (
	// E_NOT_IMPLEMENTED indicates the evaluator encountered a node kind it has
	// no materialization rule for.
	E_NOT_IMPLEMENTED = code("E_NOT_IMPLEMENTED", CategoryEval)

	// E_UNSUPPORTED_JOIN indicates a multi-predecessor transform (Join) reached
	// evaluation; the reference evaluator does not materialize joins.
	E_UNSUPPORTED_JOIN = code("E_UNSUPPORTED_JOIN", CategoryEval)
)

// Backend-dispatch codes (C6).
var (
	// E_INTERFACE_NOT_FOUND indicates no backend is registered for a required interface.
	E_INTERFACE_NOT_FOUND = code("E_INTERFACE_NOT_FOUND", CategoryBackend)

	// E_DATASOURCE_ERROR indicates a backend failed to fetch or transform data.
	E_DATASOURCE_ERROR = code("E_DATASOURCE_ERROR", CategoryBackend)

	// E_INVALID_INSTRUCTION indicates a backend rejected a transform's parameters.
	E_INVALID_INSTRUCTION = code("E_INVALID_INSTRUCTION", CategoryBackend)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Instruction
	E_INVALID_SERIALIZED_INSTRUCTION,
	// Graph
	E_INSTRUCTION_NOT_FOUND,
	E_VARIABLE_NOT_FOUND,
	E_REFERENCE_NOT_FOUND,
	E_DATASOURCE_NOT_FOUND,
	E_DUPLICATED_VARIABLE,
	E_DUPLICATED_REFERENCE,
	E_DUPLICATED_DATASOURCE,
	E_DUPLICATED_SINGLETON,
	E_INVALID_SERIALIZED_GRAPH,
	// Segment
	E_MULTI_INTERFACES,
	E_INEVALUABLE_INSTRUCTION,
	// Eval
	E_NOT_IMPLEMENTED,
	E_UNSUPPORTED_JOIN,
	// Backend
	E_INTERFACE_NOT_FOUND,
	E_DATASOURCE_ERROR,
	E_INVALID_INSTRUCTION,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
