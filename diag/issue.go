package diag

// Issue represents a single diagnostic issue.
//
// Issue is immutable after construction. All fields are unexported to preserve
// immutability; use accessor methods to read values. Construct Issues using
// [NewIssue] and [IssueBuilder].
//
// Direct struct literal construction bypasses validity checks and will cause
// panics when the issue is collected via [Collector.Collect].
//
// Zero-value note: The Go zero value for Severity is Fatal (value 0). When
// constructing Issue literals in tests, set severity explicitly to avoid
// unintentionally creating Fatal issues.
type Issue struct {
	nodeID   string   // offending node id, if any (string form of ir.NodeID)
	name     string   // offending variable/reference/datasource/interface name, if any
	severity Severity // issue severity level
	code     Code     // stable programmatic identifier
	message  string   // human-readable description
	hint     string   // optional resolution suggestion
	details  []Detail // additional key-value context
}

// Severity returns the issue's severity level.
func (i Issue) Severity() Severity {
	return i.severity
}

// Code returns the issue's stable programmatic identifier.
func (i Issue) Code() Code {
	return i.code
}

// Message returns the human-readable description.
func (i Issue) Message() string {
	return i.message
}

// NodeID returns the offending node id, if any.
//
// Use [HasNodeID] to check presence; the empty string is a valid "absent"
// value since node ids are never empty strings when present.
func (i Issue) NodeID() string {
	return i.nodeID
}

// HasNodeID reports whether the issue carries a node id.
func (i Issue) HasNodeID() bool {
	return i.nodeID != ""
}

// Name returns the offending variable, reference, datasource, or interface
// name, if any.
func (i Issue) Name() string {
	return i.name
}

// HasName reports whether the issue carries a name.
func (i Issue) HasName() bool {
	return i.name != ""
}

// Hint returns the optional resolution suggestion.
func (i Issue) Hint() string {
	return i.hint
}

// IsZero reports whether the issue is a zero value.
//
// A zero-value issue has no code, no message, and no identity.
func (i Issue) IsZero() bool {
	return i.code.IsZero() && i.message == "" && i.nodeID == "" && i.name == ""
}

// IsValid reports whether the issue has the minimum required fields set.
//
// An issue is valid if it has:
//   - A valid code (not zero)
//   - A non-empty message
//   - A valid severity (not an undefined value like Severity(255))
//
// This method exists for documentation and testing; production code using
// [IssueBuilder] never needs to call it because the builder guarantees validity.
func (i Issue) IsValid() bool {
	return !i.code.IsZero() &&
		i.message != "" &&
		i.severity <= Hint // Hint (4) is the highest valid severity value
}

// Details returns a copy of the detail key-value pairs.
//
// Returns nil if no details are present. The returned slice is a defensive
// copy; modifications do not affect the original issue.
func (i Issue) Details() []Detail {
	if len(i.details) == 0 {
		return nil
	}
	cp := make([]Detail, len(i.details))
	copy(cp, i.details)
	return cp
}

// Clone returns a deep copy of the issue.
func (i Issue) Clone() Issue {
	clone := i
	if len(i.details) > 0 {
		clone.details = make([]Detail, len(i.details))
		copy(clone.details, i.details)
	}
	return clone
}
