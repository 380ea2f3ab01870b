package ir

import "fmt"

// NamedError is satisfied by the sentinel-wrapping error types of irgraph,
// segment, and eval, letting a caller recover the offending node identity
// without string matching.
type NamedError interface {
	error
	// Kind returns a short, stable label for the error taxonomy entry
	// (e.g. "InstructionNotFound"), independent of the wrapped message text.
	Kind() string
	// NodeID returns the node-id that triggered the error, if any.
	NodeID() (NodeID, bool)
	// Name returns the symbol name that triggered the error, if any.
	Name() (string, bool)
}

// IdentityError wraps a sentinel error with the node-id and/or name that
// triggered it, satisfying [NamedError]. Packages construct one via
// [WrapNodeError] or [WrapNameError] rather than building ad hoc error
// strings, so every diagnosable failure in the engine carries the same
// shape.
type IdentityError struct {
	kind      string
	sentinel  error
	nodeID    NodeID
	hasNodeID bool
	name      string
	hasName   bool
}

// WrapNodeError builds an IdentityError carrying the node-id that
// triggered sentinel.
func WrapNodeError(kind string, sentinel error, id NodeID) *IdentityError {
	return &IdentityError{kind: kind, sentinel: sentinel, nodeID: id, hasNodeID: true}
}

// WrapNameError builds an IdentityError carrying the symbol name that
// triggered sentinel.
func WrapNameError(kind string, sentinel error, name string) *IdentityError {
	return &IdentityError{kind: kind, sentinel: sentinel, name: name, hasName: true}
}

// WrapNodeAndNameError builds an IdentityError carrying both a node-id and
// a symbol name.
func WrapNodeAndNameError(kind string, sentinel error, id NodeID, name string) *IdentityError {
	return &IdentityError{kind: kind, sentinel: sentinel, nodeID: id, hasNodeID: true, name: name, hasName: true}
}

func (e *IdentityError) Error() string {
	switch {
	case e.hasNodeID && e.hasName:
		return fmt.Sprintf("%s: node %s (%q)", e.sentinel, e.nodeID, e.name)
	case e.hasNodeID:
		return fmt.Sprintf("%s: node %s", e.sentinel, e.nodeID)
	case e.hasName:
		return fmt.Sprintf("%s: %q", e.sentinel, e.name)
	default:
		return e.sentinel.Error()
	}
}

// Unwrap returns the wrapped sentinel, so errors.Is(err, ErrXxx) works.
func (e *IdentityError) Unwrap() error { return e.sentinel }

// Kind returns the short taxonomy label this error was constructed with.
func (e *IdentityError) Kind() string { return e.kind }

// NodeID returns the node-id that triggered the error, if any.
func (e *IdentityError) NodeID() (NodeID, bool) { return e.nodeID, e.hasNodeID }

// Name returns the symbol name that triggered the error, if any.
func (e *IdentityError) Name() (string, bool) { return e.name, e.hasName }
