package ir

import "github.com/google/uuid"

// NodeID is a 128-bit identifier assigned to an Instruction at creation.
// NodeID is globally unique and never reused; equality between two nodes
// in a graph is always comparison by NodeID.
type NodeID uuid.UUID

// NewNodeID returns a fresh, globally-unique NodeID.
func NewNodeID() NodeID {
	return NodeID(uuid.New())
}

// ParseNodeID parses a canonical UUID string into a NodeID.
func ParseNodeID(s string) (NodeID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NodeID{}, err
	}
	return NodeID(u), nil
}

// String returns the canonical UUID string form.
func (n NodeID) String() string {
	return uuid.UUID(n).String()
}

// IsZero reports whether n is the zero NodeID (never assigned to a real
// Instruction; used as a sentinel for "no node").
func (n NodeID) IsZero() bool {
	return n == NodeID{}
}
