package ir

import (
	"errors"

	"github.com/huntgraph/irengine/immutable"
)

// ErrInvalidSerializedInstruction indicates a record's kind tag is
// unrecognized or a kind-required attribute is missing.
var ErrInvalidSerializedInstruction = errors.New("ir: invalid serialized instruction")

// Record is the portable, per-node form of an Instruction: an id, a kind
// tag, and a flat attribute bag. [serialize] embeds Record fields directly
// into the node JSON objects of the link-node document.
type Record struct {
	ID    NodeID
	Kind  Kind
	Attrs map[string]any
}

// ToRecord converts i to its portable record form.
func (i Instruction) ToRecord() Record {
	return Record{
		ID:    i.id,
		Kind:  i.kind,
		Attrs: i.attrs.Clone(),
	}
}

// FromRecord reconstructs an Instruction from its portable record form,
// preserving r.ID exactly (unlike the New* constructors, which always
// assign a fresh id). This is how deserialized graphs load nodes "as
// authored", including shadowed variable versions, bypassing the
// dedup/deref/versioning logic that [irgraph.Graph.Add] applies to live
// construction.
//
// FromRecord fails with [ErrInvalidSerializedInstruction] when the kind tag
// is unknown or a kind-required attribute is missing or of the wrong type.
func FromRecord(r Record) (Instruction, error) {
	if r.ID.IsZero() {
		return Instruction{}, ErrInvalidSerializedInstruction
	}

	instr := Instruction{
		id:    r.ID,
		kind:  r.Kind,
		attrs: immutable.WrapMapClone(r.Attrs),
	}

	if err := requireAttrs(instr); err != nil {
		return Instruction{}, err
	}
	return instr, nil
}

// requireAttrs validates that instr carries the attributes its kind
// requires, per spec.md §4.1/§6.1.
func requireAttrs(instr Instruction) error {
	switch instr.kind {
	case KindDataSource:
		if _, ok := instr.Interface(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
		if _, ok := instr.DataSource(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindVariable:
		if _, ok := instr.Name(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
		if _, ok := instr.Version(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindReturn:
		if _, ok := instr.Sequence(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindReference:
		if _, ok := instr.Name(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindFilter:
		if _, ok := instr.Predicate(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindProject:
		if _, ok := instr.Fields(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindJoin:
		if _, ok := instr.Key(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindLimit:
		if _, ok := instr.Count(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	case KindSort:
		if _, ok := instr.By(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
		if _, ok := instr.Descending(); !ok {
			return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
		}
	default:
		return WrapNodeError("InvalidSerializedInstruction", ErrInvalidSerializedInstruction, instr.id)
	}
	return nil
}
