package ir

import (
	"slices"

	"github.com/huntgraph/irengine/immutable"
	"github.com/huntgraph/irengine/internal/ident"
)

// Attribute keys stored in an Instruction's attribute bag.
const (
	AttrInterface   = "interface"
	AttrDataSource  = "datasource"
	AttrName        = "name"
	AttrVersion     = "version"
	AttrSequence    = "sequence"
	AttrPredicate   = "predicate"
	AttrFields      = "fields"
	AttrKey         = "key"
	AttrCount       = "count"
	AttrBy          = "by"
	AttrDescending  = "descending"
)

// unversioned is the placeholder version/sequence for a Variable or Return
// that has not yet been finalized by irgraph.Graph.Add.
const unversioned = -1

// Instruction is an immutable IR node: an identity, a kind, and a bag of
// kind-specific attributes.
//
// Instruction is a value type. [Instruction.DeepCopy] produces a new
// identity with the same attributes; [Instruction.WithVersion] and
// [Instruction.WithSequence] produce a value with the *same* identity but
// a finalized version/sequence attribute, for use by irgraph.Graph.Add at
// the moment a Variable or Return is wired to a predecessor.
type Instruction struct {
	id    NodeID
	kind  Kind
	attrs immutable.Map[string]
}

// ID returns the instruction's node identity.
func (i Instruction) ID() NodeID { return i.id }

// Kind returns the instruction's kind tag.
func (i Instruction) Kind() Kind { return i.kind }

// Category returns the coarse grouping of i's kind.
func (i Instruction) Category() Category { return i.kind.Category() }

// IsZero reports whether i is the zero Instruction (never constructed by
// one of the New* functions).
func (i Instruction) IsZero() bool { return i.id.IsZero() }

// Attr returns the raw attribute value for key.
func (i Instruction) Attr(key string) (immutable.Value, bool) {
	return i.attrs.Get(key)
}

// Interface returns the "interface" attribute (DataSource).
func (i Instruction) Interface() (string, bool) {
	return stringAttr(i, AttrInterface)
}

// DataSource returns the "datasource" attribute (DataSource).
func (i Instruction) DataSource() (string, bool) {
	return stringAttr(i, AttrDataSource)
}

// Name returns the "name" attribute (Variable, Reference).
func (i Instruction) Name() (string, bool) {
	return stringAttr(i, AttrName)
}

// Version returns the "version" attribute (Variable). A Variable freshly
// constructed but not yet added to a graph with a predecessor reports
// version -1 with ok=true; version is finalized by [Instruction.WithVersion].
func (i Instruction) Version() (int, bool) {
	return intAttr(i, AttrVersion)
}

// Sequence returns the "sequence" attribute (Return). Unfinalized the same
// way as Version.
func (i Instruction) Sequence() (int, bool) {
	return intAttr(i, AttrSequence)
}

// Predicate returns the "predicate" attribute (Filter).
func (i Instruction) Predicate() (string, bool) {
	return stringAttr(i, AttrPredicate)
}

// Fields returns the "fields" attribute (Project), in declared order.
func (i Instruction) Fields() ([]string, bool) {
	v, ok := i.attrs.Get(AttrFields)
	if !ok {
		return nil, false
	}
	sl, ok := v.Slice()
	if !ok {
		return nil, false
	}
	out := make([]string, 0, sl.Len())
	for idx := range sl.Len() {
		s, ok := sl.Get(idx).String()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// Key returns the "key" attribute (Join).
func (i Instruction) Key() (string, bool) {
	return stringAttr(i, AttrKey)
}

// Count returns the "count" attribute (Limit).
func (i Instruction) Count() (int, bool) {
	return intAttr(i, AttrCount)
}

// By returns the "by" attribute (Sort).
func (i Instruction) By() (string, bool) {
	return stringAttr(i, AttrBy)
}

// Descending returns the "descending" attribute (Sort).
func (i Instruction) Descending() (bool, bool) {
	v, ok := i.attrs.Get(AttrDescending)
	if !ok {
		return false, false
	}
	return v.Bool()
}

func stringAttr(i Instruction, key string) (string, bool) {
	v, ok := i.attrs.Get(key)
	if !ok {
		return "", false
	}
	return v.String()
}

func intAttr(i Instruction, key string) (int, bool) {
	v, ok := i.attrs.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.Int()
	if !ok {
		return 0, false
	}
	return int(n), true
}

// --- Constructors ---

// NewDataSource constructs a SourceInstruction pulling from the given
// backend interface and datasource name. Both strings are Unicode
// NFC-normalized.
func NewDataSource(iface, datasource string) Instruction {
	return newInstruction(KindDataSource, map[string]any{
		AttrInterface:  ident.Normalize(iface),
		AttrDataSource: ident.Normalize(datasource),
	})
}

// NewVariable constructs a Variable with the given name and an unfinalized
// version. The version is assigned by irgraph.Graph.Add when the variable
// is wired to a predecessor.
func NewVariable(name string) Instruction {
	return newInstruction(KindVariable, map[string]any{
		AttrName:    ident.Normalize(name),
		AttrVersion: unversioned,
	})
}

// NewReturn constructs a Return with an unfinalized sequence. The sequence
// is assigned by irgraph.Graph.Add when the return is wired to a
// predecessor.
func NewReturn() Instruction {
	return newInstruction(KindReturn, map[string]any{
		AttrSequence: unversioned,
	})
}

// NewReference constructs an unresolved by-name Reference.
func NewReference(name string) Instruction {
	return newInstruction(KindReference, map[string]any{
		AttrName: ident.Normalize(name),
	})
}

// NewFilter constructs a row-level Filter over an opaque predicate
// expression, passed through to the backend uninterpreted.
func NewFilter(predicate string) Instruction {
	return newInstruction(KindFilter, map[string]any{
		AttrPredicate: predicate,
	})
}

// NewProject constructs a row-level Project over an ordered column list.
func NewProject(fields []string) Instruction {
	return newInstruction(KindProject, map[string]any{
		AttrFields: slices.Clone(fields),
	})
}

// NewJoin constructs an equi-Join on the given key. A Join node has two
// predecessors once wired into a graph.
func NewJoin(key string) Instruction {
	return newInstruction(KindJoin, map[string]any{
		AttrKey: key,
	})
}

// NewLimit constructs a row-cap Limit.
func NewLimit(count int) Instruction {
	return newInstruction(KindLimit, map[string]any{
		AttrCount: count,
	})
}

// NewSort constructs a single-key Sort.
func NewSort(by string, descending bool) Instruction {
	return newInstruction(KindSort, map[string]any{
		AttrBy:         by,
		AttrDescending: descending,
	})
}

func newInstruction(kind Kind, attrs map[string]any) Instruction {
	return Instruction{
		id:    NewNodeID(),
		kind:  kind,
		attrs: immutable.WrapMap(attrs),
	}
}

// WithVersion returns a copy of i with the same identity and the "version"
// attribute set to v. Panics if i is not a Variable.
func (i Instruction) WithVersion(v int) Instruction {
	if i.kind != KindVariable {
		panic("ir.Instruction.WithVersion: not a Variable")
	}
	attrs := i.attrs.Clone()
	attrs[AttrVersion] = v
	return Instruction{id: i.id, kind: i.kind, attrs: immutable.WrapMap(attrs)}
}

// WithSequence returns a copy of i with the same identity and the
// "sequence" attribute set to seq. Panics if i is not a Return.
func (i Instruction) WithSequence(seq int) Instruction {
	if i.kind != KindReturn {
		panic("ir.Instruction.WithSequence: not a Return")
	}
	attrs := i.attrs.Clone()
	attrs[AttrSequence] = seq
	return Instruction{id: i.id, kind: i.kind, attrs: immutable.WrapMap(attrs)}
}

// DeepCopy returns an Instruction with a fresh identity and the same kind
// and attributes as i.
func (i Instruction) DeepCopy() Instruction {
	return Instruction{
		id:    NewNodeID(),
		kind:  i.kind,
		attrs: immutable.WrapMap(i.attrs.Clone()),
	}
}

// HasSameContentAs reports whether i and other are content-equal for the
// purpose of singleton deduplication. Content equality requires kind
// equality (the resolved form of an open question in the source design:
// two different kinds with coincidentally-equal attributes are never
// treated as the same singleton).
func (i Instruction) HasSameContentAs(other Instruction) bool {
	if i.kind != other.kind {
		return false
	}
	switch i.kind {
	case KindDataSource:
		ii, _ := i.Interface()
		oi, _ := other.Interface()
		id, _ := i.DataSource()
		od, _ := other.DataSource()
		return ii == oi && id == od
	case KindReference:
		in, _ := i.Name()
		on, _ := other.Name()
		return in == on
	case KindVariable:
		in, _ := i.Name()
		on, _ := other.Name()
		iv, _ := i.Version()
		ov, _ := other.Version()
		return in == on && iv == ov
	case KindReturn:
		is, _ := i.Sequence()
		os, _ := other.Sequence()
		return is == os
	case KindFilter:
		ip, _ := i.Predicate()
		op, _ := other.Predicate()
		return ip == op
	case KindProject:
		ifl, _ := i.Fields()
		ofl, _ := other.Fields()
		return slices.Equal(ifl, ofl)
	case KindJoin:
		ik, _ := i.Key()
		ok, _ := other.Key()
		return ik == ok
	case KindLimit:
		ic, _ := i.Count()
		oc, _ := other.Count()
		return ic == oc
	case KindSort:
		ib, _ := i.By()
		ob, _ := other.By()
		id_, _ := i.Descending()
		od_, _ := other.Descending()
		return ib == ob && id_ == od_
	default:
		return false
	}
}
