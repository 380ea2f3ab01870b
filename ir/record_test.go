package ir

import (
	"errors"
	"testing"
)

func TestInstruction_ToRecord_FromRecord_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		instr Instruction
	}{
		{"data source", NewDataSource("winlog", "Sysmon")},
		{"variable", NewVariable("procs").WithVersion(1)},
		{"return", NewReturn().WithSequence(0)},
		{"reference", NewReference("procs")},
		{"filter", NewFilter("pid > 0")},
		{"project", NewProject([]string{"pid", "name"})},
		{"join", NewJoin("host")},
		{"limit", NewLimit(50)},
		{"sort", NewSort("ts", true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.instr.ToRecord()
			if rec.ID != tt.instr.ID() {
				t.Fatalf("ToRecord().ID = %v; want %v", rec.ID, tt.instr.ID())
			}
			if rec.Kind != tt.instr.Kind() {
				t.Fatalf("ToRecord().Kind = %v; want %v", rec.Kind, tt.instr.Kind())
			}

			got, err := FromRecord(rec)
			if err != nil {
				t.Fatalf("FromRecord() error = %v", err)
			}
			if got.ID() != tt.instr.ID() {
				t.Errorf("FromRecord().ID() = %v; want %v", got.ID(), tt.instr.ID())
			}
			if got.Kind() != tt.instr.Kind() {
				t.Errorf("FromRecord().Kind() = %v; want %v", got.Kind(), tt.instr.Kind())
			}
			if !got.HasSameContentAs(tt.instr) {
				t.Errorf("FromRecord() content differs from original")
			}
		})
	}
}

func TestFromRecord_PreservesOriginalID(t *testing.T) {
	orig := NewVariable("procs").WithVersion(4)
	rec := orig.ToRecord()

	got, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord() error = %v", err)
	}
	if got.ID() != orig.ID() {
		t.Error("FromRecord() did not preserve the original node id")
	}
}

func TestFromRecord_ZeroID(t *testing.T) {
	rec := Record{Kind: KindVariable, Attrs: map[string]any{AttrName: "procs", AttrVersion: 0}}
	_, err := FromRecord(rec)
	if !errors.Is(err, ErrInvalidSerializedInstruction) {
		t.Fatalf("FromRecord() error = %v; want %v", err, ErrInvalidSerializedInstruction)
	}
}

func TestFromRecord_UnknownKind(t *testing.T) {
	rec := Record{ID: NewNodeID(), Kind: Kind(200), Attrs: map[string]any{}}
	_, err := FromRecord(rec)
	if !errors.Is(err, ErrInvalidSerializedInstruction) {
		t.Fatalf("FromRecord() error = %v; want %v", err, ErrInvalidSerializedInstruction)
	}
}

func TestFromRecord_MissingRequiredAttr(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{
			name: "data source missing datasource",
			rec:  Record{ID: NewNodeID(), Kind: KindDataSource, Attrs: map[string]any{AttrInterface: "winlog"}},
		},
		{
			name: "variable missing version",
			rec:  Record{ID: NewNodeID(), Kind: KindVariable, Attrs: map[string]any{AttrName: "procs"}},
		},
		{
			name: "return missing sequence",
			rec:  Record{ID: NewNodeID(), Kind: KindReturn, Attrs: map[string]any{}},
		},
		{
			name: "reference missing name",
			rec:  Record{ID: NewNodeID(), Kind: KindReference, Attrs: map[string]any{}},
		},
		{
			name: "filter missing predicate",
			rec:  Record{ID: NewNodeID(), Kind: KindFilter, Attrs: map[string]any{}},
		},
		{
			name: "project missing fields",
			rec:  Record{ID: NewNodeID(), Kind: KindProject, Attrs: map[string]any{}},
		},
		{
			name: "join missing key",
			rec:  Record{ID: NewNodeID(), Kind: KindJoin, Attrs: map[string]any{}},
		},
		{
			name: "limit missing count",
			rec:  Record{ID: NewNodeID(), Kind: KindLimit, Attrs: map[string]any{}},
		},
		{
			name: "sort missing descending",
			rec:  Record{ID: NewNodeID(), Kind: KindSort, Attrs: map[string]any{AttrBy: "ts"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecord(tt.rec)
			if !errors.Is(err, ErrInvalidSerializedInstruction) {
				t.Fatalf("FromRecord() error = %v; want %v", err, ErrInvalidSerializedInstruction)
			}
			var identErr *IdentityError
			if !errors.As(err, &identErr) {
				t.Fatal("FromRecord() error does not satisfy *IdentityError")
			}
			id, ok := identErr.NodeID()
			if !ok || id != tt.rec.ID {
				t.Errorf("error NodeID() = (%v, %v); want (%v, true)", id, ok, tt.rec.ID)
			}
		})
	}
}

func TestRecord_AttrsIndependentOfInstruction(t *testing.T) {
	instr := NewVariable("procs").WithVersion(1)
	rec := instr.ToRecord()

	rec.Attrs[AttrName] = "mutated"

	name, _ := instr.Name()
	if name != "procs" {
		t.Errorf("mutating Record.Attrs affected the original Instruction: Name() = %q", name)
	}
}
