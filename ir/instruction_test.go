package ir

import (
	"testing"
)

func TestNewDataSource(t *testing.T) {
	instr := NewDataSource("winlog", "Sysmon")
	if instr.Kind() != KindDataSource {
		t.Fatalf("Kind() = %v; want %v", instr.Kind(), KindDataSource)
	}
	if instr.Category() != CategorySource {
		t.Errorf("Category() = %v; want %v", instr.Category(), CategorySource)
	}
	iface, ok := instr.Interface()
	if !ok || iface != "winlog" {
		t.Errorf("Interface() = (%q, %v); want (%q, true)", iface, ok, "winlog")
	}
	ds, ok := instr.DataSource()
	if !ok || ds != "Sysmon" {
		t.Errorf("DataSource() = (%q, %v); want (%q, true)", ds, ok, "Sysmon")
	}
	if instr.IsZero() {
		t.Error("IsZero() = true for a constructed instruction")
	}
}

func TestNewVariable_UnversionedUntilFinalized(t *testing.T) {
	v := NewVariable("procs")
	name, ok := v.Name()
	if !ok || name != "procs" {
		t.Fatalf("Name() = (%q, %v); want (%q, true)", name, ok, "procs")
	}
	version, ok := v.Version()
	if !ok || version != unversioned {
		t.Fatalf("Version() = (%d, %v); want (%d, true)", version, ok, unversioned)
	}
}

func TestInstruction_WithVersion(t *testing.T) {
	v := NewVariable("procs")
	finalized := v.WithVersion(2)

	if finalized.ID() != v.ID() {
		t.Error("WithVersion() changed the node identity")
	}
	version, ok := finalized.Version()
	if !ok || version != 2 {
		t.Errorf("Version() = (%d, %v); want (2, true)", version, ok)
	}
	// Original is untouched; Instruction is a value type.
	origVersion, _ := v.Version()
	if origVersion != unversioned {
		t.Errorf("original instruction mutated: Version() = %d", origVersion)
	}
}

func TestInstruction_WithVersion_PanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithVersion() on a non-Variable did not panic")
		}
	}()
	NewReturn().WithVersion(1)
}

func TestNewReturn_UnfinalizedSequence(t *testing.T) {
	r := NewReturn()
	seq, ok := r.Sequence()
	if !ok || seq != unversioned {
		t.Fatalf("Sequence() = (%d, %v); want (%d, true)", seq, ok, unversioned)
	}
}

func TestInstruction_WithSequence(t *testing.T) {
	r := NewReturn()
	finalized := r.WithSequence(3)
	if finalized.ID() != r.ID() {
		t.Error("WithSequence() changed the node identity")
	}
	seq, ok := finalized.Sequence()
	if !ok || seq != 3 {
		t.Errorf("Sequence() = (%d, %v); want (3, true)", seq, ok)
	}
}

func TestInstruction_WithSequence_PanicsOnWrongKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithSequence() on a non-Return did not panic")
		}
	}()
	NewVariable("procs").WithSequence(1)
}

func TestNewReference(t *testing.T) {
	r := NewReference("procs")
	if r.Kind() != KindReference {
		t.Fatalf("Kind() = %v; want %v", r.Kind(), KindReference)
	}
	if r.Category() != CategoryIntermediate {
		t.Errorf("Category() = %v; want %v", r.Category(), CategoryIntermediate)
	}
	name, ok := r.Name()
	if !ok || name != "procs" {
		t.Errorf("Name() = (%q, %v); want (%q, true)", name, ok, "procs")
	}
}

func TestNewFilter(t *testing.T) {
	f := NewFilter("pid > 0")
	pred, ok := f.Predicate()
	if !ok || pred != "pid > 0" {
		t.Errorf("Predicate() = (%q, %v); want (%q, true)", pred, ok, "pid > 0")
	}
}

func TestNewProject(t *testing.T) {
	fields := []string{"pid", "name"}
	p := NewProject(fields)

	got, ok := p.Fields()
	if !ok {
		t.Fatal("Fields() ok = false")
	}
	if len(got) != 2 || got[0] != "pid" || got[1] != "name" {
		t.Errorf("Fields() = %v; want %v", got, fields)
	}

	// Mutating the caller's slice after construction must not affect the
	// stored attribute.
	fields[0] = "mutated"
	got2, _ := p.Fields()
	if got2[0] != "pid" {
		t.Errorf("Fields() aliased caller's backing array: got %v", got2)
	}
}

func TestNewJoin(t *testing.T) {
	j := NewJoin("host")
	key, ok := j.Key()
	if !ok || key != "host" {
		t.Errorf("Key() = (%q, %v); want (%q, true)", key, ok, "host")
	}
}

func TestNewLimit(t *testing.T) {
	l := NewLimit(100)
	count, ok := l.Count()
	if !ok || count != 100 {
		t.Errorf("Count() = (%d, %v); want (100, true)", count, ok)
	}
}

func TestNewSort(t *testing.T) {
	s := NewSort("timestamp", true)
	by, ok := s.By()
	if !ok || by != "timestamp" {
		t.Errorf("By() = (%q, %v); want (%q, true)", by, ok, "timestamp")
	}
	desc, ok := s.Descending()
	if !ok || !desc {
		t.Errorf("Descending() = (%v, %v); want (true, true)", desc, ok)
	}
}

func TestInstruction_DeepCopy(t *testing.T) {
	orig := NewVariable("procs").WithVersion(1)
	copy := orig.DeepCopy()

	if copy.ID() == orig.ID() {
		t.Error("DeepCopy() preserved the original identity")
	}
	if copy.Kind() != orig.Kind() {
		t.Errorf("DeepCopy() Kind() = %v; want %v", copy.Kind(), orig.Kind())
	}
	name, _ := copy.Name()
	version, _ := copy.Version()
	if name != "procs" || version != 1 {
		t.Errorf("DeepCopy() attrs = (%q, %d); want (%q, 1)", name, version, "procs")
	}
}

func TestInstruction_HasSameContentAs_RequiresSameKind(t *testing.T) {
	ref := NewReference("procs")
	v := NewVariable("procs")
	if ref.HasSameContentAs(v) {
		t.Fatal("HasSameContentAs() reported equal content across different kinds")
	}
}

func TestInstruction_HasSameContentAs(t *testing.T) {
	tests := []struct {
		name string
		a, b Instruction
		want bool
	}{
		{
			name: "same datasource",
			a:    NewDataSource("winlog", "Sysmon"),
			b:    NewDataSource("winlog", "Sysmon"),
			want: true,
		},
		{
			name: "different datasource",
			a:    NewDataSource("winlog", "Sysmon"),
			b:    NewDataSource("winlog", "PowerShell"),
			want: false,
		},
		{
			name: "same reference",
			a:    NewReference("procs"),
			b:    NewReference("procs"),
			want: true,
		},
		{
			name: "different reference",
			a:    NewReference("procs"),
			b:    NewReference("conns"),
			want: false,
		},
		{
			name: "same variable version",
			a:    NewVariable("procs").WithVersion(1),
			b:    NewVariable("procs").WithVersion(1),
			want: true,
		},
		{
			name: "different variable version",
			a:    NewVariable("procs").WithVersion(1),
			b:    NewVariable("procs").WithVersion(2),
			want: false,
		},
		{
			name: "same filter predicate",
			a:    NewFilter("pid > 0"),
			b:    NewFilter("pid > 0"),
			want: true,
		},
		{
			name: "same project fields",
			a:    NewProject([]string{"pid", "name"}),
			b:    NewProject([]string{"pid", "name"}),
			want: true,
		},
		{
			name: "different project field order",
			a:    NewProject([]string{"pid", "name"}),
			b:    NewProject([]string{"name", "pid"}),
			want: false,
		},
		{
			name: "same join key",
			a:    NewJoin("host"),
			b:    NewJoin("host"),
			want: true,
		},
		{
			name: "same limit count",
			a:    NewLimit(10),
			b:    NewLimit(10),
			want: true,
		},
		{
			name: "same sort",
			a:    NewSort("ts", false),
			b:    NewSort("ts", false),
			want: true,
		},
		{
			name: "different sort direction",
			a:    NewSort("ts", false),
			b:    NewSort("ts", true),
			want: false,
		},
		{
			name: "same return sequence",
			a:    NewReturn().WithSequence(1),
			b:    NewReturn().WithSequence(1),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.HasSameContentAs(tt.b); got != tt.want {
				t.Errorf("HasSameContentAs() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestInstruction_Normalization(t *testing.T) {
	// "caf\u0065\u0301" (e + combining acute accent, NFD) and
	// "caf\u00e9" (precomposed e-acute, NFC) must normalize to the
	// same stored name.
	decomposed := NewVariable("caf\u0065\u0301")
	composed := NewVariable("caf\u00e9")

	dName, _ := decomposed.Name()
	cName, _ := composed.Name()
	if dName != cName {
		t.Errorf("normalization mismatch: %q != %q", dName, cName)
	}
	if dName != "caf\u00e9" {
		t.Errorf("Name() = %q; want NFC form %q", dName, "caf\u00e9")
	}
}

func TestInstruction_AttrMissing(t *testing.T) {
	ds := NewDataSource("winlog", "Sysmon")
	if _, ok := ds.Name(); ok {
		t.Error("Name() ok = true for a DataSource instruction")
	}
	if _, ok := ds.Predicate(); ok {
		t.Error("Predicate() ok = true for a DataSource instruction")
	}
}
