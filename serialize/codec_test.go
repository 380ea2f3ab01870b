package serialize

import (
	"context"
	"testing"

	"github.com/huntgraph/irengine/ir"
	"github.com/huntgraph/irengine/irgraph"
)

func buildGraph(t *testing.T) *irgraph.Graph {
	t.Helper()
	g := irgraph.New()
	ctx := context.Background()
	ds, err := g.Add(ctx, ir.NewDataSource("A", "t1"))
	if err != nil {
		t.Fatal(err)
	}
	f, err := g.AddWithPredecessor(ctx, ir.NewProject([]string{"pid", "name"}), ds.ID())
	if err != nil {
		t.Fatal(err)
	}
	lim, err := g.AddWithPredecessor(ctx, ir.NewLimit(5), f.ID())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddWithPredecessor(ctx, ir.NewReturn(), lim.ID()); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := buildGraph(t)

	data, err := Encode(g)
	if err != nil {
		t.Fatal(err)
	}

	g2, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}

	if g2.Store().Len() != g.Store().Len() {
		t.Fatalf("decoded node count = %d, want %d", g2.Store().Len(), g.Store().Len())
	}

	var found bool
	for n := range g2.Store().Nodes() {
		if n.Kind() != ir.KindProject {
			continue
		}
		fields, ok := n.Fields()
		if !ok {
			t.Fatal("decoded Project node missing fields attribute")
		}
		if len(fields) != 2 || fields[0] != "pid" || fields[1] != "name" {
			t.Errorf("fields = %v, want [pid name]", fields)
		}
		found = true
	}
	if !found {
		t.Fatal("decoded graph missing Project node")
	}
}

func TestDecode_ToleratesComments(t *testing.T) {
	data := []byte(`{
		// a single datasource feeding a return
		"nodes": [
			{"id": "11111111-1111-1111-1111-111111111111", "kind": "data_source", "interface": "A", "datasource": "t1"},
			{"id": "22222222-2222-2222-2222-222222222222", "kind": "return", "sequence": 0}
		],
		"links": [
			{"source": "11111111-1111-1111-1111-111111111111", "target": "22222222-2222-2222-2222-222222222222"}
		]
	}`)
	g, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if g.Store().Len() != 2 {
		t.Fatalf("Len() = %d, want 2", g.Store().Len())
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	data := []byte(`{"nodes": [{"id": "11111111-1111-1111-1111-111111111111", "kind": "bogus"}], "links": []}`)
	if _, err := Decode(data); err == nil {
		t.Fatal("expected error for unknown kind tag")
	}
}

func TestDecode_InvalidNodeID(t *testing.T) {
	data := []byte(`{"nodes": [{"id": "not-a-uuid", "kind": "return", "sequence": 0}], "links": []}`)
	if _, err := Decode(data); err == nil {
		t.Fatal("expected error for invalid node id")
	}
}

func TestDecode_DanglingLink(t *testing.T) {
	data := []byte(`{
		"nodes": [{"id": "11111111-1111-1111-1111-111111111111", "kind": "return", "sequence": 0}],
		"links": [{"source": "11111111-1111-1111-1111-111111111111", "target": "99999999-9999-9999-9999-999999999999"}]
	}`)
	if _, err := Decode(data); err == nil {
		t.Fatal("expected error for dangling link target")
	}
}

func TestEncode_NilGraph(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Fatal("expected error for nil graph")
	}
}
