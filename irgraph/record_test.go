package irgraph

import (
	"context"
	"errors"
	"testing"

	"github.com/huntgraph/irengine/ir"
)

func TestGraph_ToRecord_FromRecord_RoundTrip(t *testing.T) {
	ctx := context.Background()
	g := New()
	src, _ := g.Add(ctx, ir.NewDataSource("edr", "endpoints"))
	v, _ := g.AddWithPredecessor(ctx, ir.NewVariable("x"), src.ID())
	f, _ := g.AddWithPredecessor(ctx, ir.NewFilter("proc == 1"), v.ID())
	if _, err := g.AddWithPredecessor(ctx, ir.NewReturn(), f.ID()); err != nil {
		t.Fatal(err)
	}

	rec := g.ToRecord()
	if len(rec.Nodes) != 4 {
		t.Fatalf("len(rec.Nodes) = %d, want 4", len(rec.Nodes))
	}
	if len(rec.Links) != 3 {
		t.Fatalf("len(rec.Links) = %d, want 3", len(rec.Links))
	}

	loaded, err := FromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Store().Len() != g.Store().Len() {
		t.Errorf("loaded Len() = %d, want %d", loaded.Store().Len(), g.Store().Len())
	}

	live, err := loaded.GetVariable("x")
	if err != nil {
		t.Fatal(err)
	}
	if live.ID() != v.ID() {
		t.Error("FromRecord should preserve original node ids")
	}
}

func TestGraph_FromRecord_DanglingLink(t *testing.T) {
	rec := GraphRecord{
		Nodes: []ir.Record{ir.NewDataSource("edr", "endpoints").ToRecord()},
		Links: []LinkRecord{{Source: ir.NewNodeID(), Target: ir.NewNodeID()}},
	}
	_, err := FromRecord(rec)
	if !errors.Is(err, ErrInvalidSerializedGraph) {
		t.Fatalf("err = %v, want ErrInvalidSerializedGraph", err)
	}
}

func TestGraph_FromRecord_RebuildsNextSequence(t *testing.T) {
	ctx := context.Background()
	g := New()
	src, _ := g.Add(ctx, ir.NewDataSource("edr", "endpoints"))
	v, _ := g.AddWithPredecessor(ctx, ir.NewVariable("x"), src.ID())
	if _, err := g.AddWithPredecessor(ctx, ir.NewReturn(), v.ID()); err != nil {
		t.Fatal(err)
	}

	loaded, err := FromRecord(g.ToRecord())
	if err != nil {
		t.Fatal(err)
	}
	next, err := loaded.AddWithPredecessor(ctx, ir.NewReturn(), v.ID())
	if err != nil {
		t.Fatal(err)
	}
	seq, _ := next.Sequence()
	if seq != 1 {
		t.Fatalf("sequence after reload = %d, want 1", seq)
	}
}

func TestGraph_FromRecord_PropagatesInvalidInstruction(t *testing.T) {
	rec := GraphRecord{
		Nodes: []ir.Record{{ID: ir.NewNodeID(), Kind: ir.KindFilter, Attrs: map[string]any{}}},
	}
	_, err := FromRecord(rec)
	if !errors.Is(err, ir.ErrInvalidSerializedInstruction) {
		t.Fatalf("err = %v, want ErrInvalidSerializedInstruction", err)
	}
}
