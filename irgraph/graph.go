package irgraph

import (
	"context"
	"log/slog"
	"sync"

	"github.com/huntgraph/irengine/internal/ident"
	"github.com/huntgraph/irengine/internal/trace"
	"github.com/huntgraph/irengine/ir"
)

// Graph layers the IR graph algebra (spec.md §4.3) on top of a [Store]:
// singleton deduplication for zero-predecessor SourceInstruction and
// Reference nodes, SSA-style Variable versioning and Return sequencing,
// reference dereferencing against a live-variable symbol table, and union
// (compose) of a second Graph's fragment.
//
// A zero Graph is not usable; construct with [New].
type Graph struct {
	store  *Store
	config graphConfig
	mu     sync.RWMutex

	// liveVariable maps a normalized variable name to the node-id of its
	// highest-version instance currently in the graph.
	liveVariable map[string]ir.NodeID

	// nextSequence is the sequence value the next Return added via
	// AddWithPredecessor will receive.
	nextSequence int
}

// New returns an empty Graph.
func New(opts ...GraphOption) *Graph {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph{
		store:        NewStore(),
		config:       cfg,
		liveVariable: make(map[string]ir.NodeID),
	}
}

// Store returns the graph's underlying node/edge store for read-only
// inspection (the segmenter builds subgraphs directly from it).
func (g *Graph) Store() *Store { return g.store }

// Add inserts node with no predecessor, per spec.md §4.3's dispatch rules:
//
//   - If node's id is already present, it is returned unchanged.
//   - A Reference attempts to resolve against the live-variable symbol
//     table; on success the live Variable is returned and node is not
//     inserted. On failure, node is inserted via the singleton guard.
//   - A DataSource is inserted via the singleton guard: an existing
//     zero-in-degree node with equal content is returned instead of
//     inserting a duplicate; more than one such match is
//     [ErrDuplicatedSingleton].
//   - Anything else (a TransformingInstruction added as a bare root) is
//     inserted as-is.
func (g *Graph) Add(ctx context.Context, node ir.Instruction) (ir.Instruction, error) {
	if g == nil {
		return ir.Instruction{}, ErrNilGraph
	}
	op := trace.Begin(ctx, g.config.logger, "irengine.irgraph.add",
		slog.String("kind", node.Kind().String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.addLocked(node, true)
	retErr = err
	return result, err
}

// AddNoDeref is [Add] with deref disabled: a Reference is always inserted
// via the singleton guard rather than resolved against the symbol table.
// Exposed for callers (and [Graph.Union]'s internals) that need the raw
// singleton-insertion behavior spec.md §4.3 describes for "deref=false".
func (g *Graph) AddNoDeref(ctx context.Context, node ir.Instruction) (ir.Instruction, error) {
	if g == nil {
		return ir.Instruction{}, ErrNilGraph
	}
	op := trace.Begin(ctx, g.config.logger, "irengine.irgraph.add_no_deref",
		slog.String("kind", node.Kind().String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.addLocked(node, false)
	retErr = err
	return result, err
}

// addLocked implements the dispatch of spec.md §4.3's add(); callers must
// hold g.mu for writing.
func (g *Graph) addLocked(node ir.Instruction, deref bool) (ir.Instruction, error) {
	if existing, ok := g.store.Node(node.ID()); ok {
		return existing, nil
	}

	switch node.Kind() {
	case ir.KindReference:
		if deref {
			name, _ := node.Name()
			if liveID, ok := g.liveVariable[name]; ok {
				live, _ := g.store.Node(liveID)
				return live, nil
			}
		}
		return g.addSingleton(node)
	case ir.KindDataSource:
		return g.addSingleton(node)
	default:
		g.store.AddNode(node)
		return node, nil
	}
}

// addSingleton inserts node under the singleton guard: a zero-in-degree
// node with equal content stands in for node instead of a duplicate being
// created. Caller must hold g.mu for writing.
func (g *Graph) addSingleton(node ir.Instruction) (ir.Instruction, error) {
	var match ir.Instruction
	found := 0
	for existing := range g.store.Nodes() {
		if g.store.InDegree(existing.ID()) != 0 {
			continue
		}
		if !existing.HasSameContentAs(node) {
			continue
		}
		match = existing
		found++
	}

	switch found {
	case 0:
		g.store.AddNode(node)
		return node, nil
	case 1:
		return match, nil
	default:
		name, _ := node.Name()
		return ir.Instruction{}, wrapName("DuplicatedSingletonInstruction", ErrDuplicatedSingleton, name)
	}
}

// AddWithPredecessor inserts node as the sole successor of predecessor,
// finalizing a Variable's version (live_version(name)+1, or 0 if none) or
// a Return's sequence (one past the graph's current maximum), per
// spec.md §4.3. Any other TransformingInstruction kind is inserted with
// no further bookkeeping beyond the edge.
//
// If node's id is already present, the stored node is returned unchanged
// and no edge is added. Otherwise fails with [ErrInstructionNotFound] if
// predecessor is not in the graph.
func (g *Graph) AddWithPredecessor(ctx context.Context, node ir.Instruction, predecessor ir.NodeID) (ir.Instruction, error) {
	if g == nil {
		return ir.Instruction{}, ErrNilGraph
	}
	op := trace.Begin(ctx, g.config.logger, "irengine.irgraph.add_with_predecessor",
		slog.String("kind", node.Kind().String()))
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	result, err := g.addWithPredecessorLocked(node, predecessor)
	retErr = err
	return result, err
}

func (g *Graph) addWithPredecessorLocked(node ir.Instruction, predecessor ir.NodeID) (ir.Instruction, error) {
	if existing, ok := g.store.Node(node.ID()); ok {
		return existing, nil
	}
	if !g.store.Has(predecessor) {
		return ir.Instruction{}, wrapNode("InstructionNotFound", ErrInstructionNotFound, predecessor)
	}

	switch node.Kind() {
	case ir.KindVariable:
		name, _ := node.Name()
		version := 0
		if liveID, ok := g.liveVariable[name]; ok {
			live, _ := g.store.Node(liveID)
			v, _ := live.Version()
			version = v + 1
		}
		node = node.WithVersion(version)
		g.store.AddNode(node)
		g.liveVariable[name] = node.ID()
	case ir.KindReturn:
		node = node.WithSequence(g.nextSequence)
		g.nextSequence++
		g.store.AddNode(node)
	default:
		g.store.AddNode(node)
	}

	if err := g.store.AddEdge(predecessor, node.ID()); err != nil {
		return ir.Instruction{}, err
	}
	return node, nil
}

// AddJoin inserts a Join node with its two predecessors. Joins are the
// data model's one multi-predecessor TransformingInstruction (spec.md
// §9); AddWithPredecessor's single-predecessor contract does not cover
// them, so they get this dedicated entry point. The reference evaluator
// rejects Join nodes at evaluation time (see package eval); Add-time
// construction is always accepted.
func (g *Graph) AddJoin(ctx context.Context, node ir.Instruction, left, right ir.NodeID) (ir.Instruction, error) {
	if g == nil {
		return ir.Instruction{}, ErrNilGraph
	}
	if node.Kind() != ir.KindJoin {
		panic("irgraph.Graph.AddJoin: node is not a Join")
	}
	op := trace.Begin(ctx, g.config.logger, "irengine.irgraph.add_join")
	var retErr error
	defer func() { op.End(retErr) }()

	g.mu.Lock()
	defer g.mu.Unlock()

	if existing, ok := g.store.Node(node.ID()); ok {
		return existing, nil
	}
	if !g.store.Has(left) {
		retErr = wrapNode("InstructionNotFound", ErrInstructionNotFound, left)
		return ir.Instruction{}, retErr
	}
	if !g.store.Has(right) {
		retErr = wrapNode("InstructionNotFound", ErrInstructionNotFound, right)
		return ir.Instruction{}, retErr
	}

	g.store.AddNode(node)
	if err := g.store.AddEdge(left, node.ID()); err != nil {
		retErr = err
		return ir.Instruction{}, err
	}
	if err := g.store.AddEdge(right, node.ID()); err != nil {
		retErr = err
		return ir.Instruction{}, err
	}
	return node, nil
}

// GetVariable returns the live (highest-version) Variable instruction for
// name. Fails with [ErrVariableNotFound] if no Variable of that name
// exists, or [ErrDuplicatedVariable] if two nodes share the live version
// (an invariant violation that can only arise from a malformed
// deserialized graph; see [Graph.FromRecord]).
func (g *Graph) GetVariable(name string) (ir.Instruction, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	name = ident.Normalize(name)
	var best ir.Instruction
	bestVersion := -1
	hasBest := false
	tiedAtBest := 0

	for n := range g.store.Nodes() {
		if n.Kind() != ir.KindVariable {
			continue
		}
		nm, _ := n.Name()
		if nm != name {
			continue
		}
		v, _ := n.Version()
		switch {
		case !hasBest || v > bestVersion:
			best, bestVersion, hasBest, tiedAtBest = n, v, true, 1
		case v == bestVersion:
			tiedAtBest++
		}
	}

	if !hasBest {
		return ir.Instruction{}, wrapName("VariableNotFound", ErrVariableNotFound, name)
	}
	if tiedAtBest > 1 {
		return ir.Instruction{}, wrapName("DuplicatedVariable", ErrDuplicatedVariable, name)
	}
	return best, nil
}

// GetVariables returns one Variable instruction per distinct name: the
// live (highest-version) instance.
func (g *Graph) GetVariables() []ir.Instruction {
	g.mu.RLock()
	defer g.mu.RUnlock()

	best := make(map[string]ir.Instruction, len(g.liveVariable))
	for n := range g.store.Nodes() {
		if n.Kind() != ir.KindVariable {
			continue
		}
		name, _ := n.Name()
		version, _ := n.Version()
		if cur, ok := best[name]; ok {
			curVersion, _ := cur.Version()
			if version <= curVersion {
				continue
			}
		}
		best[name] = n
	}

	out := make([]ir.Instruction, 0, len(best))
	for _, instr := range best {
		out = append(out, instr)
	}
	return out
}

// Union merges h into g, per spec.md §4.3:
//
//  1. Snapshot g's live variables before any mutation.
//  2. Shift each Variable in h whose name is already live in g by
//     (that live version + 1); Variables with new names keep their
//     authored version.
//  3. Shift every Return in h by g's current next-sequence value.
//  4. Add h's References first, through the singleton/deref path against
//     g's pre-merge symbol table, so they never accidentally resolve to
//     a Variable h itself is about to introduce.
//  5. Add h's remaining nodes through the same path.
//  6. Add h's edges, rewritten through the old-id -> new-id mapping built
//     by steps 4-5.
//
// Union asserts acyclicity of the result and fails with
// [ErrCycleDetected] (indicating a construction bug) if it does not hold.
func (g *Graph) Union(ctx context.Context, h *Graph) error {
	if g == nil || h == nil {
		return ErrNilGraph
	}
	op := trace.Begin(ctx, g.config.logger, "irengine.irgraph.union")
	var retErr error
	defer func() { op.End(retErr) }()

	h.mu.RLock()
	defer h.mu.RUnlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	preMergeLive := make(map[string]ir.NodeID, len(g.liveVariable))
	for name, id := range g.liveVariable {
		preMergeLive[name] = id
	}

	// Pre-compute shifted copies of h's Variable/Return nodes.
	shifted := make(map[ir.NodeID]ir.Instruction, h.store.Len())
	maxShiftedSeq := -1
	for n := range h.store.Nodes() {
		switch n.Kind() {
		case ir.KindVariable:
			name, _ := n.Name()
			if liveID, ok := preMergeLive[name]; ok {
				live, _ := g.store.Node(liveID)
				base, _ := live.Version()
				v, _ := n.Version()
				n = n.WithVersion(base + 1 + v)
			}
		case ir.KindReturn:
			seq, _ := n.Sequence()
			seq += g.nextSequence
			n = n.WithSequence(seq)
			if seq > maxShiftedSeq {
				maxShiftedSeq = seq
			}
		}
		shifted[n.ID()] = n
	}

	mapping := make(map[ir.NodeID]ir.NodeID, len(shifted))

	// Step 4: references first.
	for id, n := range shifted {
		if n.Kind() != ir.KindReference {
			continue
		}
		resolved, err := g.addLocked(n, true)
		if err != nil {
			retErr = err
			return err
		}
		mapping[id] = resolved.ID()
	}

	// Step 5: everything else.
	for id, n := range shifted {
		if n.Kind() == ir.KindReference {
			continue
		}
		resolved, err := g.addLocked(n, true)
		if err != nil {
			retErr = err
			return err
		}
		mapping[id] = resolved.ID()
	}

	// Refresh the live-variable index against the post-merge node set.
	for _, n := range shifted {
		if n.Kind() != ir.KindVariable {
			continue
		}
		resultID := mapping[n.ID()]
		resultInstr, _ := g.store.Node(resultID)
		name, _ := resultInstr.Name()
		version, _ := resultInstr.Version()
		if cur, ok := g.liveVariable[name]; ok {
			curInstr, _ := g.store.Node(cur)
			curVersion, _ := curInstr.Version()
			if version <= curVersion {
				continue
			}
		}
		g.liveVariable[name] = resultID
	}

	if maxShiftedSeq >= 0 && maxShiftedSeq+1 > g.nextSequence {
		g.nextSequence = maxShiftedSeq + 1
	}

	// Step 6: rewire h's edges through the mapping.
	for e := range h.store.Edges() {
		from, ok := mapping[e.From]
		if !ok {
			from = e.From
		}
		to, ok := mapping[e.To]
		if !ok {
			to = e.To
		}
		if !g.store.Has(from) || !g.store.Has(to) {
			continue
		}
		if err := g.store.AddEdge(from, to); err != nil {
			retErr = err
			return err
		}
	}

	if g.hasCycleLocked() {
		retErr = ErrCycleDetected
		return retErr
	}
	return nil
}

// hasCycleLocked reports whether the store contains a cycle. Caller must
// hold g.mu.
func (g *Graph) hasCycleLocked() bool {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[ir.NodeID]int, g.store.Len())
	var visit func(ir.NodeID) bool
	visit = func(id ir.NodeID) bool {
		switch state[id] {
		case visiting:
			return true
		case done:
			return false
		}
		state[id] = visiting
		for next := range g.store.out[id] {
			if visit(next) {
				return true
			}
		}
		state[id] = done
		return false
	}
	for n := range g.store.Nodes() {
		if visit(n.ID()) {
			return true
		}
	}
	return false
}

// ShallowCopy returns a new Graph sharing node identities with g: the
// same instructions and edges, but an independent Store and symbol table
// so mutations to the copy do not affect g.
func (g *Graph) ShallowCopy() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	liveVariable := make(map[string]ir.NodeID, len(g.liveVariable))
	for k, v := range g.liveVariable {
		liveVariable[k] = v
	}
	return &Graph{
		store:        g.store.clone(),
		config:       g.config,
		liveVariable: liveVariable,
		nextSequence: g.nextSequence,
	}
}

// DeepCopy returns a new Graph isomorphic to g with every node assigned a
// fresh node-id (spec.md §3.3: "a deep copy produces a fresh graph with
// new node-ids for every node").
func (g *Graph) DeepCopy() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := New()
	out.config = g.config
	mapping := make(map[ir.NodeID]ir.NodeID, g.store.Len())

	for n := range g.store.Nodes() {
		fresh := n.DeepCopy()
		mapping[n.ID()] = fresh.ID()
		out.store.AddNode(fresh)
	}
	for e := range g.store.Edges() {
		_ = out.store.AddEdge(mapping[e.From], mapping[e.To])
	}
	for name, id := range g.liveVariable {
		out.liveVariable[name] = mapping[id]
	}
	out.nextSequence = g.nextSequence
	return out
}
