package structural

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/spirvcore/cfg"
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/ir"
)

// containsKind reports whether any node in the tree rooted at n has kind k.
func containsKind(n *Node, k Kind) bool {
	if n == nil {
		return false
	}
	if n.Kind == k {
		return true
	}
	for _, c := range n.Children {
		if containsKind(c, k) {
			return true
		}
	}
	return false
}

func build(t *testing.T, fn *ir.FunctionDef) (*cfg.Graph, *cfg.DomInfo) {
	t.Helper()
	g, err := cfg.Build(fn)
	if err != nil {
		t.Fatalf("cfg.Build: %v", err)
	}
	dom, err := cfg.Dominators(g)
	if err != nil {
		t.Fatalf("cfg.Dominators: %v", err)
	}
	return g, dom
}

func TestIfThenElseControlTree(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.BranchConditional{Condition: 10, True: 2, False: 3}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.Branch{Target: 4}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Branch{Target: 4}})
	fn.Blocks.Set(4, ir.Block{Label: 4, Terminator: ir.Return{}})

	g, dom := build(t, fn)
	tree, err := Analyze(g, dom, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !IsStructured(tree) {
		t.Fatalf("expected if-then-else diamond to be structured, got root kind %s", tree.Root.Kind)
	}
	if diff := cmp.Diff([]id.ID{1, 2, 3, 4}, tree.Root.Blocks); diff != "" {
		t.Errorf("control tree covers the wrong block set (-want +got):\n%s", diff)
	}
	if !containsKind(tree.Root, KindIfThenElse) {
		t.Error("expected an IfThenElse region somewhere in the control tree")
	}
}

func TestWhileLoopControlTree(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.Branch{Target: 2}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.BranchConditional{Condition: 10, True: 3, False: 4}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Branch{Target: 2}})
	fn.Blocks.Set(4, ir.Block{Label: 4, Terminator: ir.Return{}})

	g, dom := build(t, fn)
	tree, err := Analyze(g, dom, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !IsStructured(tree) {
		t.Fatalf("expected while loop to be structured, got root kind %s", tree.Root.Kind)
	}
	if diff := cmp.Diff([]id.ID{1, 2, 3, 4}, tree.Root.Blocks); diff != "" {
		t.Errorf("control tree covers the wrong block set (-want +got):\n%s", diff)
	}
	if !containsKind(tree.Root, KindWhileLoop) && !containsKind(tree.Root, KindNaturalLoop) {
		t.Error("expected a loop region somewhere in the control tree")
	}
}

// TestIrreducibleCFG builds the classic two-entry loop (branches into 2 and
// 3 which loop into each other) that no single-header loop pattern can
// separate, and checks it is correctly reported as not structured.
func TestIrreducibleCFG(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.BranchConditional{Condition: 10, True: 2, False: 3}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.Branch{Target: 3}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Branch{Target: 2}})

	g, dom := build(t, fn)
	tree, err := Analyze(g, dom, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if IsStructured(tree) {
		t.Fatal("expected the two-entry loop to be reported as not structured")
	}
}

// TestLinearChainFlattensIntoSingleBlockRegion builds a straight-line run of
// four blocks (1->2->3->4, each with exactly one predecessor and one
// successor along the chain) and checks that matchBlock absorbs the whole
// run in a single contraction: one KindBlock region with all four original
// blocks as direct children, not a right-nested tower of 2-element Block
// regions built up over repeated passes.
func TestLinearChainFlattensIntoSingleBlockRegion(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.Branch{Target: 2}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.Branch{Target: 3}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Branch{Target: 4}})
	fn.Blocks.Set(4, ir.Block{Label: 4, Terminator: ir.Return{}})

	g, dom := build(t, fn)
	tree, err := Analyze(g, dom, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !IsStructured(tree) {
		t.Fatalf("expected a linear chain to be structured, got root kind %s", tree.Root.Kind)
	}
	if tree.Root.Kind != KindBlock {
		t.Fatalf("expected root kind Block, got %s", tree.Root.Kind)
	}
	if diff := cmp.Diff([]id.ID{1, 2, 3, 4}, tree.Root.Blocks); diff != "" {
		t.Errorf("control tree covers the wrong block set (-want +got):\n%s", diff)
	}
	wantEntries := []id.ID{1, 2, 3, 4}
	var gotEntries []id.ID
	for _, c := range tree.Root.Children {
		if c.Kind != KindBlock {
			t.Errorf("expected leaf child kind Block, got %s", c.Kind)
		}
		gotEntries = append(gotEntries, c.Entry)
	}
	if diff := cmp.Diff(wantEntries, gotEntries); diff != "" {
		t.Errorf("expected one flat Block region with all four leaves as direct children (-want +got):\n%s", diff)
	}
}

func TestSelfLoopIsNotStructured(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.BranchConditional{Condition: 10, True: 1, False: 2}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.Return{}})

	g, dom := build(t, fn)
	tree, err := Analyze(g, dom, Options{})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if IsStructured(tree) {
		t.Fatal("expected a bare self-loop to be reported as not structured")
	}
}
