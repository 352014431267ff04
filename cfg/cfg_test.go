package cfg

import (
	"testing"

	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/ir"
)

// diamond builds an if-then-else shaped function: 1 -> {2,3} -> 4.
func diamond() *ir.FunctionDef {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.BranchConditional{Condition: 10, True: 2, False: 3}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.Branch{Target: 4}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Branch{Target: 4}})
	fn.Blocks.Set(4, ir.Block{Label: 4, Terminator: ir.Return{}})
	return fn
}

// loopy builds a function whose block 2 loops on itself: 1 -> 2 -> {2, 3}.
func loopy() *ir.FunctionDef {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	fn.Blocks.Set(1, ir.Block{Label: 1, Terminator: ir.Branch{Target: 2}})
	fn.Blocks.Set(2, ir.Block{Label: 2, Terminator: ir.BranchConditional{Condition: 10, True: 2, False: 3}})
	fn.Blocks.Set(3, ir.Block{Label: 3, Terminator: ir.Return{}})
	return fn
}

func TestDominatorCorrectness(t *testing.T) {
	fn := diamond()
	g, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dom, err := Dominators(g)
	if err != nil {
		t.Fatalf("Dominators: %v", err)
	}

	if !dom.Dominates(1, 4) {
		t.Error("entry should dominate the merge block")
	}
	if dom.Dominates(2, 4) {
		t.Error("block 2 does not dominate the merge block (block 3 reaches it too)")
	}
	if dom.IDom[4] != 1 {
		t.Errorf("immediate dominator of 4: got %d, want 1", dom.IDom[4])
	}
	if dom.IDom[2] != 1 || dom.IDom[3] != 1 {
		t.Errorf("immediate dominators of 2 and 3: got %d, %d, want 1, 1", dom.IDom[2], dom.IDom[3])
	}
}

func TestSpanningDFSClassifiesBackEdge(t *testing.T) {
	fn := loopy()
	g, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dom, err := Dominators(g)
	if err != nil {
		t.Fatalf("Dominators: %v", err)
	}
	res := SpanningDFS(g)

	back := res.BackEdges(dom)
	if len(back) != 1 || back[0].From != 2 || back[0].To != 2 {
		t.Fatalf("expected one self back edge 2->2, got %+v", back)
	}
	if !res.Reducible(dom) {
		t.Error("expected loopy to be reducible")
	}
}

func TestStronglyConnectedComponents(t *testing.T) {
	fn := loopy()
	g, err := Build(fn)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	comps := StronglyConnectedComponents(g)

	found := false
	for _, c := range comps {
		if len(c) == 1 && c[0] == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a singleton SCC for the self-looping block 2, got %+v", comps)
	}
}

func TestBuildRejectsEmptyFunction(t *testing.T) {
	fn := &ir.FunctionDef{EntryBlock: 1, Blocks: id.NewOrderedMap[ir.Block]()}
	if _, err := Build(fn); err == nil {
		t.Fatal("expected error building a cfg from a function with no blocks")
	}
}
