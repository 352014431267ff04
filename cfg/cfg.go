// Package cfg builds a control-flow graph from a function's basic blocks
// and computes the classical analyses structural analysis is built on:
// dominators, a spanning depth-first search with edge classification, and
// strongly connected components.
//
// The graph shape (successors/predecessors keyed by block, built from
// terminators) follows the same pattern as the reachability analysis in
// itsfuad-Ferret's internal/semantics/controlflow/cfg.go, adapted from that
// checker's basic-block-with-successors-and-predecessors model to the
// dominator/DFS/SCC machinery structural analysis needs.
package cfg

import (
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/ir"
	"github.com/gogpu/spirvcore/spirverr"
)

// Graph is a function's control-flow graph: block ids with successor and
// predecessor edges derived from each block's terminator.
type Graph struct {
	Entry  id.ID
	blocks []id.ID // insertion (declaration) order
	succ   map[id.ID][]id.ID
	pred   map[id.ID][]id.ID
}

// Blocks returns the graph's vertices in declaration order.
func (g *Graph) Blocks() []id.ID { return append([]id.ID(nil), g.blocks...) }

// Successors returns v's outgoing edges, in terminator operand order.
func (g *Graph) Successors(v id.ID) []id.ID { return g.succ[v] }

// Predecessors returns v's incoming edges, in the order they were discovered.
func (g *Graph) Predecessors(v id.ID) []id.ID { return g.pred[v] }

// Build constructs a Graph from fn's basic blocks, adding one edge per
// successor named by each block's terminator.
func Build(fn *ir.FunctionDef) (*Graph, error) {
	if fn.Blocks.Len() == 0 {
		return nil, &spirverr.InvariantViolation{Detail: "cfg: function has no blocks"}
	}
	g := &Graph{
		Entry: fn.EntryBlock,
		succ:  make(map[id.ID][]id.ID, fn.Blocks.Len()),
		pred:  make(map[id.ID][]id.ID, fn.Blocks.Len()),
	}
	fn.Blocks.Each(func(label id.ID, blk ir.Block) {
		g.blocks = append(g.blocks, label)
		if _, ok := g.succ[label]; !ok {
			g.succ[label] = nil
		}
	})
	fn.Blocks.Each(func(label id.ID, blk ir.Block) {
		for _, target := range ir.Successors(blk.Terminator) {
			g.succ[label] = append(g.succ[label], target)
			g.pred[target] = append(g.pred[target], label)
		}
	})
	return g, nil
}
