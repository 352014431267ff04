// Package structural recovers structured control flow from an arbitrary
// control-flow graph: the iterative region-matching analysis (in the
// tradition of Sharir and of the Cifuentes school of structuring
// algorithms) that repeatedly contracts a residual graph by replacing a
// matched subgraph with a single region node, building a control tree as it
// goes.
package structural

import (
	"github.com/gogpu/spirvcore/id"
)

// Kind identifies the shape of a recovered region.
type Kind int

const (
	KindBlock Kind = iota
	KindIfThen
	KindIfThenElse
	KindCase
	KindTermination
	KindSelfLoop
	KindWhileLoop
	KindNaturalLoop
	KindProper
	KindImproper
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "Block"
	case KindIfThen:
		return "IfThen"
	case KindIfThenElse:
		return "IfThenElse"
	case KindCase:
		return "Case"
	case KindTermination:
		return "Termination"
	case KindSelfLoop:
		return "SelfLoop"
	case KindWhileLoop:
		return "WhileLoop"
	case KindNaturalLoop:
		return "NaturalLoop"
	case KindProper:
		return "Proper"
	case KindImproper:
		return "Improper"
	default:
		return "Unknown"
	}
}

// Node is one region in the recovered control tree: a set of original basic
// blocks, collapsed in declaration order of discovery, with children in the
// order they were merged.
type Node struct {
	Kind     Kind
	Entry    id.ID
	Blocks   []id.ID
	Children []*Node
}

// Tree is the control tree a function's CFG reduces to.
type Tree struct {
	Root *Node
}

// IsStructured reports whether tree contains no Proper, Improper, or
// SelfLoop region - the specification's definition of "structured".
func IsStructured(tree *Tree) bool {
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n == nil {
			return true
		}
		if n.Kind == KindProper || n.Kind == KindImproper || n.Kind == KindSelfLoop {
			return false
		}
		for _, c := range n.Children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	return walk(tree.Root)
}

// Options configures optional region matchers.
type Options struct {
	// EnableTermination gates the Termination region pattern (an early-exit
	// block folded into its sole predecessor), off by default since most
	// producers never emit the shape it targets and matching it
	// unconditionally changes tree shape for ordinary early-return code.
	EnableTermination bool
}
