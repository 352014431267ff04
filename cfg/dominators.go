package cfg

import (
	"github.com/gogpu/spirvcore/id"
	"github.com/gogpu/spirvcore/spirverr"
)

// DomInfo is the result of dominator analysis: for every vertex, the set of
// vertices that dominate it, plus the derived immediate-dominator tree.
type DomInfo struct {
	Dom    map[id.ID]map[id.ID]bool
	IDom   map[id.ID]id.ID // absent for the entry vertex
	Entry  id.ID
}

// Dominates reports whether a dominates b (a == b counts as dominating).
func (d *DomInfo) Dominates(a, b id.ID) bool { return d.Dom[b][a] }

// Dominators computes dom(entry)={entry} and, for every other vertex v,
// dom(v) = {v} ∪ ⋂(dom(u) for u in preds(v)), iterated to a fixed point -
// the standard iterative dataflow formulation, seeded with dom(v)=all
// vertices for v != entry and refined each pass until nothing changes.
func Dominators(g *Graph) (*DomInfo, error) {
	all := g.Blocks()
	allSet := make(map[id.ID]bool, len(all))
	for _, v := range all {
		allSet[v] = true
	}

	// A vertex counts as an entry candidate if it has no predecessor other
	// than itself: a self-loop (SelfLoop region) must not disqualify the
	// sole entry of an otherwise single-block function.
	candidates := 0
	for _, v := range all {
		external := 0
		for _, p := range g.Predecessors(v) {
			if p != v {
				external++
			}
		}
		if external == 0 {
			candidates++
		}
	}
	if candidates == 0 {
		return nil, &spirverr.NoEntry{}
	}
	if candidates > 1 {
		return nil, &spirverr.MultipleEntries{Count: candidates}
	}

	dom := make(map[id.ID]map[id.ID]bool, len(all))
	for _, v := range all {
		if v == g.Entry {
			dom[v] = map[id.ID]bool{v: true}
			continue
		}
		full := make(map[id.ID]bool, len(all))
		for _, u := range all {
			full[u] = true
		}
		dom[v] = full
	}

	changed := true
	for changed {
		changed = false
		for _, v := range all {
			if v == g.Entry {
				continue
			}
			preds := g.Predecessors(v)
			var next map[id.ID]bool
			for i, p := range preds {
				if i == 0 {
					next = copySet(dom[p])
					continue
				}
				intersect(next, dom[p])
			}
			if next == nil {
				next = map[id.ID]bool{}
			}
			next[v] = true
			if !setsEqual(next, dom[v]) {
				dom[v] = next
				changed = true
			}
		}
	}

	info := &DomInfo{Dom: dom, IDom: make(map[id.ID]id.ID), Entry: g.Entry}
	for _, v := range all {
		if v == g.Entry {
			continue
		}
		info.IDom[v] = immediateDominator(v, dom, all)
	}
	return info, nil
}

// immediateDominator returns the strict dominator of v that is dominated by
// every other strict dominator of v.
func immediateDominator(v id.ID, dom map[id.ID]map[id.ID]bool, all []id.ID) id.ID {
	strict := make([]id.ID, 0)
	for u := range dom[v] {
		if u != v {
			strict = append(strict, u)
		}
	}
	for _, cand := range strict {
		isIdom := true
		for _, other := range strict {
			if other == cand {
				continue
			}
			if !dom[other][cand] {
				isIdom = false
				break
			}
		}
		if isIdom {
			return cand
		}
	}
	return 0
}

func copySet(s map[id.ID]bool) map[id.ID]bool {
	out := make(map[id.ID]bool, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}

func intersect(dst, src map[id.ID]bool) {
	for k := range dst {
		if !src[k] {
			delete(dst, k)
		}
	}
}

func setsEqual(a, b map[id.ID]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
