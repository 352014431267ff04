package structural

import (
	"fmt"

	"github.com/gogpu/spirvcore/cfg"
	"github.com/gogpu/spirvcore/id"
)

// contract replaces the residual nodes named by order (order[0] is kept as
// the region's representative id) with a single region node of the given
// kind, rewiring every edge that pointed at a non-representative member to
// point at the representative instead.
func (r *residual) contract(kind Kind, order []id.ID) *Node {
	entry := order[0]
	member := make(map[id.ID]bool, len(order))
	for _, m := range order {
		member[m] = true
	}

	var blocks []id.ID
	children := make([]*Node, 0, len(order))
	for _, m := range order {
		children = append(children, r.nodes[m])
		blocks = append(blocks, r.nodes[m].Blocks...)
	}
	node := &Node{Kind: kind, Entry: entry, Blocks: blocks, Children: children}

	extSucc := uniqueExternal(order, r.succ, member)
	extPred := uniqueExternal(order, r.pred, member)

	for _, m := range order {
		delete(r.nodes, m)
		delete(r.succ, m)
		delete(r.pred, m)
	}

	filtered := make([]id.ID, 0, len(r.order))
	for _, v := range r.order {
		if v == entry || !member[v] {
			filtered = append(filtered, v)
		}
	}
	r.order = filtered

	r.nodes[entry] = node
	r.succ[entry] = extSucc
	r.pred[entry] = extPred

	redirect(r.succ, member, entry)
	redirect(r.pred, member, entry)
	return node
}

// uniqueExternal collects, in first-occurrence order while scanning order's
// members, every edge endpoint in edges[m] (for m in order) that is not
// itself a member.
func uniqueExternal(order []id.ID, edges map[id.ID][]id.ID, member map[id.ID]bool) []id.ID {
	seen := make(map[id.ID]bool)
	var out []id.ID
	for _, m := range order {
		for _, v := range edges[m] {
			if member[v] || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// redirect rewrites every edge list in edges that references a
// non-representative member, pointing it at entry instead, deduplicating
// afterward.
func redirect(edges map[id.ID][]id.ID, member map[id.ID]bool, entry id.ID) {
	for v, list := range edges {
		if member[v] {
			continue
		}
		changed := false
		for i, w := range list {
			if member[w] && w != entry {
				list[i] = entry
				changed = true
			}
		}
		if !changed {
			continue
		}
		seen := make(map[id.ID]bool, len(list))
		dedup := list[:0]
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				dedup = append(dedup, w)
			}
		}
		edges[v] = dedup
	}
}

// matchBlock collects the longest maximal chain starting at v: v itself,
// then every subsequent vertex reached by following a lone outgoing edge
// whose target's only predecessor is the vertex before it in the chain.
// One match absorbs the whole chain in a single contraction, rather than
// matching one edge at a time and relying on repeated visits to the reducer
// to build up a right-nested tower of 2-element Block regions.
func (r *residual) matchBlock(v id.ID) bool {
	chain := []id.ID{v}
	inChain := map[id.ID]bool{v: true}
	cur := v
	for {
		succ := r.succ[cur]
		if len(succ) != 1 {
			break
		}
		w := succ[0]
		if inChain[w] {
			break
		}
		if len(r.pred[w]) != 1 || r.pred[w][0] != cur {
			break
		}
		chain = append(chain, w)
		inChain[w] = true
		cur = w
	}
	if len(chain) < 2 {
		return false
	}
	r.contract(KindBlock, chain)
	return true
}

func (r *residual) matchIfThenElse(v id.ID) bool {
	succ := r.succ[v]
	if len(succ) != 2 {
		return false
	}
	a, b := succ[0], succ[1]
	if a == b {
		return false
	}
	if len(r.pred[a]) != 1 || r.pred[a][0] != v || len(r.pred[b]) != 1 || r.pred[b][0] != v {
		return false
	}
	if len(r.succ[a]) != 1 || len(r.succ[b]) != 1 {
		return false
	}
	if r.succ[a][0] != r.succ[b][0] {
		return false
	}
	m := r.succ[a][0]
	if m == v || m == a || m == b {
		return false
	}
	r.contract(KindIfThenElse, []id.ID{v, a, b})
	return true
}

func (r *residual) matchIfThen(v id.ID) bool {
	succ := r.succ[v]
	if len(succ) != 2 {
		return false
	}
	for _, pair := range [][2]id.ID{{succ[0], succ[1]}, {succ[1], succ[0]}} {
		branch, other := pair[0], pair[1]
		if branch == other {
			continue
		}
		if len(r.pred[branch]) != 1 || r.pred[branch][0] != v {
			continue
		}
		if len(r.succ[branch]) != 1 || r.succ[branch][0] != other {
			continue
		}
		if other == v || other == branch {
			continue
		}
		r.contract(KindIfThen, []id.ID{v, branch})
		return true
	}
	return false
}

func (r *residual) matchCase(v id.ID) bool {
	succ := r.succ[v]
	if len(succ) < 3 {
		return false
	}
	seen := make(map[id.ID]bool, len(succ))
	for _, s := range succ {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	var merge id.ID
	haveMerge := false
	for _, s := range succ {
		if len(r.pred[s]) != 1 || r.pred[s][0] != v {
			return false
		}
		if len(r.succ[s]) != 1 {
			return false
		}
		m := r.succ[s][0]
		if !haveMerge {
			merge, haveMerge = m, true
		} else if m != merge {
			return false
		}
	}
	if haveMerge && (merge == v || seen[merge]) {
		return false
	}
	order := append([]id.ID{v}, succ...)
	r.contract(KindCase, order)
	return true
}

func (r *residual) matchTermination(v id.ID) bool {
	for _, t := range r.succ[v] {
		if len(r.succ[t]) != 0 || len(r.pred[t]) != 1 || r.pred[t][0] != v {
			continue
		}
		if len(r.succ[v]) < 2 {
			continue
		}
		r.contract(KindTermination, []id.ID{v, t})
		return true
	}
	return false
}

func (r *residual) matchSelfLoop(v id.ID) bool {
	for _, s := range r.succ[v] {
		if s == v {
			r.contract(KindSelfLoop, []id.ID{v})
			return true
		}
	}
	return false
}

func (r *residual) matchWhileLoop(v id.ID) bool {
	succ := r.succ[v]
	if len(succ) != 2 {
		return false
	}
	for _, b := range succ {
		if len(r.succ[b]) != 1 || r.succ[b][0] != v {
			continue
		}
		if len(r.pred[b]) != 1 || r.pred[b][0] != v {
			continue
		}
		isBack := false
		for _, p := range r.pred[v] {
			if p == b {
				isBack = true
			}
		}
		if !isBack {
			continue
		}
		r.contract(KindWhileLoop, []id.ID{v, b})
		return true
	}
	return false
}

func (r *residual) matchNaturalLoop(v id.ID, dom *cfg.DomInfo) bool {
	var latch id.ID
	found := false
	for _, p := range r.pred[v] {
		if dom.Dominates(v, p) {
			latch, found = p, true
			break
		}
	}
	if !found {
		return false
	}

	body := map[id.ID]bool{v: true, latch: true}
	queue := []id.ID{latch}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range r.pred[n] {
			if !body[p] {
				body[p] = true
				queue = append(queue, p)
			}
		}
	}

	order := make([]id.ID, 0, len(body))
	order = append(order, v)
	for _, c := range r.order {
		if body[c] && c != v {
			order = append(order, c)
		}
	}
	r.contract(KindNaturalLoop, order)
	return true
}

// collapseCyclicRemainder detects whether a cycle still exists among the
// live residual nodes; if so it collapses every remaining live node into a
// single Improper region (no pattern could separate the cycle's multiple
// entries into a single-header loop) and reports true.
func (r *residual) collapseCyclicRemainder(dom *cfg.DomInfo) bool {
	if !r.hasCycle() {
		return false
	}
	live := r.liveOrder()
	if len(live) < 2 {
		return false
	}
	r.contract(KindImproper, live)
	return true
}

// collapseProperRemainder collapses an acyclic-but-irreducible remainder
// (multiple merge shapes overlapping in a way no single pattern covers)
// into one Proper region.
func (r *residual) collapseProperRemainder() {
	live := r.liveOrder()
	if len(live) < 2 {
		return
	}
	r.contract(KindProper, live)
}

func (r *residual) liveOrder() []id.ID {
	out := make([]id.ID, 0, len(r.nodes))
	for _, v := range r.order {
		if _, alive := r.nodes[v]; alive {
			out = append(out, v)
		}
	}
	return out
}

func (r *residual) hasCycle() bool {
	const white, gray, black = 0, 1, 2
	color := make(map[id.ID]int, len(r.nodes))
	var visit func(v id.ID) bool
	visit = func(v id.ID) bool {
		color[v] = gray
		for _, w := range r.succ[v] {
			if _, alive := r.nodes[w]; !alive {
				continue
			}
			switch color[w] {
			case gray:
				return true
			case white:
				if visit(w) {
					return true
				}
			}
		}
		color[v] = black
		return false
	}
	for _, v := range r.liveOrder() {
		if color[v] == white {
			if visit(v) {
				return true
			}
		}
	}
	return false
}

func fmtNode(v id.ID, n *Node, succ []id.ID) string {
	return fmt.Sprintf("%d(%s) -> %v\n", v, n.Kind, succ)
}
