package search

import (
	"container/heap"

	"github.com/romanb/hexkit/hex"
)

// openNode is an entry of the A* frontier, prioritised by the
// accumulated cost plus the heuristic estimate to the goal.
type openNode[C any] struct {
	coords   C
	priority int
}

type openHeap[C any] []openNode[C]

func (h openHeap[C]) Len() int            { return len(h) }
func (h openHeap[C]) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h openHeap[C]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap[C]) Push(x any)         { *h = append(*h, x.(openNode[C])) }
func (h *openHeap[C]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// AStarTree performs a cost-aware search from the given start
// coordinates, subject to the bounds of the given context, and
// returns the resulting search tree from which paths can be
// extracted.
//
// With goal coordinates the search is guided by the context's
// heuristic (A*); without, the heuristic is zero everywhere and the
// search degenerates to a Dijkstra expansion bounded by the
// context's MaxCost and MaxDistance.
//
// The search stops when any of the following holds:
//
//   - goal coordinates are given and reached,
//   - the context's Exit function signals termination,
//   - the frontier is exhausted.
func AStarTree[C hex.Coords[C]](start C, goal *C, ctx Context[C]) *Tree[C] {
	maxCost := ctx.MaxCost()
	maxDistance := ctx.MaxDistance()
	t := &Tree[C]{
		root:    start,
		parents: make(map[C]C),
		costs:   map[C]int{start: 0},
	}
	open := &openHeap[C]{{coords: start}}
	heap.Init(open)
	for open.Len() > 0 {
		parent := heap.Pop(open).(openNode[C]).coords
		if ctx.Exit(parent) || (goal != nil && *goal == parent) {
			break
		}
		for _, child := range hex.Neighbours(parent) {
			if hex.Distance(child, start) > maxDistance {
				continue
			}
			cost, passable := ctx.Cost(parent, child)
			if !passable {
				continue
			}
			newCost := t.costs[parent] + cost
			if newCost > maxCost {
				continue
			}
			oldCost, seen := t.costs[child]
			if seen && newCost >= oldCost {
				continue
			}
			t.parents[child] = parent
			t.costs[child] = newCost
			priority := newCost
			if goal != nil {
				priority += ctx.Heuristic(child, *goal)
			}
			heap.Push(open, openNode[C]{coords: child, priority: priority})
		}
	}
	return t
}

// AStarPath performs a cost-aware search for a path from start to
// goal. It is equivalent to
//
//	AStarTree(start, &goal, ctx).Path(goal)
func AStarPath[C hex.Coords[C]](start, goal C, ctx Context[C]) (Path[C], bool) {
	return AStarTree(start, &goal, ctx).Path(goal)
}
