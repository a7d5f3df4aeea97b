package search

import "github.com/romanb/hexkit/hex"

// BFSTree performs a breadth-first search from the given start
// coordinates, subject to the bounds of the given context, and
// returns the resulting search tree from which paths can be
// extracted.
//
// A breadth-first search does not accumulate costs: the context's
// Cost function is consulted only as a passability test, with edges
// that are absent or cost more than MaxCost considered impassable.
// MaxDistance bounds the expansion in hops from the start. The
// termination conditions are the same as for AStarTree.
func BFSTree[C hex.Coords[C]](start C, goal *C, ctx Context[C]) *Tree[C] {
	maxCost := ctx.MaxCost()
	maxDistance := ctx.MaxDistance()
	t := &Tree[C]{
		root:    start,
		parents: make(map[C]C),
		costs:   make(map[C]int),
	}
	type hop struct {
		coords C
		depth  int
	}
	front := []hop{{coords: start}}
	for len(front) > 0 {
		cur := front[0]
		front = front[1:]
		if ctx.Exit(cur.coords) || (goal != nil && *goal == cur.coords) {
			break
		}
		if cur.depth >= maxDistance {
			continue
		}
		for _, n := range hex.Neighbours(cur.coords) {
			if n == start {
				continue
			}
			if _, seen := t.parents[n]; seen {
				continue
			}
			cost, passable := ctx.Cost(cur.coords, n)
			if !passable || cost > maxCost {
				continue
			}
			t.parents[n] = cur.coords
			front = append(front, hop{coords: n, depth: cur.depth + 1})
		}
	}
	return t
}

// BFSPath performs a breadth-first search for a path from start to
// goal. It is equivalent to
//
//	BFSTree(start, &goal, ctx).Path(goal)
func BFSPath[C hex.Coords[C]](start, goal C, ctx Context[C]) (Path[C], bool) {
	return BFSTree(start, &goal, ctx).Path(goal)
}
