package search

import "github.com/romanb/hexkit/hex"

// Node is a single step of a path: coordinates together with the
// cost accumulated from the root up to them.
type Node[C hex.Coords[C]] struct {
	Coords C
	Cost   int
}

// Path is a sequence of nodes from the root of a search tree to a
// goal, in root-to-goal order.
type Path[C hex.Coords[C]] []Node[C]

// Cost returns the accumulated cost at the end of the path, i.e. the
// total cost of traversing it.
func (p Path[C]) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Cost
}

// Tree is the result of a search: the start coordinates as root, and
// for every discovered coordinate its parent on the cheapest (or
// first-found) path from the root, together with its accumulated
// cost. A tree is built once per search call and holds no references
// to the grid searched.
type Tree[C hex.Coords[C]] struct {
	root    C
	parents map[C]C
	costs   map[C]int
}

// Root returns the root node of the tree.
func (t *Tree[C]) Root() Node[C] {
	return Node[C]{Coords: t.root}
}

// Cost returns the accumulated cost recorded for the given
// coordinates, if they were discovered by the search.
func (t *Tree[C]) Cost(c C) (int, bool) {
	cost, ok := t.costs[c]
	return cost, ok
}

// Visit calls the given function for every discovered coordinate and
// its accumulated cost, in unspecified order.
func (t *Tree[C]) Visit(f func(c C, cost int) bool) {
	for c, cost := range t.costs {
		if !f(c, cost) {
			return
		}
	}
}

// Path traces the path from the root of the tree to the given goal.
// It returns false when the goal was never discovered, i.e. the
// parent chain does not terminate at the root.
func (t *Tree[C]) Path(goal C) (Path[C], bool) {
	path := Path[C]{{Coords: goal, Cost: t.costs[goal]}}
	current := goal
	for current != t.root {
		parent, ok := t.parents[current]
		if !ok {
			return nil, false
		}
		path = append(path, Node[C]{Coords: parent, Cost: t.costs[parent]})
		current = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
