package search

import (
	"math"
	"testing"

	"github.com/romanb/hexkit/hex"
)

// uniform is the open plane: every move costs 1.
type uniform struct {
	DefaultContext[hex.Cube]
}

func (uniform) Cost(_, _ hex.Cube) (int, bool) { return 1, true }

// walled blocks a set of coordinates entirely, optionally bounding
// the exploration distance.
type walled struct {
	DefaultContext[hex.Cube]
	wall        map[hex.Cube]bool
	maxDistance int
}

func (w walled) MaxDistance() int {
	if w.maxDistance == 0 {
		return math.MaxInt
	}
	return w.maxDistance
}

func (w walled) Cost(_, to hex.Cube) (int, bool) {
	if w.wall[to] {
		return 0, false
	}
	return 1, true
}

// weighted assigns per-coordinate entry costs, defaulting to 1.
type weighted struct {
	DefaultContext[hex.Cube]
	weights map[hex.Cube]int
}

func (w weighted) Cost(_, to hex.Cube) (int, bool) {
	if c, ok := w.weights[to]; ok {
		return c, true
	}
	return 1, true
}

type bounded struct {
	uniform
	maxCost     int
	maxDistance int
}

func (b bounded) MaxCost() int {
	if b.maxCost == 0 {
		return math.MaxInt
	}
	return b.maxCost
}

func (b bounded) MaxDistance() int {
	if b.maxDistance == 0 {
		return math.MaxInt
	}
	return b.maxDistance
}

type exitAt struct {
	uniform
	at hex.Cube
}

func (e exitAt) Exit(c hex.Cube) bool { return c == e.at }

var (
	_ Context[hex.Cube] = uniform{}
	_ Context[hex.Cube] = walled{}
	_ Context[hex.Cube] = weighted{}
	_ Context[hex.Cube] = bounded{}
	_ Context[hex.Cube] = exitAt{}
)

// checkPath asserts the basic well-formedness of a path: endpoints,
// unit steps between consecutive nodes, and monotone costs.
func checkPath(t *testing.T, p Path[hex.Cube], start, goal hex.Cube) {
	t.Helper()
	if len(p) == 0 {
		t.Fatal("empty path")
	}
	if p[0].Coords != start || p[len(p)-1].Coords != goal {
		t.Fatalf("path endpoints %v..%v, want %v..%v",
			p[0].Coords, p[len(p)-1].Coords, start, goal)
	}
	for i := 1; i < len(p); i++ {
		if p[i-1].Coords.Distance(p[i].Coords) != 1 {
			t.Fatalf("path steps from %v to %v", p[i-1].Coords, p[i].Coords)
		}
		if p[i].Cost < p[i-1].Cost {
			t.Fatalf("path cost decreases from %d to %d", p[i-1].Cost, p[i].Cost)
		}
	}
}

func TestAStarPathOpenPlane(t *testing.T) {
	start, goal := hex.Origin(), hex.NewCubeXZ(3, 0)
	p, ok := AStarPath(start, goal, uniform{})
	if !ok {
		t.Fatal("no path found on the open plane")
	}
	checkPath(t, p, start, goal)
	if len(p) != 4 || p.Cost() != 3 {
		t.Fatalf("path has %d nodes and cost %d, want 4 and 3", len(p), p.Cost())
	}
}

func TestAStarPathToStart(t *testing.T) {
	start := hex.NewCubeXZ(2, -1)
	p, ok := AStarPath(start, start, uniform{})
	if !ok || len(p) != 1 || p.Cost() != 0 {
		t.Fatalf("degenerate path = %v, %v", p, ok)
	}
}

func TestAStarDetoursAroundWall(t *testing.T) {
	// A wall on the column x=2 with openings only at |z| >= 3. The
	// cheapest way around it costs 8 on either side.
	wall := make(map[hex.Cube]bool)
	for z := -2; z <= 2; z++ {
		wall[hex.NewCubeXZ(2, z)] = true
	}
	start, goal := hex.Origin(), hex.NewCubeXZ(4, 0)
	p, ok := AStarPath(start, goal, walled{wall: wall})
	if !ok {
		t.Fatal("no path around the wall")
	}
	checkPath(t, p, start, goal)
	if p.Cost() != 8 {
		t.Fatalf("detour costs %d, want 8", p.Cost())
	}
	for _, n := range p {
		if wall[n.Coords] {
			t.Fatalf("path passes through wall at %v", n.Coords)
		}
	}
}

func TestAStarAvoidsExpensiveTiles(t *testing.T) {
	// Entering the middle of the direct line costs 10, so the cheapest
	// path takes one extra step around it.
	mid := hex.NewCubeXZ(1, 0)
	start, goal := hex.Origin(), hex.NewCubeXZ(2, 0)
	p, ok := AStarPath(start, goal, weighted{weights: map[hex.Cube]int{mid: 10}})
	if !ok {
		t.Fatal("no path found")
	}
	checkPath(t, p, start, goal)
	if p.Cost() != 3 {
		t.Fatalf("path costs %d, want 3", p.Cost())
	}
	for _, n := range p {
		if n.Coords == mid {
			t.Fatal("path enters the expensive tile")
		}
	}
}

func TestAStarMaxCost(t *testing.T) {
	start, goal := hex.Origin(), hex.NewCubeXZ(3, 0)
	if _, ok := AStarPath(start, goal, bounded{maxCost: 2}); ok {
		t.Fatal("found a path beyond the cost bound")
	}
	if _, ok := AStarPath(start, goal, bounded{maxCost: 3}); !ok {
		t.Fatal("no path at exactly the cost bound")
	}
}

func TestAStarMaxDistance(t *testing.T) {
	start, goal := hex.Origin(), hex.NewCubeXZ(3, 0)
	if _, ok := AStarPath(start, goal, bounded{maxDistance: 2}); ok {
		t.Fatal("found a path beyond the distance bound")
	}
}

func TestDijkstraTree(t *testing.T) {
	// Without goal coordinates the search expands the whole bounded
	// space, with accumulated costs equal to grid distances on a
	// uniform plane.
	start := hex.NewCubeXZ(-1, 2)
	tree := AStarTree(start, nil, bounded{maxDistance: 2})
	count := 0
	tree.Visit(func(c hex.Cube, cost int) bool {
		count++
		if cost != start.Distance(c) {
			t.Fatalf("cost of %v is %d, distance is %d", c, cost, start.Distance(c))
		}
		return true
	})
	if count != hex.NumInRange(2) {
		t.Fatalf("tree discovered %d coordinates, want %d", count, hex.NumInRange(2))
	}
	if tree.Root().Coords != start {
		t.Fatalf("tree root is %v", tree.Root().Coords)
	}
	if cost, ok := tree.Cost(start); !ok || cost != 0 {
		t.Fatalf("root cost = %d, %v", cost, ok)
	}
}

func TestAStarExit(t *testing.T) {
	start, target := hex.Origin(), hex.NewCubeXZ(0, 3)
	tree := AStarTree(start, nil, exitAt{at: target})
	p, ok := tree.Path(target)
	if !ok {
		t.Fatal("exit coordinate not discovered")
	}
	checkPath(t, p, start, target)
	if p.Cost() != 3 {
		t.Fatalf("path to exit costs %d, want 3", p.Cost())
	}
}

func TestTreePathUnreached(t *testing.T) {
	// The goal is sealed off entirely.
	goal := hex.NewCubeXZ(3, 0)
	wall := make(map[hex.Cube]bool)
	for _, n := range hex.Neighbours(goal) {
		wall[n] = true
	}
	tree := AStarTree(hex.Origin(), &goal, walled{wall: wall, maxDistance: 6})
	if _, ok := tree.Path(goal); ok {
		t.Fatal("found a path to a sealed goal")
	}
	if _, ok := tree.Cost(goal); ok {
		t.Fatal("sealed goal has a recorded cost")
	}
}
