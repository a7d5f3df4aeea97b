// Package search implements cost-aware (A*/Dijkstra) and
// breadth-first traversal over hexagonal grids, generic over any
// coordinate embedding. A search produces a tree of discovered
// parents and accumulated costs from which point-to-point paths are
// reconstructed.
package search

import (
	"math"

	"github.com/romanb/hexkit/hex"
)

// Context defines the cost and bounds of a search space. The caller
// supplies the movement cost; all other methods bound or steer the
// search and have neutral defaults available via DefaultContext.
type Context[C hex.Coords[C]] interface {
	// MaxCost bounds the accumulated cost of any path explored by a
	// cost-aware search. For a breadth-first search it instead bounds
	// the per-edge cost considered passable.
	MaxCost() int
	// MaxDistance bounds how far from the start, in grid distance, a
	// search explores.
	MaxDistance() int
	// Exit signals the search to stop before the frontier is
	// exhausted, e.g. upon reaching one of several goals.
	Exit(c C) bool
	// Heuristic estimates the remaining cost between two
	// coordinates. It must not overestimate for A* to return
	// shortest paths.
	Heuristic(from, to C) int
	// Cost returns the cost of moving between two adjacent
	// coordinates. Reporting false marks the edge impassable.
	Cost(from, to C) (int, bool)
}

// DefaultContext provides the neutral defaults for everything in a
// Context except Cost: unbounded cost and distance, no early exit,
// and the canonical grid distance as heuristic. Embed it and provide
// a Cost method to obtain a full Context.
type DefaultContext[C hex.Coords[C]] struct{}

func (DefaultContext[C]) MaxCost() int     { return math.MaxInt }
func (DefaultContext[C]) MaxDistance() int { return math.MaxInt }
func (DefaultContext[C]) Exit(C) bool      { return false }

func (DefaultContext[C]) Heuristic(from, to C) int {
	return hex.Distance(from, to)
}
