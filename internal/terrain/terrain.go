// Package terrain derives a movement-cost field for a hex grid from
// smooth noise, for use as a search context in the hexpath demo.
package terrain

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/romanb/hexkit/grid"
	"github.com/romanb/hexkit/hex"
	"github.com/romanb/hexkit/search"
)

// Kind classifies a tile's terrain.
type Kind int

const (
	Plains Kind = iota
	Hills
	Swamp
	Mountains // impassable
)

func (k Kind) String() string {
	return [...]string{"plains", "hills", "swamp", "mountains"}[k]
}

// MoveCost returns the cost of entering a tile of this kind. The
// second value is false for impassable terrain.
func (k Kind) MoveCost() (int, bool) {
	switch k {
	case Plains:
		return 1, true
	case Hills:
		return 2, true
	case Swamp:
		return 3, true
	default:
		return 0, false
	}
}

// Field assigns every tile of a grid a terrain kind sampled from
// normalized opensimplex noise at the tile's pixel center. It
// implements search.Context, so a field can directly drive both
// search variants.
type Field[C hex.Coords[C]] struct {
	search.DefaultContext[C]
	kinds       map[C]Kind
	maxCost     int
	maxDistance int
}

// Generate builds the terrain field for all tiles of the given grid.
// The same seed and frequency always produce the same field.
func Generate[C hex.Coords[C]](g *grid.Grid[C], seed int64, freq float64) *Field[C] {
	noise := opensimplex.NewNormalized(seed)
	f := &Field[C]{
		kinds:       make(map[C]Kind, g.Size()),
		maxCost:     math.MaxInt,
		maxDistance: math.MaxInt,
	}
	g.Tiles(func(t grid.Tile[C]) bool {
		p := t.Hexagon.Center()
		v := noise.Eval2(p.X*freq, p.Y*freq)
		f.kinds[t.Coords] = classify(v)
		return true
	})
	return f
}

// classify buckets a normalized noise value in [0,1) into a kind.
func classify(v float64) Kind {
	switch {
	case v < 0.45:
		return Plains
	case v < 0.65:
		return Hills
	case v < 0.8:
		return Swamp
	default:
		return Mountains
	}
}

// Kind returns the terrain kind at the given coordinates.
func (f *Field[C]) Kind(c C) (Kind, bool) {
	k, ok := f.kinds[c]
	return k, ok
}

// Bound limits the searches driven by this field. A bound of 0
// leaves the corresponding limit unbounded.
func (f *Field[C]) Bound(maxCost, maxDistance int) {
	if maxCost > 0 {
		f.maxCost = maxCost
	}
	if maxDistance > 0 {
		f.maxDistance = maxDistance
	}
}

func (f *Field[C]) MaxCost() int     { return f.maxCost }
func (f *Field[C]) MaxDistance() int { return f.maxDistance }

// Cost implements search.Context: the cost of entering the target
// tile, with tiles outside the field or with impassable terrain
// reported as absent edges.
func (f *Field[C]) Cost(_, to C) (int, bool) {
	k, ok := f.kinds[to]
	if !ok {
		return 0, false
	}
	return k.MoveCost()
}
