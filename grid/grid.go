// Package grid provides the container tying a geometric schema and a
// shape together: an immutable mapping from grid coordinates to
// positioned hexagon geometry, normalized so that every hexagon lies
// at non-negative pixel coordinates.
package grid

import (
	"github.com/romanb/hexkit/geo"
	"github.com/romanb/hexkit/hex"
)

// Tile pairs grid coordinates with the geometry of their hexagon.
type Tile[C hex.Coords[C]] struct {
	Coords  C
	Hexagon geo.Hexagon
}

// Grid is a contiguous arrangement of hexagonal tiles with an
// overlaid coordinate system. It is constructed once per map layout
// and read-only thereafter, so it may be shared between concurrent
// readers without synchronization.
type Grid[C hex.Coords[C]] struct {
	schema geo.Schema
	tiles  map[C]geo.Hexagon
	offset geo.Point
	width  float64
	height float64
}

// New builds the grid for the given schema and shape. All shape
// coordinates are projected to pixel space and shifted by a single
// offset vector chosen so that the minimal hexagon center lies at
// (width/2, height/2), i.e. no hexagon's bounding box has a negative
// coordinate.
func New[C hex.Coords[C]](schema geo.Schema, shape hex.Shape) *Grid[C] {
	cubes := shape.Cubes()
	var minX, minY, maxX, maxY float64
	centers := make([]geo.Point, len(cubes))
	for i, c := range cubes {
		p := c.ToPixel(&schema)
		centers[i] = p
		if i == 0 || p.X < minX {
			minX = p.X
		}
		if i == 0 || p.Y < minY {
			minY = p.Y
		}
		if i == 0 || p.X > maxX {
			maxX = p.X
		}
		if i == 0 || p.Y > maxY {
			maxY = p.Y
		}
	}
	offset := geo.Point{X: schema.Width()/2 - minX, Y: schema.Height()/2 - minY}
	tiles := make(map[C]geo.Hexagon, len(cubes))
	var zero C
	for i, c := range cubes {
		tiles[zero.FromCube(c)] = schema.Hexagon(centers[i].Add(offset))
	}
	g := &Grid[C]{
		schema: schema,
		tiles:  tiles,
		offset: offset,
	}
	if len(cubes) > 0 {
		g.width = maxX - minX + schema.Width()
		g.height = maxY - minY + schema.Height()
	}
	return g
}

// Schema returns the geometric schema of the grid's hexagons.
func (g *Grid[C]) Schema() *geo.Schema { return &g.schema }

// Width returns the overall pixel width of the grid.
func (g *Grid[C]) Width() float64 { return g.width }

// Height returns the overall pixel height of the grid.
func (g *Grid[C]) Height() float64 { return g.height }

// Size returns the number of tiles in the grid.
func (g *Grid[C]) Size() int { return len(g.tiles) }

// Get returns the hexagon at the given coordinates, if it is part of
// the grid.
func (g *Grid[C]) Get(c C) (geo.Hexagon, bool) {
	h, ok := g.tiles[c]
	return h, ok
}

// ToPixel returns the pixel coordinates of the center of the hexagon
// at the given grid coordinates.
func (g *Grid[C]) ToPixel(c C) geo.Point {
	return c.ToCube().ToPixel(&g.schema).Add(g.offset)
}

// FromPixel returns the tile whose hexagon is nearest to the given
// pixel coordinates. The second return value is false when the
// nearest coordinates are not part of the grid's shape, which
// supports sparse and non-rectangular layouts.
func (g *Grid[C]) FromPixel(p geo.Point) (Tile[C], bool) {
	k := hex.FromPixel(p.Sub(g.offset), &g.schema)
	var zero C
	c := zero.FromCube(k)
	h, ok := g.tiles[c]
	if !ok {
		return Tile[C]{}, false
	}
	return Tile[C]{Coords: c, Hexagon: h}, true
}

// Tiles calls visit for every tile of the grid, in unspecified
// order, stopping early if visit returns false.
func (g *Grid[C]) Tiles(visit func(Tile[C]) bool) {
	for c, h := range g.tiles {
		if !visit(Tile[C]{Coords: c, Hexagon: h}) {
			return
		}
	}
}

// IterWithin returns the tiles whose hexagon bounding boxes
// intersect the given bounds. This is the viewport-culling predicate
// used by presentation layers.
func (g *Grid[C]) IterWithin(b geo.Bounds) []Tile[C] {
	var out []Tile[C]
	for c, h := range g.tiles {
		if g.schema.Bounds(h).Intersects(b) {
			out = append(out, Tile[C]{Coords: c, Hexagon: h})
		}
	}
	return out
}
