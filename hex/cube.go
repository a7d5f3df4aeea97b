// Package hex implements the coordinate algebra of hexagonal grids:
// the canonical cube coordinate system, the alternative addressing
// schemes embedded in it (axial and offset coordinates), and the
// enumeration algorithms operating on any of them (neighbourhoods,
// lines, rings, ranges and shapes).
package hex

import (
	"fmt"
	"math"

	"github.com/romanb/hexkit/geo"
)

// Cube represents cube coordinates, i.e. points in 3d space
// satisfying x + y + z = 0.
//
// Cube coordinates are points on a diagonal plane that "cuts
// through" a cube grid. The cubes intersecting the plane project
// regular hexagons onto it, allowing the plane to be seen as a
// hexagonal grid whereby the coordinates of each hexagon are those
// of the cube it is projected from. This simplifies many algorithms
// and thus serves as the canonical coordinate system for any grid
// (see Coords).
//
// The zero value is the origin. Every constructor derives the third
// axis from the other two, so a Cube can never violate the zero-sum
// invariant.
type Cube struct {
	x, y, z int
}

// Origin returns the cube coordinate (0,0,0).
func Origin() Cube { return Cube{} }

// NewCubeXZ creates the cube coordinate with the given x and z axes,
// deriving y.
func NewCubeXZ(x, z int) Cube { return Cube{x, -x - z, z} }

// NewCubeXY creates the cube coordinate with the given x and y axes,
// deriving z.
func NewCubeXY(x, y int) Cube { return Cube{x, y, -x - y} }

// NewCubeYZ creates the cube coordinate with the given y and z axes,
// deriving x.
func NewCubeYZ(y, z int) Cube { return Cube{-y - z, y, z} }

func (c Cube) X() int { return c.x }
func (c Cube) Y() int { return c.y }
func (c Cube) Z() int { return c.z }

// Add returns the cube coordinate displaced by v.
func (c Cube) Add(v Vec) Cube {
	return Cube{c.x + v.x, c.y + v.y, c.z + v.z}
}

// Sub returns the displacement from o to c.
func (c Cube) Sub(o Cube) Vec {
	return Vec{c.x - o.x, c.y - o.y, c.z - o.z}
}

// Distance returns the number of steps between two cube coordinates.
// The division is always exact: the zero-sum invariant forces the
// deviations on the three axes to sum to an even number.
func (c Cube) Distance(o Cube) int {
	return (abs(c.x-o.x) + abs(c.y-o.y) + abs(c.z-o.z)) / 2
}

// ToPixel computes the center of the hexagon with these cube
// coordinates in the context of the given schema, satisfying
//
//	Origin().ToPixel(s) == geo.Point{}
//
// for every schema s.
func (c Cube) ToPixel(s *geo.Schema) geo.Point {
	return s.ToPixel(geo.Point{X: float64(c.x), Y: float64(c.z)})
}

// FromPixel computes the nearest cube coordinates for a point in the
// context of the given schema, satisfying
//
//	FromPixel(c.ToPixel(s), s) == c
//
// for any cube coordinates c and schema s.
func FromPixel(p geo.Point, s *geo.Schema) Cube {
	q := s.FromPixel(p)
	return Round(q.X, -q.X-q.Y, q.Y)
}

// Round rounds to the nearest cube coordinate. Each axis is rounded
// individually and the axis with the largest rounding error is then
// recomputed from the other two, restoring the zero-sum invariant
// exactly.
func Round(x, y, z float64) Cube {
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(x-rx), math.Abs(y-ry), math.Abs(z-rz)
	switch {
	case dx > dy && dx > dz:
		return Cube{int(-(ry + rz)), int(ry), int(rz)}
	case dy > dz:
		return Cube{int(rx), int(-(rx + rz)), int(rz)}
	default:
		return Cube{int(rx), int(ry), int(-(rx + ry))}
	}
}

// Lerp interpolates between two cube coordinates, rounding to the
// nearest valid coordinate.
func (c Cube) Lerp(o Cube, t geo.Frac1) Cube {
	x := geo.Lerp(float64(c.x), float64(o.x), t)
	y := geo.Lerp(float64(c.y), float64(o.y), t)
	z := geo.Lerp(float64(c.z), float64(o.z), t)
	return Round(x, y, z)
}

// ToCube makes Cube its own (identity) embedding, see Coords.
func (c Cube) ToCube() Cube { return c }

// FromCube makes Cube its own (identity) embedding, see Coords.
func (Cube) FromCube(c Cube) Cube { return c }

func (c Cube) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.x, c.y, c.z)
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
