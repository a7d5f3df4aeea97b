package hex

import (
	"fmt"

	"github.com/romanb/hexkit/geo"
)

// Vec is a displacement between cube coordinates. Like Cube it
// satisfies x + y + z = 0.
type Vec struct {
	x, y, z int
}

// dirVectors are the displacements to the neighbouring (adjacent)
// cube coordinates along the six sides of a hexagon.
var dirVectors = [6]Vec{
	{0, 1, -1}, {1, 0, -1}, {1, -1, 0},
	{0, -1, 1}, {-1, 0, 1}, {-1, 1, 0},
}

// diaVectors are the displacements to the nearest cube coordinates
// along the six diagonal axes of a hexagon.
var diaVectors = [6]Vec{
	{-1, 2, -1}, {1, 1, -2}, {2, -1, -1},
	{1, -2, 1}, {-1, -1, 2}, {-2, 1, 1},
}

// NewVecXZ creates the displacement with the given x and z axes,
// deriving y.
func NewVecXZ(x, z int) Vec { return Vec{x, -x - z, z} }

// NewVecXY creates the displacement with the given x and y axes,
// deriving z.
func NewVecXY(x, y int) Vec { return Vec{x, y, -x - y} }

// NewVecYZ creates the displacement with the given y and z axes,
// deriving x.
func NewVecYZ(y, z int) Vec { return Vec{-y - z, y, z} }

func (v Vec) X() int { return v.x }
func (v Vec) Y() int { return v.y }
func (v Vec) Z() int { return v.z }

// Add returns v+w.
func (v Vec) Add(w Vec) Vec { return Vec{v.x + w.x, v.y + w.y, v.z + w.z} }

// Sub returns v-w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.x - w.x, v.y - w.y, v.z - w.z} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.x, -v.y, -v.z} }

// Mul scales the displacement by k.
func (v Vec) Mul(k int) Vec { return Vec{v.x * k, v.y * k, v.z * k} }

// Rotate rotates the vector n times by 60 degrees in the given
// direction of rotation.
func (v Vec) Rotate(r geo.Rotation, n int) Vec {
	n = ((n % 6) + 6) % 6
	if r == geo.CW {
		return v.Rotate(geo.CCW, 6-n)
	}
	switch n {
	case 1:
		return NewVecXY(-v.y, -v.z)
	case 2:
		return NewVecXY(v.z, v.x)
	case 3:
		return NewVecXY(-v.x, -v.y)
	case 4:
		return NewVecXY(v.y, v.z)
	case 5:
		return NewVecXY(-v.z, -v.x)
	default:
		return v
	}
}

// Directions returns the six adjacent-direction vectors in canonical
// order.
func Directions() [6]Vec { return dirVectors }

// Diagonals returns the six diagonal-direction vectors in canonical
// order.
func Diagonals() [6]Vec { return diaVectors }

// walkDirections returns the sequence of direction vectors followed
// when walking a ring that starts in direction d. Clockwise walks
// begin two canonical directions ahead of d and advance forward;
// counterclockwise walks run the same cycle in reverse. This exact
// offset makes the two traversals of a ring reverses of each other
// sharing the same first coordinate.
func walkDirections(d Direction, r geo.Rotation) [6]Vec {
	var out [6]Vec
	i := d.Index()
	for k := 0; k < 6; k++ {
		if r == geo.CW {
			out[k] = dirVectors[(i+2+k)%6]
		} else {
			out[k] = dirVectors[((i+4-k)%6+6)%6]
		}
	}
	return out
}

func (v Vec) String() string {
	return fmt.Sprintf("<%d,%d,%d>", v.x, v.y, v.z)
}
