package hex

import "fmt"

// Axial coordinates address hexagons by two of the three cube axes
// (x as the column q, z as the row r), dropping the derivable y.
type Axial struct {
	Q int
	R int
}

// NewAxial creates axial coordinates with the given column and row.
func NewAxial(q, r int) Axial { return Axial{Q: q, R: r} }

// ToCube converts axial to cube coordinates.
func (a Axial) ToCube() Cube { return NewCubeXZ(a.Q, a.R) }

// FromCube converts cube to axial coordinates.
func (Axial) FromCube(c Cube) Axial { return Axial{Q: c.X(), R: c.Z()} }

func (a Axial) String() string {
	return fmt.Sprintf("(%d,%d)", a.Q, a.R)
}
