package hex

import "fmt"

// Offset coordinates address hexagons by column and row of an
// axis-aligned rectangular layout, staggering every other column or
// row by half a tile. Four parity variants exist: columns or rows
// can be staggered, and either the odd or the even ones. Each
// variant is a total bijection with cube coordinates; combined with
// the matching orientation and rectangle shape generator it yields a
// rectangle with non-negative indices.
//
// The column-staggered variants pair with flat-top hexagons, the
// row-staggered variants with pointy-top hexagons.

// OddCol is column-staggered offset coordinates with the odd
// columns indented.
type OddCol struct {
	Col int
	Row int
}

func (o OddCol) ToCube() Cube {
	return NewCubeXZ(o.Col, o.Row-(o.Col-(o.Col&1))/2)
}

func (OddCol) FromCube(c Cube) OddCol {
	x := c.X()
	return OddCol{Col: x, Row: c.Z() + (x-(x&1))/2}
}

func (o OddCol) String() string { return fmt.Sprintf("(%d,%d)", o.Col, o.Row) }

// EvenCol is column-staggered offset coordinates with the even
// columns indented.
type EvenCol struct {
	Col int
	Row int
}

func (o EvenCol) ToCube() Cube {
	return NewCubeXZ(o.Col, o.Row-(o.Col+(o.Col&1))/2)
}

func (EvenCol) FromCube(c Cube) EvenCol {
	x := c.X()
	return EvenCol{Col: x, Row: c.Z() + (x+(x&1))/2}
}

func (o EvenCol) String() string { return fmt.Sprintf("(%d,%d)", o.Col, o.Row) }

// OddRow is row-staggered offset coordinates with the odd rows
// indented.
type OddRow struct {
	Col int
	Row int
}

func (o OddRow) ToCube() Cube {
	return NewCubeXZ(o.Col-(o.Row-(o.Row&1))/2, o.Row)
}

func (OddRow) FromCube(c Cube) OddRow {
	z := c.Z()
	return OddRow{Col: c.X() + (z-(z&1))/2, Row: z}
}

func (o OddRow) String() string { return fmt.Sprintf("(%d,%d)", o.Col, o.Row) }

// EvenRow is row-staggered offset coordinates with the even rows
// indented.
type EvenRow struct {
	Col int
	Row int
}

func (o EvenRow) ToCube() Cube {
	return NewCubeXZ(o.Col-(o.Row+(o.Row&1))/2, o.Row)
}

func (EvenRow) FromCube(c Cube) EvenRow {
	z := c.Z()
	return EvenRow{Col: c.X() + (z+(z&1))/2, Row: z}
}

func (o EvenRow) String() string { return fmt.Sprintf("(%d,%d)", o.Col, o.Row) }
