package geo

import (
	"fmt"
	"math"
)

// matrix2 is a 2x2 matrix for the affine transforms between hex and
// pixel coordinates.
type matrix2 struct {
	a, b float64
	c, d float64
}

func (m matrix2) apply(p Point) Point {
	return Point{m.a*p.X + m.b*p.Y, m.c*p.X + m.d*p.Y}
}

func (m matrix2) inverse() matrix2 {
	det := m.a*m.d - m.b*m.c
	return matrix2{m.d / det, -m.b / det, -m.c / det, m.a / det}
}

// Schema is a schematic for a regular hexagon: the orientation and
// side length together with all values derived from them, in
// particular the mutually inverse transforms between an overlaid hex
// coordinate system and pixel coordinates. Schemas are immutable
// once constructed and may be shared freely.
type Schema struct {
	sideLen     float64
	width       float64
	height      float64
	colOffset   float64
	rowOffset   float64
	toPixel     matrix2
	fromPixel   matrix2
	orientation Orientation
	cornerPhase float64
}

// NewSchema creates the schema for regular hexagons with the given
// side length and orientation. A non-positive side length is a
// contract violation and panics.
func NewSchema(sideLen float64, o Orientation) Schema {
	if sideLen <= 0 {
		panic(fmt.Sprintf("geo: non-positive side length %g", sideLen))
	}
	sqrt3 := math.Sqrt(3)
	switch o {
	case FlatTop:
		height := sqrt3 * sideLen
		toPixel := matrix2{
			1.5 * sideLen, 0,
			sqrt3 / 2 * sideLen, sqrt3 * sideLen,
		}
		return Schema{
			sideLen:     sideLen,
			orientation: o,
			width:       2 * sideLen,
			height:      height,
			colOffset:   1.5 * sideLen,
			rowOffset:   height,
			toPixel:     toPixel,
			fromPixel:   toPixel.inverse(),
			cornerPhase: 0,
		}
	case PointyTop:
		width := sqrt3 * sideLen
		toPixel := matrix2{
			sqrt3 * sideLen, sqrt3 / 2 * sideLen,
			0, 1.5 * sideLen,
		}
		return Schema{
			sideLen:     sideLen,
			orientation: o,
			width:       width,
			height:      2 * sideLen,
			colOffset:   width,
			rowOffset:   1.5 * sideLen,
			toPixel:     toPixel,
			fromPixel:   toPixel.inverse(),
			cornerPhase: AngleRadians / 2,
		}
	default:
		panic(fmt.Sprintf("geo: unknown orientation %d", o))
	}
}

// SideLen returns the side length of the hexagons.
func (s *Schema) SideLen() float64 { return s.sideLen }

// Width returns the width of a hexagon's bounding box.
func (s *Schema) Width() float64 { return s.width }

// Height returns the height of a hexagon's bounding box.
func (s *Schema) Height() float64 { return s.height }

// ColOffset returns the horizontal center-to-center distance between
// hexagons in adjacent columns.
func (s *Schema) ColOffset() float64 { return s.colOffset }

// RowOffset returns the vertical center-to-center distance between
// hexagons in adjacent rows.
func (s *Schema) RowOffset() float64 { return s.rowOffset }

// Orientation returns the orientation of the hexagons.
func (s *Schema) Orientation() Orientation { return s.orientation }

// ToPixel converts the coordinates of a hexagon on an overlaid
// coordinate system into the pixel coordinates of the hexagon's
// center, with
//
//	s.ToPixel(geo.Point{}) == geo.Point{}
//
// for every schema s.
func (s *Schema) ToPixel(p Point) Point {
	return s.toPixel.apply(p)
}

// FromPixel converts pixel coordinates into (fractional) hexagon
// coordinates, satisfying
//
//	s.FromPixel(s.ToPixel(p)) == p
//
// for any point p and schema s, up to floating point rounding.
func (s *Schema) FromPixel(p Point) Point {
	return s.fromPixel.apply(p)
}

// Hexagon computes the hexagon geometry for the given center.
func (s *Schema) Hexagon(center Point) Hexagon {
	h := Hexagon{center: center}
	for i := 0; i < 6; i++ {
		angle := AngleRadians*float64(i) - s.cornerPhase
		h.corners[i] = Point{
			X: center.X + s.sideLen*math.Cos(angle),
			Y: center.Y + s.sideLen*math.Sin(angle),
		}
	}
	return h
}

// Bounds computes the minimal bounding box of a hexagon.
func (s *Schema) Bounds(h Hexagon) Bounds {
	return Bounds{
		Position: Point{h.center.X - s.width/2, h.center.Y - s.height/2},
		Width:    s.width,
		Height:   s.height,
	}
}
