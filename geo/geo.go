// Package geo models the geometry of regular hexagons in a 2d
// cartesian coordinate system: the schematic parameters of a hexagon
// (orientation and side length), the affine transforms between hex
// coordinates and pixel coordinates, and the derived corner and
// bounding-box geometry.
package geo

import "math"

// AngleRadians is the angle of the equilateral triangles that a
// regular hexagon is composed of, i.e. 60 degrees in radians.
const AngleRadians = math.Pi / 3

// Orientation is one of the two orientations a regular hexagon can
// have on a grid: an edge at the top, or a corner at the top.
type Orientation int

const (
	FlatTop Orientation = iota
	PointyTop
)

func (o Orientation) String() string {
	switch o {
	case FlatTop:
		return "flat-top"
	case PointyTop:
		return "pointy-top"
	default:
		return "unknown"
	}
}

// Rotation is a direction of rotation around a hexagon.
type Rotation int

const (
	// CW is clockwise rotation.
	CW Rotation = iota
	// CCW is counterclockwise rotation.
	CCW
)

func (r Rotation) String() string {
	if r == CW {
		return "clockwise"
	}
	return "counterclockwise"
}
