package geo

// Hexagon is a regular hexagon positioned in pixel space: a center
// and the six corners derived from it by a Schema. Hexagons are
// immutable values.
type Hexagon struct {
	center  Point
	corners [6]Point
}

// Center returns the center point of the hexagon.
func (h Hexagon) Center() Point { return h.center }

// Corners returns the six corner points of the hexagon, in the order
// produced by the schema (counterclockwise from the first corner).
func (h Hexagon) Corners() [6]Point { return h.corners }

// Gauge positions a box of the given width and height centered on
// the hexagon, returning its top-left corner.
func (h Hexagon) Gauge(w, hgt float64) Point {
	return Point{h.center.X - w/2, h.center.Y - hgt/2}
}
