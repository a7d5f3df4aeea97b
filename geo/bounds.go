package geo

import "math"

// Bounds is an axis-aligned bounding box for geometric shapes.
type Bounds struct {
	// Position is the top-left corner of the bounding box.
	Position Point
	Width    float64
	Height   float64
}

// Intersects checks whether the two bounds overlap.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Position.X < o.Position.X+o.Width &&
		b.Position.X+b.Width > o.Position.X &&
		b.Position.Y < o.Position.Y+o.Height &&
		b.Position.Y+b.Height > o.Position.Y
}

// Contains tests whether a point lies within the bounds.
func (b Bounds) Contains(p Point) bool {
	return b.Position.X <= p.X && p.X <= b.Position.X+b.Width &&
		b.Position.Y <= p.Y && p.Y <= b.Position.Y+b.Height
}

// Within tests whether the bounds lie completely within other bounds.
func (b Bounds) Within(o Bounds) bool {
	minX := o.Position.X
	maxX := minX + o.Width
	minY := o.Position.Y
	maxY := minY + o.Height
	return minX <= b.Position.X && b.Position.X+b.Width <= maxX &&
		minY <= b.Position.Y && b.Position.Y+b.Height <= maxY
}

// Inner snaps the bounds to the largest integer-aligned bounds
// contained in them.
func (b Bounds) Inner() Bounds {
	return Bounds{
		Position: Point{math.Ceil(b.Position.X), math.Ceil(b.Position.Y)},
		Width:    math.Floor(b.Position.X + b.Width - math.Ceil(b.Position.X)),
		Height:   math.Floor(b.Position.Y + b.Height - math.Ceil(b.Position.Y)),
	}
}

// Outer snaps the bounds to the smallest integer-aligned bounds
// containing them.
func (b Bounds) Outer() Bounds {
	return Bounds{
		Position: Point{math.Floor(b.Position.X), math.Floor(b.Position.Y)},
		Width:    math.Ceil(b.Position.X+b.Width) - math.Floor(b.Position.X),
		Height:   math.Ceil(b.Position.Y+b.Height) - math.Floor(b.Position.Y),
	}
}
