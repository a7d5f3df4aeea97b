package geo

import "fmt"

// Point is a point (or displacement) in 2d pixel space.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
