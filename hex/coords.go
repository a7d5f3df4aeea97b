package hex

import "github.com/romanb/hexkit/geo"

// Coords is the contract for a coordinate system overlaid on a
// hexagonal grid: a total, bijective embedding into the canonical
// cube coordinates. Everything else in the toolkit (shape
// generators, grids, searches) requires only this contract, plus the
// equality and hashability that comparability provides.
type Coords[C any] interface {
	comparable
	// ToCube converts the coordinates to cube coordinates. The
	// conversion is total: every coordinate has cube coordinates.
	ToCube() Cube
	// FromCube converts cube coordinates into this coordinate
	// system. The receiver carries no information; the method hangs
	// the inverse conversion on the type.
	FromCube(Cube) C
	String() string
}

func fromCube[C Coords[C]](k Cube) C {
	var z C
	return z.FromCube(k)
}

// Neighbours returns the six coordinates adjacent to c, each at
// distance 1, in canonical direction order.
func Neighbours[C Coords[C]](c C) []C {
	k := c.ToCube()
	out := make([]C, 6)
	for i, v := range dirVectors {
		out[i] = fromCube[C](k.Add(v))
	}
	return out
}

// DiagonalNeighbours returns the six coordinates nearest to c along
// the diagonal axes, each at distance 2, in canonical order.
func DiagonalNeighbours[C Coords[C]](c C) []C {
	k := c.ToCube()
	out := make([]C, 6)
	for i, v := range diaVectors {
		out[i] = fromCube[C](k.Add(v))
	}
	return out
}

// Distance returns the number of steps between two coordinates.
func Distance[C Coords[C]](a, b C) int {
	return a.ToCube().Distance(b.ToCube())
}

// Lerp interpolates between two coordinates, rounding to the nearest
// valid coordinate.
func Lerp[C Coords[C]](a, b C, t geo.Frac1) C {
	return fromCube[C](a.ToCube().Lerp(b.ToCube(), t))
}

// Beeline returns the shortest straight-line sequence of coordinates
// from a to b, including both endpoints. It always has
// Distance(a,b)+1 elements and degenerates to [a] when a == b.
func Beeline[C Coords[C]](a, b C) []C {
	ak, bk := a.ToCube(), b.ToCube()
	d := ak.Distance(bk)
	out := make([]C, 0, d+1)
	if d == 0 {
		return append(out, a)
	}
	for i := 0; i <= d; i++ {
		t := geo.NewFrac1(float64(i), float64(d))
		out = append(out, fromCube[C](ak.Lerp(bk, t)))
	}
	return out
}

// NumInRange returns the number of coordinates within distance r of
// any coordinate, i.e. 3r²+3r+1.
func NumInRange(r int) int {
	return NumInRing(r)*(r+1)/2 + 1
}

// NumInRing returns the number of coordinates in the ring at
// distance r from any coordinate, i.e. 6r. Like WalkRing, a ring of
// radius 0 is considered empty.
func NumInRing(r int) int {
	return 6 * r
}

// Range returns the coordinates within distance r of c, including c.
func Range[C Coords[C]](c C, r int) []C {
	k := c.ToCube()
	out := make([]C, 0, NumInRange(r))
	for x := -r; x <= r; x++ {
		yStart := max(-r, -x-r)
		yEnd := min(r, -x+r)
		for y := yStart; y <= yEnd; y++ {
			out = append(out, fromCube[C](k.Add(NewVecXY(x, y))))
		}
	}
	return out
}

// RangeOverlapping returns the coordinates within distance r of both
// a and b. The intersection is computed directly from the per-axis
// bounds of the two ranges rather than by pairwise filtering.
func RangeOverlapping[C Coords[C]](a, b C, r int) []C {
	ak, bk := a.ToCube(), b.ToCube()
	xMin := max(ak.X()-r, bk.X()-r)
	xMax := min(ak.X()+r, bk.X()+r)
	yMin := max(ak.Y()-r, bk.Y()-r)
	yMax := min(ak.Y()+r, bk.Y()+r)
	zMin := max(ak.Z()-r, bk.Z()-r)
	zMax := min(ak.Z()+r, bk.Z()+r)
	var out []C
	for x := xMin; x <= xMax; x++ {
		yStart := max(yMin, -x-zMax)
		yEnd := min(yMax, -x-zMin)
		for y := yStart; y <= yEnd; y++ {
			out = append(out, fromCube[C](NewCubeXY(x, y)))
		}
	}
	return out
}

// RangeReachable performs a bounded flood fill: the coordinates
// reachable from c in at most r steps through coordinates satisfying
// the passability predicate. The start coordinate is always included
// and never tested against the predicate.
func RangeReachable[C Coords[C]](c C, r int, passable func(C) bool) map[C]bool {
	reachable := map[C]bool{c: true}
	fringe := []C{c}
	for i := 0; i < r; i++ {
		var next []C
		for _, f := range fringe {
			for _, n := range Neighbours(f) {
				if !reachable[n] && passable(n) {
					reachable[n] = true
					next = append(next, n)
				}
			}
		}
		fringe = next
	}
	return reachable
}

// RangeVisible returns the coordinates within distance r of c that
// are visible from c: a coordinate is visible when every coordinate
// strictly before it on the beeline from c is non-opaque. The first
// opaque coordinate on a line of sight is thus itself reported
// visible; it blocks sight past it, not to it.
func RangeVisible[C Coords[C]](c C, r int, opaque func(C) bool) []C {
	var out []C
	for _, t := range Range(c, r) {
		line := Beeline(c, t)
		visible := true
		for _, x := range line[:len(line)-1] {
			if opaque(x) {
				visible = false
				break
			}
		}
		if visible {
			out = append(out, t)
		}
	}
	return out
}

// WalkRing returns the 6·radius coordinates of the ring at exactly
// the given radius around c, starting at the first ring coordinate
// in the given direction from c and walking as per the rotation.
// The clockwise and counterclockwise walks of the same ring are
// exact reverses of each other, sharing their first coordinate.
func WalkRing[C Coords[C]](c C, dir Direction, radius int, rot geo.Rotation) []C {
	if radius <= 0 {
		return nil
	}
	out := make([]C, 0, 6*radius)
	pos := c.ToCube().Add(dir.Vector().Mul(radius))
	for _, d := range walkDirections(dir, rot) {
		for i := 0; i < radius; i++ {
			out = append(out, fromCube[C](pos))
			pos = pos.Add(d)
		}
	}
	return out
}

// WalkRange returns c followed by the walks of the rings at radii
// 1..radius. As a set this equals Range(c, radius).
func WalkRange[C Coords[C]](c C, dir Direction, radius int, rot geo.Rotation) []C {
	out := make([]C, 0, NumInRange(radius))
	out = append(out, c)
	for i := 1; i <= radius; i++ {
		out = append(out, WalkRing(c, dir, i, rot)...)
	}
	return out
}
