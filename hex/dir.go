package hex

// Direction identifies one of the six adjacent-direction vectors.
// The two orientations carry their own compass-named enumerations,
// but both index the same canonical vector table.
type Direction interface {
	// Index returns the canonical index of the direction, in 0..5.
	Index() int
	// Vector returns the displacement for the direction.
	Vector() Vec
}

// FlatDirection enumerates the adjacent directions for hexagons with
// flat-top orientation.
type FlatDirection int

const (
	FlatNorth FlatDirection = iota
	FlatNorthEast
	FlatSouthEast
	FlatSouth
	FlatSouthWest
	FlatNorthWest
)

func (d FlatDirection) Index() int  { return int(d) }
func (d FlatDirection) Vector() Vec { return dirVectors[d] }

func (d FlatDirection) String() string {
	return [...]string{"N", "NE", "SE", "S", "SW", "NW"}[d]
}

// PointyDirection enumerates the adjacent directions for hexagons
// with pointy-top orientation.
type PointyDirection int

const (
	PointyNorthWest PointyDirection = iota
	PointyNorthEast
	PointyEast
	PointySouthEast
	PointySouthWest
	PointyWest
)

func (d PointyDirection) Index() int  { return int(d) }
func (d PointyDirection) Vector() Vec { return dirVectors[d] }

func (d PointyDirection) String() string {
	return [...]string{"NW", "NE", "E", "SE", "SW", "W"}[d]
}

// FlatDiagonal enumerates the diagonal directions for hexagons with
// flat-top orientation.
type FlatDiagonal int

const (
	FlatDiaNorthWest FlatDiagonal = iota
	FlatDiaNorthEast
	FlatDiaEast
	FlatDiaSouthEast
	FlatDiaSouthWest
	FlatDiaWest
)

func (d FlatDiagonal) Vector() Vec { return diaVectors[d] }

// PointyDiagonal enumerates the diagonal directions for hexagons
// with pointy-top orientation.
type PointyDiagonal int

const (
	PointyDiaNorthWest PointyDiagonal = iota
	PointyDiaNorth
	PointyDiaNorthEast
	PointyDiaSouthEast
	PointyDiaSouth
	PointyDiaSouthWest
)

func (d PointyDiagonal) Vector() Vec { return diaVectors[d] }
