package hex

// Shape is a finite set of cube coordinates in a defined enumeration
// order, paired with its exact element count. The count comes from a
// closed formula; the enumeration itself is only produced when Cubes
// is called.
type Shape struct {
	// Total is the number of coordinates the shape enumerates.
	Total int
	// Cubes enumerates the coordinates of the shape.
	Cubes func() []Cube
}

// RectXZOdd is a rectangular shape staggered along the x axis with
// odd columns indented. Axis-aligned for flat-top hexagons; pairs
// with the OddCol offset coordinates.
func RectXZOdd(cols, rows int) Shape {
	return rectShape(cols, rows, func(a, b int) Cube {
		return NewCubeXZ(a, b)
	}, oddStagger)
}

// RectXZEven is a rectangular shape staggered along the x axis with
// even columns indented. Axis-aligned for flat-top hexagons; pairs
// with the EvenCol offset coordinates.
func RectXZEven(cols, rows int) Shape {
	return rectShape(cols, rows, func(a, b int) Cube {
		return NewCubeXZ(a, b)
	}, evenStagger)
}

// RectZXOdd is a rectangular shape staggered along the z axis with
// odd rows indented. Axis-aligned for pointy-top hexagons; pairs
// with the OddRow offset coordinates.
func RectZXOdd(cols, rows int) Shape {
	return rectShape(rows, cols, func(a, b int) Cube {
		return NewCubeXZ(b, a)
	}, oddStagger)
}

// RectZXEven is a rectangular shape staggered along the z axis with
// even rows indented. Axis-aligned for pointy-top hexagons; pairs
// with the EvenRow offset coordinates.
func RectZXEven(cols, rows int) Shape {
	return rectShape(rows, cols, func(a, b int) Cube {
		return NewCubeXZ(b, a)
	}, evenStagger)
}

// RectXYOdd is a rectangular shape staggered along the x axis on the
// x/y axis pairing, with odd columns indented.
func RectXYOdd(cols, rows int) Shape {
	return rectShape(cols, rows, func(a, b int) Cube {
		return NewCubeXY(a, b)
	}, oddStagger)
}

// RectXYEven is a rectangular shape staggered along the x axis on
// the x/y axis pairing, with even columns indented.
func RectXYEven(cols, rows int) Shape {
	return rectShape(cols, rows, func(a, b int) Cube {
		return NewCubeXY(a, b)
	}, evenStagger)
}

// RectYXOdd is a rectangular shape staggered along the y axis on the
// x/y axis pairing, with odd rows indented.
func RectYXOdd(cols, rows int) Shape {
	return rectShape(rows, cols, func(a, b int) Cube {
		return NewCubeXY(b, a)
	}, oddStagger)
}

// RectYXEven is a rectangular shape staggered along the y axis on
// the x/y axis pairing, with even rows indented.
func RectYXEven(cols, rows int) Shape {
	return rectShape(rows, cols, func(a, b int) Cube {
		return NewCubeXY(b, a)
	}, evenStagger)
}

func oddStagger(i int) int  { return i / 2 }
func evenStagger(i int) int { return (i + 1) / 2 }

// rectShape enumerates outer in 0..outerN and inner in a window of
// innerN values shifted back by the stagger of the outer index,
// which is what folds the staggered axes into a rectangle.
func rectShape(outerN, innerN int, mk func(outer, inner int) Cube, stagger func(int) int) Shape {
	return Shape{
		Total: outerN * innerN,
		Cubes: func() []Cube {
			out := make([]Cube, 0, outerN*innerN)
			for a := 0; a < outerN; a++ {
				off := stagger(a)
				for b := -off; b < innerN-off; b++ {
					out = append(out, mk(a, b))
				}
			}
			return out
		},
	}
}

// ParallelogramXZ is the parallelogram spanned by the x and z axes.
func ParallelogramXZ(cols, rows int) Shape {
	return parallelogram(cols, rows, NewCubeXZ)
}

// ParallelogramXY is the parallelogram spanned by the x and y axes.
func ParallelogramXY(cols, rows int) Shape {
	return parallelogram(cols, rows, NewCubeXY)
}

// ParallelogramYZ is the parallelogram spanned by the y and z axes.
func ParallelogramYZ(cols, rows int) Shape {
	return parallelogram(cols, rows, NewCubeYZ)
}

func parallelogram(cols, rows int, mk func(a, b int) Cube) Shape {
	return Shape{
		Total: cols * rows,
		Cubes: func() []Cube {
			out := make([]Cube, 0, cols*rows)
			for a := 0; a < cols; a++ {
				for b := 0; b < rows; b++ {
					out = append(out, mk(a, b))
				}
			}
			return out
		},
	}
}

// TriangleUp is the upwards-pointing triangle with the given number
// of hexagons along each side.
func TriangleUp(size int) Shape {
	return Shape{
		Total: size * (size + 1) / 2,
		Cubes: func() []Cube {
			out := make([]Cube, 0, size*(size+1)/2)
			for x := 0; x < size; x++ {
				for z := 0; z < size-x; z++ {
					out = append(out, NewCubeXZ(x, z))
				}
			}
			return out
		},
	}
}

// TriangleDown is the downwards-pointing triangle with the given
// number of hexagons along each side.
func TriangleDown(size int) Shape {
	return Shape{
		Total: size * (size + 1) / 2,
		Cubes: func() []Cube {
			out := make([]Cube, 0, size*(size+1)/2)
			for x := 0; x < size; x++ {
				for z := size - 1 - x; z < size; z++ {
					out = append(out, NewCubeXZ(x, z))
				}
			}
			return out
		},
	}
}

// Hexagon is the centered hexagonal region with the given number of
// hexagons along each side, i.e. all coordinates within distance
// side-1 of the origin.
func Hexagon(side int) Shape {
	r := side - 1
	return Shape{
		Total: NumInRange(r),
		Cubes: func() []Cube {
			return Range(Origin(), r)
		},
	}
}
