package hex

import "testing"

func TestShapeTotals(t *testing.T) {
	type mk2 func(int, int) Shape
	rects := map[string]mk2{
		"RectXZOdd":       RectXZOdd,
		"RectXZEven":      RectXZEven,
		"RectZXOdd":       RectZXOdd,
		"RectZXEven":      RectZXEven,
		"RectXYOdd":       RectXYOdd,
		"RectXYEven":      RectXYEven,
		"RectYXOdd":       RectYXOdd,
		"RectYXEven":      RectYXEven,
		"ParallelogramXZ": ParallelogramXZ,
		"ParallelogramXY": ParallelogramXY,
		"ParallelogramYZ": ParallelogramYZ,
	}
	for name, mk := range rects {
		for _, dim := range [][2]int{{0, 0}, {1, 1}, {1, 7}, {6, 1}, {5, 4}, {8, 8}} {
			s := mk(dim[0], dim[1])
			cubes := s.Cubes()
			if len(cubes) != s.Total {
				t.Fatalf("%s(%d,%d): Total = %d, enumerated %d", name, dim[0], dim[1], s.Total, len(cubes))
			}
			assertDistinct(t, name, cubes)
		}
	}
	tris := map[string]func(int) Shape{
		"TriangleUp":   TriangleUp,
		"TriangleDown": TriangleDown,
		"Hexagon":      Hexagon,
	}
	for name, mk := range tris {
		for size := 1; size <= 8; size++ {
			s := mk(size)
			cubes := s.Cubes()
			if len(cubes) != s.Total {
				t.Fatalf("%s(%d): Total = %d, enumerated %d", name, size, s.Total, len(cubes))
			}
			assertDistinct(t, name, cubes)
		}
	}
}

func assertDistinct(t *testing.T, name string, cubes []Cube) {
	t.Helper()
	seen := make(map[Cube]bool, len(cubes))
	for _, c := range cubes {
		if seen[c] {
			t.Fatalf("%s: duplicate coordinate %v", name, c)
		}
		seen[c] = true
	}
}

func TestTriangleShapes(t *testing.T) {
	up := TriangleUp(3).Cubes()
	if len(up) != 6 {
		t.Fatalf("TriangleUp(3) has %d coordinates", len(up))
	}
	for _, c := range up {
		if c.X() < 0 || c.Z() < 0 || c.X()+c.Z() >= 3 {
			t.Fatalf("TriangleUp(3) contains %v", c)
		}
	}
	down := TriangleDown(3).Cubes()
	if len(down) != 6 {
		t.Fatalf("TriangleDown(3) has %d coordinates", len(down))
	}
	for _, c := range down {
		if c.X() < 0 || c.Z() >= 3 || c.X()+c.Z() < 2 {
			t.Fatalf("TriangleDown(3) contains %v", c)
		}
	}
}

func TestHexagonShape(t *testing.T) {
	for side := 1; side <= 6; side++ {
		s := Hexagon(side)
		want := make(map[Cube]bool)
		for _, c := range Range(Origin(), side-1) {
			want[c] = true
		}
		cubes := s.Cubes()
		if len(cubes) != len(want) {
			t.Fatalf("Hexagon(%d) has %d coordinates, want %d", side, len(cubes), len(want))
		}
		for _, c := range cubes {
			if !want[c] {
				t.Fatalf("Hexagon(%d) contains %v beyond radius %d", side, c, side-1)
			}
		}
	}
	if Hexagon(1).Total != 1 {
		t.Fatal("Hexagon(1) is the origin alone")
	}
}
