package hex

import (
	"math/rand"
	"reflect"
	"testing/quick"

	"github.com/romanb/hexkit/geo"
)

// Generators for testing/quick, keeping coordinates in a range where
// the algebra stays far away from integer overflow.

func randCube(r *rand.Rand) Cube {
	return NewCubeXZ(r.Intn(1<<16)-1<<15, r.Intn(1<<16)-1<<15)
}

func (Cube) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(randCube(r))
}

func (Vec) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(NewVecXZ(r.Intn(1<<16)-1<<15, r.Intn(1<<16)-1<<15))
}

func (FlatDirection) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(FlatDirection(r.Intn(6)))
}

func (PointyDirection) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(PointyDirection(r.Intn(6)))
}

func (Axial) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(Axial{Q: r.Intn(1<<16) - 1<<15, R: r.Intn(1<<16) - 1<<15})
}

func (OddCol) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(OddCol{Col: r.Intn(1<<16) - 1<<15, Row: r.Intn(1<<16) - 1<<15})
}

func (EvenCol) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(EvenCol{Col: r.Intn(1<<16) - 1<<15, Row: r.Intn(1<<16) - 1<<15})
}

func (OddRow) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(OddRow{Col: r.Intn(1<<16) - 1<<15, Row: r.Intn(1<<16) - 1<<15})
}

func (EvenRow) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(EvenRow{Col: r.Intn(1<<16) - 1<<15, Row: r.Intn(1<<16) - 1<<15})
}

// smallRadius is a radius small enough for exhaustive enumeration in
// property tests.
type smallRadius int

func (smallRadius) Generate(r *rand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(smallRadius(r.Intn(16)))
}

type rotation geo.Rotation

func (rotation) Generate(r *rand.Rand, _ int) reflect.Value {
	if r.Intn(2) == 0 {
		return reflect.ValueOf(rotation(geo.CW))
	}
	return reflect.ValueOf(rotation(geo.CCW))
}

func checkQuick(f any) error {
	return quick.Check(f, &quick.Config{MaxCount: 200})
}
