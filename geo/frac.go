package geo

import "fmt"

// Frac1 is a fraction in the unit interval [0,1]. It parameterises
// linear interpolation between coordinates.
type Frac1 float64

// NewFrac1 creates a fraction in the unit interval [0,1].
// A numerator greater than the denominator or a zero denominator is
// a contract violation and panics.
func NewFrac1(numer, denom float64) Frac1 {
	if numer > denom {
		panic(fmt.Sprintf("geo: Frac1 numerator %g > denominator %g", numer, denom))
	}
	if denom == 0 {
		panic("geo: Frac1 zero denominator")
	}
	return Frac1(numer / denom)
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b float64, t Frac1) float64 {
	return a + (b-a)*float64(t)
}
