package biquad

import "math"

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// A first-order section has B2 == A2 == 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Normalize builds Coefficients from raw (unnormalized) polynomial
// coefficients by dividing through by a0. ok is false when a0 is zero or
// any result is non-finite.
func Normalize(b0, b1, b2, a0, a1, a2 float64) (c Coefficients, ok bool) {
	if a0 == 0 || math.IsNaN(a0) || math.IsInf(a0, 0) {
		return Coefficients{}, false
	}

	inv := 1 / a0
	c = Coefficients{
		B0: b0 * inv,
		B1: b1 * inv,
		B2: b2 * inv,
		A1: a1 * inv,
		A2: a2 * inv,
	}

	return c, c.IsFinite()
}

// A0 returns the implicit leading denominator coefficient, always 1.
func (c *Coefficients) A0() float64 { return 1 }

// IsFinite reports whether all coefficients are finite.
func (c *Coefficients) IsFinite() bool {
	for _, v := range [5]float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// IsFirstOrder reports whether the section has no second-order terms.
func (c *Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

// Order returns 0, 1 or 2: the highest power of z^-1 present in either
// polynomial.
func (c *Coefficients) Order() int {
	switch {
	case c.B2 != 0 || c.A2 != 0:
		return 2
	case c.B1 != 0 || c.A1 != 0:
		return 1
	default:
		return 0
	}
}

// IsStable reports whether both poles lie strictly inside the unit circle.
// It uses the stability triangle |A2| < 1, |A1| < 1 + A2.
func (c *Coefficients) IsStable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Lerp returns c + (to-c)*t, coefficient by coefficient. Lerp(to, 1)
// returns to exactly.
func (c Coefficients) Lerp(to Coefficients, t float64) Coefficients {
	if t >= 1 {
		return to
	}

	return Coefficients{
		B0: c.B0 + (to.B0-c.B0)*t,
		B1: c.B1 + (to.B1-c.B1)*t,
		B2: c.B2 + (to.B2-c.B2)*t,
		A1: c.A1 + (to.A1-c.A1)*t,
		A2: c.A2 + (to.A2-c.A2)*t,
	}
}
