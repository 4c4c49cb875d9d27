package biquad

import "math/cmplx"

// PoleZeroPair stores the poles and zeros of one section. A first-order
// section fills only index 0 and sets Single.
type PoleZeroPair struct {
	Poles  [2]complex128
	Zeros  [2]complex128
	Single bool
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	if c.A2 == 0 {
		return [2]complex128{complex(-c.A1, 0), 0}
	}

	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
//
// A vanishing B2 leaves a zero at the origin. A vanishing B0 moves a zero
// to infinity, reported as [cmplx.Inf].
func (c *Coefficients) Zeros() [2]complex128 {
	if c.IsFirstOrder() {
		if c.B0 == 0 {
			return [2]complex128{cmplx.Inf(), 0}
		}

		return [2]complex128{complex(-c.B1/c.B0, 0), 0}
	}

	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleZeroPair returns both poles and zeros for a single section.
func (c *Coefficients) PoleZeroPair() PoleZeroPair {
	return PoleZeroPair{
		Poles:  c.Poles(),
		Zeros:  c.Zeros(),
		Single: c.IsFirstOrder(),
	}
}

// PoleZeros returns one pole/zero pair entry per section.
func (c *Cascade) PoleZeros() []PoleZeroPair {
	if c == nil {
		return nil
	}

	out := make([]PoleZeroPair, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].PoleZeroPair()
	}

	return out
}

// Poles flattens the pole set of the cascade; first-order sections
// contribute one root.
func (c *Cascade) Poles() []complex128 {
	var out []complex128
	for _, pz := range c.PoleZeros() {
		out = append(out, pz.Poles[0])
		if !pz.Single {
			out = append(out, pz.Poles[1])
		}
	}

	return out
}

// Zeros flattens the zero set of the cascade; first-order sections
// contribute one root.
func (c *Cascade) Zeros() []complex128 {
	var out []complex128
	for _, pz := range c.PoleZeros() {
		out = append(out, pz.Zeros[0])
		if !pz.Single {
			out = append(out, pz.Zeros[1])
		}
	}

	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	switch {
	case a == 0 && b == 0:
		return [2]complex128{cmplx.Inf(), cmplx.Inf()}
	case a == 0:
		return [2]complex128{complex(-c/b, 0), cmplx.Inf()}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}
