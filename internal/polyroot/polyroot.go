// Package polyroot provides polynomial root finding and the small amount of
// real-polynomial algebra the analog prototype generators need.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (leading coefficient zero, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// ConjugateTol is the default tolerance for conjugate-pair matching.
const ConjugateTol = 1e-7

// DurandKerner finds all roots of the polynomial with coefficients in
// descending power order: coeff[0]*z^n + ... + coeff[n].
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	// Start on a circle whose radius bounds the root magnitudes, so large
	// constant terms do not push the initial guesses far outside.
	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := math.Pow(cmplx.Abs(norm[i]), 1/float64(i)); r > radius {
			radius = r
		}
	}

	if radius == 0 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 1000
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta) / math.Max(1, cmplx.Abs(roots[i])); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r)) / math.Max(1, math.Pow(cmplx.Abs(r), float64(n)))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// RealRoots finds the roots of a real polynomial given in descending power
// order. Each root is polished with Newton steps on the original
// polynomial; roots with negligible imaginary part are made real and the
// rest are returned as exact conjugate pairs. Roots are sorted by
// imaginary part (descending) and then real part.
func RealRoots(desc []float64) ([]complex128, error) {
	coeff := make([]complex128, len(desc))
	for i, c := range desc {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrDegeneratePolynomial
		}

		coeff[i] = complex(c, 0)
	}

	roots, err := DurandKerner(coeff)
	if err != nil {
		return nil, err
	}

	deriv := derivative(coeff)
	for i, r := range roots {
		roots[i] = newtonPolish(coeff, deriv, r)
	}

	return symmetrize(roots)
}

func newtonPolish(coeff, deriv []complex128, r complex128) complex128 {
	res := cmplx.Abs(PolyEval(coeff, r))

	for range 4 {
		d := PolyEval(deriv, r)
		if d == 0 {
			break
		}

		step := PolyEval(coeff, r) / d
		if cmplx.IsNaN(step) || cmplx.IsInf(step) {
			break
		}

		next := r - step

		nextRes := cmplx.Abs(PolyEval(coeff, next))
		if nextRes >= res {
			break
		}

		r, res = next, nextRes
	}

	return r
}

func derivative(coeff []complex128) []complex128 {
	n := len(coeff) - 1
	if n < 1 {
		return []complex128{0}
	}

	out := make([]complex128, n)
	for i := range n {
		out[i] = coeff[i] * complex(float64(n-i), 0)
	}

	return out
}

// symmetrize snaps near-real roots onto the real axis and replaces each
// complex root and its partner by an exact conjugate pair.
func symmetrize(roots []complex128) ([]complex128, error) {
	out := make([]complex128, 0, len(roots))
	var cplx []complex128

	for _, r := range roots {
		if math.Abs(imag(r)) <= 1e-9*math.Max(1, cmplx.Abs(r)) {
			out = append(out, complex(real(r), 0))
			continue
		}

		if imag(r) > 0 {
			cplx = append(cplx, r)
		}
	}

	upper := len(cplx)
	lower := 0
	for _, r := range roots {
		if imag(r) < 0 && math.Abs(imag(r)) > 1e-9*math.Max(1, cmplx.Abs(r)) {
			lower++
		}
	}

	if upper != lower {
		return nil, ErrDegeneratePolynomial
	}

	for _, r := range cplx {
		out = append(out, r, cmplx.Conj(r))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if imag(out[i]) != imag(out[j]) {
			return imag(out[i]) > imag(out[j])
		}

		return real(out[i]) < real(out[j])
	})

	return out, nil
}

// PolyEval evaluates the polynomial with descending coefficients at x
// using Horner's scheme.
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}

// IsConjugate reports whether a and b are complex conjugates within tol.
func IsConjugate(a, b complex128, tol float64) bool {
	if math.Abs(real(a)-real(b)) > tol*math.Max(1, math.Abs(real(a))) {
		return false
	}

	if math.Abs(imag(a)+imag(b)) > tol*math.Max(1, math.Abs(imag(a))) {
		return false
	}

	return true
}
