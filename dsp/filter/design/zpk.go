package design

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// realRootTol is the imaginary magnitude below which a root counts as real
// when grouping roots into sections.
const realRootTol = 1e-9

// conjugateMatchTol is the largest distance between a root and the
// conjugate of its partner for the two to share a section.
const conjugateMatchTol = 1e-4

// ZPK is a transfer function in zero/pole/gain form:
//
//	H(x) = Gain * prod(x - Zeros[i]) / prod(x - Poles[i])
//
// The same type carries analog prototypes (x = s) and digital designs
// (x = z). Complex roots appear as conjugate pairs.
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// Clone returns a deep copy.
func (h ZPK) Clone() ZPK {
	return ZPK{
		Zeros: append([]complex128(nil), h.Zeros...),
		Poles: append([]complex128(nil), h.Poles...),
		Gain:  h.Gain,
	}
}

// Eval evaluates H at x.
func (h ZPK) Eval(x complex128) complex128 {
	v := complex(h.Gain, 0)
	for _, z := range h.Zeros {
		v *= x - z
	}

	for _, p := range h.Poles {
		v /= x - p
	}

	return v
}

// relativeDegree is the number of zeros at infinity.
func (h ZPK) relativeDegree() int {
	return len(h.Poles) - len(h.Zeros)
}

// Cascade converts a digital ZPK into second-order sections. Conjugate
// pairs share a section, leftover real roots are paired and an unpaired
// real root becomes a first-order section. The gain is folded into the
// numerator of the first section. The result is rejected unless every
// section is finite and stable.
func (h ZPK) Cascade() (*biquad.Cascade, error) {
	if len(h.Poles) == 0 {
		return nil, Errorf("design has no poles")
	}

	if len(h.Zeros) > len(h.Poles) {
		return nil, Errorf("design has %d zeros for %d poles", len(h.Zeros), len(h.Poles))
	}

	if h.Gain == 0 || math.IsNaN(h.Gain) || math.IsInf(h.Gain, 0) {
		return nil, Errorf("design gain is %v", h.Gain)
	}

	sections := zpkToSections(h.Zeros, h.Poles, h.Gain)
	for i := range sections {
		if !sections[i].IsFinite() {
			return nil, Errorf("section %d is not finite", i)
		}

		if !sections[i].IsStable() {
			return nil, Errorf("section %d is unstable", i)
		}
	}

	return biquad.NewCascade(sections), nil
}

func zpkToSections(z, p []complex128, gain float64) []biquad.Coefficients {
	pGroups := groupRoots(p)
	zGroups := groupRoots(z)

	// Complex pole pairs first, the highest-Q pair leading.
	sort.SliceStable(pGroups, func(i, j int) bool {
		if len(pGroups[i]) != len(pGroups[j]) {
			return len(pGroups[i]) > len(pGroups[j])
		}

		return groupImagAbs(pGroups[i]) > groupImagAbs(pGroups[j])
	})

	var zPairs, zSingles [][]complex128

	for _, g := range zGroups {
		if len(g) == 2 {
			zPairs = append(zPairs, g)
		} else {
			zSingles = append(zSingles, g)
		}
	}

	take := func(first, second *[][]complex128) []complex128 {
		for _, q := range []*[][]complex128{first, second} {
			if len(*q) > 0 {
				g := (*q)[0]
				*q = (*q)[1:]

				return g
			}
		}

		return nil
	}

	out := make([]biquad.Coefficients, 0, len(pGroups))
	for _, pg := range pGroups {
		var zg []complex128
		if len(pg) == 2 {
			zg = take(&zPairs, &zSingles)
		} else {
			zg = take(&zSingles, &zPairs)
		}

		b1, b2 := quadFromRoots(zg)
		a1, a2 := quadFromRoots(pg)
		out = append(out, biquad.Coefficients{B0: 1, B1: b1, B2: b2, A1: a1, A2: a2})
	}

	out[0].B0 *= gain
	out[0].B1 *= gain
	out[0].B2 *= gain

	return out
}

func groupRoots(roots []complex128) [][]complex128 {
	if len(roots) == 0 {
		return nil
	}

	sorted := append([]complex128(nil), roots...)
	sort.Slice(sorted, func(i, j int) bool {
		if imag(sorted[i]) != imag(sorted[j]) {
			return imag(sorted[i]) > imag(sorted[j])
		}

		return real(sorted[i]) < real(sorted[j])
	})

	used := make([]bool, len(sorted))
	groups := make([][]complex128, 0, (len(sorted)+1)/2)
	reals := make([]complex128, 0, len(sorted))

	for i, r := range sorted {
		if used[i] {
			continue
		}

		used[i] = true

		if math.Abs(imag(r)) <= realRootTol {
			reals = append(reals, complex(real(r), 0))
			continue
		}

		target := cmplx.Conj(r)
		best, bestDist := -1, math.MaxFloat64

		for j, rr := range sorted {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(rr - target); d < bestDist {
				best, bestDist = j, d
			}
		}

		if best != -1 && bestDist <= conjugateMatchTol {
			used[best] = true
			groups = append(groups, []complex128{r, cmplx.Conj(r)})
		} else {
			groups = append(groups, []complex128{r})
		}
	}

	sort.Slice(reals, func(i, j int) bool { return real(reals[i]) < real(reals[j]) })

	for i := 0; i+1 < len(reals); i += 2 {
		groups = append(groups, []complex128{reals[i], reals[i+1]})
	}

	if len(reals)%2 == 1 {
		groups = append(groups, []complex128{reals[len(reals)-1]})
	}

	return groups
}

func groupImagAbs(g []complex128) float64 {
	m := 0.0
	for _, r := range g {
		m = math.Max(m, math.Abs(imag(r)))
	}

	return m
}

// quadFromRoots returns c1, c2 of 1 + c1*x^-1 + c2*x^-2 with the given
// roots. A single root yields a first-order polynomial.
func quadFromRoots(group []complex128) (float64, float64) {
	switch len(group) {
	case 0:
		return 0, 0
	case 1:
		return -real(group[0]), 0
	default:
		r1, r2 := group[0], group[1]
		return -real(r1 + r2), real(r1 * r2)
	}
}

func productNeg(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= -x
	}

	return out
}

func productOneMinus(v []complex128) complex128 {
	out := complex(1, 0)
	for _, x := range v {
		out *= 1 - x
	}

	return out
}
