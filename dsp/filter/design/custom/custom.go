// Package custom builds filters from poles and zeros placed directly in the
// z-plane. There is no analog prototype and no band transform.
package custom

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

const conjugateTol = 1e-9

// DesignOnePole returns scale*(1 - zero z^-1)/(1 - pole z^-1).
func DesignOnePole(scale, pole, zero float64) (*biquad.Cascade, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}

	if err := design.CheckFinite("zero", zero); err != nil {
		return nil, err
	}

	if err := checkRadius(pole); err != nil {
		return nil, err
	}

	c := biquad.Coefficients{B0: scale, B1: -scale * zero, A1: -pole}

	return biquad.NewCascade([]biquad.Coefficients{c}), nil
}

// DesignTwoPole returns a section with a conjugate pole pair at
// poleRho*e^(±j*poleTheta) and a zero pair at zeroRho*e^(±j*zeroTheta).
func DesignTwoPole(scale, poleRho, poleTheta, zeroRho, zeroTheta float64) (*biquad.Cascade, error) {
	if err := checkScale(scale); err != nil {
		return nil, err
	}

	for _, v := range []struct {
		name string
		val  float64
	}{
		{"pole angle", poleTheta},
		{"zero radius", zeroRho},
		{"zero angle", zeroTheta},
	} {
		if err := design.CheckFinite(v.name, v.val); err != nil {
			return nil, err
		}
	}

	if err := checkRadius(poleRho); err != nil {
		return nil, err
	}

	c := biquad.Coefficients{
		B0: scale,
		B1: -2 * scale * zeroRho * math.Cos(zeroTheta),
		B2: scale * zeroRho * zeroRho,
		A1: -2 * poleRho * math.Cos(poleTheta),
		A2: poleRho * poleRho,
	}

	return biquad.NewCascade([]biquad.Coefficients{c}), nil
}

// DesignPoleZero builds a cascade from explicit z-plane roots. Complex
// roots must come with their conjugates and every pole must lie inside the
// unit circle. gain scales the whole cascade.
func DesignPoleZero(poles, zeros []complex128, gain float64) (*biquad.Cascade, error) {
	if err := checkScale(gain); err != nil {
		return nil, err
	}

	for _, p := range poles {
		if cmplx.IsNaN(p) || cmplx.IsInf(p) || cmplx.Abs(p) >= 1 {
			return nil, design.Errorf("pole %v must lie inside the unit circle", p)
		}
	}

	for _, set := range [][]complex128{poles, zeros} {
		if err := checkConjugates(set); err != nil {
			return nil, err
		}
	}

	return design.ZPK{Zeros: zeros, Poles: poles, Gain: gain}.Cascade()
}

func checkScale(scale float64) error {
	if err := design.CheckFinite("scale", scale); err != nil {
		return err
	}

	if scale == 0 {
		return design.Errorf("scale must be non-zero")
	}

	return nil
}

func checkRadius(r float64) error {
	if err := design.CheckFinite("pole radius", r); err != nil {
		return err
	}

	if math.Abs(r) >= 1 {
		return design.Errorf("pole radius %v must be below 1", r)
	}

	return nil
}

func checkConjugates(roots []complex128) error {
	used := make([]bool, len(roots))

	for i, r := range roots {
		if used[i] || math.Abs(imag(r)) <= conjugateTol {
			continue
		}

		if cmplx.IsNaN(r) || cmplx.IsInf(r) {
			return design.Errorf("root %v is not finite", r)
		}

		match := -1
		for j := i + 1; j < len(roots); j++ {
			if !used[j] && polyroot.IsConjugate(r, roots[j], conjugateTol) {
				match = j
				break
			}
		}

		if match < 0 {
			return design.Errorf("root %v has no conjugate", r)
		}

		used[i], used[match] = true, true
	}

	return nil
}
