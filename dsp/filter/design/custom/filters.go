package custom

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// OnePole is a directly configured first-order section.
type OnePole struct{ design.Raw }

// Setup redesigns the filter; on error the previous cascade stays.
func (f *OnePole) Setup(scale, pole, zero float64) error {
	return f.Set(DesignOnePole(scale, pole, zero))
}

// TwoPole is a directly configured resonator section.
type TwoPole struct{ design.Raw }

// Setup places a conjugate pole pair and zero pair in polar form.
func (f *TwoPole) Setup(scale, poleRho, poleTheta, zeroRho, zeroTheta float64) error {
	return f.Set(DesignTwoPole(scale, poleRho, poleTheta, zeroRho, zeroTheta))
}

// PoleZero is a cascade built from explicit roots. It has no descriptor
// since its roots do not fit a fixed parameter vector.
type PoleZero struct{ design.Raw }

// Setup takes explicit z-plane roots; complex roots must come in
// conjugate pairs.
func (f *PoleZero) Setup(poles, zeros []complex128, gain float64) error {
	return f.Set(DesignPoleZero(poles, zeros, gain))
}
