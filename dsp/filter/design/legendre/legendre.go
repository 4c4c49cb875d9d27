// Package legendre designs Legendre (optimum-L) filters: the steepest
// cutoff attainable with a monotonic passband.
package legendre

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// optimumL returns L_n(u), u = w^2, such that |H(jw)|^2 = 1/(1 + L_n(w^2)).
// L_n(0) = 0 and L_n(1) = 1.
func optimumL(order int) polyroot.Poly {
	var (
		v         polyroot.Poly
		integrand polyroot.Poly
	)

	if order%2 == 1 {
		k := (order - 1) / 2
		for i := 0; i <= k; i++ {
			v = v.Add(polyroot.Legendre(i).Scale(float64(2*i + 1)))
		}

		integrand = v.Mul(v)
	} else {
		// Only the Legendre terms with the parity of k contribute.
		k := (order - 2) / 2
		for i := k % 2; i <= k; i += 2 {
			v = v.Add(polyroot.Legendre(i).Scale(float64(2*i + 1)))
		}

		integrand = polyroot.Poly{1, 1}.Mul(v.Mul(v))
	}

	// L(u) = integral from -1 to 2u-1.
	anti := integrand.Integral()
	l := anti.Compose(polyroot.Poly{-1, 2}).Add(polyroot.Poly{-anti.Eval(-1)})

	return l.Scale(1 / l.Eval(1))
}

// Prototype returns the analog low-pass prototype: the left-half-plane
// roots of 1 + L_n(-s^2). The response is -3 dB at the unit cutoff.
func Prototype(order int) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	// Solve 1 + L(u) = 0 for u = -s^2, then take s = -sqrt(-u).
	us, err := polyroot.RealRoots(optimumL(order).Add(polyroot.Poly{1}).Descending())
	if err != nil {
		return design.ZPK{}, design.Errorf("legendre order %d: %v", order, err)
	}

	proto := design.ZPK{Poles: make([]complex128, len(us))}
	gain := complex(1, 0)

	for i, u := range us {
		p := -cmplx.Sqrt(-u)
		if real(p) >= 0 {
			return design.ZPK{}, design.Errorf("legendre order %d: pole %v on the imaginary axis", order, p)
		}

		proto.Poles[i] = p
		gain *= -p
	}

	proto.Gain = real(gain)
	if math.IsNaN(proto.Gain) || proto.Gain <= 0 {
		return design.ZPK{}, design.Errorf("legendre order %d: degenerate gain", order)
	}

	return proto, nil
}

// DesignLowPass returns a low-pass cascade at -3 dB at cutoff.
func DesignLowPass(order int, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighPass returns a high-pass cascade at -3 dB at cutoff.
func DesignHighPass(order int, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandPass returns a band-pass cascade of 2*order poles.
func DesignBandPass(order int, sampleRate, center, width float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

// DesignBandStop returns a band-stop cascade of 2*order poles.
func DesignBandStop(order int, sampleRate, center, width float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandStop(proto, sampleRate, center, width)
}
