// Package bessel designs Bessel (Thomson) filters, which have maximally
// flat group delay in the passband. The magnitude is normalized to -3 dB at
// the cutoff.
package bessel

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/polyroot"
)

// Prototype returns the analog low-pass prototype: the roots of the
// reverse Bessel polynomial, rescaled so that |H(j)| = 1/sqrt(2).
func Prototype(order int) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	roots, err := polyroot.RealRoots(reverseBessel(order))
	if err != nil {
		return design.ZPK{}, design.Errorf("bessel order %d: %v", order, err)
	}

	w := halfPower(roots)

	proto := design.ZPK{Poles: make([]complex128, len(roots))}
	gain := complex(1, 0)

	for i, r := range roots {
		proto.Poles[i] = r / complex(w, 0)
		gain *= -proto.Poles[i]
	}

	proto.Gain = real(gain)

	return proto, nil
}

// reverseBessel returns the descending coefficients of the reverse Bessel
// polynomial of the given order, with s rescaled so that both the leading
// and the constant coefficient are 1.
func reverseBessel(order int) []float64 {
	n := order

	// a[k] = (2n-k)! / (2^(n-k) k! (n-k)!), built down from a[n] = 1.
	a := make([]float64, n+1)
	a[n] = 1

	for k := n; k > 0; k-- {
		a[k-1] = a[k] * float64((2*n-k+1)*k) / float64(2*(n-k+1))
	}

	scale := math.Pow(a[0], 1/float64(n))
	desc := make([]float64, n+1)
	pow := 1.0

	for k := range n + 1 {
		desc[n-k] = a[k] * pow / a[0]
		pow *= scale
	}

	return desc
}

// halfPower returns the frequency at which the all-pole response with unity
// DC gain over poles falls to half power.
func halfPower(poles []complex128) float64 {
	mag2 := func(w float64) float64 {
		h := complex(1, 0)
		for _, p := range poles {
			h *= -p / (complex(0, w) - p)
		}

		return real(h)*real(h) + imag(h)*imag(h)
	}

	lo, hi := 1e-3, 1e3
	for range 100 {
		mid := math.Sqrt(lo * hi)
		if mag2(mid) > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return math.Sqrt(lo * hi)
}

// GroupDelay returns the analog prototype group delay at angular frequency
// w, in units of 1/cutoff.
func GroupDelay(proto design.ZPK, w float64) float64 {
	var d float64
	for _, p := range proto.Poles {
		x := complex(0, w) - p
		d += -real(p) / (real(x)*real(x) + imag(x)*imag(x))
	}

	return d
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
