// Package chebyshev2 designs Chebyshev Type II (inverse Chebyshev)
// filters: monotonic in the passband, equiripple in the stopband.
package chebyshev2

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Prototype returns the analog low-pass prototype. The stopband edge sits
// at the cutoff: the response is -stopDB there and never rises above it
// at higher frequencies. DC gain is unity.
func Prototype(order int, stopDB float64) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	if err := design.CheckPositive("stopband attenuation", stopDB); err != nil {
		return design.ZPK{}, err
	}

	n := float64(order)
	eps := 1 / math.Sqrt(math.Pow(10, stopDB/10)-1)
	mu := math.Asinh(1/eps) / n
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, order)
	zeros := make([]complex128, 0, order)

	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / (2 * n)
		p := 1 / complex(-sh*math.Sin(theta), ch*math.Cos(theta))
		poles = append(poles, p, complex(real(p), -imag(p)))

		w := 1 / math.Cos(theta)
		zeros = append(zeros, complex(0, w), complex(0, -w))
	}

	if order%2 == 1 {
		poles = append(poles, complex(-1/sh, 0))
	}

	// Unity at DC: gain = prod(-p) / prod(-z).
	gain := 1.0
	for _, p := range poles {
		gain *= cmplxAbs2(p)
	}

	for _, z := range zeros {
		gain /= cmplxAbs2(z)
	}

	return design.ZPK{Zeros: zeros, Poles: poles, Gain: math.Sqrt(gain)}, nil
}

func cmplxAbs2(v complex128) float64 {
	return real(v)*real(v) + imag(v)*imag(v)
}

// DesignLowPass returns a low-pass cascade whose stopband starts at cutoff.
func DesignLowPass(order int, sampleRate, cutoff, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighPass returns a high-pass cascade whose stopband ends at cutoff.
func DesignHighPass(order int, sampleRate, cutoff, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandPass returns a band-pass cascade of 2*order poles whose
// stopbands begin at the band edges.
func DesignBandPass(order int, sampleRate, center, width, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

// DesignBandStop returns a band-stop cascade of 2*order poles attenuating
// at least stopDB between the band edges.
func DesignBandStop(order int, sampleRate, center, width, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandStop(proto, sampleRate, center, width)
}

// DesignLowShelf returns a shelf with gainDB below cutoff built on the
// inverse-Chebyshev pole set for stopDB.
func DesignLowShelf(order int, sampleRate, cutoff, gainDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighShelf returns a shelf with gainDB above cutoff.
func DesignHighShelf(order int, sampleRate, cutoff, gainDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandShelf returns a cascade with gainDB inside the band.
func DesignBandShelf(order int, sampleRate, center, width, gainDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

func shelfPrototype(order int, gainDB, stopDB float64) (design.ZPK, error) {
	if err := design.CheckFinite("gain", gainDB); err != nil {
		return design.ZPK{}, err
	}

	proto, err := Prototype(order, stopDB)
	if err != nil {
		return design.ZPK{}, err
	}

	return design.Shelf(proto, gainDB), nil
}
