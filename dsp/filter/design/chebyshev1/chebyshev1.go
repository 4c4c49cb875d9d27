// Package chebyshev1 designs Chebyshev Type I filters: equiripple in the
// passband, monotonic in the stopband.
package chebyshev1

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Prototype returns the analog low-pass prototype. The poles lie on an
// ellipse; the response ripples between 0 and -rippleDB up to the cutoff,
// where it is exactly -rippleDB.
func Prototype(order int, rippleDB float64) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	if err := design.CheckPositive("ripple", rippleDB); err != nil {
		return design.ZPK{}, err
	}

	n := float64(order)
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	mu := math.Asinh(1/eps) / n
	sh, ch := math.Sinh(mu), math.Cosh(mu)

	poles := make([]complex128, 0, order)
	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / (2 * n)
		p := complex(-sh*math.Sin(theta), ch*math.Cos(theta))
		poles = append(poles, p, complex(real(p), -imag(p)))
	}

	if order%2 == 1 {
		poles = append(poles, complex(-sh, 0))
	}

	gain := 1.0
	for _, p := range poles {
		gain *= real(p)*real(p) + imag(p)*imag(p)
	}

	gain = math.Sqrt(gain)
	if order%2 == 0 {
		gain /= math.Sqrt(1 + eps*eps)
	}

	return design.ZPK{Poles: poles, Gain: gain}, nil
}

// DesignLowPass returns a low-pass cascade at -rippleDB at cutoff.
func DesignLowPass(order int, sampleRate, cutoff, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighPass returns a high-pass cascade at -rippleDB at cutoff.
func DesignHighPass(order int, sampleRate, cutoff, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandPass returns a band-pass cascade of 2*order poles.
func DesignBandPass(order int, sampleRate, center, width, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

// DesignBandStop returns a band-stop cascade of 2*order poles.
func DesignBandStop(order int, sampleRate, center, width, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandStop(proto, sampleRate, center, width)
}

// DesignLowShelf returns a shelf with gainDB below cutoff over the
// Chebyshev pole set.
func DesignLowShelf(order int, sampleRate, cutoff, gainDB, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighShelf returns a shelf with gainDB above cutoff.
func DesignHighShelf(order int, sampleRate, cutoff, gainDB, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandShelf returns a cascade with gainDB inside the band.
func DesignBandShelf(order int, sampleRate, center, width, gainDB, rippleDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB, rippleDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

func shelfPrototype(order int, gainDB, rippleDB float64) (design.ZPK, error) {
	if err := design.CheckFinite("gain", gainDB); err != nil {
		return design.ZPK{}, err
	}

	proto, err := Prototype(order, rippleDB)
	if err != nil {
		return design.ZPK{}, err
	}

	return design.Shelf(proto, gainDB), nil
}
