// Package butterworth designs maximally flat IIR filters: low-pass,
// high-pass, band-pass, band-stop and the three shelves.
package butterworth

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Prototype returns the analog low-pass prototype of the given order: all
// poles on the unit circle in the left half plane, unity gain at DC.
func Prototype(order int) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	n := float64(order)
	poles := make([]complex128, 0, order)

	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / (2 * n)
		p := complex(-math.Sin(theta), math.Cos(theta))
		poles = append(poles, p, complex(real(p), -imag(p)))
	}

	if order%2 == 1 {
		poles = append(poles, -1)
	}

	return design.ZPK{Poles: poles, Gain: 1}, nil
}

// DesignLowPass returns a low-pass cascade that is -3.01 dB at cutoff.
func DesignLowPass(order int, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighPass returns a high-pass cascade that is -3.01 dB at cutoff.
func DesignHighPass(order int, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandPass returns a band-pass cascade of 2*order poles passing
// center-width/2 .. center+width/2.
func DesignBandPass(order int, sampleRate, center, width float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

// DesignBandStop returns a band-stop cascade of 2*order poles rejecting
// center-width/2 .. center+width/2.
func DesignBandStop(order int, sampleRate, center, width float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandStop(proto, sampleRate, center, width)
}

// DesignLowShelf returns a shelf with gainDB below cutoff and unity above.
func DesignLowShelf(order int, sampleRate, cutoff, gainDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighShelf returns a shelf with gainDB above cutoff and unity below.
func DesignHighShelf(order int, sampleRate, cutoff, gainDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandShelf returns a cascade with gainDB inside the band and unity
// outside it.
func DesignBandShelf(order int, sampleRate, center, width, gainDB float64) (*biquad.Cascade, error) {
	proto, err := shelfPrototype(order, gainDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

func shelfPrototype(order int, gainDB float64) (design.ZPK, error) {
	if err := design.CheckFinite("gain", gainDB); err != nil {
		return design.ZPK{}, err
	}

	proto, err := Prototype(order)
	if err != nil {
		return design.ZPK{}, err
	}

	return design.Shelf(proto, gainDB), nil
}
