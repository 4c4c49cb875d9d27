package design

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// DigitalLowPass turns a unit-cutoff analog prototype into a digital
// low-pass with the given cutoff.
func DigitalLowPass(proto ZPK, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	if err := CheckFrequency(sampleRate, cutoff); err != nil {
		return nil, err
	}

	return discretize(LowPassToLowPass(proto, Prewarp(cutoff, sampleRate)), nil)
}

// DigitalHighPass turns a unit-cutoff analog prototype into a digital
// high-pass with the given cutoff.
func DigitalHighPass(proto ZPK, sampleRate, cutoff float64) (*biquad.Cascade, error) {
	if err := CheckFrequency(sampleRate, cutoff); err != nil {
		return nil, err
	}

	return discretize(LowPassToHighPass(proto, Prewarp(cutoff, sampleRate)))
}

// DigitalBandPass turns a unit-cutoff analog prototype into a digital
// band-pass between center-width/2 and center+width/2.
func DigitalBandPass(proto ZPK, sampleRate, center, width float64) (*biquad.Cascade, error) {
	w0, bw, err := warpedBand(sampleRate, center, width)
	if err != nil {
		return nil, err
	}

	return discretize(LowPassToBandPass(proto, w0, bw), nil)
}

// DigitalBandStop turns a unit-cutoff analog prototype into a digital
// band-stop between center-width/2 and center+width/2.
func DigitalBandStop(proto ZPK, sampleRate, center, width float64) (*biquad.Cascade, error) {
	w0, bw, err := warpedBand(sampleRate, center, width)
	if err != nil {
		return nil, err
	}

	return discretize(LowPassToBandStop(proto, w0, bw))
}

// warpedBand returns the geometric centre and the width of the pre-warped
// band edges.
func warpedBand(sampleRate, center, width float64) (float64, float64, error) {
	lo, hi, err := BandEdges(sampleRate, center, width)
	if err != nil {
		return 0, 0, err
	}

	wl, wh := Prewarp(lo, sampleRate), Prewarp(hi, sampleRate)

	return math.Sqrt(wl * wh), wh - wl, nil
}

func discretize(analog ZPK, err error) (*biquad.Cascade, error) {
	if err != nil {
		return nil, err
	}

	digital, err := Bilinear(analog)
	if err != nil {
		return nil, err
	}

	return digital.Cascade()
}

// Shelf turns the poles of a low-pass prototype into a low shelf with
// gainDB below the corner and unity above: poles shrink by g^(-1/2n),
// zeros sit at the poles scaled by g^(1/2n). The prototype zeros and gain
// are ignored. A 0 dB shelf has coincident poles and zeros.
func Shelf(proto ZPK, gainDB float64) ZPK {
	n := float64(len(proto.Poles))
	g := math.Pow(10, gainDB/20)
	zs := complex(math.Pow(g, 1/(2*n)), 0)
	ps := complex(math.Pow(g, -1/(2*n)), 0)

	out := ZPK{
		Zeros: make([]complex128, len(proto.Poles)),
		Poles: make([]complex128, len(proto.Poles)),
		Gain:  1,
	}

	for i, p := range proto.Poles {
		out.Zeros[i] = p * zs
		out.Poles[i] = p * ps
	}

	return out
}
