// Package rbj implements Robert Bristow-Johnson's Audio EQ Cookbook
// biquads. Every design is a single second-order section; there is no
// order parameter.
package rbj

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// omega holds the cookbook intermediates for one centre frequency.
type omega struct {
	w0, cs, sn float64
}

func prepare(sampleRate, freq float64) (omega, error) {
	if err := design.CheckFrequency(sampleRate, freq); err != nil {
		return omega{}, err
	}

	w0 := 2 * math.Pi * freq / sampleRate

	return omega{w0: w0, cs: math.Cos(w0), sn: math.Sin(w0)}, nil
}

// qAlpha is the cookbook alpha for a quality factor.
func (o omega) qAlpha(q float64) (float64, error) {
	if err := design.CheckPositive("Q", q); err != nil {
		return 0, err
	}

	return o.sn / (2 * q), nil
}

// bwAlpha is the cookbook alpha for a bandwidth in octaves, measured
// between the -3 dB points (or midpoint gain for the band shelf).
func (o omega) bwAlpha(octaves float64) (float64, error) {
	if err := design.CheckPositive("bandwidth", octaves); err != nil {
		return 0, err
	}

	return o.sn * math.Sinh(math.Ln2/2*octaves*o.w0/o.sn), nil
}

// slopeAlpha is the shelf alpha for a slope S; S = 1 is the steepest
// slope that stays monotonic.
func (o omega) slopeAlpha(a, slope float64) (float64, error) {
	if err := design.CheckPositive("slope", slope); err != nil {
		return 0, err
	}

	arg := (a+1/a)*(1/slope-1) + 2
	if arg <= 0 {
		return 0, design.Errorf("shelf slope %v too steep for the gain", slope)
	}

	return o.sn / 2 * math.Sqrt(arg), nil
}

func shelfAmplitude(gainDB float64) (float64, error) {
	if err := design.CheckFinite("gain", gainDB); err != nil {
		return 0, err
	}

	return math.Pow(10, gainDB/40), nil
}

func single(b0, b1, b2, a0, a1, a2 float64) (*biquad.Cascade, error) {
	c, ok := biquad.Normalize(b0, b1, b2, a0, a1, a2)
	if !ok || !c.IsStable() {
		return nil, design.Errorf("cookbook section is degenerate")
	}

	return biquad.NewCascade([]biquad.Coefficients{c}), nil
}

// DesignLowPass returns a second-order low-pass; |H| = q at cutoff.
func DesignLowPass(sampleRate, cutoff, q float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	alpha, err := o.qAlpha(q)
	if err != nil {
		return nil, err
	}

	return single((1-o.cs)/2, 1-o.cs, (1-o.cs)/2, 1+alpha, -2*o.cs, 1-alpha)
}

// DesignHighPass returns a second-order high-pass; |H| = q at cutoff.
func DesignHighPass(sampleRate, cutoff, q float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	alpha, err := o.qAlpha(q)
	if err != nil {
		return nil, err
	}

	return single((1+o.cs)/2, -(1 + o.cs), (1+o.cs)/2, 1+alpha, -2*o.cs, 1-alpha)
}

// DesignBandPass1 returns a constant skirt gain band-pass: the peak gain
// equals the Q implied by the bandwidth.
func DesignBandPass1(sampleRate, center, octaves float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, center)
	if err != nil {
		return nil, err
	}

	alpha, err := o.bwAlpha(octaves)
	if err != nil {
		return nil, err
	}

	return single(o.sn/2, 0, -o.sn/2, 1+alpha, -2*o.cs, 1-alpha)
}

// DesignBandPass2 returns a band-pass with 0 dB peak gain.
func DesignBandPass2(sampleRate, center, octaves float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, center)
	if err != nil {
		return nil, err
	}

	alpha, err := o.bwAlpha(octaves)
	if err != nil {
		return nil, err
	}

	return single(alpha, 0, -alpha, 1+alpha, -2*o.cs, 1-alpha)
}

// DesignBandStop returns a notch at center.
func DesignBandStop(sampleRate, center, octaves float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, center)
	if err != nil {
		return nil, err
	}

	alpha, err := o.bwAlpha(octaves)
	if err != nil {
		return nil, err
	}

	return single(1, -2*o.cs, 1, 1+alpha, -2*o.cs, 1-alpha)
}

// DesignLowShelf returns a shelf with gainDB below cutoff and gainDB/2 at
// cutoff.
func DesignLowShelf(sampleRate, cutoff, gainDB, slope float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return nil, err
	}

	alpha, err := o.slopeAlpha(a, slope)
	if err != nil {
		return nil, err
	}

	beta := 2 * math.Sqrt(a) * alpha

	return single(
		a*((a+1)-(a-1)*o.cs+beta),
		2*a*((a-1)-(a+1)*o.cs),
		a*((a+1)-(a-1)*o.cs-beta),
		(a+1)+(a-1)*o.cs+beta,
		-2*((a-1)+(a+1)*o.cs),
		(a+1)+(a-1)*o.cs-beta,
	)
}

// DesignHighShelf returns a shelf with gainDB above cutoff.
func DesignHighShelf(sampleRate, cutoff, gainDB, slope float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, cutoff)
	if err != nil {
		return nil, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return nil, err
	}

	alpha, err := o.slopeAlpha(a, slope)
	if err != nil {
		return nil, err
	}

	beta := 2 * math.Sqrt(a) * alpha

	return single(
		a*((a+1)+(a-1)*o.cs+beta),
		-2*a*((a-1)+(a+1)*o.cs),
		a*((a+1)+(a-1)*o.cs-beta),
		(a+1)-(a-1)*o.cs+beta,
		2*((a-1)-(a+1)*o.cs),
		(a+1)-(a-1)*o.cs-beta,
	)
}

// DesignBandShelf returns a peaking section with gainDB at center.
func DesignBandShelf(sampleRate, center, gainDB, octaves float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, center)
	if err != nil {
		return nil, err
	}

	a, err := shelfAmplitude(gainDB)
	if err != nil {
		return nil, err
	}

	alpha, err := o.bwAlpha(octaves)
	if err != nil {
		return nil, err
	}

	return single(1+alpha*a, -2*o.cs, 1-alpha*a, 1+alpha/a, -2*o.cs, 1-alpha/a)
}

// DesignAllPass returns a second-order all-pass whose phase passes -180
// degrees at phaseFreq.
func DesignAllPass(sampleRate, phaseFreq, q float64) (*biquad.Cascade, error) {
	o, err := prepare(sampleRate, phaseFreq)
	if err != nil {
		return nil, err
	}

	alpha, err := o.qAlpha(q)
	if err != nil {
		return nil, err
	}

	return single(1-alpha, -2*o.cs, 1+alpha, 1+alpha, -2*o.cs, 1-alpha)
}
