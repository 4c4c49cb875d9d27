package legendre

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// LowPass is a directly configured Legendre low-pass.
type LowPass struct{ design.Raw }

// Setup redesigns the filter; on error the previous cascade stays.
func (f *LowPass) Setup(order int, sampleRate, cutoff float64) error {
	return f.Set(DesignLowPass(order, sampleRate, cutoff))
}

// HighPass is a directly configured Legendre high-pass.
type HighPass struct{ design.Raw }

// Setup designs a high-pass of the given order at cutoff.
func (f *HighPass) Setup(order int, sampleRate, cutoff float64) error {
	return f.Set(DesignHighPass(order, sampleRate, cutoff))
}

// BandPass is a directly configured Legendre band-pass.
type BandPass struct{ design.Raw }

// Setup designs a filter that passes center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandPass) Setup(order int, sampleRate, center, width float64) error {
	return f.Set(DesignBandPass(order, sampleRate, center, width))
}

// BandStop is a directly configured Legendre band-stop.
type BandStop struct{ design.Raw }

// Setup designs a filter that rejects center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandStop) Setup(order int, sampleRate, center, width float64) error {
	return f.Set(DesignBandStop(order, sampleRate, center, width))
}
