package elliptic

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// LowPass is a directly configured Elliptic low-pass.
type LowPass struct{ design.Raw }

// Setup redesigns the filter; on error the previous cascade stays.
func (f *LowPass) Setup(order int, sampleRate, cutoff, rippleDB, stopDB float64) error {
	return f.Set(DesignLowPass(order, sampleRate, cutoff, rippleDB, stopDB))
}

// HighPass is a directly configured Elliptic high-pass.
type HighPass struct{ design.Raw }

// Setup designs a high-pass of the given order at cutoff with the given
// ripple and attenuation.
func (f *HighPass) Setup(order int, sampleRate, cutoff, rippleDB, stopDB float64) error {
	return f.Set(DesignHighPass(order, sampleRate, cutoff, rippleDB, stopDB))
}

// BandPass is a directly configured Elliptic band-pass.
type BandPass struct{ design.Raw }

// Setup designs a filter that passes center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandPass) Setup(order int, sampleRate, center, width, rippleDB, stopDB float64) error {
	return f.Set(DesignBandPass(order, sampleRate, center, width, rippleDB, stopDB))
}

// BandStop is a directly configured Elliptic band-stop.
type BandStop struct{ design.Raw }

// Setup designs a filter that rejects center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandStop) Setup(order int, sampleRate, center, width, rippleDB, stopDB float64) error {
	return f.Set(DesignBandStop(order, sampleRate, center, width, rippleDB, stopDB))
}
