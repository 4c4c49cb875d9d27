package chebyshev2

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// LowPass is a directly configured Chebyshev II low-pass.
type LowPass struct{ design.Raw }

// Setup redesigns the filter; on error the previous cascade stays.
func (f *LowPass) Setup(order int, sampleRate, cutoff, stopDB float64) error {
	return f.Set(DesignLowPass(order, sampleRate, cutoff, stopDB))
}

// HighPass is a directly configured Chebyshev II high-pass.
type HighPass struct{ design.Raw }

// Setup designs a high-pass of the given order at cutoff with stopDB of
// stopband attenuation.
func (f *HighPass) Setup(order int, sampleRate, cutoff, stopDB float64) error {
	return f.Set(DesignHighPass(order, sampleRate, cutoff, stopDB))
}

// BandPass is a directly configured Chebyshev II band-pass.
type BandPass struct{ design.Raw }

// Setup designs a filter that passes center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandPass) Setup(order int, sampleRate, center, width, stopDB float64) error {
	return f.Set(DesignBandPass(order, sampleRate, center, width, stopDB))
}

// BandStop is a directly configured Chebyshev II band-stop.
type BandStop struct{ design.Raw }

// Setup designs a filter that rejects center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandStop) Setup(order int, sampleRate, center, width, stopDB float64) error {
	return f.Set(DesignBandStop(order, sampleRate, center, width, stopDB))
}

// LowShelf is a directly configured Chebyshev II low shelf.
type LowShelf struct{ design.Raw }

// Setup applies gainDB below cutoff; a gain of 0 dB gives an identity
// cascade.
func (f *LowShelf) Setup(order int, sampleRate, cutoff, gainDB, stopDB float64) error {
	return f.Set(DesignLowShelf(order, sampleRate, cutoff, gainDB, stopDB))
}

// HighShelf is a directly configured Chebyshev II high shelf.
type HighShelf struct{ design.Raw }

// Setup applies gainDB above cutoff.
func (f *HighShelf) Setup(order int, sampleRate, cutoff, gainDB, stopDB float64) error {
	return f.Set(DesignHighShelf(order, sampleRate, cutoff, gainDB, stopDB))
}

// BandShelf is a directly configured Chebyshev II band shelf.
type BandShelf struct{ design.Raw }

// Setup applies gainDB inside center-width/2 .. center+width/2 Hz.
func (f *BandShelf) Setup(order int, sampleRate, center, width, gainDB, stopDB float64) error {
	return f.Set(DesignBandShelf(order, sampleRate, center, width, gainDB, stopDB))
}
