package butterworth

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// LowPass is a directly configured Butterworth low-pass.
type LowPass struct{ design.Raw }

// Setup redesigns the filter; on error the previous cascade stays.
func (f *LowPass) Setup(order int, sampleRate, cutoff float64) error {
	return f.Set(DesignLowPass(order, sampleRate, cutoff))
}

// HighPass is a directly configured Butterworth high-pass.
type HighPass struct{ design.Raw }

// Setup designs a high-pass of the given order at cutoff.
func (f *HighPass) Setup(order int, sampleRate, cutoff float64) error {
	return f.Set(DesignHighPass(order, sampleRate, cutoff))
}

// BandPass is a directly configured Butterworth band-pass.
type BandPass struct{ design.Raw }

// Setup designs a filter that passes center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandPass) Setup(order int, sampleRate, center, width float64) error {
	return f.Set(DesignBandPass(order, sampleRate, center, width))
}

// BandStop is a directly configured Butterworth band-stop.
type BandStop struct{ design.Raw }

// Setup designs a filter that rejects center-width/2 .. center+width/2 Hz
// with 2*order poles.
func (f *BandStop) Setup(order int, sampleRate, center, width float64) error {
	return f.Set(DesignBandStop(order, sampleRate, center, width))
}

// LowShelf is a directly configured Butterworth low shelf.
type LowShelf struct{ design.Raw }

// Setup applies gainDB below cutoff; a gain of 0 dB gives an identity
// cascade.
func (f *LowShelf) Setup(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Set(DesignLowShelf(order, sampleRate, cutoff, gainDB))
}

// HighShelf is a directly configured Butterworth high shelf.
type HighShelf struct{ design.Raw }

// Setup applies gainDB above cutoff.
func (f *HighShelf) Setup(order int, sampleRate, cutoff, gainDB float64) error {
	return f.Set(DesignHighShelf(order, sampleRate, cutoff, gainDB))
}

// BandShelf is a directly configured Butterworth band shelf.
type BandShelf struct{ design.Raw }

// Setup applies gainDB inside center-width/2 .. center+width/2 Hz.
func (f *BandShelf) Setup(order int, sampleRate, center, width, gainDB float64) error {
	return f.Set(DesignBandShelf(order, sampleRate, center, width, gainDB))
}
