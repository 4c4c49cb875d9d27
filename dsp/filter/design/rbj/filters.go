package rbj

import "github.com/cwbudde/algo-iir/dsp/filter/design"

// LowPass is a directly configured cookbook low-pass.
type LowPass struct{ design.Raw }

// Setup redesigns the filter; on error the previous section stays.
func (f *LowPass) Setup(sampleRate, cutoff, q float64) error {
	return f.Set(DesignLowPass(sampleRate, cutoff, q))
}

// HighPass is a directly configured cookbook high-pass.
type HighPass struct{ design.Raw }

// Setup places the cutoff with resonance q.
func (f *HighPass) Setup(sampleRate, cutoff, q float64) error {
	return f.Set(DesignHighPass(sampleRate, cutoff, q))
}

// BandPass1 is the constant skirt gain band-pass.
type BandPass1 struct{ design.Raw }

// Setup centres the band at center with a width in octaves.
func (f *BandPass1) Setup(sampleRate, center, octaves float64) error {
	return f.Set(DesignBandPass1(sampleRate, center, octaves))
}

// BandPass2 is the 0 dB peak band-pass.
type BandPass2 struct{ design.Raw }

// Setup uses center and octaves like [BandPass1.Setup]; the peak stays
// at 0 dB.
func (f *BandPass2) Setup(sampleRate, center, octaves float64) error {
	return f.Set(DesignBandPass2(sampleRate, center, octaves))
}

// BandStop is a directly configured notch.
type BandStop struct{ design.Raw }

// Setup places the notch at center, octaves wide.
func (f *BandStop) Setup(sampleRate, center, octaves float64) error {
	return f.Set(DesignBandStop(sampleRate, center, octaves))
}

// LowShelf is a directly configured cookbook low shelf.
type LowShelf struct{ design.Raw }

// Setup sets the corner, the gain in dB and the shelf slope.
func (f *LowShelf) Setup(sampleRate, cutoff, gainDB, slope float64) error {
	return f.Set(DesignLowShelf(sampleRate, cutoff, gainDB, slope))
}

// HighShelf is a directly configured cookbook high shelf.
type HighShelf struct{ design.Raw }

// Setup mirrors [LowShelf.Setup] above the corner.
func (f *HighShelf) Setup(sampleRate, cutoff, gainDB, slope float64) error {
	return f.Set(DesignHighShelf(sampleRate, cutoff, gainDB, slope))
}

// BandShelf is a directly configured peaking section.
type BandShelf struct{ design.Raw }

// Setup applies gainDB across a band octaves wide around center.
func (f *BandShelf) Setup(sampleRate, center, gainDB, octaves float64) error {
	return f.Set(DesignBandShelf(sampleRate, center, gainDB, octaves))
}

// AllPass is a directly configured second-order all-pass.
type AllPass struct{ design.Raw }

// Setup centres the phase shift at phaseFreq.
func (f *AllPass) Setup(sampleRate, phaseFreq, q float64) error {
	return f.Set(DesignAllPass(sampleRate, phaseFreq, q))
}
