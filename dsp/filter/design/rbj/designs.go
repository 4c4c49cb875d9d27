package rbj

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

const family = "RBJ"

// Designs returns the descriptor of every cookbook type.
func Designs() []*design.Descriptor {
	return []*design.Descriptor{
		LowPassDesign(), HighPassDesign(), BandPass1Design(), BandPass2Design(), BandStopDesign(),
		LowShelfDesign(), HighShelfDesign(), BandShelfDesign(), AllPassDesign(),
	}
}

func qSchema(freqLabel string) []param.Info {
	return []param.Info{
		param.SampleRateInfo(),
		param.FrequencyInfo().WithLabel(freqLabel),
		param.QInfo(),
	}
}

func bandSchema() []param.Info {
	return []param.Info{
		param.SampleRateInfo(),
		param.FrequencyInfo().WithLabel("Center Frequency"),
		param.BandwidthInfo(),
	}
}

func shelfSchema() []param.Info {
	return []param.Info{
		param.SampleRateInfo(),
		param.FrequencyInfo().WithLabel("Corner Frequency"),
		param.GainInfo(),
		param.SlopeInfo(),
	}
}

// LowPassDesign has slots [SampleRate, Frequency, Q].
func LowPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowPass, qSchema("Cutoff Frequency"),
		func(p param.Params) (*biquad.Cascade, error) { return DesignLowPass(p[0], p[1], p[2]) })
}

// HighPassDesign has slots [SampleRate, Frequency, Q].
func HighPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighPass, qSchema("Cutoff Frequency"),
		func(p param.Params) (*biquad.Cascade, error) { return DesignHighPass(p[0], p[1], p[2]) })
}

// BandPass1Design has slots [SampleRate, Frequency, Bandwidth].
func BandPass1Design() *design.Descriptor {
	return design.NewDescriptor(family, "BandPass1", design.BandPass, bandSchema(),
		func(p param.Params) (*biquad.Cascade, error) { return DesignBandPass1(p[0], p[1], p[2]) })
}

// BandPass2Design has slots [SampleRate, Frequency, Bandwidth].
func BandPass2Design() *design.Descriptor {
	return design.NewDescriptor(family, "BandPass2", design.BandPass, bandSchema(),
		func(p param.Params) (*biquad.Cascade, error) { return DesignBandPass2(p[0], p[1], p[2]) })
}

// BandStopDesign has slots [SampleRate, Frequency, Bandwidth].
func BandStopDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandStop, bandSchema(),
		func(p param.Params) (*biquad.Cascade, error) { return DesignBandStop(p[0], p[1], p[2]) })
}

// LowShelfDesign has slots [SampleRate, Frequency, Gain, Slope].
func LowShelfDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowShelf, shelfSchema(),
		func(p param.Params) (*biquad.Cascade, error) { return DesignLowShelf(p[0], p[1], p[2], p[3]) })
}

// HighShelfDesign has slots [SampleRate, Frequency, Gain, Slope].
func HighShelfDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighShelf, shelfSchema(),
		func(p param.Params) (*biquad.Cascade, error) { return DesignHighShelf(p[0], p[1], p[2], p[3]) })
}

// BandShelfDesign has slots [SampleRate, Frequency, Gain, Bandwidth].
func BandShelfDesign() *design.Descriptor {
	infos := []param.Info{
		param.SampleRateInfo(),
		param.FrequencyInfo().WithLabel("Center Frequency"),
		param.GainInfo(),
		param.BandwidthInfo(),
	}

	return design.NewDescriptor(family, "", design.BandShelf, infos,
		func(p param.Params) (*biquad.Cascade, error) { return DesignBandShelf(p[0], p[1], p[2], p[3]) })
}

// AllPassDesign has slots [SampleRate, Frequency, Q].
func AllPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.AllPass, qSchema("Phase Frequency"),
		func(p param.Params) (*biquad.Cascade, error) { return DesignAllPass(p[0], p[1], p[2]) })
}
