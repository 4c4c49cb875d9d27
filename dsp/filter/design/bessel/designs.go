package bessel

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

const family = "Bessel"

// Designs returns the descriptor of every Bessel type.
func Designs() []*design.Descriptor {
	return []*design.Descriptor{
		LowPassDesign(), HighPassDesign(), BandPassDesign(), BandStopDesign(),
	}
}

// LowPassDesign has slots [SampleRate, Order, Frequency].
func LowPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowPass, design.PassSchema(),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignLowPass(order, p[0], p[2])
		})
}

// HighPassDesign has slots [SampleRate, Order, Frequency].
func HighPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighPass, design.PassSchema(),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignHighPass(order, p[0], p[2])
		})
}

// BandPassDesign has slots [SampleRate, Order, Frequency, BandwidthHz].
func BandPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandPass, design.BandSchema(),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandPass(order, p[0], p[2], p[3])
		})
}

// BandStopDesign has slots [SampleRate, Order, Frequency, BandwidthHz].
func BandStopDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandStop, design.BandSchema(),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandStop(order, p[0], p[2], p[3])
		})
}
