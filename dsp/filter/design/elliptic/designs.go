package elliptic

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

const family = "Elliptic"

// Designs returns the descriptor of every Elliptic type.
func Designs() []*design.Descriptor {
	return []*design.Descriptor{
		LowPassDesign(), HighPassDesign(), BandPassDesign(), BandStopDesign(),
	}
}

// LowPassDesign has slots [SampleRate, Order, Frequency, RippleDB, StopDB].
func LowPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowPass, design.PassSchema(param.RippleInfo(), param.StopInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignLowPass(order, p[0], p[2], p[3], p[4])
		})
}

// HighPassDesign has slots [SampleRate, Order, Frequency, RippleDB, StopDB].
func HighPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighPass, design.PassSchema(param.RippleInfo(), param.StopInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignHighPass(order, p[0], p[2], p[3], p[4])
		})
}

// BandPassDesign has slots [SampleRate, Order, Frequency, BandwidthHz, RippleDB, StopDB].
func BandPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandPass, design.BandSchema(param.RippleInfo(), param.StopInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandPass(order, p[0], p[2], p[3], p[4], p[5])
		})
}

// BandStopDesign has slots [SampleRate, Order, Frequency, BandwidthHz, RippleDB, StopDB].
func BandStopDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandStop, design.BandSchema(param.RippleInfo(), param.StopInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandStop(order, p[0], p[2], p[3], p[4], p[5])
		})
}
