package chebyshev1

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

const family = "Chebyshev I"

// Designs returns the descriptor of every Chebyshev I type.
func Designs() []*design.Descriptor {
	return []*design.Descriptor{
		LowPassDesign(), HighPassDesign(), BandPassDesign(), BandStopDesign(),
		LowShelfDesign(), HighShelfDesign(), BandShelfDesign(),
	}
}

// LowPassDesign has slots [SampleRate, Order, Frequency, RippleDB].
func LowPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowPass, design.PassSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignLowPass(order, p[0], p[2], p[3])
		})
}

// HighPassDesign has slots [SampleRate, Order, Frequency, RippleDB].
func HighPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighPass, design.PassSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignHighPass(order, p[0], p[2], p[3])
		})
}

// BandPassDesign has slots [SampleRate, Order, Frequency, BandwidthHz, RippleDB].
func BandPassDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandPass, design.BandSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandPass(order, p[0], p[2], p[3], p[4])
		})
}

// BandStopDesign has slots [SampleRate, Order, Frequency, BandwidthHz, RippleDB].
func BandStopDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandStop, design.BandSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandStop(order, p[0], p[2], p[3], p[4])
		})
}

// LowShelfDesign has slots [SampleRate, Order, Frequency, Gain, RippleDB].
func LowShelfDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.LowShelf, design.ShelfSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignLowShelf(order, p[0], p[2], p[3], p[4])
		})
}

// HighShelfDesign has slots [SampleRate, Order, Frequency, Gain, RippleDB].
func HighShelfDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.HighShelf, design.ShelfSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignHighShelf(order, p[0], p[2], p[3], p[4])
		})
}

// BandShelfDesign has slots [SampleRate, Order, Frequency, BandwidthHz, Gain, RippleDB].
func BandShelfDesign() *design.Descriptor {
	return design.NewDescriptor(family, "", design.BandShelf, design.BandShelfSchema(param.RippleInfo()),
		func(p param.Params) (*biquad.Cascade, error) {
			order, err := design.Order(p)
			if err != nil {
				return nil, err
			}

			return DesignBandShelf(order, p[0], p[2], p[3], p[4], p[5])
		})
}
