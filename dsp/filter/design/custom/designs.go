package custom

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

const family = "Custom"

// Designs returns the parameterized custom designs.
func Designs() []*design.Descriptor {
	return []*design.Descriptor{OnePoleDesign(), TwoPoleDesign()}
}

// OnePoleDesign has slots [Scale, PoleReal, ZeroReal].
func OnePoleDesign() *design.Descriptor {
	infos := []param.Info{param.ScaleInfo(), param.PoleRealInfo(), param.ZeroRealInfo()}

	return design.NewDescriptor(family, "OnePole", design.Other, infos,
		func(p param.Params) (*biquad.Cascade, error) { return DesignOnePole(p[0], p[1], p[2]) })
}

// TwoPoleDesign has slots [Scale, PoleRho, PoleTheta, ZeroRho, ZeroTheta].
func TwoPoleDesign() *design.Descriptor {
	infos := []param.Info{
		param.ScaleInfo(),
		param.PoleRhoInfo(),
		param.PoleThetaInfo(),
		param.ZeroRhoInfo(),
		param.ZeroThetaInfo(),
	}

	return design.NewDescriptor(family, "TwoPole", design.Other, infos,
		func(p param.Params) (*biquad.Cascade, error) { return DesignTwoPole(p[0], p[1], p[2], p[3], p[4]) })
}
