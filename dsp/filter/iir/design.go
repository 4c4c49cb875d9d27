package iir

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

// Design is a parameterized filter design: a schema and a pure build
// function. *design.Descriptor is the standard implementation.
type Design interface {
	Name() string
	Kind() design.Kind
	ParamInfos() []param.Info
	DefaultParams() param.Params
	Build(p param.Params) (*biquad.Cascade, error)
}

var _ Design = (*design.Descriptor)(nil)
