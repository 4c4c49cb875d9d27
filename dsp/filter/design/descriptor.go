package design

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

// BuildFunc computes a cascade from a validated parameter vector.
type BuildFunc func(p param.Params) (*biquad.Cascade, error)

// Descriptor is the schema-carrying form of one design: its name, shape,
// parameter slots and a pure build function.
type Descriptor struct {
	family string
	typ    string
	kind   Kind
	infos  []param.Info
	build  BuildFunc
}

// NewDescriptor creates a descriptor. typ names the design inside its
// family; when empty the kind name is used.
func NewDescriptor(family, typ string, kind Kind, infos []param.Info, build BuildFunc) *Descriptor {
	if len(infos) > param.MaxParameters {
		panic(fmt.Sprintf("design: %s %s declares %d parameters, max %d", family, typ, len(infos), param.MaxParameters))
	}

	if typ == "" {
		typ = kind.String()
	}

	return &Descriptor{
		family: family,
		typ:    typ,
		kind:   kind,
		infos:  append([]param.Info(nil), infos...),
		build:  build,
	}
}

// Name returns "<Family> <Type>", e.g. "Butterworth LowPass".
func (d *Descriptor) Name() string { return d.family + " " + d.typ }

// Family returns the family name.
func (d *Descriptor) Family() string { return d.family }

// Kind returns the response shape.
func (d *Descriptor) Kind() Kind { return d.kind }

// ParamInfos returns a copy of the parameter schema.
func (d *Descriptor) ParamInfos() []param.Info {
	return append([]param.Info(nil), d.infos...)
}

// DefaultParams returns the schema defaults.
func (d *Descriptor) DefaultParams() param.Params {
	return param.Defaults(d.infos)
}

// Build validates every declared slot of p and runs the design.
func (d *Descriptor) Build(p param.Params) (*biquad.Cascade, error) {
	for i := range d.infos {
		if err := d.infos[i].Validate(p[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	return d.build(p)
}
