package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/design/bessel"
	"github.com/cwbudde/algo-iir/dsp/filter/design/butterworth"
	"github.com/cwbudde/algo-iir/dsp/filter/design/chebyshev1"
	"github.com/cwbudde/algo-iir/dsp/filter/design/chebyshev2"
	"github.com/cwbudde/algo-iir/dsp/filter/design/custom"
	"github.com/cwbudde/algo-iir/dsp/filter/design/elliptic"
	"github.com/cwbudde/algo-iir/dsp/filter/design/legendre"
	"github.com/cwbudde/algo-iir/dsp/filter/design/rbj"
)

// Registry maps design names to designs, keeping registration order.
type Registry struct {
	designs map[string]Design
	names   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{designs: make(map[string]Design)}
}

// Register adds d under d.Name().
func (r *Registry) Register(d Design) error {
	if d == nil {
		return errors.New("iir: nil design")
	}

	name := d.Name()
	if _, exists := r.designs[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDesign, name)
	}

	r.designs[name] = d
	r.names = append(r.names, name)

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(d Design) {
	if err := r.Register(d); err != nil {
		panic(err.Error())
	}
}

// Lookup returns the design registered as name.
func (r *Registry) Lookup(name string) (Design, bool) {
	d, ok := r.designs[name]
	return d, ok
}

// Designs returns every registered design in registration order.
func (r *Registry) Designs() []Design {
	out := make([]Design, len(r.names))
	for i, name := range r.names {
		out[i] = r.designs[name]
	}

	return out
}

// DefaultRegistry returns a Registry holding every standard design.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	families := [][]*design.Descriptor{
		butterworth.Designs(),
		chebyshev1.Designs(),
		chebyshev2.Designs(),
		elliptic.Designs(),
		bessel.Designs(),
		legendre.Designs(),
		rbj.Designs(),
		custom.Designs(),
	}

	for _, ds := range families {
		for _, d := range ds {
			r.MustRegister(d)
		}
	}

	return r
}

var standard = DefaultRegistry()

// Designs lists every standard design.
func Designs() []Design { return standard.Designs() }

// Lookup finds a standard design by name, e.g. "Butterworth BandPass".
func Lookup(name string) (Design, bool) { return standard.Lookup(name) }
