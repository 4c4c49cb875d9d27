package design

import "github.com/cwbudde/algo-iir/dsp/filter/biquad"

var identity = biquad.NewCascade(nil)

// Raw holds the cascade of a directly configured filter. Family filter
// types embed it and expose a typed Setup that calls [Raw.Set].
type Raw struct {
	cascade *biquad.Cascade
}

// Cascade returns the current cascade, or an identity cascade before the
// first successful setup.
func (r *Raw) Cascade() *biquad.Cascade {
	if r.cascade == nil {
		return identity
	}

	return r.cascade
}

// Set stores c unless err is non-nil, in which case the previous cascade
// stays and err is returned.
func (r *Raw) Set(c *biquad.Cascade, err error) error {
	if err != nil {
		return err
	}

	r.cascade = c

	return nil
}
