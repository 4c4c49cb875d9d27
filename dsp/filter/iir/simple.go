package iir

import (
	"fmt"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
)

// Cascader is any directly configured filter that exposes its current
// cascade. The raw family types, e.g. *butterworth.LowPass, satisfy it.
type Cascader interface {
	Cascade() *biquad.Cascade
}

// Simple processes a raw family filter without parameter bookkeeping.
// Reconfigure it through [Simple.Design]; there is no smoothing, and a
// setup that changes the section count zeroes the registers on the next
// Process.
type Simple[D Cascader] struct {
	design D
	states *biquad.ChannelStates
}

// NewSimple wraps d for channels channels. Only [WithForm] has an effect;
// a non-zero [WithTransition] is rejected.
func NewSimple[D Cascader](d D, channels int, opts ...Option) (*Simple[D], error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be > 0: %d", ErrInvalidConfig, channels)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.transition > 0 {
		return nil, fmt.Errorf("%w: Simple does not smooth", ErrInvalidConfig)
	}

	return &Simple[D]{
		design: d,
		states: biquad.NewChannelStates(cfg.form, channels, d.Cascade().NumSections()),
	}, nil
}

// Design returns the wrapped filter, to call Setup on.
func (s *Simple[D]) Design() D { return s.design }

// NumChannels returns the channel count.
func (s *Simple[D]) NumChannels() int { return s.states.NumChannels() }

// Process filters numSamples samples of each channel buffer in place.
func (s *Simple[D]) Process(numSamples int, buffers [][]float64) error {
	return s.states.Process(s.design.Cascade(), numSamples, buffers)
}

// Reset zeroes the delay registers.
func (s *Simple[D]) Reset() { s.states.Reset() }
