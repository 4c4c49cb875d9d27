package iir

import (
	"fmt"
	"log/slog"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

// Filter owns a design, its parameter vector and the cascade built from
// it. With one or more channels it also owns the delay registers and
// processes audio; with zero channels it only answers analysis queries.
//
// A failed parameter change leaves both the parameters and the cascade as
// they were. Filter is not safe for concurrent use.
type Filter struct {
	design Design
	infos  []param.Info
	params param.Params

	cascade  *biquad.Cascade
	states   *biquad.ChannelStates
	smoother *Smoother

	logger *slog.Logger
}

// ParamReader is the read side of a parameterized filter, as used by
// [Filter.CopyParamsFrom].
type ParamReader interface {
	FindParamID(id param.ID) int
	Param(i int) float64
}

// New creates a Filter for d configured with the design defaults.
func New(d Design, channels int, opts ...Option) (*Filter, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: nil design", ErrInvalidConfig)
	}

	if channels < 0 {
		return nil, fmt.Errorf("%w: channel count must be >= 0: %d", ErrInvalidConfig, channels)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.transition > 0 && channels == 0 {
		return nil, fmt.Errorf("%w: smoothing needs at least one channel", ErrInvalidConfig)
	}

	params := d.DefaultParams()
	sd := staged{Design: d, spread: cfg.form != biquad.DirectFormII}

	c, err := sd.Build(params)
	if err != nil {
		return nil, fmt.Errorf("%s defaults: %w", d.Name(), err)
	}

	f := &Filter{
		design:  sd,
		infos:   d.ParamInfos(),
		params:  params,
		cascade: c,
		logger:  cfg.logger,
	}

	if channels > 0 {
		f.states = biquad.NewChannelStates(cfg.form, channels, c.NumSections())
		if cfg.transition > 0 {
			f.smoother = NewSmoother(cfg.transition, f.states, sd, params, c)
		}
	}

	return f, nil
}

// Name returns the design name, e.g. "Butterworth LowPass".
func (f *Filter) Name() string { return f.design.Name() }

// Kind returns the response shape of the design.
func (f *Filter) Kind() design.Kind { return f.design.Kind() }

// NumParams returns the number of meaningful parameter slots.
func (f *Filter) NumParams() int { return len(f.infos) }

// ParamInfo returns the metadata of slot i.
func (f *Filter) ParamInfo(i int) param.Info { return f.infos[i] }

// DefaultParams returns the design defaults.
func (f *Filter) DefaultParams() param.Params { return f.design.DefaultParams() }

// Params returns the current parameter vector.
func (f *Filter) Params() param.Params { return f.params }

// Param returns the value of slot i.
func (f *Filter) Param(i int) float64 { return f.params[i] }

// FindParamID returns the slot holding id, or -1.
func (f *Filter) FindParamID(id param.ID) int { return param.IndexOf(f.infos, id) }

// SetParam changes slot i and redesigns.
func (f *Filter) SetParam(i int, v float64) error {
	if i < 0 || i >= len(f.infos) {
		return f.reject(fmt.Errorf("%w: parameter index %d outside [0, %d)", ErrInvalidConfig, i, len(f.infos)))
	}

	p := f.params
	p[i] = v

	return f.apply(p)
}

// SetParamByID changes the slot holding id and redesigns.
func (f *Filter) SetParamByID(id param.ID, v float64) error {
	i := f.FindParamID(id)
	if i < 0 {
		return f.reject(fmt.Errorf("%w: %s has no %v parameter", ErrInvalidConfig, f.Name(), id))
	}

	return f.SetParam(i, v)
}

// SetParams replaces the parameter vector with one redesign.
func (f *Filter) SetParams(p param.Params) error {
	return f.apply(p)
}

// CopyParamsFrom takes the value of every parameter whose id other also
// has, leaves the rest unchanged and redesigns once.
func (f *Filter) CopyParamsFrom(other ParamReader) error {
	p := f.params
	for i := range f.infos {
		if j := other.FindParamID(f.infos[i].ID); j >= 0 {
			p[i] = other.Param(j)
		}
	}

	return f.apply(p)
}

// Cascade returns the designed cascade. While smoothing it is the target,
// not the sections currently heard.
func (f *Filter) Cascade() *biquad.Cascade { return f.cascade }

// PoleZeros returns one pole/zero pair per section.
func (f *Filter) PoleZeros() []biquad.PoleZeroPair { return f.cascade.PoleZeros() }

// Response returns the complex response at normalized frequency freq
// (cycles per sample). Frequencies outside (0, 0.5] give NaN.
func (f *Filter) Response(freq float64) complex128 {
	if !(freq > 0 && freq <= 0.5) {
		return cmplx.NaN()
	}

	return f.cascade.Response(freq)
}

// NumChannels returns the channel count fixed at construction.
func (f *Filter) NumChannels() int {
	if f.states == nil {
		return 0
	}

	return f.states.NumChannels()
}

// Reset zeroes the delay registers. A running transition settles on its
// target.
func (f *Filter) Reset() error {
	if f.states == nil {
		return fmt.Errorf("%w: reset on an analysis-only filter", ErrUnsupported)
	}

	if f.smoother != nil {
		f.smoother.Reset()
		return nil
	}

	f.states.Reset()

	return nil
}

// Process filters numSamples samples of each channel buffer in place.
func (f *Filter) Process(numSamples int, buffers [][]float64) error {
	if f.states == nil {
		return fmt.Errorf("%w: process on an analysis-only filter", ErrUnsupported)
	}

	if f.smoother != nil {
		return f.smoother.Process(numSamples, buffers)
	}

	return f.states.Process(f.cascade, numSamples, buffers)
}

func (f *Filter) apply(p param.Params) error {
	c, err := f.design.Build(p)
	if err != nil {
		return f.reject(err)
	}

	f.params = p
	f.cascade = c

	if f.smoother != nil {
		f.smoother.Retarget(p, c)
	}

	f.logger.Debug("iir: redesign", "design", f.Name(), "sections", c.NumSections())

	return nil
}

func (f *Filter) reject(err error) error {
	f.logger.Debug("iir: configuration rejected", "design", f.Name(), "err", err)
	return err
}

// staged balances every built cascade with [biquad.Cascade.Balanced],
// unless the registers run DirectFormII.
type staged struct {
	Design
	spread bool
}

func (s staged) Build(p param.Params) (*biquad.Cascade, error) {
	c, err := s.Design.Build(p)
	if err != nil || !s.spread {
		return c, err
	}

	return c.Balanced(), nil
}
