package iir

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/param"
)

// keyframeInterval is the spacing in samples of the redesigned cascades a
// transition passes through.
const keyframeInterval = 32

// Redesigner builds cascades from parameter vectors. Every [Design]
// satisfies it.
type Redesigner interface {
	ParamInfos() []param.Info
	Build(p param.Params) (*biquad.Cascade, error)
}

// Smoother moves the audible coefficients of a cascade toward a target
// over a fixed number of processed samples.
//
// When a change arrives, the parameters are interpolated from the values
// currently heard to the new ones along each slot's control curve, and the
// design is rebuilt every keyframeInterval samples of the transition.
// Between keyframes the section coefficients move linearly, one step per
// sample. After length samples the audible sections are the target
// sections exactly and the block path resumes.
//
// All keyframes are built by Retarget; Process does not allocate. A
// Smoother drives the registers it was created with and is not safe for
// concurrent use.
type Smoother struct {
	length int
	states *biquad.ChannelStates
	design Redesigner
	infos  []param.Info

	target *biquad.Cascade
	params param.Params // target parameters
	from   param.Params // parameters heard when the transition started

	keys  []biquad.Coefficients // keyframe j, section i at j*len(cur)+i
	gains []float64
	cur   []biquad.Coefficients
	gain  float64
	pos   int

	tail [][]float64 // per-channel views of the unsmoothed remainder
}

// NewSmoother creates a smoother with a transition of length samples that
// starts settled on initial, the cascade d builds for p.
func NewSmoother(length int, states *biquad.ChannelStates, d Redesigner, p param.Params, initial *biquad.Cascade) *Smoother {
	s := &Smoother{
		length: max(length, 0),
		states: states,
		design: d,
		infos:  d.ParamInfos(),
		tail:   make([][]float64, states.NumChannels()),
	}
	s.jump(p, initial)

	return s
}

// Length returns the transition length in samples.
func (s *Smoother) Length() int { return s.length }

// Target returns the cascade the smoother is moving toward.
func (s *Smoother) Target() *biquad.Cascade { return s.target }

// Active reports whether a transition is in progress.
func (s *Smoother) Active() bool { return s.pos < s.length }

// Current returns a copy of the sections that would filter the next sample.
func (s *Smoother) Current() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), s.cur...)
}

// Params returns the parameters the transition has reached.
func (s *Smoother) Params() param.Params {
	if !s.Active() {
		return s.params
	}

	return s.interpolate(float64(s.pos) / float64(s.length))
}

// Retarget starts a transition from the current sections to c, the cascade
// built for p. A cascade with a different section count is applied at
// once: the registers are resized and zeroed and no transition runs.
func (s *Smoother) Retarget(p param.Params, c *biquad.Cascade) {
	if s.length == 0 || c.NumSections() != len(s.cur) {
		s.jump(p, c)
		return
	}

	s.from = s.Params()
	s.params = p
	s.target = c
	s.pos = 0
	s.plan()
}

// Reset zeroes the registers and settles on the target.
func (s *Smoother) Reset() {
	s.jump(s.params, s.target)
	s.states.Reset()
}

// Process filters numSamples samples of every buffer in place. While a
// transition runs, samples go through the per-sample path with freshly
// interpolated sections; the rest of the block uses the block kernel.
func (s *Smoother) Process(numSamples int, buffers [][]float64) error {
	if err := s.states.CheckBuffers(numSamples, buffers); err != nil {
		return err
	}

	n := 0
	for ; n < numSamples && s.pos < s.length; n++ {
		s.advance()

		for ch, buf := range buffers {
			buf[n] = s.states.Step(ch, s.cur, s.gain*buf[n])
		}
	}

	if n == numSamples {
		return nil
	}

	for ch, buf := range buffers {
		s.tail[ch] = buf[n:numSamples]
	}

	err := s.states.Process(s.target, numSamples-n, s.tail)
	clear(s.tail)

	return err
}

// plan fills keys and gains with one keyframe per interval boundary. The
// first keyframe is the current sections and the last is the target.
func (s *Smoother) plan() {
	n := len(s.cur)
	segments := (s.length + keyframeInterval - 1) / keyframeInterval

	s.keys = append(s.keys[:0], s.cur...)
	s.gains = append(s.gains[:0], s.gain)

	for j := 1; j < segments; j++ {
		t := float64(j*keyframeInterval) / float64(s.length)

		c, err := s.design.Build(s.interpolate(t))
		if err != nil || c.NumSections() != n {
			// Fall back to the coefficient path for a point the design rejects.
			for i := range n {
				s.keys = append(s.keys, s.keys[i].Lerp(s.target.Section(i), t))
			}

			s.gains = append(s.gains, s.gains[0]+(s.target.Gain()-s.gains[0])*t)

			continue
		}

		for i := range n {
			s.keys = append(s.keys, c.Section(i))
		}

		s.gains = append(s.gains, c.Gain())
	}

	for i := range n {
		s.keys = append(s.keys, s.target.Section(i))
	}

	s.gains = append(s.gains, s.target.Gain())
}

func (s *Smoother) interpolate(t float64) param.Params {
	p := s.params
	for i, info := range s.infos {
		p[i] = info.Interpolate(s.from[i], s.params[i], t)
	}

	return p
}

func (s *Smoother) advance() {
	s.pos++

	j := (s.pos - 1) / keyframeInterval
	lo := j * keyframeInterval
	hi := min(lo+keyframeInterval, s.length)
	u := float64(s.pos-lo) / float64(hi-lo)

	n := len(s.cur)
	a, b := s.keys[j*n:(j+1)*n], s.keys[(j+1)*n:(j+2)*n]

	for i := range s.cur {
		s.cur[i] = a[i].Lerp(b[i], u)
	}

	if u >= 1 {
		s.gain = s.gains[j+1]
	} else {
		s.gain = s.gains[j] + (s.gains[j+1]-s.gains[j])*u
	}
}

func (s *Smoother) jump(p param.Params, c *biquad.Cascade) {
	s.params, s.from = p, p
	s.target = c
	s.cur = append(s.cur[:0], c.Sections()...)
	s.gain = c.Gain()
	s.pos = s.length
	s.states.Fit(len(s.cur))
}
