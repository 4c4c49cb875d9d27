package biquad

import "math"

// Cascade is an ordered, immutable chain of sections processed in series,
// preceded by a scalar gain. A design produces a new Cascade on every
// successful call; processing code holds a pointer and never sees a
// partially updated chain.
//
// The zero value and a nil *Cascade are identity filters.
type Cascade struct {
	sections []Coefficients
	gain     float64
	hasGain  bool
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	gain float64
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithGain sets an overall gain applied to the input before the first
// section. Default is 1.0 (unity gain).
func WithGain(g float64) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.gain = g }
}

// NewCascade creates a cascade from coefficient sets. The slice is copied.
func NewCascade(sections []Coefficients, opts ...CascadeOption) *Cascade {
	cfg := cascadeConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	return &Cascade{
		sections: append([]Coefficients(nil), sections...),
		gain:     cfg.gain,
		hasGain:  true,
	}
}

// NumSections returns the number of sections.
func (c *Cascade) NumSections() int {
	if c == nil {
		return 0
	}

	return len(c.sections)
}

// Section returns the coefficients of section i.
func (c *Cascade) Section(i int) Coefficients {
	return c.sections[i]
}

// Sections returns a copy of all section coefficients.
func (c *Cascade) Sections() []Coefficients {
	if c == nil {
		return nil
	}

	return append([]Coefficients(nil), c.sections...)
}

// Balanced returns a cascade with the same response whose section
// numerators share one peak magnitude: the geometric mean of the original
// peaks. The sign of each section and the scalar gain are kept. A cascade
// with fewer than two sections, or with a zero numerator, is returned
// unchanged.
func (c *Cascade) Balanced() *Cascade {
	n := c.NumSections()
	if n < 2 {
		return c
	}

	peaks := make([]float64, n)
	logSum := 0.0

	for i := range c.sections {
		s := &c.sections[i]

		peaks[i] = math.Max(math.Abs(s.B0), math.Max(math.Abs(s.B1), math.Abs(s.B2)))
		if peaks[i] == 0 {
			return c
		}

		logSum += math.Log(peaks[i])
	}

	mean := math.Exp(logSum / float64(n))
	out := &Cascade{
		sections: make([]Coefficients, n),
		gain:     c.gain,
		hasGain:  c.hasGain,
	}

	for i, s := range c.sections {
		k := mean / peaks[i]
		s.B0 *= k
		s.B1 *= k
		s.B2 *= k
		out.sections[i] = s
	}

	return out
}

// Gain returns the scalar applied before the first section.
func (c *Cascade) Gain() float64 {
	if c == nil || !c.hasGain {
		return 1
	}

	return c.gain
}

// Order returns the total filter order: the sum of each section's order.
func (c *Cascade) Order() int {
	if c == nil {
		return 0
	}

	n := 0
	for i := range c.sections {
		n += c.sections[i].Order()
	}

	return n
}

// IsStable reports whether every section is stable.
func (c *Cascade) IsStable() bool {
	if c == nil {
		return true
	}

	for i := range c.sections {
		if !c.sections[i].IsStable() {
			return false
		}
	}

	return true
}

// ImpulseResponse computes n samples of the impulse response h[n] using a
// private scratch state.
func (c *Cascade) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	ir := make([]float64, n)
	ir[0] = c.Gain()

	if c == nil {
		return ir
	}

	for i := range c.sections {
		var st State
		blockKernel(DirectFormII)(toKernel(c.sections[i]), &st.regs, ir)
	}

	return ir
}
