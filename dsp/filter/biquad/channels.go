package biquad

import (
	"fmt"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath"
)

// ChannelStates owns one [State] per section per channel. Channels never
// share registers. The channel count is fixed at construction; the section
// count follows the cascade being processed.
type ChannelStates struct {
	form     Form
	channels int
	sections int
	regs     []State // channel-major: regs[ch*sections+i]
}

// NewChannelStates allocates zeroed registers for channels channels and
// sections sections. An invalid form falls back to [DirectFormII].
func NewChannelStates(form Form, channels, sections int) *ChannelStates {
	if !form.Valid() {
		form = DirectFormII
	}

	if channels < 0 {
		channels = 0
	}

	if sections < 0 {
		sections = 0
	}

	return &ChannelStates{
		form:     form,
		channels: channels,
		sections: sections,
		regs:     make([]State, channels*sections),
	}
}

// Form returns the realization form.
func (cs *ChannelStates) Form() Form { return cs.form }

// NumChannels returns the fixed channel count.
func (cs *ChannelStates) NumChannels() int { return cs.channels }

// NumSections returns the section count the registers are sized for.
func (cs *ChannelStates) NumSections() int { return cs.sections }

// Reset zeroes every register of every channel.
func (cs *ChannelStates) Reset() {
	clear(cs.regs)
}

// Fit resizes the registers for a cascade with n sections. When the size
// changes all registers are zeroed; otherwise state is kept.
func (cs *ChannelStates) Fit(n int) {
	if n == cs.sections {
		return
	}

	need := cs.channels * n
	if cap(cs.regs) >= need {
		cs.regs = cs.regs[:need]
		clear(cs.regs)
	} else {
		cs.regs = make([]State, need)
	}

	cs.sections = n
}

// Channel returns the registers of channel ch, one per section.
func (cs *ChannelStates) Channel(ch int) []State {
	return cs.regs[ch*cs.sections : (ch+1)*cs.sections]
}

// Process filters numSamples samples of every channel buffer in place
// through c. buffers must hold exactly NumChannels slices, each with at
// least numSamples samples. A cascade with a different section count
// resizes and zeroes the registers first.
func (cs *ChannelStates) Process(c *Cascade, numSamples int, buffers [][]float64) error {
	if err := cs.CheckBuffers(numSamples, buffers); err != nil {
		return err
	}

	if numSamples == 0 {
		return nil
	}

	cs.Fit(c.NumSections())

	kernel := blockKernel(cs.form)
	gain := c.Gain()

	for ch := range buffers {
		buf := buffers[ch][:numSamples]
		if gain != 1 {
			vecmath.ScaleBlockInPlace(buf, gain)
		}

		regs := cs.Channel(ch)
		for i := range regs {
			kernel(toKernel(c.sections[i]), &regs[i].regs, buf)
		}
	}

	return nil
}

// Step runs one sample of channel ch through sections, which must have
// NumSections entries. It is the per-sample path used while coefficients
// change from one sample to the next.
func (cs *ChannelStates) Step(ch int, sections []Coefficients, x float64) float64 {
	regs := cs.Channel(ch)
	for i := range regs {
		x = regs[i].Step(cs.form, &sections[i], x)
	}

	return x
}

// CheckBuffers reports [ErrBufferMismatch] unless buffers holds one slice
// per channel with at least numSamples samples each.
func (cs *ChannelStates) CheckBuffers(numSamples int, buffers [][]float64) error {
	if numSamples < 0 {
		return fmt.Errorf("%w: negative sample count %d", ErrBufferMismatch, numSamples)
	}

	if len(buffers) != cs.channels {
		return fmt.Errorf("%w: got %d channel buffers, want %d", ErrBufferMismatch, len(buffers), cs.channels)
	}

	for ch, buf := range buffers {
		if len(buf) < numSamples {
			return fmt.Errorf("%w: channel %d holds %d samples, want %d", ErrBufferMismatch, ch, len(buf), numSamples)
		}
	}

	return nil
}

func toKernel(c Coefficients) archregistry.Coefficients {
	return archregistry.Coefficients(c)
}
