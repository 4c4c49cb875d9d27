package biquad

import (
	"fmt"
	"sync"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Form selects the realization used to evaluate a section.
type Form int

const (
	// DirectFormII uses two registers w1, w2:
	//
	//	w = x - A1*w1 - A2*w2
	//	y = B0*w + B1*w1 + B2*w2
	DirectFormII Form = iota
	// DirectFormI keeps the last two inputs and outputs.
	DirectFormI
	// TransposedDirectFormII uses two accumulating registers d0, d1.
	TransposedDirectFormII
)

func (f Form) String() string {
	switch f {
	case DirectFormII:
		return "DirectFormII"
	case DirectFormI:
		return "DirectFormI"
	case TransposedDirectFormII:
		return "TransposedDirectFormII"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// Valid reports whether f names a supported form.
func (f Form) Valid() bool {
	return f >= DirectFormII && f <= TransposedDirectFormII
}

// State is the register file of one section for one channel. Zero value
// is the reset state.
type State struct {
	regs archregistry.State
}

// Reset zeroes the registers.
func (s *State) Reset() { s.regs = archregistry.State{} }

// Registers returns a copy of the raw register values.
func (s *State) Registers() [4]float64 { return s.regs }

// Step advances the section by one sample in the given form.
func (s *State) Step(form Form, c *Coefficients, x float64) float64 {
	r := &s.regs

	switch form {
	case DirectFormI:
		y := c.B0*x + c.B1*r[0] + c.B2*r[1] - c.A1*r[2] - c.A2*r[3]
		r[1], r[0] = r[0], x
		r[3], r[2] = r[2], y

		return y
	case TransposedDirectFormII:
		y := c.B0*x + r[0]
		r[0] = c.B1*x - c.A1*y + r[1]
		r[1] = c.B2*x - c.A2*y

		return y
	default:
		w := x - c.A1*r[0] - c.A2*r[1]
		y := c.B0*w + c.B1*r[0] + c.B2*r[1]
		r[1], r[0] = r[0], w

		return y
	}
}

var (
	kernelSelection archregistry.Selection
	kernelInitOnce  sync.Once
)

func initKernels() {
	sel, ok := archregistry.Global.Resolve(cpu.DetectFeatures())
	if !ok {
		panic("biquad: no block kernel registered for every form (missing generic fallback?)")
	}

	kernelSelection = sel
}

func blockKernel(form Form) archregistry.BlockFn {
	kernelInitOnce.Do(initKernels)

	switch form {
	case DirectFormI:
		return kernelSelection.Kernels.DirectFormI
	case TransposedDirectFormII:
		return kernelSelection.Kernels.TransposedDirectFormII
	default:
		return kernelSelection.Kernels.DirectFormII
	}
}

// KernelName reports which backend runs block processing for form.
func KernelName(form Form) string {
	kernelInitOnce.Do(initKernels)

	switch form {
	case DirectFormI:
		return kernelSelection.Names[0]
	case TransposedDirectFormII:
		return kernelSelection.Names[2]
	default:
		return kernelSelection.Names[1]
	}
}
