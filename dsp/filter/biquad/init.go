package biquad

import (
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry" // initialize backend registry
)
