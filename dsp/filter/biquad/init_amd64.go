//go:build amd64 && !purego

package biquad

// The AVX2 package registers its TDF-II kernel at init; blockKernel picks
// it only when cpu reports AVX2.
import _ "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/amd64/avx2"
