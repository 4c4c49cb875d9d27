//go:build amd64 && !purego

package biquad

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetKernelDispatchForTest() {
	kernelSelection = archregistry.Selection{}
	kernelInitOnce = sync.Once{}
}

func TestKernelDispatch_AMD64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantDF1  string
		wantDF2  string
		wantTDF2 string
	}{
		{
			name:     "generic-forced",
			features: cpu.Features{ForceGeneric: true, Architecture: "amd64"},
			wantDF1:  "generic",
			wantDF2:  "generic",
			wantTDF2: "generic",
		},
		{
			name:     "sse2-only",
			features: cpu.Features{HasSSE2: true, Architecture: "amd64"},
			wantDF1:  "generic",
			wantDF2:  "generic",
			wantTDF2: "generic",
		},
		{
			name:     "avx2",
			features: cpu.Features{HasSSE2: true, HasAVX2: true, Architecture: "amd64"},
			wantDF1:  "generic",
			wantDF2:  "avx2",
			wantTDF2: "avx2",
		},
	}

	coeffs := twoSectionCoeffs()
	c := NewCascade(coeffs)
	input := noise(67, 5)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			resetKernelDispatchForTest()
			defer resetKernelDispatchForTest()

			if got := KernelName(DirectFormI); got != tt.wantDF1 {
				t.Fatalf("DF-I kernel: expected %q, got %q", tt.wantDF1, got)
			}
			if got := KernelName(DirectFormII); got != tt.wantDF2 {
				t.Fatalf("DF-II kernel: expected %q, got %q", tt.wantDF2, got)
			}
			if got := KernelName(TransposedDirectFormII); got != tt.wantTDF2 {
				t.Fatalf("TDF-II kernel: expected %q, got %q", tt.wantTDF2, got)
			}

			for _, form := range []Form{DirectFormII, DirectFormI, TransposedDirectFormII} {
				got := append([]float64(nil), input...)
				st := NewChannelStates(form, 1, c.NumSections())
				if err := st.Process(c, len(got), [][]float64{got}); err != nil {
					t.Fatal(err)
				}

				ref := NewChannelStates(form, 1, c.NumSections())
				for i, x := range input {
					if want := ref.Step(0, coeffs, x); !almostEqual(got[i], want, 1e-12) {
						t.Fatalf("%v sample %d mismatch: got %.15f, want %.15f", form, i, got[i], want)
					}
				}
			}
		})
	}
}
