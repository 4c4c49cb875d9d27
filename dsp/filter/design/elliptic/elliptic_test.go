package elliptic

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

const fs = 48000.0

func magDB(c *biquad.Cascade, hz float64) float64 {
	return testutil.DB(cmplx.Abs(c.Response(hz / fs)))
}

func TestLowPass_EquirippleBands(t *testing.T) {
	const fc = 2000.0

	for _, ripple := range []float64{0.1, 1, 3} {
		for _, stop := range []float64{40, 60, 80} {
			for order := 1; order <= 10; order++ {
				c, err := DesignLowPass(order, fs, fc, ripple, stop)
				if err != nil {
					t.Fatalf("order %d ripple %v stop %v: %v", order, ripple, stop, err)
				}

				testutil.RequireInsideUnitCircle(t, c.Poles())

				if got := magDB(c, fc); math.Abs(got+ripple) > 1e-6 {
					t.Fatalf("order %d ripple %v stop %v: %.6f dB at cutoff", order, ripple, stop, got)
				}

				for f := 20.0; f < fc; f += 20 {
					if g := magDB(c, f); g > 1e-9 || g < -ripple-1e-6 {
						t.Fatalf("order %d ripple %v: %.6f dB at %v Hz outside the ripple band", order, ripple, g, f)
					}
				}

				if order == 1 {
					continue
				}

				edge := math.Atan(StopbandEdge(order, ripple, stop)*design.Prewarp(fc, fs)) * fs / math.Pi
				for f := edge; f < fs/2; f += 25 {
					if g := magDB(c, f); g > -stop+1e-5 {
						t.Fatalf("order %d ripple %v stop %v: %.6f dB at %v Hz above the floor", order, ripple, stop, g, f)
					}
				}
			}
		}
	}
}

func TestLowPass_OctaveAttenuation(t *testing.T) {
	c, err := DesignLowPass(4, fs, 1000, 0.5, 60)
	if err != nil {
		t.Fatal(err)
	}

	if got := magDB(c, 2000); got > -30 {
		t.Fatalf("%.2f dB one octave above cutoff", got)
	}
}

func TestHighPass_Bands(t *testing.T) {
	c, err := DesignHighPass(6, fs, 4000, 0.5, 50)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireInsideUnitCircle(t, c.Poles())

	if got := magDB(c, 4000); math.Abs(got+0.5) > 1e-6 {
		t.Fatalf("%.6f dB at cutoff", got)
	}

	for f := 4100.0; f < fs/2; f += 100 {
		if g := magDB(c, f); g > 1e-9 || g < -0.5-1e-6 {
			t.Fatalf("%.6f dB at %v Hz", g, f)
		}
	}

	if got := magDB(c, 200); got > -50+1e-5 {
		t.Fatalf("%.4f dB deep in the stopband", got)
	}
}

func TestBandTypes_Stable(t *testing.T) {
	for order := 1; order <= design.MaxOrder; order++ {
		bp, err := DesignBandPass(order, fs, 3000, 1200, 1, 60)
		if err != nil {
			t.Fatalf("bp order %d: %v", order, err)
		}

		bs, err := DesignBandStop(order, fs, 3000, 1200, 1, 60)
		if err != nil {
			t.Fatalf("bs order %d: %v", order, err)
		}

		testutil.RequireInsideUnitCircle(t, bp.Poles())
		testutil.RequireInsideUnitCircle(t, bs.Poles())

		if bp.NumSections() != order || bs.NumSections() != order {
			t.Fatalf("order %d: sections bp=%d bs=%d", order, bp.NumSections(), bs.NumSections())
		}
	}
}

func TestPrototype_ZerosOnImaginaryAxis(t *testing.T) {
	for _, order := range []int{2, 5, 8} {
		proto, err := Prototype(order, 1, 48)
		if err != nil {
			t.Fatal(err)
		}

		if want := order - order%2; len(proto.Zeros) != want {
			t.Fatalf("order %d: %d zeros, want %d", order, len(proto.Zeros), want)
		}

		for _, z := range proto.Zeros {
			if real(z) != 0 || math.Abs(imag(z)) <= 1 {
				t.Fatalf("order %d: zero %v not on the axis beyond the cutoff", order, z)
			}
		}
	}
}

func TestInvalidShape(t *testing.T) {
	tests := []struct {
		name         string
		ripple, stop float64
	}{
		{"zero ripple", 0, 40},
		{"nan stop", 1, math.NaN()},
		{"stop below ripple", 3, 2},
		{"stop equal ripple", 3, 3},
	}

	for _, tt := range tests {
		if _, err := DesignLowPass(4, fs, 1000, tt.ripple, tt.stop); !errors.Is(err, design.ErrInvalidConfig) {
			t.Errorf("%s: err=%v", tt.name, err)
		}
	}
}

func TestDesigns_DefaultsBuild(t *testing.T) {
	ds := Designs()
	if len(ds) != 4 {
		t.Fatalf("designs=%d", len(ds))
	}

	for _, d := range ds {
		c, err := d.Build(d.DefaultParams())
		if err != nil {
			t.Fatalf("%s: %v", d.Name(), err)
		}

		testutil.RequireInsideUnitCircle(t, c.Poles())
	}

	var f BandStop
	if err := f.Setup(4, fs, 5000, 1000, 0.5, 60); err != nil || f.Cascade().NumSections() != 4 {
		t.Fatalf("Setup: %v, sections=%d", err, f.Cascade().NumSections())
	}
}
