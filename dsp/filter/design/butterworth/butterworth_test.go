package butterworth

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

const sr = 48000.0

func magDB(c *biquad.Cascade, hz float64) float64 {
	return testutil.DB(cmplx.Abs(c.Response(hz / sr)))
}

func TestPrototype_UnitCircle(t *testing.T) {
	for order := 1; order <= design.MaxOrder; order++ {
		proto, err := Prototype(order)
		if err != nil {
			t.Fatal(err)
		}

		if len(proto.Poles) != order {
			t.Fatalf("order %d: %d poles", order, len(proto.Poles))
		}

		for _, p := range proto.Poles {
			if math.Abs(cmplx.Abs(p)-1) > 1e-15 || real(p) >= 0 {
				t.Fatalf("order %d: pole %v not on the left unit semicircle", order, p)
			}
		}

		if got := cmplx.Abs(proto.Eval(0)); math.Abs(got-1) > 1e-12 {
			t.Fatalf("order %d: DC gain %v", order, got)
		}
	}
}

func TestLowHighPass_MinusThreeDBAtCutoff(t *testing.T) {
	const fc = 1000.0
	halfPower := 10 * math.Log10(0.5)

	for order := 1; order <= design.MaxOrder; order++ {
		lp, err := DesignLowPass(order, sr, fc)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		hp, err := DesignHighPass(order, sr, fc)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if got := magDB(lp, fc); math.Abs(got-halfPower) > 1e-6 {
			t.Errorf("LP order %d: %.6f dB at cutoff", order, got)
		}

		if got := magDB(hp, fc); math.Abs(got-halfPower) > 1e-6 {
			t.Errorf("HP order %d: %.6f dB at cutoff", order, got)
		}

		if want := (order + 1) / 2; lp.NumSections() != want || hp.NumSections() != want {
			t.Errorf("order %d: sections lp=%d hp=%d, want %d", order, lp.NumSections(), hp.NumSections(), want)
		}

		if lp.Order() != order || hp.Order() != order {
			t.Errorf("order %d: cascade orders lp=%d hp=%d", order, lp.Order(), hp.Order())
		}
	}
}

func TestHighPass_Order4PoleZeroCount(t *testing.T) {
	hp, err := DesignHighPass(4, 44100, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(hp.Poles()); n != 4 {
		t.Fatalf("poles=%d, want 4", n)
	}

	if n := len(hp.Zeros()); n != 4 {
		t.Fatalf("zeros=%d, want 4", n)
	}

	for _, z := range hp.Zeros() {
		if cmplx.Abs(z-1) > 1e-6 {
			t.Fatalf("high-pass zero %v, want 1", z)
		}
	}
}

func TestAllTypes_Stable(t *testing.T) {
	for order := 1; order <= design.MaxOrder; order++ {
		cascades := map[string]func() (*biquad.Cascade, error){
			"lp":  func() (*biquad.Cascade, error) { return DesignLowPass(order, sr, 200) },
			"hp":  func() (*biquad.Cascade, error) { return DesignHighPass(order, sr, 15000) },
			"bp":  func() (*biquad.Cascade, error) { return DesignBandPass(order, sr, 2000, 400) },
			"bs":  func() (*biquad.Cascade, error) { return DesignBandStop(order, sr, 2000, 400) },
			"ls":  func() (*biquad.Cascade, error) { return DesignLowShelf(order, sr, 300, 12) },
			"hs":  func() (*biquad.Cascade, error) { return DesignHighShelf(order, sr, 8000, -12) },
			"bsh": func() (*biquad.Cascade, error) { return DesignBandShelf(order, sr, 1000, 300, 6) },
		}

		for name, build := range cascades {
			c, err := build()
			if err != nil {
				t.Fatalf("%s order %d: %v", name, order, err)
			}

			testutil.RequireInsideUnitCircle(t, c.Poles())
		}
	}
}

func TestBandPass_UnityAtCenterAndSectionCount(t *testing.T) {
	for _, order := range []int{1, 2, 3, 6} {
		bp, err := DesignBandPass(order, sr, 3000, 600)
		if err != nil {
			t.Fatal(err)
		}

		if bp.NumSections() != order {
			t.Fatalf("order %d: sections=%d", order, bp.NumSections())
		}

		lo, hi := design.Prewarp(2700, sr), design.Prewarp(3300, sr)
		center := math.Atan(math.Sqrt(lo*hi)) / math.Pi

		if got := testutil.DB(cmplx.Abs(bp.Response(center))); math.Abs(got) > 1e-6 {
			t.Fatalf("order %d: %.6f dB at center", order, got)
		}

		if got := magDB(bp, 300); got > -20 {
			t.Fatalf("order %d: %.2f dB far below the band", order, got)
		}
	}
}

func TestShelves_EndpointGains(t *testing.T) {
	for _, gainDB := range []float64{-18, -6, 6, 12} {
		ls, err := DesignLowShelf(3, sr, 500, gainDB)
		if err != nil {
			t.Fatal(err)
		}

		hs, err := DesignHighShelf(3, sr, 5000, gainDB)
		if err != nil {
			t.Fatal(err)
		}

		bsh, err := DesignBandShelf(2, sr, 2000, 500, gainDB)
		if err != nil {
			t.Fatal(err)
		}

		dc, nyq := 1e-9, 0.5

		if got := testutil.DB(cmplx.Abs(ls.Response(dc))); math.Abs(got-gainDB) > 1e-6 {
			t.Errorf("low shelf %v dB: DC %.6f dB", gainDB, got)
		}

		if got := testutil.DB(cmplx.Abs(ls.Response(nyq))); math.Abs(got) > 1e-6 {
			t.Errorf("low shelf %v dB: Nyquist %.6f dB", gainDB, got)
		}

		if got := testutil.DB(cmplx.Abs(hs.Response(nyq))); math.Abs(got-gainDB) > 1e-6 {
			t.Errorf("high shelf %v dB: Nyquist %.6f dB", gainDB, got)
		}

		if got := testutil.DB(cmplx.Abs(hs.Response(dc))); math.Abs(got) > 1e-6 {
			t.Errorf("high shelf %v dB: DC %.6f dB", gainDB, got)
		}

		if got := testutil.DB(cmplx.Abs(bsh.Response(dc))); math.Abs(got) > 1e-6 {
			t.Errorf("band shelf %v dB: DC %.6f dB", gainDB, got)
		}
	}
}

func TestShelf_ZeroGainIsIdentity(t *testing.T) {
	c, err := DesignLowShelf(4, sr, 1000, 0)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{0.001, 0.02, 0.2, 0.45} {
		if got := cmplx.Abs(c.Response(f)); math.Abs(got-1) > 1e-12 {
			t.Fatalf("f=%v: |H|=%v, want 1", f, got)
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"order 0", errOf(DesignLowPass(0, sr, 1000))},
		{"order 17", errOf(DesignLowPass(17, sr, 1000))},
		{"cutoff at nyquist", errOf(DesignHighPass(2, sr, sr/2))},
		{"negative cutoff", errOf(DesignLowPass(2, sr, -10))},
		{"sample rate", errOf(DesignLowPass(2, 0, 1000))},
		{"band edge", errOf(DesignBandPass(2, sr, 100, 400))},
		{"nan gain", errOf(DesignLowShelf(2, sr, 1000, math.NaN()))},
	}

	for _, tt := range tests {
		if !errors.Is(tt.err, design.ErrInvalidConfig) {
			t.Errorf("%s: err=%v, want ErrInvalidConfig", tt.name, tt.err)
		}
	}
}

func errOf(_ *biquad.Cascade, err error) error { return err }

func TestRawFilter_SetupKeepsPreviousOnError(t *testing.T) {
	var f LowPass
	if err := f.Setup(4, sr, 1000); err != nil {
		t.Fatal(err)
	}

	before := f.Cascade()
	if err := f.Setup(4, sr, 30000); !errors.Is(err, design.ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}

	if f.Cascade() != before {
		t.Fatal("failed Setup replaced the cascade")
	}
}

func TestDesigns_Schemas(t *testing.T) {
	ds := Designs()
	if len(ds) != 7 {
		t.Fatalf("designs=%d, want 7", len(ds))
	}

	for _, d := range ds {
		c, err := d.Build(d.DefaultParams())
		if err != nil {
			t.Fatalf("%s defaults: %v", d.Name(), err)
		}

		testutil.RequireInsideUnitCircle(t, c.Poles())
	}

	if BandShelfDesign().Name() != "Butterworth BandShelf" {
		t.Fatalf("name=%q", BandShelfDesign().Name())
	}
}
