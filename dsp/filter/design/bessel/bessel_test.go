package bessel

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/design"
	"github.com/cwbudde/algo-iir/internal/testutil"
)

// Delay-normalized poles (upper half plane) and the factors that move them
// to -3 dB normalization, from C.R. Bond, "Bessel Filter Constants".
var bondPoles = [][]complex128{
	{},
	{complex(-1.0, 0)},
	{complex(-1.5, 0.8660254038)},
	{complex(-1.8389073227, 1.7543809598), complex(-2.3221853546, 0)},
	{complex(-2.1037893972, 2.6574180419), complex(-2.8962106028, 0.8672341289)},
	{complex(-2.3246743032, 3.5710229203), complex(-3.3519563992, 1.7426614162), complex(-3.6467385953, 0)},
	{complex(-2.5159322478, 4.4926729537), complex(-3.7357083563, 2.6262723114), complex(-4.2483593959, 0.8675096732)},
	{
		complex(-2.6856768789, 5.4206941307), complex(-4.0701391636, 3.5171740477),
		complex(-4.7582905282, 1.7392860613), complex(-4.9717868585, 0),
	},
	{
		complex(-2.8389839177, 6.3539112470), complex(-4.3682892668, 4.4144425006),
		complex(-5.2048407906, 2.6161751538), complex(-5.5878860022, 0.8676144454),
	},
	{
		complex(-2.9792607983, 7.2914651564), complex(-4.6384398714, 5.3172716754),
		complex(-5.6044218195, 3.4981415816), complex(-6.1293679040, 1.7378483835),
		complex(-6.2970079817, 0),
	},
	{
		complex(-3.1088931555, 8.2324678728), complex(-4.8862195924, 6.2249854825),
		complex(-5.9675283089, 4.3849471924), complex(-6.6152909655, 2.6115679208),
		complex(-6.9220449048, 0.8676594792),
	},
}

var bondScale = []float64{
	0, 1.0, 1.36165412871613, 1.75567236868121, 2.11391767490422, 2.42741070215263,
	2.70339506120292, 2.95172214703872, 3.17961723751065, 3.39169313891166, 3.59098059456916,
}

func TestPrototype_MatchesBondTable(t *testing.T) {
	for order := 1; order < len(bondPoles); order++ {
		proto, err := Prototype(order)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		if len(proto.Poles) != order {
			t.Fatalf("order %d: %d poles", order, len(proto.Poles))
		}

		for _, ref := range bondPoles[order] {
			want := ref / complex(bondScale[order], 0)

			best := math.Inf(1)
			for _, p := range proto.Poles {
				best = math.Min(best, cmplx.Abs(p-want))
			}

			if best > 1e-8 {
				t.Fatalf("order %d: no pole near %v (closest %.3g)", order, want, best)
			}
		}

		if got := GroupDelay(proto, 0); math.Abs(got-bondScale[order]) > 1e-8 {
			t.Fatalf("order %d: DC group delay %.12f, want %.12f", order, got, bondScale[order])
		}
	}
}

func TestPrototype_FlatGroupDelay(t *testing.T) {
	for order := 6; order <= design.MaxOrder; order++ {
		proto, err := Prototype(order)
		if err != nil {
			t.Fatal(err)
		}

		d0 := GroupDelay(proto, 0)
		for w := 0.0; w <= 1; w += 0.01 {
			if dev := math.Abs(GroupDelay(proto, w)/d0 - 1); dev > 1e-3 {
				t.Fatalf("order %d: delay deviates %.2e at w=%v", order, dev, w)
			}
		}
	}
}

func TestLowHighPass_MinusThreeDB(t *testing.T) {
	const fs = 48000.0
	halfPower := 10 * math.Log10(0.5)

	for order := 1; order <= design.MaxOrder; order++ {
		lp, err := DesignLowPass(order, fs, 1000)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		hp, err := DesignHighPass(order, fs, 1000)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		testutil.RequireInsideUnitCircle(t, lp.Poles())
		testutil.RequireInsideUnitCircle(t, hp.Poles())

		if got := testutil.DB(cmplx.Abs(lp.Response(1000 / fs))); math.Abs(got-halfPower) > 1e-6 {
			t.Errorf("LP order %d: %.6f dB at cutoff", order, got)
		}

		if got := testutil.DB(cmplx.Abs(hp.Response(1000 / fs))); math.Abs(got-halfPower) > 1e-6 {
			t.Errorf("HP order %d: %.6f dB at cutoff", order, got)
		}

		if got := cmplx.Abs(lp.Response(1e-9)); math.Abs(got-1) > 1e-9 {
			t.Errorf("LP order %d: DC gain %v", order, got)
		}
	}
}

func TestBandTypes_Stable(t *testing.T) {
	for order := 1; order <= design.MaxOrder; order++ {
		bp, err := DesignBandPass(order, 44100, 5000, 2000)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		bs, err := DesignBandStop(order, 44100, 5000, 2000)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		testutil.RequireInsideUnitCircle(t, bp.Poles())
		testutil.RequireInsideUnitCircle(t, bs.Poles())
	}
}

func TestDesigns(t *testing.T) {
	for _, d := range Designs() {
		if _, err := d.Build(d.DefaultParams()); err != nil {
			t.Fatalf("%s: %v", d.Name(), err)
		}
	}

	p := LowPassDesign().DefaultParams()
	p[1] = 17

	if _, err := LowPassDesign().Build(p); !errors.Is(err, design.ErrInvalidConfig) {
		t.Fatalf("order 17: err=%v", err)
	}
}
