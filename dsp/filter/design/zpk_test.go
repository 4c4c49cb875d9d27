package design

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"
)

// butter3 is the third-order Butterworth prototype.
func butter3() ZPK {
	s := math.Sqrt(3) / 2
	return ZPK{
		Poles: []complex128{-1, complex(-0.5, s), complex(-0.5, -s)},
		Gain:  1,
	}
}

// withZeros is a prototype with finite zeros on the imaginary axis.
func withZeros() ZPK {
	return ZPK{
		Zeros: []complex128{complex(0, 2), complex(0, -2)},
		Poles: []complex128{complex(-0.5, 0.8), complex(-0.5, -0.8)},
		Gain:  0.25,
	}
}

func unitCircle(f float64) complex128 {
	return cmplx.Exp(complex(0, 2*math.Pi*f))
}

func closeTo(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol*math.Max(1, cmplx.Abs(b))
}

func TestZPKCascade_GroupsConjugates(t *testing.T) {
	h := ZPK{
		Zeros: []complex128{-1, -1, -1},
		Poles: []complex128{complex(0.5, 0.3), 0.2, complex(0.5, -0.3)},
		Gain:  0.1,
	}

	c, err := h.Cascade()
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	if c.NumSections() != 2 {
		t.Fatalf("sections=%d, want 2", c.NumSections())
	}

	s0 := c.Section(0)
	if math.Abs(s0.A1+1) > 1e-15 || math.Abs(s0.A2-0.34) > 1e-15 {
		t.Fatalf("pair section a1=%v a2=%v, want -1 and 0.34", s0.A1, s0.A2)
	}

	if math.Abs(s0.B0-0.1) > 1e-15 || math.Abs(s0.B1-0.2) > 1e-15 || math.Abs(s0.B2-0.1) > 1e-15 {
		t.Fatalf("gain not folded into first section: %+v", s0)
	}

	s1 := c.Section(1)
	if !s1.IsFirstOrder() || math.Abs(s1.A1+0.2) > 1e-15 || s1.B1 != 1 {
		t.Fatalf("first-order section=%+v", s1)
	}

	for _, f := range []float64{0.01, 0.1, 0.3, 0.49} {
		if got, want := c.Response(f), h.Eval(unitCircle(f)); !closeTo(got, want, 1e-12) {
			t.Fatalf("f=%v: cascade %v, zpk %v", f, got, want)
		}
	}
}

func TestZPKCascade_Rejects(t *testing.T) {
	tests := []struct {
		name string
		h    ZPK
	}{
		{"no poles", ZPK{Gain: 1}},
		{"extra zeros", ZPK{Zeros: []complex128{0, 0}, Poles: []complex128{0.5}, Gain: 1}},
		{"unstable", ZPK{Zeros: []complex128{-1}, Poles: []complex128{1.1}, Gain: 1}},
		{"zero gain", ZPK{Poles: []complex128{0.5}}},
		{"nan gain", ZPK{Poles: []complex128{0.5}, Gain: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.h.Cascade(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err=%v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGroupRoots_PairsRealRoots(t *testing.T) {
	groups := groupRoots([]complex128{0.3, -0.2, 0.9, complex(0.1, 0.5), complex(0.1, -0.5)})
	if len(groups) != 3 {
		t.Fatalf("groups=%v, want 3", groups)
	}

	if len(groups[0]) != 2 || groups[0][1] != cmplx.Conj(groups[0][0]) {
		t.Fatalf("first group should be the conjugate pair, got %v", groups[0])
	}

	if len(groups[1]) != 2 || real(groups[1][0]) != -0.2 || real(groups[1][1]) != 0.3 {
		t.Fatalf("real roots should pair in ascending order, got %v", groups[1])
	}

	if len(groups[2]) != 1 || groups[2][0] != 0.9 {
		t.Fatalf("leftover real root, got %v", groups[2])
	}
}
