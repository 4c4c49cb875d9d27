package biquad

import (
	"errors"
	"math"
	"testing"
)

func noise(n int, seed uint32) []float64 {
	out := make([]float64, n)
	x := seed
	for i := range out {
		x = x*1664525 + 1013904223
		out[i] = float64(x)/float64(math.MaxUint32)*2 - 1
	}
	return out
}

func TestNormalize(t *testing.T) {
	c, ok := Normalize(2, 4, 2, 2, -1, 0.5)
	if !ok {
		t.Fatal("Normalize rejected valid input")
	}

	want := Coefficients{B0: 1, B1: 2, B2: 1, A1: -0.5, A2: 0.25}
	if c != want {
		t.Fatalf("Normalize: got %+v, want %+v", c, want)
	}

	if c.A0() != 1 {
		t.Fatalf("A0: got %v, want 1", c.A0())
	}

	if _, ok := Normalize(1, 0, 0, 0, 0, 0); ok {
		t.Fatal("Normalize accepted a0 == 0")
	}

	if _, ok := Normalize(math.NaN(), 0, 0, 1, 0, 0); ok {
		t.Fatal("Normalize accepted a NaN coefficient")
	}
}

func TestCoefficients_IsStable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"inside", Coefficients{B0: 1, A1: -1.2, A2: 0.5}, true},
		{"first-order inside", Coefficients{B0: 1, A1: -0.99}, true},
		{"on circle", Coefficients{B0: 1, A2: 1}, false},
		{"real pole outside", Coefficients{B0: 1, A1: -1.5, A2: 0.4}, false},
		{"first-order outside", Coefficients{B0: 1, A1: 1.01}, false},
	}

	for _, tt := range tests {
		if got := tt.c.IsStable(); got != tt.want {
			t.Errorf("%s: IsStable = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCoefficients_Lerp(t *testing.T) {
	a := Coefficients{B0: 1, B1: 0, B2: 0, A1: -0.5, A2: 0.1}
	b := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -1, A2: 0.3}

	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1): got %+v, want %+v", got, b)
	}

	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0): got %+v, want %+v", got, a)
	}

	mid := a.Lerp(b, 0.5)
	if !almostEqual(mid.B0, 0.6, eps) || !almostEqual(mid.A1, -0.75, eps) || !almostEqual(mid.A2, 0.2, eps) {
		t.Fatalf("Lerp(0.5): got %+v", mid)
	}
}

func TestCoefficients_Order(t *testing.T) {
	if got := (&Coefficients{B0: 1}).Order(); got != 0 {
		t.Errorf("gain-only order = %d, want 0", got)
	}
	if got := (&Coefficients{B0: 1, B1: 1, A1: -0.5}).Order(); got != 1 {
		t.Errorf("first-order order = %d, want 1", got)
	}
	if got := NewCascade(twoSectionCoeffs()).Order(); got != 4 {
		t.Errorf("cascade order = %d, want 4", got)
	}
}

func TestCascade_IsImmutable(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewCascade(coeffs)

	coeffs[0].B0 = 42
	if c.Section(0).B0 == 42 {
		t.Fatal("NewCascade kept a reference to the caller's slice")
	}

	out := c.Sections()
	out[1].A1 = 42
	if c.Section(1).A1 == 42 {
		t.Fatal("Sections exposed internal storage")
	}
}

func TestChannelStates_ProcessMatchesStep(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewCascade(coeffs, WithGain(0.8))
	in := noise(257, 7)

	for _, form := range []Form{DirectFormII, DirectFormI, TransposedDirectFormII} {
		t.Run(form.String(), func(t *testing.T) {
			block := NewChannelStates(form, 1, c.NumSections())
			buf := append([]float64(nil), in...)
			if err := block.Process(c, len(buf), [][]float64{buf}); err != nil {
				t.Fatalf("Process: %v", err)
			}

			ref := NewChannelStates(form, 1, c.NumSections())
			for i, x := range in {
				want := ref.Step(0, coeffs, 0.8*x)
				if !almostEqual(buf[i], want, 1e-12) {
					t.Fatalf("sample %d: got %.15f, want %.15f", i, buf[i], want)
				}
			}
		})
	}
}

func TestChannelStates_FormsAgree(t *testing.T) {
	c := NewCascade(twoSectionCoeffs())
	in := noise(128, 3)

	var outs [][]float64
	for _, form := range []Form{DirectFormII, DirectFormI, TransposedDirectFormII} {
		buf := append([]float64(nil), in...)
		st := NewChannelStates(form, 1, c.NumSections())
		if err := st.Process(c, len(buf), [][]float64{buf}); err != nil {
			t.Fatalf("%v: Process: %v", form, err)
		}
		outs = append(outs, buf)
	}

	for i := range in {
		if !almostEqual(outs[0][i], outs[1][i], 1e-12) || !almostEqual(outs[0][i], outs[2][i], 1e-12) {
			t.Fatalf("sample %d: df2=%.15f df1=%.15f tdf2=%.15f", i, outs[0][i], outs[1][i], outs[2][i])
		}
	}
}

func TestChannelStates_ChannelsIndependent(t *testing.T) {
	c := NewCascade(twoSectionCoeffs())
	a := noise(64, 1)
	b := noise(64, 2)

	st := NewChannelStates(DirectFormII, 2, c.NumSections())
	bufA := append([]float64(nil), a...)
	bufB := append([]float64(nil), b...)
	if err := st.Process(c, 64, [][]float64{bufA, bufB}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	solo := NewChannelStates(DirectFormII, 1, c.NumSections())
	wantB := append([]float64(nil), b...)
	if err := solo.Process(c, 64, [][]float64{wantB}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	for i := range wantB {
		if bufB[i] != wantB[i] {
			t.Fatalf("channel 1 sample %d: got %v, want %v (cross-talk)", i, bufB[i], wantB[i])
		}
	}
}

func TestChannelStates_SplitBlocks(t *testing.T) {
	c := NewCascade(twoSectionCoeffs())
	in := noise(100, 9)

	whole := append([]float64(nil), in...)
	st := NewChannelStates(TransposedDirectFormII, 1, 2)
	if err := st.Process(c, len(whole), [][]float64{whole}); err != nil {
		t.Fatal(err)
	}

	split := append([]float64(nil), in...)
	st2 := NewChannelStates(TransposedDirectFormII, 1, 2)
	if err := st2.Process(c, 37, [][]float64{split[:37]}); err != nil {
		t.Fatal(err)
	}
	if err := st2.Process(c, 63, [][]float64{split[37:]}); err != nil {
		t.Fatal(err)
	}

	for i := range whole {
		if !almostEqual(whole[i], split[i], 1e-14) {
			t.Fatalf("sample %d: whole=%.15f split=%.15f", i, whole[i], split[i])
		}
	}
}

func TestChannelStates_PartialBuffer(t *testing.T) {
	c := NewCascade([]Coefficients{{B0: 0.5}})
	buf := []float64{1, 1, 1, 1}

	st := NewChannelStates(DirectFormII, 1, 1)
	if err := st.Process(c, 2, [][]float64{buf}); err != nil {
		t.Fatal(err)
	}

	if buf[0] != 0.5 || buf[1] != 0.5 || buf[2] != 1 || buf[3] != 1 {
		t.Fatalf("numSamples not honoured: %v", buf)
	}
}

func TestChannelStates_BufferMismatch(t *testing.T) {
	c := NewCascade(twoSectionCoeffs())
	st := NewChannelStates(DirectFormII, 2, 2)

	tests := []struct {
		name string
		n    int
		bufs [][]float64
	}{
		{"too few channels", 4, [][]float64{make([]float64, 4)}},
		{"too many channels", 4, [][]float64{make([]float64, 4), make([]float64, 4), make([]float64, 4)}},
		{"short buffer", 4, [][]float64{make([]float64, 4), make([]float64, 3)}},
		{"negative count", -1, [][]float64{nil, nil}},
	}

	for _, tt := range tests {
		if err := st.Process(c, tt.n, tt.bufs); !errors.Is(err, ErrBufferMismatch) {
			t.Errorf("%s: got %v, want ErrBufferMismatch", tt.name, err)
		}
	}
}

func TestChannelStates_ResetAndFit(t *testing.T) {
	c := NewCascade(twoSectionCoeffs())
	st := NewChannelStates(DirectFormII, 1, 2)

	buf := []float64{1, 0.5, 0.25}
	if err := st.Process(c, 3, [][]float64{buf}); err != nil {
		t.Fatal(err)
	}

	if st.Channel(0)[0].Registers() == ([4]float64{}) {
		t.Fatal("registers still zero after processing")
	}

	st.Reset()
	for i, s := range st.Channel(0) {
		if s.Registers() != ([4]float64{}) {
			t.Fatalf("section %d not cleared by Reset", i)
		}
	}

	bigger := NewCascade(append(twoSectionCoeffs(), passthrough()))
	if err := st.Process(bigger, 3, [][]float64{buf}); err != nil {
		t.Fatal(err)
	}

	if st.NumSections() != 3 || len(st.Channel(0)) != 3 {
		t.Fatalf("Fit: got %d sections, want 3", st.NumSections())
	}
}

func TestChannelStates_ZeroChannels(t *testing.T) {
	st := NewChannelStates(DirectFormII, 0, 2)
	if err := st.Process(NewCascade(twoSectionCoeffs()), 16, nil); err != nil {
		t.Fatalf("empty buffer set on zero channels: %v", err)
	}
}

func TestForm_String(t *testing.T) {
	if DirectFormI.String() != "DirectFormI" || Form(9).String() != "Form(9)" {
		t.Fatalf("unexpected names: %q %q", DirectFormI, Form(9))
	}

	if Form(9).Valid() {
		t.Fatal("Form(9) reported valid")
	}

	st := NewChannelStates(Form(9), 1, 1)
	if st.Form() != DirectFormII {
		t.Fatalf("invalid form fallback: got %v", st.Form())
	}
}
