package polyroot

import "testing"

func TestPoly_Legendre(t *testing.T) {
	tests := []struct {
		n    int
		want Poly
	}{
		{0, Poly{1}},
		{1, Poly{0, 1}},
		{2, Poly{-0.5, 0, 1.5}},
		{3, Poly{0, -1.5, 0, 2.5}},
		{4, Poly{0.375, 0, -3.75, 0, 4.375}},
	}

	for _, tt := range tests {
		got := Legendre(tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("P%d: got %v, want %v", tt.n, got, tt.want)
		}

		for i := range got {
			if !almostEqual(got[i], tt.want[i], 1e-14) {
				t.Fatalf("P%d[%d]: got %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}

		if v := got.Eval(1); !almostEqual(v, 1, 1e-14) {
			t.Fatalf("P%d(1) = %v, want 1", tt.n, v)
		}
	}
}

func TestPoly_Algebra(t *testing.T) {
	p := Poly{1, 2}     // 1 + 2x
	q := Poly{-1, 0, 1} // x^2 - 1

	if got := p.Mul(q); !polyEqual(got, Poly{-1, -2, 1, 2}) {
		t.Fatalf("Mul: got %v", got)
	}

	if got := p.Add(q); !polyEqual(got, Poly{0, 2, 1}) {
		t.Fatalf("Add: got %v", got)
	}

	if got := q.Integral(); !polyEqual(got, Poly{0, -1, 0, 1.0 / 3}) {
		t.Fatalf("Integral: got %v", got)
	}

	// q(p(x)) = (1+2x)^2 - 1 = 4x + 4x^2
	if got := q.Compose(p); !polyEqual(got, Poly{0, 4, 4}) {
		t.Fatalf("Compose: got %v", got)
	}

	if got := (Poly{3, 0, 2, 0}).Descending(); len(got) != 3 || got[0] != 2 || got[2] != 3 {
		t.Fatalf("Descending: got %v", got)
	}

	if d := (Poly{0, 0}).Degree(); d != -1 {
		t.Fatalf("Degree of zero polynomial: got %d", d)
	}
}

func polyEqual(a, b Poly) bool {
	n := max(len(a), len(b))
	for i := range n {
		var x, y float64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}
		if !almostEqual(x, y, 1e-14) {
			return false
		}
	}
	return true
}
