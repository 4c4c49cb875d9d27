// Package generic registers the portable scalar biquad kernels. They are
// always available and back every form a faster backend leaves out.
package generic

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Kernels: registry.Kernels{
			DirectFormI:            directFormI,
			DirectFormII:           directFormII,
			TransposedDirectFormII: transposedDirectFormII,
		},
	})
}

// directFormI keeps x[n-1], x[n-2], y[n-1], y[n-2] in st[0..3].
func directFormI(c registry.Coefficients, st *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := st[0], st[1], st[2], st[3]

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	st[0], st[1], st[2], st[3] = x1, x2, y1, y2
}

// directFormII keeps w[n-1], w[n-2] in st[0..1].
func directFormII(c registry.Coefficients, st *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	w1, w2 := st[0], st[1]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		w0 := buf[i] - a1*w1 - a2*w2
		y0 := b0*w0 + b1*w1 + b2*w2

		wn := buf[i+1] - a1*w0 - a2*w1
		y1 := b0*wn + b1*w0 + b2*w1

		w2, w1 = w0, wn
		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		w := buf[i] - a1*w1 - a2*w2
		buf[i] = b0*w + b1*w1 + b2*w2
		w2, w1 = w1, w
	}

	st[0], st[1] = w1, w2
}

// transposedDirectFormII keeps d0, d1 in st[0..1].
func transposedDirectFormII(c registry.Coefficients, st *registry.State, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	d0, d1 := st[0], st[1]

	i := 0
	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	st[0], st[1] = d0, d1
}
