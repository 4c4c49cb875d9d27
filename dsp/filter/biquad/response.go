package biquad

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the section
// at normalized frequency f, a fraction of the sample rate.
func (c *Coefficients) Response(f float64) complex128 {
	w := 2 * math.Pi * f
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := ejw * ejw

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression that
// avoids complex exponentials.
func (c *Coefficients) MagnitudeSquared(f float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*f)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(f float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(f))
}

// Phase returns the phase response in radians at normalized frequency f.
func (c *Coefficients) Phase(f float64) float64 {
	return cmplx.Phase(c.Response(f))
}

// Response computes the complex frequency response of the full cascade,
// the gain times the product of the section responses, at normalized
// frequency f.
func (c *Cascade) Response(f float64) complex128 {
	h := complex(c.Gain(), 0)
	if c == nil {
		return h
	}

	for i := range c.sections {
		h *= c.sections[i].Response(f)
	}

	return h
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Cascade) MagnitudeDB(f float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(f)))
}

// Phase returns the cascaded phase response in radians.
func (c *Cascade) Phase(f float64) float64 {
	return cmplx.Phase(c.Response(f))
}
