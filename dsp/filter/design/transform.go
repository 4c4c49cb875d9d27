package design

import (
	"math"
	"math/cmplx"
)

// Prewarp maps a frequency in Hz to the analog frequency that the bilinear
// transform carries back onto it: tan(pi*f/fs).
func Prewarp(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * freq / sampleRate)
}

// LowPassToLowPass moves the cutoff of a unit-cutoff prototype to w.
func LowPassToLowPass(proto ZPK, w float64) ZPK {
	out := ZPK{
		Zeros: make([]complex128, len(proto.Zeros)),
		Poles: make([]complex128, len(proto.Poles)),
		Gain:  proto.Gain * math.Pow(w, float64(proto.relativeDegree())),
	}

	for i, z := range proto.Zeros {
		out.Zeros[i] = z * complex(w, 0)
	}

	for i, p := range proto.Poles {
		out.Poles[i] = p * complex(w, 0)
	}

	return out
}

// LowPassToHighPass substitutes s -> w/s. Zeros at infinity move to the
// origin. Roots at the origin have no image and are rejected.
func LowPassToHighPass(proto ZPK, w float64) (ZPK, error) {
	degree := proto.relativeDegree()
	if degree < 0 {
		return ZPK{}, Errorf("prototype has more zeros than poles")
	}

	out := ZPK{
		Zeros: make([]complex128, 0, len(proto.Poles)),
		Poles: make([]complex128, 0, len(proto.Poles)),
	}

	cw := complex(w, 0)
	for _, z := range proto.Zeros {
		if z == 0 {
			return ZPK{}, Errorf("prototype zero at the origin")
		}

		out.Zeros = append(out.Zeros, cw/z)
	}

	for range degree {
		out.Zeros = append(out.Zeros, 0)
	}

	for _, p := range proto.Poles {
		if p == 0 {
			return ZPK{}, Errorf("prototype pole at the origin")
		}

		out.Poles = append(out.Poles, cw/p)
	}

	out.Gain = proto.Gain * real(productNeg(proto.Zeros)/productNeg(proto.Poles))

	return out, nil
}

// LowPassToBandPass substitutes s -> (s^2 + w0^2)/(bw*s). Each prototype
// root becomes two; zeros at infinity become zeros at the origin.
func LowPassToBandPass(proto ZPK, w0, bw float64) ZPK {
	degree := proto.relativeDegree()

	out := ZPK{
		Zeros: make([]complex128, 0, 2*len(proto.Poles)),
		Poles: make([]complex128, 0, 2*len(proto.Poles)),
		Gain:  proto.Gain * math.Pow(bw, float64(degree)),
	}

	for _, z := range proto.Zeros {
		a, b := bandRoots(z*complex(bw, 0), w0)
		out.Zeros = append(out.Zeros, a, b)
	}

	for range degree {
		out.Zeros = append(out.Zeros, 0)
	}

	for _, p := range proto.Poles {
		a, b := bandRoots(p*complex(bw, 0), w0)
		out.Poles = append(out.Poles, a, b)
	}

	return out
}

// LowPassToBandStop substitutes s -> bw*s/(s^2 + w0^2). Zeros at infinity
// become conjugate zeros at +-j*w0.
func LowPassToBandStop(proto ZPK, w0, bw float64) (ZPK, error) {
	degree := proto.relativeDegree()
	if degree < 0 {
		return ZPK{}, Errorf("prototype has more zeros than poles")
	}

	out := ZPK{
		Zeros: make([]complex128, 0, 2*len(proto.Poles)),
		Poles: make([]complex128, 0, 2*len(proto.Poles)),
	}

	for _, z := range proto.Zeros {
		if z == 0 {
			return ZPK{}, Errorf("prototype zero at the origin")
		}

		a, b := bandRoots(complex(bw, 0)/z, w0)
		out.Zeros = append(out.Zeros, a, b)
	}

	for range degree {
		out.Zeros = append(out.Zeros, complex(0, w0), complex(0, -w0))
	}

	for _, p := range proto.Poles {
		if p == 0 {
			return ZPK{}, Errorf("prototype pole at the origin")
		}

		a, b := bandRoots(complex(bw, 0)/p, w0)
		out.Poles = append(out.Poles, a, b)
	}

	out.Gain = proto.Gain * real(productNeg(proto.Zeros)/productNeg(proto.Poles))

	return out, nil
}

// bandRoots solves s^2 - r*s + w0^2 = 0.
func bandRoots(r complex128, w0 float64) (complex128, complex128) {
	d := cmplx.Sqrt(r*r - complex(4*w0*w0, 0))
	return (r + d) / 2, (r - d) / 2
}

// Bilinear maps an analog ZPK onto the z-plane with z = (1+s)/(1-s). Zeros
// at infinity land on z = -1 and the gain is carried so the response at
// every mapped frequency is preserved.
func Bilinear(analog ZPK) (ZPK, error) {
	degree := analog.relativeDegree()
	if degree < 0 {
		return ZPK{}, Errorf("analog design has more zeros than poles")
	}

	out := ZPK{
		Zeros: make([]complex128, 0, len(analog.Poles)),
		Poles: make([]complex128, 0, len(analog.Poles)),
	}

	for _, z := range analog.Zeros {
		if z == 1 {
			return ZPK{}, Errorf("analog zero at s = 1")
		}

		out.Zeros = append(out.Zeros, (1+z)/(1-z))
	}

	for range degree {
		out.Zeros = append(out.Zeros, -1)
	}

	for _, p := range analog.Poles {
		if p == 1 {
			return ZPK{}, Errorf("analog pole at s = 1")
		}

		out.Poles = append(out.Poles, (1+p)/(1-p))
	}

	out.Gain = analog.Gain * real(productOneMinus(analog.Zeros)/productOneMinus(analog.Poles))

	return out, nil
}
