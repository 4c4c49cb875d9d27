// Package elliptic designs elliptic (Cauer) filters: equiripple in both the
// passband and the stopband, with the steepest transition of the classical
// families for a given order.
//
// The analog prototype places its zeros and poles with Jacobi elliptic
// functions evaluated through Landen transformations.
package elliptic

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/design"
)

// Prototype returns the analog low-pass prototype with passband ripple
// rippleDB up to the unit cutoff and at least stopDB attenuation from the
// stopband edge on. stopDB must exceed rippleDB.
func Prototype(order int, rippleDB, stopDB float64) (design.ZPK, error) {
	if err := design.CheckOrder(order); err != nil {
		return design.ZPK{}, err
	}

	if err := design.CheckPositive("ripple", rippleDB); err != nil {
		return design.ZPK{}, err
	}

	if err := design.CheckPositive("stopband attenuation", stopDB); err != nil {
		return design.ZPK{}, err
	}

	if stopDB <= rippleDB {
		return design.ZPK{}, design.Errorf("stopband attenuation %v dB must exceed ripple %v dB", stopDB, rippleDB)
	}

	epsSq := math.Expm1(math.Ln10 * rippleDB / 10)
	m1 := epsSq / math.Expm1(math.Ln10*stopDB/10)

	if order == 1 {
		p := -1 / math.Sqrt(epsSq)
		return design.ZPK{Poles: []complex128{complex(p, 0)}, Gain: -p}, nil
	}

	m := degree(order, m1)
	if !(m > 0 && m < 1) {
		return design.ZPK{}, design.Errorf("elliptic degree equation has no solution for order %d", order)
	}

	k := math.Sqrt(m)
	kk := completeK(k)
	kk1 := completeK(math.Sqrt(m1))

	r := arcSC1(1/math.Sqrt(epsSq), m1)
	if !finitePositive(r) {
		return design.ZPK{}, design.Errorf("elliptic pole offset did not converge")
	}

	sv, cv, dv, ok := jacobi(kk*r/(float64(order)*kk1), math.Sqrt(1-m))
	if !ok {
		return design.ZPK{}, design.Errorf("elliptic pole offset did not converge")
	}

	proto := design.ZPK{
		Zeros: make([]complex128, 0, order),
		Poles: make([]complex128, 0, order),
	}

	for j := 1 - order%2; j < order; j += 2 {
		sn, cn, dn, ok := jacobi(float64(j)*kk/float64(order), k)
		if !ok {
			return design.ZPK{}, design.Errorf("elliptic section %d did not converge", j)
		}

		den := 1 - (dn*sv)*(dn*sv)
		if math.Abs(den) <= machineEps {
			return design.ZPK{}, design.Errorf("elliptic section %d is degenerate", j)
		}

		p := -complex(cn*dn*sv*cv, sn*dv) / complex(den, 0)

		if j == 0 {
			proto.Poles = append(proto.Poles, complex(real(p), 0))
			continue
		}

		z := complex(0, 1/(k*sn))
		proto.Zeros = append(proto.Zeros, z, cmplx.Conj(z))
		proto.Poles = append(proto.Poles, p, cmplx.Conj(p))
	}

	num, den := complex(1, 0), complex(1, 0)
	for _, p := range proto.Poles {
		num *= -p
	}

	for _, z := range proto.Zeros {
		den *= -z
	}

	proto.Gain = real(num / den)
	if order%2 == 0 {
		proto.Gain /= math.Sqrt(1 + epsSq)
	}

	return proto, nil
}

// StopbandEdge returns the analog stopband edge of the unit-cutoff
// prototype, where the attenuation first reaches stopDB.
func StopbandEdge(order int, rippleDB, stopDB float64) float64 {
	m1 := math.Expm1(math.Ln10*rippleDB/10) / math.Expm1(math.Ln10*stopDB/10)
	if order == 1 {
		return 1 / math.Sqrt(m1)
	}

	return 1 / math.Sqrt(degree(order, m1))
}

// DesignLowPass returns a low-pass cascade at -rippleDB at cutoff.
func DesignLowPass(order int, sampleRate, cutoff, rippleDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalLowPass(proto, sampleRate, cutoff)
}

// DesignHighPass returns a high-pass cascade at -rippleDB at cutoff.
func DesignHighPass(order int, sampleRate, cutoff, rippleDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalHighPass(proto, sampleRate, cutoff)
}

// DesignBandPass returns a band-pass cascade of 2*order poles.
func DesignBandPass(order int, sampleRate, center, width, rippleDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandPass(proto, sampleRate, center, width)
}

// DesignBandStop returns a band-stop cascade of 2*order poles.
func DesignBandStop(order int, sampleRate, center, width, rippleDB, stopDB float64) (*biquad.Cascade, error) {
	proto, err := Prototype(order, rippleDB, stopDB)
	if err != nil {
		return nil, err
	}

	return design.DigitalBandStop(proto, sampleRate, center, width)
}
