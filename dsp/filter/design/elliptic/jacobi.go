package elliptic

import (
	"math"
	"math/cmplx"
)

const (
	landenTol   = 2.2e-16
	machineEps  = 2.220446049250313e-16
	arcSNSteps  = 10
	arcSC1Real  = 1e-7
	nomeTerms   = 7
	asymptoticK = 1e-6
	dnUnderflow = -1e-12
)

// landen returns the descending Landen moduli of k, stopping once they fall
// below landenTol. A modulus of 0 or 1 is its own sequence.
func landen(k float64) []float64 {
	if k == 0 || k == 1 {
		return []float64{k}
	}

	var seq []float64
	for k > landenTol {
		t := k / (1 + math.Sqrt((1-k)*(1+k)))
		k = t * t
		seq = append(seq, k)
	}

	return seq
}

// completeK returns the complete elliptic integral of the first kind K(k)
// for modulus k. Near k = 1 it switches to the logarithmic asymptote.
func completeK(k float64) float64 {
	kmax := math.Sqrt(1 - asymptoticK*asymptoticK)

	switch {
	case k == 1:
		return math.Inf(1)
	case k > kmax:
		kp := math.Sqrt((1 - k) * (1 + k))
		l := -math.Log(kp / 4)

		return l + (l-1)*kp*kp/4
	}

	prod := math.Pi / 2
	for _, v := range landen(k) {
		prod *= 1 + v
	}

	return prod
}

// snNorm evaluates sn(u*K, k) by ascending Landen transformations.
func snNorm(u, k float64) float64 {
	seq := landen(k)
	w := math.Sin(u * math.Pi / 2)

	for i := len(seq) - 1; i >= 0; i-- {
		w = (1 + seq[i]) * w / (1 + seq[i]*w*w)
	}

	return w
}

// cdNorm evaluates cd(u*K, k).
func cdNorm(u, k float64) float64 {
	seq := landen(k)
	w := math.Cos(u * math.Pi / 2)

	for i := len(seq) - 1; i >= 0; i-- {
		w = (1 + seq[i]) * w / (1 + seq[i]*w*w)
	}

	return w
}

// jacobi returns sn, cn and dn of a real argument for modulus k in [0, 1).
func jacobi(u, k float64) (sn, cn, dn float64, ok bool) {
	if !(k >= 0 && k < 1) {
		return 0, 0, 0, false
	}

	kk := completeK(k)
	if !finitePositive(kk) {
		return 0, 0, 0, false
	}

	un := u / kk

	sn = snNorm(un, k)
	if math.IsNaN(sn) || math.IsInf(sn, 0) {
		return 0, 0, 0, false
	}

	dn2 := 1 - k*k*sn*sn
	if dn2 < dnUnderflow {
		return 0, 0, 0, false
	}

	dn = math.Sqrt(math.Max(dn2, 0))
	cn = cdNorm(un, k) * dn

	return sn, cn, dn, true
}

func complement(k complex128) complex128 {
	return cmplx.Sqrt((1 - k) * (1 + k))
}

// arcSN inverts sn for parameter m = k^2 in [0, 1] at a complex argument.
func arcSN(w complex128, m float64) complex128 {
	if m < 0 || m > 1 {
		return cmplx.NaN()
	}

	k := complex(math.Sqrt(m), 0)
	if real(k) == 1 {
		return cmplx.Atanh(w)
	}

	moduli := []complex128{k}
	for range arcSNSteps - 1 {
		last := moduli[len(moduli)-1]
		if last == 0 {
			break
		}

		kp := complement(last)
		moduli = append(moduli, (1-kp)/(1+kp))
	}

	kk := math.Pi / 2
	for _, kn := range moduli[1:] {
		kk *= real(1 + kn)
	}

	for i := range len(moduli) - 1 {
		den := (1 + moduli[i+1]) * (1 + complement(moduli[i]*w))
		if den == 0 {
			return cmplx.NaN()
		}

		w = 2 * w / den
	}

	return complex(kk, 0) * (2 / math.Pi) * cmplx.Asin(w)
}

// arcSC1 returns the real u with sc(u, sqrt(1-m)) = w, computed as the
// imaginary part of arcsn(jw) for parameter m.
func arcSC1(w, m float64) float64 {
	z := arcSN(complex(0, w), m)
	if math.Abs(real(z)) > arcSC1Real*math.Max(1, math.Abs(imag(z))) {
		return math.NaN()
	}

	return imag(z)
}

// degree solves the elliptic degree equation for the parameter m of an
// order-n filter with discrimination parameter m1, via the nome series.
func degree(n int, m1 float64) float64 {
	if n <= 0 || !(m1 > 0 && m1 < 1) {
		return math.NaN()
	}

	k1 := completeK(math.Sqrt(m1))
	k1p := completeK(math.Sqrt(1 - m1))

	if !finitePositive(k1) || !finitePositive(k1p) {
		return math.NaN()
	}

	q := math.Pow(math.Exp(-math.Pi*k1p/k1), 1/float64(n))

	num, den := 0.0, 1.0
	for i := range nomeTerms {
		num += math.Pow(q, float64(i*(i+1)))
		if i > 0 {
			den += 2 * math.Pow(q, float64(i*i))
		}
	}

	return 16 * q * math.Pow(num/den, 4)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
