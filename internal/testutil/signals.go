// Package testutil holds signal generators and tolerance checks shared by
// the filter tests.
package testutil

import "math/rand"

// DeterministicNoise returns length samples of uniform white noise in
// [-amplitude, amplitude) from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Impulse returns a unit impulse at pos. An out-of-range pos gives
// silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}

	return out
}

// Constant returns length samples of v, the settled input for DC tests.
func Constant(v float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = v
	}

	return out
}

// Channels returns n independent copies of src laid out as the channel
// buffers of one process call.
func Channels(src []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = append([]float64(nil), src...)
	}

	return out
}
