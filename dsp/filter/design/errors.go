package design

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every design error: an out-of-domain
// parameter or a design that would not be stable.
var ErrInvalidConfig = errors.New("design: invalid configuration")

// MaxOrder is the highest prototype order any family accepts.
const MaxOrder = 16

// Errorf returns an error wrapping [ErrInvalidConfig].
func Errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CheckOrder validates a prototype order.
func CheckOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return Errorf("order %d outside [1, %d]", order, MaxOrder)
	}

	return nil
}

// OrderFromParam converts a parameter slot into an order.
func OrderFromParam(v float64) (int, error) {
	if !finite(v) || v != math.Trunc(v) {
		return 0, Errorf("order %v is not an integer", v)
	}

	if v < 1 || v > MaxOrder {
		return 0, Errorf("order %v outside [1, %d]", v, MaxOrder)
	}

	return int(v), nil
}

// CheckSampleRate validates a sample rate.
func CheckSampleRate(sampleRate float64) error {
	if !finite(sampleRate) || sampleRate <= 0 {
		return Errorf("sample rate %v must be positive", sampleRate)
	}

	return nil
}

// CheckFrequency validates that freq lies strictly between 0 and Nyquist.
func CheckFrequency(sampleRate, freq float64) error {
	if err := CheckSampleRate(sampleRate); err != nil {
		return err
	}

	if !finite(freq) || freq <= 0 || freq >= sampleRate/2 {
		return Errorf("frequency %v Hz outside (0, %v)", freq, sampleRate/2)
	}

	return nil
}

// BandEdges returns the lower and upper edge of a band centred at center
// with width Hz. Both edges must lie strictly inside (0, Nyquist).
func BandEdges(sampleRate, center, width float64) (float64, float64, error) {
	if err := CheckFrequency(sampleRate, center); err != nil {
		return 0, 0, err
	}

	if !finite(width) || width <= 0 {
		return 0, 0, Errorf("bandwidth %v Hz must be positive", width)
	}

	lo, hi := center-width/2, center+width/2
	if lo <= 0 || hi >= sampleRate/2 {
		return 0, 0, Errorf("band %v..%v Hz outside (0, %v)", lo, hi, sampleRate/2)
	}

	return lo, hi, nil
}

// CheckPositive validates that a named value is finite and greater than 0.
func CheckPositive(name string, v float64) error {
	if !finite(v) || v <= 0 {
		return Errorf("%s %v must be positive", name, v)
	}

	return nil
}

// CheckFinite validates that a named value is finite.
func CheckFinite(name string, v float64) error {
	if !finite(v) {
		return Errorf("%s is %v", name, v)
	}

	return nil
}
