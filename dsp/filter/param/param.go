// Package param describes filter design parameters: the fixed-capacity
// [Params] vector, the stable symbolic [ID] of each slot and the per-slot
// [Info] metadata used for generic configuration and UI binding.
package param

import (
	"errors"
	"fmt"
	"math"
)

// MaxParameters is the capacity of a [Params] vector.
const MaxParameters = 8

// Params is an ordered parameter vector. Only the first NumParams slots
// of the owning design are meaningful; their meaning is given by the
// design's []Info, not by position.
type Params [MaxParameters]float64

// ErrInvalidValue is returned when a value is non-finite, outside the
// declared range, or not integral for an integer parameter.
var ErrInvalidValue = errors.New("param: invalid value")

// ID is a stable symbolic parameter identifier. IDs stay meaningful across
// designs; slot indices do not.
type ID int

const (
	SampleRate  ID = iota // sampling rate, Hz
	Frequency             // cutoff or center, Hz
	Q                     // resonance
	Bandwidth             // octaves
	BandwidthHz           // hertz
	Gain                  // decibels
	Slope                 // shelf slope
	Order                 // filter order
	RippleDB              // passband ripple, dB
	StopDB                // stopband attenuation, dB
	PoleRho               // pole radius
	PoleTheta             // pole angle, radians
	ZeroRho               // zero radius
	ZeroTheta             // zero angle, radians
	PoleReal              // real pole
	ZeroReal              // real zero
	Scale                 // linear gain factor
)

var idNames = [...]string{
	SampleRate:  "SampleRate",
	Frequency:   "Frequency",
	Q:           "Q",
	Bandwidth:   "Bandwidth",
	BandwidthHz: "BandwidthHz",
	Gain:        "Gain",
	Slope:       "Slope",
	Order:       "Order",
	RippleDB:    "RippleDB",
	StopDB:      "StopDB",
	PoleRho:     "PoleRho",
	PoleTheta:   "PoleTheta",
	ZeroRho:     "ZeroRho",
	ZeroTheta:   "ZeroTheta",
	PoleReal:    "PoleReal",
	ZeroReal:    "ZeroReal",
	Scale:       "Scale",
}

func (id ID) String() string {
	if id >= 0 && int(id) < len(idNames) {
		return idNames[id]
	}

	return fmt.Sprintf("ID(%d)", int(id))
}

// Mapping is the curve used to map a raw value onto a [0,1] control.
type Mapping int

const (
	// Linear maps the range proportionally.
	Linear Mapping = iota
	// Log maps equal ratios to equal control steps. It needs Min > 0.
	Log
)

func (m Mapping) String() string {
	if m == Log {
		return "log"
	}

	return "linear"
}

// Info is the metadata of one parameter slot.
type Info struct {
	ID      ID
	Name    string // short identifier, e.g. "Frequency"
	Label   string // display label, e.g. "Cutoff Frequency"
	Unit    string
	Default float64
	Min     float64
	Max     float64
	Mapping Mapping
	Integer bool
}

// WithDefault returns a copy of i with a different default value.
func (i Info) WithDefault(v float64) Info {
	i.Default = v
	return i
}

// WithLabel returns a copy of i with a different display label.
func (i Info) WithLabel(label string) Info {
	i.Label = label
	return i
}

// Validate checks that v is finite, inside [Min, Max] and integral when
// the parameter is an integer.
func (i Info) Validate(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidValue, i.Name, v)
	}

	if v < i.Min || v > i.Max {
		return fmt.Errorf("%w: %s %g outside [%g, %g]", ErrInvalidValue, i.Name, v, i.Min, i.Max)
	}

	if i.Integer && v != math.Trunc(v) {
		return fmt.Errorf("%w: %s %g is not an integer", ErrInvalidValue, i.Name, v)
	}

	return nil
}

// Clamp limits v to [Min, Max].
func (i Info) Clamp(v float64) float64 {
	return math.Max(i.Min, math.Min(i.Max, v))
}

// ToControl maps a raw value onto [0,1] using the declared curve. Values
// outside the range are clamped first.
func (i Info) ToControl(v float64) float64 {
	if i.Max <= i.Min || math.IsNaN(v) {
		return 0
	}

	v = i.Clamp(v)

	if i.Mapping == Log && i.Min > 0 {
		return (mathLog(v) - mathLog(i.Min)) / (mathLog(i.Max) - mathLog(i.Min))
	}

	return (v - i.Min) / (i.Max - i.Min)
}

// FromControl maps a control value in [0,1] back to the raw range. The
// control is clamped to [0,1]; integer parameters are rounded.
func (i Info) FromControl(c float64) float64 {
	if math.IsNaN(c) {
		c = 0
	}

	c = math.Max(0, math.Min(1, c))

	var v float64
	if i.Mapping == Log && i.Min > 0 {
		v = mathExp(mathLog(i.Min) + c*(mathLog(i.Max)-mathLog(i.Min)))
	} else {
		v = i.Min + c*(i.Max-i.Min)
	}

	if i.Integer {
		v = math.Round(v)
	}

	return i.Clamp(v)
}

// Interpolate returns the value a fraction t of the way from from to to
// along the declared curve: geometric for log parameters, linear
// otherwise. Integer parameters take to at once, and a slot that does not
// move stays exactly on its value. t is clamped to [0,1].
func (i Info) Interpolate(from, to, t float64) float64 {
	switch {
	case i.Integer || t >= 1 || from == to:
		return to
	case t <= 0:
		return from
	}

	if i.Mapping == Log && from > 0 && to > 0 {
		return i.Clamp(mathExp(mathLog(from) + (mathLog(to)-mathLog(from))*t))
	}

	return i.Clamp(from + (to-from)*t)
}
