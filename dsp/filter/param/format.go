package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const negInf = "-∞"

// Format renders v for display according to the parameter's unit.
func (i Info) Format(v float64) string {
	switch i.ID {
	case SampleRate, Frequency, BandwidthHz:
		return formatFrequency(v)
	case Gain, RippleDB, StopDB:
		return formatDecibel(v)
	case Order:
		return strconv.Itoa(int(math.Round(v)))
	case Bandwidth:
		return fmt.Sprintf("%.2f oct", v)
	case PoleTheta, ZeroTheta:
		return fmt.Sprintf("%.3f rad", v)
	default:
		if i.Integer {
			return strconv.Itoa(int(math.Round(v)))
		}

		return strconv.FormatFloat(v, 'g', 4, 64)
	}
}

// Parse reads a value written by [Info.Format] or a bare number. Frequency
// parameters accept a "kHz" or "Hz" suffix and decibel parameters a "dB"
// suffix. The result is validated.
func (i Info) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0

	switch i.ID {
	case SampleRate, Frequency, BandwidthHz:
		lower := strings.ToLower(s)
		if strings.HasSuffix(lower, "khz") {
			s = s[:len(s)-3]
			scale = 1000
		} else if strings.HasSuffix(lower, "hz") {
			s = s[:len(s)-2]
		}
	case Gain, RippleDB, StopDB:
		if strings.HasSuffix(strings.ToLower(s), "db") {
			s = strings.TrimSpace(s[:len(s)-2])
		}

		// Format writes the gain floor as -∞.
		if i.ID == Gain && s == negInf {
			return i.Min, nil
		}
	case Bandwidth:
		s = strings.TrimSuffix(s, "oct")
	case PoleTheta, ZeroTheta:
		s = strings.TrimSuffix(s, "rad")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidValue, i.Name, err)
	}

	v *= scale
	if err := i.Validate(v); err != nil {
		return 0, err
	}

	return v, nil
}

func formatFrequency(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}

	return fmt.Sprintf("%.1f Hz", hz)
}

func formatDecibel(db float64) string {
	if db <= -60 {
		return negInf + " dB"
	}

	return fmt.Sprintf("%.1f dB", db)
}
