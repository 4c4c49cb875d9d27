package param

import "math"

// Standard slot descriptions shared by the design families. Families adjust
// the default or the label with [Info.WithDefault] and [Info.WithLabel].

// SampleRateInfo describes the sample rate in Hz, 8 kHz to 384 kHz.
func SampleRateInfo() Info {
	return Info{
		ID: SampleRate, Name: "SampleRate", Label: "Sample Rate", Unit: "Hz",
		Default: 44100, Min: 8000, Max: 384000, Mapping: Log,
	}
}

// FrequencyInfo describes a cutoff or center frequency in Hz.
func FrequencyInfo() Info {
	return Info{
		ID: Frequency, Name: "Frequency", Label: "Cutoff Frequency", Unit: "Hz",
		Default: 1000, Min: 1, Max: 192000, Mapping: Log,
	}
}

// QInfo describes the resonance of an RBJ section.
func QInfo() Info {
	return Info{
		ID: Q, Name: "Q", Label: "Resonance",
		Default: math.Sqrt2 / 2, Min: 0.01, Max: 100, Mapping: Log,
	}
}

// BandwidthInfo describes a bandwidth in octaves.
func BandwidthInfo() Info {
	return Info{
		ID: Bandwidth, Name: "Bandwidth", Label: "Bandwidth", Unit: "oct",
		Default: 1, Min: 0.01, Max: 8, Mapping: Log,
	}
}

// BandwidthHzInfo describes a bandwidth in Hz, centred on the frequency.
func BandwidthHzInfo() Info {
	return Info{
		ID: BandwidthHz, Name: "BandwidthHz", Label: "Bandwidth", Unit: "Hz",
		Default: 200, Min: 0.1, Max: 192000, Mapping: Log,
	}
}

// GainInfo describes a shelf or band gain in dB. -60 dB displays as -∞.
func GainInfo() Info {
	return Info{
		ID: Gain, Name: "Gain", Label: "Gain", Unit: "dB",
		Default: -6, Min: -60, Max: 60,
	}
}

// SlopeInfo describes the RBJ shelf slope; 1 is the steepest monotonic shelf.
func SlopeInfo() Info {
	return Info{
		ID: Slope, Name: "Slope", Label: "Shelf Slope",
		Default: 1, Min: 0.01, Max: 2, Mapping: Log,
	}
}

// OrderInfo describes an integral filter order from 1 to maxOrder.
func OrderInfo(maxOrder int) Info {
	return Info{
		ID: Order, Name: "Order", Label: "Order",
		Default: 2, Min: 1, Max: float64(maxOrder), Integer: true,
	}
}

// RippleInfo describes the passband ripple in dB.
func RippleInfo() Info {
	return Info{
		ID: RippleDB, Name: "RippleDB", Label: "Passband Ripple", Unit: "dB",
		Default: 1, Min: 0.001, Max: 12, Mapping: Log,
	}
}

// StopInfo describes the stopband attenuation in dB.
func StopInfo() Info {
	return Info{
		ID: StopDB, Name: "StopDB", Label: "Stopband Attenuation", Unit: "dB",
		Default: 48, Min: 3, Max: 120,
	}
}

// PoleRhoInfo describes the radius of a pole pair, kept inside the unit
// circle.
func PoleRhoInfo() Info {
	return Info{
		ID: PoleRho, Name: "PoleRho", Label: "Pole Radius",
		Default: 0.9, Min: 0, Max: 0.999999,
	}
}

// PoleThetaInfo describes the angle of a pole pair in radians.
func PoleThetaInfo() Info {
	return Info{
		ID: PoleTheta, Name: "PoleTheta", Label: "Pole Angle", Unit: "rad",
		Default: math.Pi / 4, Min: 0, Max: math.Pi,
	}
}

// ZeroRhoInfo describes the radius of a zero pair.
func ZeroRhoInfo() Info {
	return Info{
		ID: ZeroRho, Name: "ZeroRho", Label: "Zero Radius",
		Default: 0, Min: 0, Max: 2,
	}
}

// ZeroThetaInfo describes the angle of a zero pair in radians.
func ZeroThetaInfo() Info {
	return Info{
		ID: ZeroTheta, Name: "ZeroTheta", Label: "Zero Angle", Unit: "rad",
		Default: math.Pi / 2, Min: 0, Max: math.Pi,
	}
}

// PoleRealInfo describes a real pole.
func PoleRealInfo() Info {
	return Info{
		ID: PoleReal, Name: "PoleReal", Label: "Pole",
		Default: 0.9, Min: -0.999999, Max: 0.999999,
	}
}

// ZeroRealInfo describes a real zero.
func ZeroRealInfo() Info {
	return Info{
		ID: ZeroReal, Name: "ZeroReal", Label: "Zero",
		Default: -1, Min: -2, Max: 2,
	}
}

// ScaleInfo describes the linear gain of a custom design.
func ScaleInfo() Info {
	return Info{
		ID: Scale, Name: "Scale", Label: "Scale",
		Default: 1, Min: -10, Max: 10,
	}
}

// Defaults returns a parameter vector holding the default of every info.
func Defaults(infos []Info) Params {
	var p Params
	for i := range infos {
		if i >= MaxParameters {
			break
		}

		p[i] = infos[i].Default
	}

	return p
}

// IndexOf returns the slot of id in infos, or -1.
func IndexOf(infos []Info, id ID) int {
	for i := range infos {
		if infos[i].ID == id {
			return i
		}
	}

	return -1
}
