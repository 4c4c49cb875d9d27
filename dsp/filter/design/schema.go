package design

import "github.com/cwbudde/algo-iir/dsp/filter/param"

// Slot layouts shared by the prototype families. Slot 0 is always the
// sample rate and slot 1 the order; family shape parameters follow.

// PassSchema is [SampleRate, Order, Frequency, extra...].
func PassSchema(extra ...param.Info) []param.Info {
	return append([]param.Info{
		param.SampleRateInfo(),
		param.OrderInfo(MaxOrder),
		param.FrequencyInfo(),
	}, extra...)
}

// BandSchema is [SampleRate, Order, Frequency, BandwidthHz, extra...].
func BandSchema(extra ...param.Info) []param.Info {
	return append([]param.Info{
		param.SampleRateInfo(),
		param.OrderInfo(MaxOrder),
		param.FrequencyInfo().WithLabel("Center Frequency"),
		param.BandwidthHzInfo(),
	}, extra...)
}

// ShelfSchema is [SampleRate, Order, Frequency, Gain, extra...].
func ShelfSchema(extra ...param.Info) []param.Info {
	return append([]param.Info{
		param.SampleRateInfo(),
		param.OrderInfo(MaxOrder),
		param.FrequencyInfo().WithLabel("Corner Frequency"),
		param.GainInfo(),
	}, extra...)
}

// BandShelfSchema is [SampleRate, Order, Frequency, BandwidthHz, Gain, extra...].
func BandShelfSchema(extra ...param.Info) []param.Info {
	return append([]param.Info{
		param.SampleRateInfo(),
		param.OrderInfo(MaxOrder),
		param.FrequencyInfo().WithLabel("Center Frequency"),
		param.BandwidthHzInfo(),
		param.GainInfo(),
	}, extra...)
}

// Order reads slot 1 of a prototype-family parameter vector.
func Order(p param.Params) (int, error) {
	return OrderFromParam(p[1])
}
