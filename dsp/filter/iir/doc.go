// Package iir is the host-facing layer of the filter engine.
//
// A [Filter] owns one [Design], its current parameter vector and the
// cascade built from it. Filters with one or more channels also own the
// per-channel delay registers and stream audio through [Filter.Process];
// a Filter with zero channels is analysis only. [WithTransition] turns on
// sample-accurate coefficient smoothing so parameter changes do not click.
//
// [Simple] is the zero-overhead path: it wraps a directly configured
// family type, such as butterworth.LowPass, and processes it without any
// parameter bookkeeping.
//
// Every standard design is listed by [Designs] and found by name with
// [Lookup]:
//
//	d, _ := iir.Lookup("Chebyshev I BandStop")
//	f, _ := iir.New(d, 2)
//	_ = f.SetParamByID(param.RippleDB, 1)
package iir
