// Package biquad provides the second-order IIR runtime: normalized section
// [Coefficients], the immutable [Cascade] that a design produces, and
// [ChannelStates], the per-channel delay registers that stream samples
// through a cascade.
//
// Three realization forms are available. [DirectFormII] is the default;
// [DirectFormI] and [TransposedDirectFormII] trade register count for
// numerical behaviour. Block processing is dispatched once per process to
// the fastest kernel the CPU supports.
//
// Coefficient design lives in dsp/filter/design and its family packages.
package biquad
