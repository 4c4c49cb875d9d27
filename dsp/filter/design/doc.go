// Package design holds the pipeline shared by the IIR design families.
//
// A family produces an analog low-pass prototype as a [ZPK] with its
// cutoff at 1 rad/s. [LowPassToLowPass], [LowPassToHighPass],
// [LowPassToBandPass] and [LowPassToBandStop] reshape it around
// pre-warped frequencies, [Bilinear] maps it onto the z-plane and
// [ZPK.Cascade] groups the roots into biquad sections. The Digital*
// helpers run all three steps.
//
// [Descriptor] pairs a build function with its parameter schema; [Raw]
// is embedded by the directly configured filter types of each family.
// Every design error wraps [ErrInvalidConfig].
package design
