// Package distortion converts sparse, hand-authored lens distortion curves
// into dense per-channel lookup tables for correcting the geometric and
// chromatic distortion of a head-mounted display.
//
// A distortion profile is authored as a handful of control points per color
// channel: the green channel's curve maps view angles (in degrees from the
// optical center) to output displacements, and the red and blue curves give
// percentage offsets from green that compensate for chromatic aberration.
// [Profile.Initialize] densifies the curves with locally fitted cubic
// Béziers (see [Smooth]), applies the chromatic offsets, converts angles to
// normalized tangent-space coordinates, and inverts the result into three
// fixed-size radial maps.
//
// At render time, [Profile.ComputeDistortion] maps a normalized UV offset to
// the corrected sample coordinate for one channel with a single interpolated
// lookup. It allocates nothing and runs once per distorted sample per frame
// per eye per channel. [Profile.GetProjectionRaw] reports the tangent-space
// clip bounds of the profile's field of view.
//
// The package performs no I/O. Settings files, profile watching, and the
// decoding of raw profile arrays into [DistortionPoint] control curves are
// the caller's concern; see [DistortionProfileConfig] for the handoff type.
// Diagnostics (pixels-per-degree, oversampling estimates) are emitted
// through the logger configured with [SetLogger] and are informational only.
package distortion
