package distortion

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sample returns the interpolated Position of the curve at the given degree.
//
// Queries inside the curve's domain interpolate linearly on the containing
// segment. Queries below the first sample return the first sample's Position
// unchanged; queries above the last sample extrapolate linearly along the
// final segment. The asymmetry is intentional: below the innermost authored
// angle the displacement is pinned, while beyond the outermost angle the
// curve is assumed to keep its edge slope.
//
// The curve's Degree axis must be monotonically non-decreasing and the curve
// must have at least two points.
func Sample(points Curve, degree float64) float64 {
	for i := 0; i < len(points)-1; i++ {
		if degree >= points[i].Degree && degree <= points[i+1].Degree {
			t := (degree - points[i].Degree) / (points[i+1].Degree - points[i].Degree)
			return lerp(points[i].Position, points[i+1].Position, t)
		}
	}
	if degree < points[0].Degree {
		return points[0].Position
	}
	i := len(points) - 2
	t := (degree - points[i].Degree) / (points[i+1].Degree - points[i].Degree)
	return lerp(points[i].Position, points[i+1].Position, t)
}

// SampleInverse returns the interpolated Degree of the curve at the given
// position. It is the functional inverse of [Sample], keyed on the Position
// axis, with the same extrapolation policy: flat below the first sample,
// linear along the final segment above the last.
//
// The curve's Position axis must be monotonically non-decreasing, which
// holds for well-formed distortion curves (displacement grows with angle)
// and is not checked here.
func SampleInverse(points Curve, position float64) float64 {
	for i := 0; i < len(points)-1; i++ {
		if position >= points[i].Position && position <= points[i+1].Position {
			t := (position - points[i].Position) / (points[i+1].Position - points[i].Position)
			return lerp(points[i].Degree, points[i+1].Degree, t)
		}
	}
	if position < points[0].Position {
		return points[0].Degree
	}
	i := len(points) - 2
	t := (position - points[i].Position) / (points[i+1].Position - points[i].Position)
	return lerp(points[i].Degree, points[i+1].Degree, t)
}

// inputForPosition returns the normalized input radius for an output
// position, interpolating over samples sorted ascending by Position. It is
// [SampleInverse] for converted curves, with the identical extrapolation
// policy.
func inputForPosition(samples []inputSample, position float64) float64 {
	for i := 0; i < len(samples)-1; i++ {
		if position >= samples[i].Position && position <= samples[i+1].Position {
			t := (position - samples[i].Position) / (samples[i+1].Position - samples[i].Position)
			return lerp(samples[i].Input, samples[i+1].Input, t)
		}
	}
	if position < samples[0].Position {
		return samples[0].Input
	}
	i := len(samples) - 2
	t := (position - samples[i].Position) / (samples[i+1].Position - samples[i].Position)
	return lerp(samples[i].Input, samples[i+1].Input, t)
}
