package distortion

import "fmt"

// DistortionPoint is one control sample of a radial distortion curve. Degree
// is the angular offset from the optical center, in degrees; 0 is the
// forward gaze direction. Position is the output displacement at that angle,
// as a percentage of the panel radius (100 is the edge of the panel).
type DistortionPoint struct {
	Degree   float64
	Position float64
}

// DP returns the point (degree, position).
func DP(degree, position float64) DistortionPoint {
	return DistortionPoint{Degree: degree, Position: position}
}

func (p DistortionPoint) String() string {
	return fmt.Sprintf("(%g°, %g)", p.Degree, p.Position)
}

// Curve is an ordered sequence of distortion samples, sorted ascending by
// Degree. Monotonicity of the Degree axis is a precondition of the samplers
// and is not validated; a non-monotone curve interpolates to silently wrong
// values.
type Curve []DistortionPoint

// MaxDegree returns the largest Degree in the curve, or 0 for an empty
// curve. Curves are radial and one-sided, so all degrees are non-negative.
func (c Curve) MaxDegree() float64 {
	max := 0.0
	for _, p := range c {
		if p.Degree > max {
			max = p.Degree
		}
	}
	return max
}

// inputSample pairs an output displacement with the normalized tangent-space
// input radius that produces it. Sequences are sorted ascending by Position.
//
// The authored curves relate degrees to output positions; after the tangent
// conversion the angular axis becomes an input-space coordinate in [0, 1].
// Rather than repurposing the Degree field for that second meaning, the
// converted form gets its own type.
type inputSample struct {
	Position float64
	Input    float64
}
