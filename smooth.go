package distortion

// smoothAmount is how far the interior Bézier control points are moved from
// the anchors, as a fraction of the angular gap between them. Larger values
// make the curve smoother and less sharp at the anchors. One third keeps the
// control polygon evenly spaced, giving near-C¹ continuity across segments;
// it is deliberately not configurable per profile.
const smoothAmount = 1.0 / 3.0

// cubicBez is a cubic Bézier in (degree, position) space, anchored at P0 and
// P3.
type cubicBez struct {
	P0, P1, P2, P3 DistortionPoint
}

// Eval evaluates the curve at t ∈ [0, 1] using the Bernstein basis,
// independently for the degree and position axes.
func (c cubicBez) Eval(t float64) DistortionPoint {
	mt := 1.0 - t
	w0 := mt * mt * mt
	w1 := 3.0 * mt * mt * t
	w2 := 3.0 * mt * t * t
	w3 := t * t * t
	return DistortionPoint{
		Degree:   w0*c.P0.Degree + w1*c.P1.Degree + w2*c.P2.Degree + w3*c.P3.Degree,
		Position: w0*c.P0.Position + w1*c.P1.Position + w2*c.P2.Position + w3*c.P3.Position,
	}
}

// Smooth inserts innerPoints additional samples between each adjacent pair
// of control points, producing a denser curve of len(points) +
// (len(points)-1)*innerPoints samples. Every original point is preserved, in
// order, and the inserted points lie strictly between their anchors.
//
// Each segment is sampled from a cubic Bézier anchored exactly at the two
// original points. The interior control points are extrapolated along the
// local slope, estimated from the points surrounding each anchor; at the
// ends of the sequence, where no surrounding point exists, the segment's own
// chord slope is used instead.
//
// Curves with fewer than two points are returned unchanged (as a copy).
func Smooth(points Curve, innerPoints int) Curve {
	if len(points) < 2 {
		return append(Curve(nil), points...)
	}
	out := make(Curve, 0, len(points)+(len(points)-1)*innerPoints)
	for i := 0; i < len(points)-1; i++ {
		prev := points[i]
		next := points[i+1]

		chordSlope := (next.Position - prev.Position) / (next.Degree - prev.Degree)
		prevSlope := chordSlope
		if i > 0 {
			prevPrev := points[i-1]
			prevSlope = (next.Position - prevPrev.Position) / (next.Degree - prevPrev.Degree)
		}
		nextSlope := chordSlope
		if i < len(points)-2 {
			nextNext := points[i+2]
			nextSlope = (nextNext.Position - prev.Position) / (nextNext.Degree - prev.Degree)
		}

		centerDistance := (next.Degree - prev.Degree) * smoothAmount
		bez := cubicBez{
			P0: prev,
			P1: DP(prev.Degree+centerDistance, prev.Position+centerDistance*prevSlope),
			P2: DP(next.Degree-centerDistance, next.Position-centerDistance*nextSlope),
			P3: next,
		}

		out = append(out, prev)
		for j := 0; j < innerPoints; j++ {
			t := float64(j+1) / float64(innerPoints+1)
			out = append(out, bez.Eval(t))
		}
	}
	return append(out, points[len(points)-1])
}
