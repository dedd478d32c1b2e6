package distortion

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PixelsPerDegree reports the average display density across a band of view
// angles, for a panel with the given resolution in pixels per dimension.
// The curve's positions are percentages of the panel radius, which spans
// half the panel, hence the /100 and /2.
//
// This is a diagnostic for profile authors; rendering does not depend on it.
func PixelsPerDegree(c Curve, degreeStart, degreeEnd, resolution float64) float64 {
	return (Sample(c, degreeEnd) - Sample(c, degreeStart)) / (degreeEnd - degreeStart) / 100.0 * resolution / 2.0
}

// maxInputOutputRatio returns the steepest output/input slope across a
// converted curve. A ratio above 1 means some band of the panel is
// magnified, so the compositor must oversample by that factor to keep a 1:1
// pixel density after distortion. Returns 0 for degenerate curves.
func maxInputOutputRatio(samples []inputSample) float64 {
	if len(samples) < 2 {
		return 0
	}
	ratios := make([]float64, len(samples)-1)
	for i := range ratios {
		prev, next := samples[i], samples[i+1]
		ratios[i] = (next.Position - prev.Position) / 100.0 / (next.Input - prev.Input)
	}
	return math.Max(0, floats.Max(ratios))
}
