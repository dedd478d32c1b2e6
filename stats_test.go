package distortion

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPixelsPerDegreeLinearCurve(t *testing.T) {
	// 10% of the panel radius per degree on a 2000px panel: 10/100 * 2000/2
	c := Curve{DP(0, 0), DP(10, 100)}
	diff(t, 100.0, PixelsPerDegree(c, 0, 1, 2000), cmpopts.EquateApprox(0, 1e-9))
	diff(t, 100.0, PixelsPerDegree(c, 3, 7, 2000), cmpopts.EquateApprox(0, 1e-9))
}

func TestPixelsPerDegreeVaryingCurve(t *testing.T) {
	// steeper near the center than the edge
	c := Curve{DP(0, 0), DP(10, 50), DP(45, 100)}
	center := PixelsPerDegree(c, 0, 1, 2160)
	edge := PixelsPerDegree(c, 40, 41, 2160)
	if center <= edge {
		t.Errorf("expected center density %g to exceed edge density %g", center, edge)
	}
}

func TestMaxInputOutputRatio(t *testing.T) {
	samples := []inputSample{
		{Position: 0, Input: 0},
		{Position: 50, Input: 0.25},
		{Position: 100, Input: 1},
	}
	// segment slopes are 0.5/0.25 = 2 and 0.5/0.75 = 2/3
	diff(t, 2.0, maxInputOutputRatio(samples), cmpopts.EquateApprox(0, 1e-12))
}

func TestMaxInputOutputRatioDegenerate(t *testing.T) {
	diff(t, 0.0, maxInputOutputRatio(nil))
	diff(t, 0.0, maxInputOutputRatio([]inputSample{{Position: 0, Input: 0}}))

	// a decreasing curve never reports a negative oversampling factor
	decreasing := []inputSample{
		{Position: 100, Input: 0},
		{Position: 50, Input: 0.5},
		{Position: 0, Input: 1},
	}
	diff(t, 0.0, maxInputOutputRatio(decreasing))
}
