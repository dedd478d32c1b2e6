package distortion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSmoothPointCount(t *testing.T) {
	curves := []Curve{
		{DP(0, 0), DP(10, 100)},
		{DP(0, 0), DP(10, 30), DP(20, 55), DP(35, 80), DP(50, 100)},
		{DP(0, 0), DP(5, 20), DP(45, 100)},
	}
	for _, c := range curves {
		for _, k := range []int{0, 1, 5, 32} {
			got := Smooth(c, k)
			want := len(c) + (len(c)-1)*k
			if len(got) != want {
				t.Errorf("Smooth(%d points, %d): got %d points, want %d", len(c), k, len(got), want)
			}
		}
	}
}

func TestSmoothPreservesAnchors(t *testing.T) {
	c := Curve{DP(0, 0), DP(10, 30), DP(20, 55), DP(35, 80), DP(50, 100)}
	const k = 7
	got := Smooth(c, k)
	// every original point survives exactly, at stride k+1
	for i, p := range c {
		diff(t, p, got[i*(k+1)])
	}
}

func TestSmoothInteriorPointsBetweenAnchors(t *testing.T) {
	c := Curve{DP(0, 0), DP(10, 40), DP(25, 70), DP(50, 100)}
	const k = 9
	got := Smooth(c, k)
	for i := 0; i < len(c)-1; i++ {
		lo, hi := c[i].Degree, c[i+1].Degree
		for j := 0; j < k; j++ {
			p := got[i*(k+1)+1+j]
			if p.Degree <= lo || p.Degree >= hi {
				t.Errorf("inner point %v not strictly between anchors %g and %g", p, lo, hi)
			}
		}
	}
}

func TestSmoothTwoPointsIsLinear(t *testing.T) {
	// With only two points the surrounding-slope estimate degenerates to
	// the chord slope on both ends, so all four control points are
	// collinear and the Bézier is the straight segment.
	c := Curve{DP(0, 0), DP(10, 100)}
	got := Smooth(c, 9)
	for _, p := range got {
		diff(t, p.Degree*10.0, p.Position, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestSmoothDegreeAxisMonotone(t *testing.T) {
	c := Curve{DP(0, 0), DP(8, 25), DP(16, 48), DP(30, 75), DP(46, 95), DP(50, 100)}
	got := Smooth(c, 16)
	for i := 0; i < len(got)-1; i++ {
		if got[i+1].Degree < got[i].Degree {
			t.Fatalf("degree axis not monotone at %d: %v then %v", i, got[i], got[i+1])
		}
	}
}

func TestSmoothShortCurves(t *testing.T) {
	diff(t, Curve{}, Smooth(Curve{}, 4), cmpopts.EquateEmpty())
	diff(t, Curve{DP(3, 7)}, Smooth(Curve{DP(3, 7)}, 4))
}

func TestCubicBezEval(t *testing.T) {
	// y = x^2 on [0, 1]
	b := cubicBez{
		DP(0, 0),
		DP(1.0/3.0, 0),
		DP(2.0/3.0, 1.0/3.0),
		DP(1, 1),
	}
	diff(t, DP(0, 0), b.Eval(0))
	diff(t, DP(1, 1), b.Eval(1))
	const n = 10
	for i := 0; i <= n; i++ {
		ts := float64(i) / n
		p := b.Eval(ts)
		if d := math.Abs(p.Position - p.Degree*p.Degree); d > 1e-12 {
			t.Errorf("at t=%g got %v, off the parabola by %g", ts, p, d)
		}
	}
}
