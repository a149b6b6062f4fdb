package squircle

import (
	"fmt"
	"math"
	"testing"
)

func TestCornerPathParamsSharp(t *testing.T) {
	for _, cp := range []CornerParams{
		{Radius: 0, Budget: 10, Smoothing: 0.6},
		{Radius: -5, Budget: 10, Smoothing: 0.6},
		{Radius: 5, Budget: 0, Smoothing: 0.6, PreserveSmoothing: true},
	} {
		got := NewCornerPathParams(cp)
		diff(t, CornerPathParams{}, got)
		if !got.IsSharp() {
			t.Errorf("%+v: corner is not sharp", cp)
		}
		if p := got.Path(); len(p) != 0 {
			t.Errorf("%+v: got %v, want empty path", cp, p)
		}
	}
}

func TestCornerPathParamsCircular(t *testing.T) {
	got := NewCornerPathParams(CornerParams{Radius: 20, Budget: 50})
	want := CornerPathParams{
		P:                20,
		ArcSectionLength: 20,
		ArcMeasure:       math.Pi / 2,
		Radius:           20,
	}
	diff(t, want, got, approx)

	p := got.Path()
	if len(p) != 1 {
		t.Fatalf("got %d elements, want a single arc: %v", len(p), p)
	}
	const k = 0.5522847498307936 * 20
	diff(t, CubicTo(Pt(-20+k, 0), Pt(0, 20-k), Pt(0, 20)), p[0], pointComparer)
}

func TestCornerPathParamsFullSmoothing(t *testing.T) {
	got := NewCornerPathParams(CornerParams{Radius: 10, Budget: 50, Smoothing: 1})
	if got.ArcMeasure != 0 || got.ArcSectionLength != 0 {
		t.Errorf("got arc %v / %v, want none", got.ArcMeasure, got.ArcSectionLength)
	}
	if !near(got.P, 20) {
		t.Errorf("got P = %v, want 20", got.P)
	}
	if p := got.Path(); len(p) != 2 {
		t.Errorf("got %d elements, want two transition curves", len(p))
	}
}

func TestCornerPathParamsSmoothingClamped(t *testing.T) {
	diff(t,
		NewCornerPathParams(CornerParams{Radius: 10, Budget: 50, Smoothing: 1}),
		NewCornerPathParams(CornerParams{Radius: 10, Budget: 50, Smoothing: 3}))
	diff(t,
		NewCornerPathParams(CornerParams{Radius: 10, Budget: 50, Smoothing: 0}),
		NewCornerPathParams(CornerParams{Radius: 10, Budget: 50, Smoothing: -1}))
}

func TestCornerPathParamsRadiusCappedByBudget(t *testing.T) {
	diff(t,
		NewCornerPathParams(CornerParams{Radius: 15, Budget: 15, Smoothing: 0.5}),
		NewCornerPathParams(CornerParams{Radius: 40, Budget: 15, Smoothing: 0.5}))
}

func TestCornerPathParamsReducedSmoothing(t *testing.T) {
	// (1+0.6)·20 = 32 does not fit into 30. The smoothing drops to 0.5.
	got := NewCornerPathParams(CornerParams{Radius: 20, Budget: 30, Smoothing: 0.6})
	want := NewCornerPathParams(CornerParams{Radius: 20, Budget: 100, Smoothing: 0.5})
	diff(t, want, got, approx)
	if !near(got.P, 30) {
		t.Errorf("got P = %v, want 30", got.P)
	}
}

func TestCornerPathParamsPreservedSmoothing(t *testing.T) {
	got := NewCornerPathParams(CornerParams{Radius: 20, Budget: 30, Smoothing: 0.6, PreserveSmoothing: true})
	roomy := NewCornerPathParams(CornerParams{Radius: 20, Budget: 100, Smoothing: 0.6, PreserveSmoothing: true})

	if got.P != 30 {
		t.Errorf("got P = %v, want 30", got.P)
	}
	// The arc and the control points next to it are unaffected; only the
	// outer control points move closer to the vertex.
	diff(t, roomy.ArcMeasure, got.ArcMeasure, approx)
	diff(t, roomy.C, got.C, approx)
	diff(t, roomy.D, got.D, approx)
	if got.A+got.B >= roomy.A+roomy.B {
		t.Errorf("outer control points not compressed: %v >= %v", got.A+got.B, roomy.A+roomy.B)
	}
}

func TestCornerPathParamsInvariants(t *testing.T) {
	const eps = 1e-9
	for _, r := range []float64{0.5, 3, 20, 75} {
		for _, budgetFactor := range []float64{1, 1.2, 1.5, 2, 4} {
			for s := 0.0; s <= 1; s += 0.1 {
				for _, preserve := range []bool{false, true} {
					in := CornerParams{Radius: r, Budget: r * budgetFactor, Smoothing: s, PreserveSmoothing: preserve}
					name := fmt.Sprintf("%+v", in)
					cp := NewCornerPathParams(in)

					if cp.P > in.Budget+eps {
						t.Fatalf("%s: P = %v exceeds budget", name, cp.P)
					}
					if sum := cp.A + cp.B + cp.C + cp.D + cp.ArcSectionLength; math.Abs(sum-cp.P) > eps*r {
						t.Fatalf("%s: pieces add up to %v, want P = %v", name, sum, cp.P)
					}
					// Offsets grow monotonically from the edge towards the vertex.
					offsets := []float64{0, cp.A, cp.A + cp.B, cp.A + cp.B + cp.C, cp.P}
					for i := 1; i < len(offsets); i++ {
						if offsets[i] < offsets[i-1]-eps {
							t.Fatalf("%s: offsets not monotonic: %v", name, offsets)
						}
					}
					checkCornerPath(t, name, cp)
				}
			}
		}
	}
}

// checkCornerPath verifies that a corner leaves the incoming edge and joins
// the outgoing edge tangentially and stays within the corner's square.
func checkCornerPath(t *testing.T, name string, cp CornerPathParams) {
	t.Helper()
	const eps = 1e-9
	p := cp.Path()
	if len(p) == 0 {
		t.Fatalf("%s: empty corner", name)
	}
	first, last := p[0], p[len(p)-1]
	if math.Abs(first.P0.Y) > eps*cp.Radius {
		t.Errorf("%s: first control point %s is off the incoming edge", name, first.P0)
	}
	if math.Abs(last.P1.X) > eps*cp.Radius {
		t.Errorf("%s: last control point %s is off the outgoing edge", name, last.P1)
	}
	if last.P2 != Pt(0, cp.P) {
		t.Errorf("%s: corner ends at %s, want (0, %v)", name, last.P2, cp.P)
	}
	box := p.ControlBox()
	if box.X0 < -cp.P-eps || box.X1 > eps || box.Y0 < -eps || box.Y1 > cp.P+eps {
		t.Errorf("%s: control box %v leaves the corner square", name, box)
	}
	for i := 1; i < len(p); i++ {
		if p[i].P0 == p[i-1].P2 && p[i].P1 == p[i-1].P2 {
			t.Errorf("%s: element %d is degenerate", name, i)
		}
	}
}
