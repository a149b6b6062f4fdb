package squircle

import (
	"math"
	"testing"
)

func TestQuarterTurn(t *testing.T) {
	p := Pt(3, 4)
	diff(t, p, p.Transform(QuarterTurn(0)))
	diff(t, Pt(-4, 3), p.Transform(QuarterTurn(1)))
	diff(t, Pt(-3, -4), p.Transform(QuarterTurn(2)))
	diff(t, Pt(4, -3), p.Transform(QuarterTurn(3)))
	diff(t, p.Transform(QuarterTurn(3)), p.Transform(QuarterTurn(-1)))
	diff(t, p, p.Transform(QuarterTurn(4)))
}

func TestAffineThenTranslate(t *testing.T) {
	aff := QuarterTurn(1).ThenTranslate(Vec(10, 20))
	diff(t, Pt(6, 23), Pt(3, 4).Transform(aff))
	diff(t, Affine{0, 1, -1, 0, 10, 20}, aff)
}

func TestArcQuarterCircle(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 10, StartAngle: 0, SweepAngle: 1.5707963267948966}
	var els BezPath
	for el := range a.Cubics(0.1) {
		els.Push(el)
	}
	if len(els) != 1 {
		t.Fatalf("got %d cubics, want 1", len(els))
	}
	const k = 5.522847498307936
	diff(t, CubicTo(Pt(10, k), Pt(k, 10), Pt(0, 10)), els[0], pointComparer)
	diff(t, a.End(), els[0].P2, pointComparer)
	diff(t, Pt(10, 0), a.Start(), pointComparer)
}

func TestArcZeroSweep(t *testing.T) {
	a := Arc{Center: Pt(5, 5), Radius: 10, StartAngle: 1}
	for el := range a.Cubics(0.1) {
		t.Errorf("unexpected element %s", el)
	}
}

func TestArcSubdividesLargeRadii(t *testing.T) {
	a := Arc{Radius: 1e6, SweepAngle: 1.5707963267948966}
	n := 0
	for el := range a.Cubics(0.1) {
		n++
		if d := el.P2.Distance(a.Center); !near(d/a.Radius, 1) {
			t.Errorf("end point %s is not on the circle", el.P2)
		}
	}
	if n < 2 {
		t.Errorf("got %d cubics, want at least 2", n)
	}
}

func TestControlBox(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(5, 5))
	p.CubicTo(Pt(-1, 2), Pt(7, 12), Pt(3, 3))
	p.LineTo(Pt(4, -2))
	p.ClosePath()
	diff(t, Rect{-1, -2, 7, 12}, p.ControlBox())
	if w, h := p.ControlBox().Width(), p.ControlBox().Height(); w != 8 || h != 14 {
		t.Errorf("got size %vx%v, want 8x14", w, h)
	}
}

func TestCurrentPoint(t *testing.T) {
	var p BezPath
	if _, ok := p.CurrentPoint(); ok {
		t.Error("empty path has a current point")
	}
	p.MoveTo(Pt(1, 2))
	p.CubicTo(Pt(3, 4), Pt(5, 6), Pt(7, 8))
	p.ClosePath()
	if pt, ok := p.CurrentPoint(); !ok || pt != Pt(7, 8) {
		t.Errorf("got %s, %v, want (7, 8), true", pt, ok)
	}
}

func TestRadii(t *testing.T) {
	r := RoundedRectRadii{TopLeft: -1, TopRight: 5, BottomRight: 50, BottomLeft: 0}
	diff(t, RoundedRectRadii{0, 5, 50, 0}, r.NonNegative())
	diff(t, RoundedRectRadii{-1, 5, 10, 0}, r.Clamp(10))
	if r.IsUniform() {
		t.Error("mixed radii reported as uniform")
	}
	if !UniformRadii(3).IsUniform() {
		t.Error("uniform radii not reported as uniform")
	}
	if r.IsNaN() || r.IsInf() {
		t.Error("finite radii reported as non-finite")
	}
	if !(RoundedRectRadii{BottomLeft: math.NaN()}).IsNaN() {
		t.Error("NaN radius not detected")
	}
	if !(RoundedRectRadii{TopRight: math.Inf(-1)}).IsInf() {
		t.Error("infinite radius not detected")
	}
}

func TestCubicBoundingBox(t *testing.T) {
	// A symmetric arch whose top is at t = 0.5.
	c := CubicBez{Pt(0, 0), Pt(0, 4), Pt(10, 4), Pt(10, 0)}
	ex, n := c.Extrema()
	if n != 1 || !near(ex[0], 0.5) {
		t.Fatalf("got extrema %v, want [0.5]", ex[:n])
	}
	diff(t, Rect{0, 0, 10, 3}, c.BoundingBox(), approx)
	diff(t, Pt(5, 3), c.Eval(0.5), pointComparer)
}

func TestCubicSignedArea(t *testing.T) {
	const k = 0.5522847498307936
	quarter := CubicBez{Pt(1, 0), Pt(1, k), Pt(k, 1), Pt(0, 1)}
	var total float64
	for i := range 4 {
		total += quarter.Transform(QuarterTurn(i)).SignedArea()
	}
	if math.Abs(total-math.Pi) > 2e-3 {
		t.Errorf("got area %v, want about π", total)
	}
}

func TestBezPathArea(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(100, 0))
	p.LineTo(Pt(100, 60))
	p.LineTo(Pt(0, 60))
	p.ClosePath()
	if a := p.Area(); a != 6000 {
		t.Errorf("got area %v, want 6000", a)
	}
	if a := p.Transform(Affine{1, 0, 0, -1, 0, 0}).Area(); a != -6000 {
		t.Errorf("mirrored outline: got area %v, want -6000", a)
	}

	// Open subpaths are closed implicitly.
	diff(t, p.Area(), p[:4].Area())
}

func TestSolveQuadratic(t *testing.T) {
	roots, n := SolveQuadratic(-6, 1, 1)
	diff(t, []float64{-3, 2}, roots[:n], approx)

	roots, n = SolveQuadratic(-4, 2, 0)
	diff(t, []float64{2}, roots[:n], approx)

	if _, n := SolveQuadratic(1, 0, 1); n != 0 {
		t.Errorf("got %d roots for x² + 1, want none", n)
	}
}
