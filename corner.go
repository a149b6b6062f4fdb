package squircle

import (
	"math"
)

// ArcTolerance is the maximum distance between a corner's circular section
// and the cubic Béziers that approximate it.
const ArcTolerance = 0.1

// epsilon is the length, relative to a corner's radius, below which a
// transition curve counts as absent.
const epsilon = 1e-9

// CornerParams are the inputs for shaping a single corner.
type CornerParams struct {
	Radius float64
	// Budget is the corner's share of each adjacent edge, as computed by
	// [Distribute].
	Budget float64
	// Smoothing is in [0, 1]. 0 produces a circular arc, 1 the flattest
	// continuous-curvature transition.
	Smoothing float64
	// PreserveSmoothing keeps Smoothing intact when the budget is too small
	// for the smoothed corner and compresses the transition curves instead.
	// Otherwise smoothing is reduced until the corner fits.
	PreserveSmoothing bool
}

// CornerPathParams describes the geometry of one corner, measured from the
// corner's vertex along its edges.
//
// Starting on the incoming edge at distance P from the vertex, the corner is
// drawn as a cubic Bézier with control points A and A+B along the edge that
// ends A+B+C along the edge and D off it, followed by a circular arc of
// Radius spanning ArcMeasure radians that advances ArcSectionLength along
// both edges, followed by the mirror image of the first cubic that ends on
// the outgoing edge at distance P.
type CornerPathParams struct {
	A, B, C, D       float64
	P                float64
	ArcSectionLength float64
	ArcMeasure       float64
	Radius           float64
}

// IsSharp reports whether the corner is a plain vertex.
func (cp CornerPathParams) IsSharp() bool {
	return cp.Radius == 0
}

// NewCornerPathParams derives the geometry of a corner.
//
// With smoothing s the corner occupies p = (1+s)·R of each edge. The circular
// section shrinks from a quarter circle at s = 0 to a single point at s = 1,
// and the Bézier curves on either side blend it into the straight edges so
// that curvature changes continuously.
//
// Out of range inputs are clamped: negative radii and budgets count as zero,
// Smoothing is clamped to [0, 1], and Radius is capped by Budget.
func NewCornerPathParams(cp CornerParams) CornerPathParams {
	budget := max(cp.Budget, 0)
	radius := min(max(cp.Radius, 0), budget)
	smoothing := min(max(cp.Smoothing, 0), 1)
	if radius == 0 || math.IsNaN(radius) {
		return CornerPathParams{}
	}

	p := (1 + smoothing) * radius

	// When p exceeds the budget, either the smoothing is limited until the
	// corner fits, or the smoothing is kept and the control points are
	// pulled in further down.
	if !cp.PreserveSmoothing {
		smoothing = max(min(smoothing, budget/radius-1), 0)
		p = min(p, budget)
	}

	arcMeasure := math.Pi / 2 * (1 - smoothing)
	arcSectionLength := math.Sin(arcMeasure/2) * radius * math.Sqrt2

	// Distance between the two control points adjacent to the arc.
	angleAlpha := (math.Pi/2 - arcMeasure) / 2
	p3ToP4Distance := radius * math.Tan(angleAlpha/2)

	angleBeta := math.Pi / 4 * smoothing
	c := p3ToP4Distance * math.Cos(angleBeta)
	d := c * math.Tan(angleBeta)

	b := (p - arcSectionLength - c - d) / 3
	a := 2 * b

	if cp.PreserveSmoothing && p > budget {
		p1ToP3MaxDistance := budget - d - arcSectionLength - c

		// Keep some distance between the first two control points.
		minA := p1ToP3MaxDistance / 6
		maxB := p1ToP3MaxDistance - minA

		b = min(b, maxB)
		a = p1ToP3MaxDistance - b
		p = budget
	}

	// Without smoothing the transition curves vanish, but rounding can leave
	// them a tiny negative length.
	a, b = max(a, 0), max(b, 0)

	return CornerPathParams{
		A:                a,
		B:                b,
		C:                c,
		D:                d,
		P:                p,
		ArcSectionLength: arcSectionLength,
		ArcMeasure:       arcMeasure,
		Radius:           radius,
	}
}

// Path returns the corner in its canonical frame: a top right corner with its
// vertex at the origin, entered from (−P, 0) along the positive X axis and
// left at (0, P) along the positive Y axis. The start point itself is not
// part of the returned path. Sharp corners return an empty path.
//
// Pieces of zero length are omitted, so a corner without smoothing is a
// single circular arc and a fully smoothed corner has no arc at all.
func (cp CornerPathParams) Path() BezPath {
	if cp.IsSharp() {
		return nil
	}

	// The second half of the corner is the first half reflected across the
	// bisector. Reflecting instead of accumulating offsets puts the outgoing
	// control points exactly on the edge.
	reflect := func(pt Point) Point {
		// 0 - v avoids producing negative zeros.
		return Pt(0-pt.Y, 0-pt.X)
	}

	lead := cp.A + cp.B + cp.C
	hasLead := lead > epsilon*cp.Radius || cp.D > epsilon*cp.Radius
	start := Pt(-cp.P, 0)
	c1 := Pt(-cp.P+cp.A, 0)
	c2 := Pt(-cp.P+cp.A+cp.B, 0)
	arcStart := Pt(-cp.P+lead, cp.D)
	if !hasLead {
		arcStart = start
	}
	arcEnd := reflect(arcStart)

	var path BezPath
	if hasLead {
		path.CubicTo(c1, c2, arcStart)
	}

	// The arc is centered on the corner's bisector, which points from the
	// circle's center towards the vertex at −π/4.
	startAngle := -math.Pi/4 - cp.ArcMeasure/2
	arc := Arc{
		Center:     arcStart.Translate(VecFromAngle(startAngle).Mul(-cp.Radius)),
		Radius:     cp.Radius,
		StartAngle: startAngle,
		SweepAngle: cp.ArcMeasure,
	}
	n := len(path)
	for el := range arc.Cubics(ArcTolerance) {
		path.Push(el)
	}
	if len(path) > n {
		path[len(path)-1].P2 = arcEnd
	}

	if hasLead {
		path.CubicTo(reflect(c2), reflect(c1), reflect(start))
	}
	return path
}
