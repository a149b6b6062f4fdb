package squircle

import (
	"iter"
	"math"
)

// Arc is a section of a circle.
//
// Angles are in radians, measured from the positive X axis towards positive
// Y, which is clockwise in the y-down space of outlines.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// Start returns the point where the arc begins.
func (a Arc) Start() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle).Mul(a.Radius))
}

// End returns the point where the arc ends.
func (a Arc) End() Point {
	return a.Center.Translate(VecFromAngle(a.StartAngle + a.SweepAngle).Mul(a.Radius))
}

// Cubics approximates the arc with cubic Béziers, continuing from the arc's
// start point. No MoveTo is emitted, and an arc with zero sweep yields nothing.
//
// The tolerance parameter bounds the distance between the arc and its
// approximation. A quarter circle needs a single cubic unless the radius is
// very large compared to the tolerance.
func (a Arc) Cubics(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if a.SweepAngle == 0 || a.Radius == 0 {
			return
		}
		scaledError := a.Radius / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle) * a.Radius
		angle0 := a.StartAngle
		p0 := VecFromAngle(angle0).Mul(a.Radius)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
			p3 := VecFromAngle(angle1).Mul(a.Radius)
			p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}
