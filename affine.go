package squircle

import (
	"iter"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// QuarterTurn creates a rotation by n quarter turns about the origin.
//
// A positive n rotates the positive X direction into positive Y, which is
// clockwise in the y-down space of outlines. Unlike a rotation computed with
// sines and cosines, the coefficients are exactly 0 and ±1, so transformed
// coordinates carry no rounding noise.
func QuarterTurn(n int) Affine {
	switch ((n % 4) + 4) % 4 {
	case 1:
		return Affine{0, 1, -1, 0, 0, 0}
	case 2:
		return Affine{-1, 0, 0, -1, 0, 0}
	case 3:
		return Affine{0, -1, 1, 0, 0, 0}
	default:
		return Identity
	}
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				break
			}
		}
	}
}
