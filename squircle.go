package squircle

import (
	"context"
	"log/slog"
	"math"
)

// Params describes a squircle outline.
//
// The zero value of an optional corner radius (nil) means "use Radius".
type Params struct {
	Width  float64
	Height float64

	// Radius is the radius of every corner that has no radius of its own.
	Radius float64

	TopLeftRadius     *float64
	TopRightRadius    *float64
	BottomRightRadius *float64
	BottomLeftRadius  *float64

	// CornerSmoothing is in [0, 1]. 0 draws circular corners, larger values
	// spread each corner's curvature over a longer stretch of its edges.
	CornerSmoothing float64

	// PreserveSmoothing keeps CornerSmoothing in effect for corners that had
	// to be shrunk to fit the rectangle. By default their smoothing is
	// reduced instead.
	PreserveSmoothing bool
}

// Float returns a pointer to v, for use with the optional fields of [Params].
func Float(v float64) *float64 { return &v }

// Key is the fully resolved, comparable form of [Params]. Two Params that
// resolve to equal Keys describe the same outline, which makes Key suitable
// as a cache key.
type Key struct {
	Rect              RectSpec
	CornerSmoothing   float64
	PreserveSmoothing bool
}

// Resolve validates p, fills in per-corner radii from Radius and clamps
// out-of-range values: negative radii become 0 and CornerSmoothing is
// clamped to [0, 1]. Non-finite values are rejected with a
// [*ParameterError].
func (p Params) Resolve() (Key, error) {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	orDefault := func(v *float64) float64 {
		if v == nil {
			return p.Radius
		}
		return *v
	}

	radii := RoundedRectRadii{
		TopLeft:     orDefault(p.TopLeftRadius),
		TopRight:    orDefault(p.TopRightRadius),
		BottomRight: orDefault(p.BottomRightRadius),
		BottomLeft:  orDefault(p.BottomLeftRadius),
	}
	if radii.IsNaN() || radii.IsInf() ||
		!finite(p.Width) || !finite(p.Height) || !finite(p.Radius) || !finite(p.CornerSmoothing) {
		// Report the first offending field.
		for _, v := range []struct {
			name  string
			value float64
		}{
			{"width", p.Width},
			{"height", p.Height},
			{"radius", p.Radius},
			{"topLeftRadius", radii.TopLeft},
			{"topRightRadius", radii.TopRight},
			{"bottomRightRadius", radii.BottomRight},
			{"bottomLeftRadius", radii.BottomLeft},
			{"cornerSmoothing", p.CornerSmoothing},
		} {
			if !finite(v.value) {
				return Key{}, &ParameterError{Name: v.name, Value: v.value}
			}
		}
	}

	smoothing := min(max(p.CornerSmoothing, 0), 1)
	nonNeg := radii.NonNegative()
	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		if smoothing != p.CornerSmoothing {
			log.Debug("squircle: corner smoothing clamped", "requested", p.CornerSmoothing, "smoothing", smoothing)
		}
		if nonNeg != radii {
			log.Debug("squircle: negative radii clamped to zero", "radii", radii)
		}
	}

	return Key{
		Rect: RectSpec{
			Width:  p.Width,
			Height: p.Height,
			Radii:  nonNeg,
		},
		CornerSmoothing:   smoothing,
		PreserveSmoothing: p.PreserveSmoothing,
	}, nil
}

// Corners returns the geometry of the four corners.
//
// When all radii are equal, every corner gets half the shorter side as its
// budget. Otherwise the budgets come from [Distribute].
func (k Key) Corners() (tl, tr, br, bl CornerPathParams) {
	build := func(nc NormalizedCorner) CornerPathParams {
		return NewCornerPathParams(CornerParams{
			Radius:            nc.Radius,
			Budget:            nc.Budget,
			Smoothing:         k.CornerSmoothing,
			PreserveSmoothing: k.PreserveSmoothing,
		})
	}

	if k.Rect.Radii.IsUniform() {
		budget := min(k.Rect.Width, k.Rect.Height) / 2
		cp := build(NormalizedCorner{
			Radius: k.Rect.Radii.Clamp(budget).TopLeft,
			Budget: budget,
		})
		return cp, cp, cp, cp
	}

	nc := Distribute(k.Rect)
	return build(nc.TopLeft), build(nc.TopRight), build(nc.BottomRight), build(nc.BottomLeft)
}

// Path builds the closed outline described by k.
//
// The outline starts on the top edge where the top left corner ends and runs
// clockwise: top edge, top right corner, right edge, and so on, ending with
// the top left corner and a ClosePath. Lines of zero length are left out. An
// outline whose width or height is not positive is empty.
func (k Key) Path() BezPath {
	w, h := k.Rect.Width, k.Rect.Height
	if !(w > 0 && h > 0) {
		return nil
	}
	tl, tr, br, bl := k.Corners()

	start := Pt(tl.P, 0)
	path := BezPath{MoveTo(start)}
	lineTo := func(pt Point) {
		if cur, _ := path.CurrentPoint(); cur != pt {
			path.LineTo(pt)
		}
	}

	placements := [...]struct {
		corner CornerPathParams
		vertex Vec2
		// entry is the point where the corner's curve begins.
		entry Point
	}{
		{tr, Vec(w, 0), Pt(w-tr.P, 0)},
		{br, Vec(w, h), Pt(w, h-br.P)},
		{bl, Vec(0, h), Pt(bl.P, h)},
		{tl, Vec(0, 0), Pt(0, tl.P)},
	}
	for i, pl := range placements {
		lineTo(pl.entry)
		aff := QuarterTurn(i).ThenTranslate(pl.vertex)
		for el := range Transform(pl.corner.Path().Elements(), aff) {
			path.Push(el)
		}
	}

	// The closing segment draws whatever line would lead back to the start.
	if last := path[len(path)-1]; last.Kind == LineToKind && last.P0 == start {
		path = path[:len(path)-1]
	}
	path.ClosePath()
	return path
}

// NewPath resolves p and builds its outline. See [Key.Path].
func NewPath(p Params) (BezPath, error) {
	k, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	return k.Path(), nil
}

// SVGPath returns the outline described by p as SVG path data with
// [DefaultPrecision] fractional digits. The result can be used as the d
// attribute of an SVG path or inside a CSS path() function.
//
// Identical parameters always produce identical strings.
func SVGPath(p Params) (string, error) {
	path, err := NewPath(p)
	if err != nil {
		return "", err
	}
	return path.SVG(SVGOptions{MaxPrecision: DefaultPrecision}), nil
}
