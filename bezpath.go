package squircle

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one drawing command of an outline.
//
// MoveTo and LineTo use P0 as their target. CubicTo uses P0 and P1 as
// control points and P2 as its target. ClosePath uses no points.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is an outline stored as a slice of path elements.
type BezPath []PathElement

// Transform returns a copy of p with every element transformed by aff.
func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// Push appends a path element.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// CurrentPoint returns the end point of the last element that has one, or
// false if the path has none.
func (p BezPath) CurrentPoint() (Point, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if pt, ok := p[i].EndPoint(); ok {
			return pt, true
		}
	}
	return Point{}, false
}

// Count returns the number of elements of the given kind.
func (p BezPath) Count(kind PathElementKind) int {
	n := 0
	for _, el := range p {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

func (p BezPath) IsInf() bool {
	for _, el := range p {
		if el.IsInf() {
			return true
		}
	}
	return false
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}

// ControlBox returns a rectangle that conservatively encloses the path.
//
// It uses control points directly rather than computing tight bounds for curve
// elements. For outlines built by this package the control points never leave
// the rectangle, so the control box equals [BezPath.BoundingBox].
func (p BezPath) ControlBox() Rect {
	first := true
	var cbox Rect
	addPt := func(pt Point) {
		if first {
			first = false
			cbox = NewRectFromPoints(pt, pt)
		} else {
			cbox = cbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			addPt(el.P0)
		case CubicToKind:
			addPt(el.P0)
			addPt(el.P1)
			addPt(el.P2)
		case ClosePathKind:
		}
	}

	return cbox
}

// BoundingBox returns the smallest rectangle that encloses the path.
func (p BezPath) BoundingBox() Rect {
	first := true
	var bbox Rect
	add := func(r Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.UnionPoint(Pt(r.X0, r.Y0)).UnionPoint(Pt(r.X1, r.Y1))
		}
	}
	var cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(NewRectFromPoints(el.P0, el.P0))
			cur = el.P0
		case CubicToKind:
			add(CubicBez{cur, el.P0, el.P1, el.P2}.BoundingBox())
			cur = el.P2
		case ClosePathKind:
		}
	}
	return bbox
}

// Area returns the signed area enclosed by the path. Open subpaths are
// treated as if they were closed.
//
// The area is positive for outlines that run clockwise in the y-down space of
// outlines, such as those built by [NewPath].
func (p BezPath) Area() float64 {
	var area float64
	var start, cur Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			area += lineSignedArea(cur, start)
			start, cur = el.P0, el.P0
		case LineToKind:
			area += lineSignedArea(cur, el.P0)
			cur = el.P0
		case CubicToKind:
			area += CubicBez{cur, el.P0, el.P1, el.P2}.SignedArea()
			cur = el.P2
		case ClosePathKind:
			area += lineSignedArea(cur, start)
			cur = start
		}
	}
	return area + lineSignedArea(cur, start)
}

// SVG converts the path to an SVG path string representation.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
