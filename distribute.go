package squircle

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
)

// Corner identifies one corner of a rectangle. The order of the constants is
// the order in which corners with equal radii are allocated.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "topLeft"
	case TopRight:
		return "topRight"
	case BottomLeft:
		return "bottomLeft"
	case BottomRight:
		return "bottomRight"
	default:
		return "invalidCorner"
	}
}

// Side identifies one edge of a rectangle.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "invalidSide"
	}
}

// RectSpec is a rectangle with fully resolved corner radii.
type RectSpec struct {
	Width  float64
	Height float64
	Radii  RoundedRectRadii
}

func (r RectSpec) sideLength(s Side) float64 {
	if s == Top || s == Bottom {
		return r.Width
	}
	return r.Height
}

func (r RectSpec) radius(c Corner) float64 {
	switch c {
	case TopLeft:
		return r.Radii.TopLeft
	case TopRight:
		return r.Radii.TopRight
	case BottomLeft:
		return r.Radii.BottomLeft
	default:
		return r.Radii.BottomRight
	}
}

// NormalizedCorner is the allocation made for a single corner.
type NormalizedCorner struct {
	// Radius is the radius the corner is drawn with. It never exceeds the
	// requested radius or Budget.
	Radius float64
	// Budget is the maximum distance from the vertex, along either adjacent
	// edge, that the corner's curve may occupy.
	Budget float64
}

type NormalizedCorners struct {
	TopLeft     NormalizedCorner
	TopRight    NormalizedCorner
	BottomLeft  NormalizedCorner
	BottomRight NormalizedCorner
}

// Corner returns the allocation of corner c.
func (nc NormalizedCorners) Corner(c Corner) NormalizedCorner {
	switch c {
	case TopLeft:
		return nc.TopLeft
	case TopRight:
		return nc.TopRight
	case BottomLeft:
		return nc.BottomLeft
	default:
		return nc.BottomRight
	}
}

type adjacent struct {
	side   Side
	corner Corner
}

var adjacentsByCorner = [4][2]adjacent{
	TopLeft:     {{Top, TopRight}, {Left, BottomLeft}},
	TopRight:    {{Top, TopLeft}, {Right, BottomRight}},
	BottomLeft:  {{Bottom, BottomRight}, {Left, TopLeft}},
	BottomRight: {{Bottom, BottomLeft}, {Right, TopRight}},
}

// Distribute computes each corner's final radius and budget so that the
// curves of two corners sharing an edge never overlap.
//
// Corners are visited from the largest requested radius to the smallest. A
// corner whose neighbor along an edge has not been visited yet claims a share
// of that edge proportional to its radius. A neighbor that has already been
// visited leaves only the part of the edge it did not claim. The tighter of a
// corner's two edges becomes its budget, and its radius is capped by it.
//
// Radii must be non-negative; oversized radii are reduced, never rejected.
func Distribute(r RectSpec) NormalizedCorners {
	radii := [4]float64{
		TopLeft:     r.radius(TopLeft),
		TopRight:    r.radius(TopRight),
		BottomLeft:  r.radius(BottomLeft),
		BottomRight: r.radius(BottomRight),
	}
	var budgets [4]float64
	var assigned [4]bool

	order := []Corner{TopLeft, TopRight, BottomLeft, BottomRight}
	// Let the bigger corners choose first.
	slices.SortStableFunc(order, func(a, b Corner) int {
		return cmp.Compare(radii[b], radii[a])
	})

	log := Logger()
	for _, corner := range order {
		radius := radii[corner]
		budget := math.Inf(1)
		for _, adj := range adjacentsByCorner[corner] {
			budget = min(budget, sideBudget(r, radius, radii, budgets, assigned, adj))
		}

		budgets[corner] = budget
		assigned[corner] = true
		radii[corner] = min(radius, budget)

		if radius > budget && log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("squircle: corner radius reduced",
				"corner", corner,
				"requested", radius,
				"radius", radii[corner],
				"budget", budget)
		}
	}

	corner := func(c Corner) NormalizedCorner {
		return NormalizedCorner{Radius: radii[c], Budget: budgets[c]}
	}
	return NormalizedCorners{
		TopLeft:     corner(TopLeft),
		TopRight:    corner(TopRight),
		BottomLeft:  corner(BottomLeft),
		BottomRight: corner(BottomRight),
	}
}

// sideBudget returns how much of the edge shared with adj a corner of the
// given radius may use.
func sideBudget(r RectSpec, radius float64, radii, budgets [4]float64, assigned [4]bool, adj adjacent) float64 {
	adjRadius := radii[adj.corner]
	if radius == 0 && adjRadius == 0 {
		return 0
	}
	length := r.sideLength(adj.side)
	if assigned[adj.corner] {
		return length - budgets[adj.corner]
	}
	return radius / (radius + adjRadius) * length
}
