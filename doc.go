// Package squircle computes the outlines of rectangles whose corners are
// rounded with continuous-curvature curves, commonly called squircles, as
// opposed to the circular arcs of ordinary rounded rectangles.
//
// The result is a closed path of straight lines and cubic Béziers that can be
// serialized as SVG path data (see [SVGPath]) and used directly as the d
// attribute of an SVG path or as a CSS clip-path: path(…) value.
//
// # Corner smoothing
//
// A circular corner joins a straight edge with an abrupt jump in curvature.
// With a corner smoothing s > 0 each corner instead consists of a shorter
// circular arc flanked by two cubic Béziers that blend the arc into the
// edges. The corner then occupies (1+s)·R of each edge, where R is the
// corner's radius. At s = 0 the corner is a quarter circle; at s = 1 the
// circular section disappears entirely.
//
// # Budgets
//
// Corners compete for the edges they share. [Distribute] assigns every corner
// a budget, the length of each adjacent edge its curve may use, such that the
// budgets of two corners sharing an edge never add up to more than the edge's
// length. Radii larger than their budget are reduced. When all four radii are
// equal, every corner simply gets half of the shorter side.
//
// If a smoothed corner does not fit its budget, it either gives up some of
// its smoothing (the default) or, with [Params.PreserveSmoothing], keeps its
// smoothing and compresses its transition curves.
//
// # Paths
//
// [BezPath] represents outlines as a slice of [PathElement] values, akin to
// the drawing commands of graphics APIs: [MoveTo], [LineTo], [CubicTo] and
// [ClosePath]. Outlines are built in a y-down coordinate space with the origin
// at the rectangle's top left corner and run clockwise.
//
// All functions in this package are pure. They keep no state between calls
// and are safe for concurrent use. Memoization of computed outlines is left to
// callers; see the pathcache package.
package squircle
