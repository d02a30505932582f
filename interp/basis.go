package interp

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/chartpath"
)

// Change-of-basis matrix from uniform cubic B-spline control points to
// Bezier form. Row 0 is the Bezier start point, rows 1 and 2 the control
// points, row 3 the end point. Every row is an affine combination: its
// coefficients sum to 1.
var basisMatrix = [4][4]float64{
	{1. / 6, 2. / 3, 1. / 6, 0},
	{0, 2. / 3, 1. / 3, 0},
	{0, 1. / 3, 2. / 3, 0},
	{0, 1. / 6, 2. / 3, 1. / 6},
}

// window is the 4-slot sliding window over a (padded) control point
// sequence. Windows are small values, reassigned per step.
type window struct {
	p0, p1, p2, p3 arithm.Pair
}

func (w window) shift(p arithm.Pair) window {
	return window{w.p1, w.p2, w.p3, p}
}

// weight forms the affine combination of the window's points given by one
// row of the basis matrix, x and y independently.
func (w window) weight(row int) arithm.Pair {
	c := basisMatrix[row]
	x := c[0]*w.p0.X() + c[1]*w.p1.X() + c[2]*w.p2.X() + c[3]*w.p3.X()
	y := c[0]*w.p0.Y() + c[1]*w.p1.Y() + c[2]*w.p2.Y() + c[3]*w.p3.Y()
	return arithm.P(x, y)
}

// convert maps the window to one cubic Bezier continuation command.
func (w window) convert() chartpath.Command {
	return chartpath.CubicTo(w.weight(1), w.weight(2), w.weight(3))
}

// segment maps the window to a standalone two-command fragment, keeping
// the segment's identity for per-segment styling.
func (w window) segment() chartpath.Path {
	return chartpath.Path{chartpath.MoveTo(w.weight(0)), w.convert()}
}

// BasisSpline interpolates the window's points with a uniform cubic
// B-spline and returns it as one continuous path of cubic commands. The
// first and last points are duplicated twice, so the curve touches both
// endpoints. Fewer than 3 points yield an empty path.
func BasisSpline(ps Points) chartpath.Path {
	n := ps.N()
	if n <= 2 {
		return nil
	}
	w := window{ps.Z(0), ps.Z(0), ps.Z(0), ps.Z(1)}
	path := make(chartpath.Path, 0, n+1)
	path = append(path, w.convert())
	for i := 2; i < n; i++ {
		w = w.shift(ps.Z(i))
		path = append(path, w.convert())
	}
	// run the window past the end so the curve reaches the last point
	last := ps.Z(n - 1)
	w = w.shift(last)
	path = append(path, w.convert())
	w = w.shift(last)
	path = append(path, w.convert())
	return path
}

// BasisSplineSegments interpolates like BasisSpline, but returns one
// standalone fragment per data gap, n-1 fragments for n points. The two
// leading windows share the first fragment and the two trailing windows
// the last one: a lone window built purely from duplicated endpoints
// would be a visually zero-extent fragment. Fewer than 3 points yield a
// nil slice.
func BasisSplineSegments(ps Points) []chartpath.Path {
	n := ps.N()
	if n <= 2 {
		return nil
	}
	frags := make([]chartpath.Path, 0, n-1)
	w := window{ps.Z(0), ps.Z(0), ps.Z(0), ps.Z(1)}
	first := w.segment()
	w = w.shift(ps.Z(2))
	first = append(first, w.convert())
	frags = append(frags, first)
	for i := 3; i < n; i++ {
		w = w.shift(ps.Z(i))
		frags = append(frags, w.segment())
	}
	last := ps.Z(n - 1)
	w = w.shift(last)
	final := w.segment()
	w = w.shift(last)
	final = append(final, w.convert())
	frags = append(frags, final)
	return frags
}
