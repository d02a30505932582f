package interp

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/chartpath"
)

// hermiteShape gates a point/tangent combination and reports whether the
// boundary segments are quadratic. Valid combinations are t == n (every
// point carries a tangent) and t == n-2 (interior points only; the
// endpoints get quadratic boundary segments).
func hermiteShape(n, t int) (quad, ok bool) {
	if n <= 2 || t < 1 || (t != n && t != n-2) {
		return false, false
	}
	return t != n, true
}

// Hermite builds one continuous path through the window's points from
// explicit tangent vectors. Tangents are derivative vectors: direction
// and magnitude both enter the cubic control points p+tangent and
// p-tangent. With n-2 tangents the outermost segments are emitted as
// quadratics, with the control point derived from the nearest tangent
// scaled by 2/3. A mismatched tangent count yields an empty path, not an
// error.
func Hermite(ps Points, tangents []arithm.Pair) chartpath.Path {
	n, t := ps.N(), len(tangents)
	quad, ok := hermiteShape(n, t)
	if !ok {
		return nil
	}
	path := make(chartpath.Path, 0, n-1)
	off := 0
	if quad {
		off = 1
		p := ps.Z(1)
		path = append(path, chartpath.QuadTo(p-scaled(tangents[0], 2./3), p))
	}
	// interior transitions between tangent-bearing points: the first one
	// as a full cubic, later ones as smooth continuations sharing the
	// previous exit tangent
	for j := 1; j < t; j++ {
		p0 := ps.Z(j - 1 + off)
		p1 := ps.Z(j + off)
		c2 := p1 - tangents[j]
		if j == 1 {
			path = append(path, chartpath.CubicTo(p0+tangents[j-1], c2, p1))
		} else {
			path = append(path, chartpath.SmoothCubicTo(c2, p1))
		}
	}
	if quad {
		p := ps.Z(n - 2)
		path = append(path, chartpath.QuadTo(p+scaled(tangents[t-1], 2./3), ps.Z(n-1)))
	}
	return path
}

// HermiteSegments builds the same curve as Hermite, but packages every
// transition as a standalone [move, curve] fragment. Fragments cannot
// rely on smooth continuation, so interior transitions are always full
// cubics. It returns n-1 fragments, or nil for malformed input.
func HermiteSegments(ps Points, tangents []arithm.Pair) []chartpath.Path {
	n, t := ps.N(), len(tangents)
	quad, ok := hermiteShape(n, t)
	if !ok {
		return nil
	}
	frags := make([]chartpath.Path, 0, n-1)
	off := 0
	if quad {
		off = 1
		p0, p := ps.Z(0), ps.Z(1)
		frags = append(frags, chartpath.Path{
			chartpath.MoveTo(p0),
			chartpath.QuadTo(p-scaled(tangents[0], 2./3), p),
		})
	}
	for j := 1; j < t; j++ {
		p0 := ps.Z(j - 1 + off)
		p1 := ps.Z(j + off)
		frags = append(frags, chartpath.Path{
			chartpath.MoveTo(p0),
			chartpath.CubicTo(p0+tangents[j-1], p1-tangents[j], p1),
		})
	}
	if quad {
		p := ps.Z(n - 2)
		frags = append(frags, chartpath.Path{
			chartpath.MoveTo(p),
			chartpath.QuadTo(p+scaled(tangents[t-1], 2./3), ps.Z(n-1)),
		})
	}
	return frags
}
