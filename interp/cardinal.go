package interp

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/chartpath"
)

// DefaultTension is a conventional tension for cardinal splines in
// charts. Tension 0 gives the loosest curve (full Catmull-Rom tangents),
// tension 1 degenerates to straight segments.
const DefaultTension = 0.7

// CardinalTangents derives tangent vectors for the window's interior
// points from their neighbors, scaled by tension: tangent i is
// (1-tension)/2 * (p[i+1] - p[i-1]), the classical Catmull-Rom rule.
// It returns n-2 tangents for n points, nil for fewer than 3 points.
func CardinalTangents(ps Points, tension float64) []arithm.Pair {
	n := ps.N()
	if n <= 2 {
		return nil
	}
	a := (1 - tension) / 2
	tangents := make([]arithm.Pair, 0, n-2)
	for i := 1; i < n-1; i++ {
		tangents = append(tangents, scaled(ps.Z(i+1)-ps.Z(i-1), a))
	}
	return tangents
}

// Cardinal interpolates the window's points with a cardinal spline of the
// given tension, as one continuous path. The boundary segments are
// quadratic (the endpoints carry no tangents). Fewer than 3 points yield
// an empty path.
func Cardinal(ps Points, tension float64) chartpath.Path {
	if ps.N() <= 2 {
		return nil
	}
	return Hermite(ps, CardinalTangents(ps, tension))
}

// CardinalSegments interpolates like Cardinal, but returns one standalone
// fragment per curve segment.
func CardinalSegments(ps Points, tension float64) []chartpath.Path {
	if ps.N() <= 2 {
		return nil
	}
	return HermiteSegments(ps, CardinalTangents(ps, tension))
}
