package interp

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/chartpath"
)

// Slope guards. Horizontal runs below flatRunEps count as vertical and
// force the secant slope to 0; tangent slopes below minSlope are left
// alone by the overshoot clamp to avoid division blow-up.
const (
	flatRunEps = 1e-12
	minSlope   = 1e-5
)

// MonotoneTangents derives one tangent vector per point of the window,
// adjusted after Fritsch & Carlson so that cubic Hermite interpolation
// through them never overshoots a monotonic run of the data. It returns
// n tangents for n points, nil for fewer than 2 points.
func MonotoneTangents(ps Points) []arithm.Pair {
	n := ps.N()
	if n < 2 {
		return nil
	}
	d := make([]float64, n-1) // secant slopes
	m := make([]float64, n)   // tangent slopes
	dx := make([]float64, n)  // horizontal tangent extents

	for k := 0; k < n-1; k++ {
		run := ps.Z(k+1).X() - ps.Z(k).X()
		if math.Abs(run) <= flatRunEps {
			d[k] = 0
		} else {
			d[k] = (ps.Z(k+1).Y() - ps.Z(k).Y()) / run
		}
	}

	// initialize tangent slopes as secant averages, extents as local
	// point spacing
	m[0] = d[0]
	dx[0] = ps.Z(1).X() - ps.Z(0).X()
	for k := 1; k < n-1; k++ {
		m[k] = (d[k-1] + d[k]) / 2
		dx[k] = (ps.Z(k+1).X() - ps.Z(k-1).X()) / 2
	}
	m[n-1] = d[n-2]
	dx[n-1] = ps.Z(n-1).X() - ps.Z(n-2).X()

	// flat segments must stay flat, never bulge
	for k := 0; k < n-1; k++ {
		if d[k] == 0 {
			m[k] = 0
			m[k+1] = 0
		}
	}

	// Fritsch-Carlson: where the tangent pair around a secant leaves the
	// circle a^2+b^2 <= 9, pull it back onto the circle. 3 is the bound
	// for monotone cubic Hermite segments.
	for k := 0; k < n-1; k++ {
		if math.Abs(m[k]) < minSlope || math.Abs(m[k+1]) < minSlope {
			continue
		}
		a := m[k] / d[k]
		b := m[k+1] / d[k]
		s := a*a + b*b
		if s > 9 {
			t := 3 / math.Sqrt(s)
			tracer().Debugf("clamping tangent pair at %d by %.4g", k, t)
			m[k] = t * a * d[k]
			m[k+1] = t * b * d[k]
		}
	}

	// convert slope+extent into derivative vectors at Hermite scale; the
	// /3 matches cubic Bezier control point placement
	tangents := make([]arithm.Pair, n)
	for i := 0; i < n; i++ {
		norm := 1 + m[i]*m[i]
		tangents[i] = arithm.P(dx[i]/3/norm, m[i]*dx[i]/3/norm)
	}
	return tangents
}

// Monotone interpolates the window's points with monotonicity-preserving
// cubic Hermite segments, as one continuous path. Fewer than 3 points
// yield an empty path.
func Monotone(ps Points) chartpath.Path {
	if ps.N() <= 2 {
		return nil
	}
	return Hermite(ps, MonotoneTangents(ps))
}

// MonotoneSegments interpolates like Monotone, but returns one standalone
// fragment per curve segment.
func MonotoneSegments(ps Points) []chartpath.Path {
	if ps.N() <= 2 {
		return nil
	}
	return HermiteSegments(ps, MonotoneTangents(ps))
}
