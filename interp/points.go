package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'interp'
func tracer() tracing.Trace {
	return tracing.Select("interp")
}

var (
	// ErrTooFewPoints indicates a window with fewer points than a curve needs.
	ErrTooFewPoints = errors.New("point window has too few points")
	// ErrInvalidPoint indicates a point coordinate containing NaN/Inf.
	ErrInvalidPoint = errors.New("point window has invalid coordinate")
	// ErrDegenerateSpan indicates two consecutive points collapsing to one.
	ErrDegenerateSpan = errors.New("point window has degenerate span")
)

// Points is a read-only window onto a caller-supplied sequence of sample
// points. A window never copies or mutates the underlying slice; drivers
// only read points by index within the window.
type Points struct {
	pts  []arithm.Pair
	from int
	to   int
}

// Samples wraps a point slice into a window spanning its full extent.
func Samples(pts []arithm.Pair) Points {
	return Points{pts: pts, from: 0, to: len(pts) - 1}
}

// Slice narrows the window to the inclusive index range [from,to], given
// in coordinates of the underlying slice. The range is clamped to the
// slice; an inverted range yields an empty window.
func (ps Points) Slice(from, to int) Points {
	if from < 0 {
		from = 0
	}
	if to > len(ps.pts)-1 {
		to = len(ps.pts) - 1
	}
	if from > to {
		return Points{pts: ps.pts, from: 0, to: -1}
	}
	return Points{pts: ps.pts, from: from, to: to}
}

// N is the number of points in the window.
func (ps Points) N() int {
	if ps.to < ps.from {
		return 0
	}
	return ps.to - ps.from + 1
}

// Z returns point i of the window, i being relative to the window start.
func (ps Points) Z(i int) arithm.Pair {
	return ps.pts[ps.from+i]
}

// Validate checks whether the window holds enough well-formed geometry for
// curve generation. The drivers themselves never call it: they degrade to
// empty results. Validate is for callers that want to know why.
func (ps Points) Validate() error {
	n := ps.N()
	if n < 3 {
		return fmt.Errorf("%w: curve needs at least 3 points, got %d", ErrTooFewPoints, n)
	}
	for i := 0; i < n; i++ {
		x, y := ps.Z(i).F()
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return fmt.Errorf("%w at point %d", ErrInvalidPoint, i)
		}
	}
	for i := 0; i < n-1; i++ {
		if ps.Z(i).Equal(ps.Z(i + 1)) {
			return fmt.Errorf("%w between points %d and %d", ErrDegenerateSpan, i, i+1)
		}
	}
	return nil
}

// scaled multiplies a pair by a scalar, without arithm's epsilon-zapping.
// Tangent vectors may legitimately be tiny.
func scaled(v arithm.Pair, f float64) arithm.Pair {
	return arithm.P(v.X()*f, v.Y()*f)
}
