package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func samples4() Points {
	return Samples([]arithm.Pair{
		arithm.P(0, 0), arithm.P(1, 1), arithm.P(2, 1), arithm.P(3, 5),
	})
}

func TestSamplesFullExtent(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := samples4()
	if ps.N() != 4 {
		t.Fatalf("expected 4 points, got %d", ps.N())
	}
	if !ps.Z(2).Equal(arithm.P(2, 1)) {
		t.Errorf("expected Z(2) = (2,1), got %v", ps.Z(2))
	}
}

func TestSliceWindow(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := samples4().Slice(1, 2)
	if ps.N() != 2 {
		t.Fatalf("expected window of 2, got %d", ps.N())
	}
	if !ps.Z(0).Equal(arithm.P(1, 1)) {
		t.Errorf("expected Z(0) = (1,1), got %v", ps.Z(0))
	}
}

func TestSliceClamps(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ps := samples4().Slice(-3, 99)
	if ps.N() != 4 {
		t.Fatalf("expected clamped window of 4, got %d", ps.N())
	}
	if samples4().Slice(3, 1).N() != 0 {
		t.Errorf("expected inverted range to collapse to an empty window")
	}
}

func TestValidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if err := samples4().Validate(); err != nil {
		t.Fatalf("expected valid window, got %v", err)
	}
	err := samples4().Slice(0, 1).Validate()
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("expected ErrTooFewPoints, got %v", err)
	}
	err = Samples([]arithm.Pair{
		arithm.P(0, 0), arithm.Pair(complex(math.NaN(), 1)), arithm.P(2, 2),
	}).Validate()
	if !errors.Is(err, ErrInvalidPoint) {
		t.Errorf("expected ErrInvalidPoint, got %v", err)
	}
	err = Samples([]arithm.Pair{
		arithm.P(0, 0), arithm.P(1, 1), arithm.P(1, 1), arithm.P(2, 0),
	}).Validate()
	if !errors.Is(err, ErrDegenerateSpan) {
		t.Errorf("expected ErrDegenerateSpan, got %v", err)
	}
}

// Every driver signals nothing-to-draw for windows of fewer than 3 points.
func TestDriversEmptyForShortWindows(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 0; n <= 2; n++ {
		ps := samples4().Slice(0, n-1)
		if !BasisSpline(ps).IsEmpty() || BasisSplineSegments(ps) != nil {
			t.Errorf("expected empty basis results for %d points", n)
		}
		if !Cardinal(ps, 0).IsEmpty() || CardinalSegments(ps, 0) != nil {
			t.Errorf("expected empty cardinal results for %d points", n)
		}
		if !Monotone(ps).IsEmpty() || MonotoneSegments(ps) != nil {
			t.Errorf("expected empty monotone results for %d points", n)
		}
		tangents := make([]arithm.Pair, n)
		if !Hermite(ps, tangents).IsEmpty() || HermiteSegments(ps, tangents) != nil {
			t.Errorf("expected empty hermite results for %d points", n)
		}
	}
}
