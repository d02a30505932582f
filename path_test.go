package chartpath

import (
	"fmt"
	"math"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCommandKinds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		cmd  Command
		kind CommandKind
	}{
		{MoveTo(arithm.P(1, 2)), MoveToKind},
		{LineTo(arithm.P(1, 2)), LineToKind},
		{QuadTo(arithm.P(0, 0), arithm.P(1, 2)), QuadToKind},
		{CubicTo(arithm.P(0, 0), arithm.P(1, 1), arithm.P(1, 2)), CubicToKind},
		{SmoothCubicTo(arithm.P(1, 1), arithm.P(1, 2)), SmoothCubicToKind},
		{ClosePath(), ClosePathKind},
	}
	for _, c := range cases {
		if c.cmd.Kind != c.kind {
			t.Errorf("expected kind %d for %v", c.kind, c.cmd)
		}
	}
}

func TestSVGSerialization(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Path{
		MoveTo(arithm.P(1, 2)),
		CubicTo(arithm.P(3, 4), arithm.P(5, 6), arithm.P(7, 8)),
		SmoothCubicTo(arithm.P(9, 10), arithm.P(11, 12)),
		QuadTo(arithm.P(0.5, 1), arithm.P(1, 1)),
		LineTo(arithm.P(2, 2)),
		ClosePath(),
	}
	want := "M1,2C3,4,5,6,7,8S9,10,11,12Q0.5,1,1,1L2,2Z"
	if got := path.SVG(); got != want {
		t.Fatalf("SVG mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestSVGFullPrecision(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Path{MoveTo(arithm.P(1.0/3.0, 0))}
	want := "M0.3333333333333333,0"
	if got := path.SVG(); got != want {
		t.Fatalf("SVG mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestSVGDropsInvalidCommands(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Path{
		MoveTo(arithm.P(1, 1)),
		Command{Kind: LineToKind, To: arithm.Pair(complex(math.NaN(), 0))},
		LineTo(arithm.P(2, 2)),
	}
	if got, want := path.SVG(), "M1,1L2,2"; got != want {
		t.Fatalf("SVG mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := Path{
		MoveTo(arithm.P(0, 0)),
		QuadTo(arithm.P(1, 1), arithm.P(2, 0)),
	}
	shifted := path.Transform(arithm.Translation(arithm.P(10, 5)))
	if !shifted[0].To.Equal(arithm.P(10, 5)) {
		t.Errorf("expected moveto target (10,5), got %v", shifted[0].To)
	}
	if !shifted[1].C1.Equal(arithm.P(11, 6)) || !shifted[1].To.Equal(arithm.P(12, 5)) {
		t.Errorf("unexpected transformed quad: %v", shifted[1])
	}
	// the receiver is unchanged
	if !path[0].To.IsOrigin() {
		t.Errorf("transform mutated its receiver")
	}
}

func TestEmptyPath(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var path Path
	if !path.IsEmpty() {
		t.Fail()
	}
	if path.SVG() != "" {
		t.Fail()
	}
}

func ExamplePath_SVG() {
	path := Path{
		MoveTo(arithm.P(0, 0)),
		QuadTo(arithm.P(0.5, 1), arithm.P(1, 1)),
		SmoothCubicTo(arithm.P(2.5, 0), arithm.P(3, 1)),
	}
	fmt.Println(path.SVG())
	// Output:
	// M0,0Q0.5,1,1,1S2.5,0,3,1
}
