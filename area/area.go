// Package area builds closed outlines for area charts: the region between
// a sampled series and a horizontal baseline, optionally clipped to the
// plot viewport. Clipping uses polygon boolean operations from
// github.com/akavel/polyclip-go.
/*
# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package area

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/chartpath"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is a flat-sided outline, open while being built and closed by
// Cycle. Polygons are value types; builder calls return modified copies.
type Polygon struct {
	knots []arithm.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by Knot calls and
// finished by Cycle:
//
//	pg := NullPolygon().Knot(arithm.P(0, 0)).Knot(arithm.P(1, 3)).Knot(arithm.P(3, 0)).Cycle()
func NullPolygon() Polygon {
	return Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg Polygon) Knot(p arithm.Pair) Polygon {
	pg.knots = append(pg.knots[:len(pg.knots):len(pg.knots)], p)
	return pg
}

// Cycle closes the outline. Part of builder functionality.
func (pg Polygon) Cycle() Polygon {
	pg.cycle = true
	return pg
}

// N is the number of corner points.
func (pg Polygon) N() int {
	return len(pg.knots)
}

// Z returns corner point i.
func (pg Polygon) Z(i int) arithm.Pair {
	return pg.knots[i]
}

// IsCycle is a predicate: is the outline closed?
func (pg Polygon) IsCycle() bool {
	return pg.cycle
}

// Box creates a closed axis-aligned rectangle from two opposite corners,
// typically the plot viewport.
func Box(nw, se arithm.Pair) Polygon {
	return NullPolygon().
		Knot(nw).
		Knot(arithm.P(se.X(), nw.Y())).
		Knot(se).
		Knot(arithm.P(nw.X(), se.Y())).
		Cycle()
}

// Under builds the closed outline of the region between a sample sequence
// and the horizontal baseline y: the samples in order, then down to the
// baseline under the last sample and back under the first. Fewer than 2
// samples yield an empty polygon.
func Under(samples []arithm.Pair, baseline float64) Polygon {
	if len(samples) < 2 {
		return Polygon{}
	}
	pg := NullPolygon()
	for _, p := range samples {
		pg = pg.Knot(p)
	}
	pg = pg.Knot(arithm.P(samples[len(samples)-1].X(), baseline))
	pg = pg.Knot(arithm.P(samples[0].X(), baseline))
	return pg.Cycle()
}

// Clip intersects the outline with a closed clip polygon, usually a
// viewport Box. The result may consist of several disjoint outlines, one
// per contour of the intersection. Open or empty operands yield nil.
func (pg Polygon) Clip(clip Polygon) []Polygon {
	if !pg.IsCycle() || !clip.IsCycle() || pg.N() < 3 || clip.N() < 3 {
		tracer().Errorf("polygon clipping needs two closed outlines")
		return nil
	}
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{clip.contour()}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	tracer().Debugf("clip yields %d contour(s)", len(result))
	clipped := make([]Polygon, 0, len(result))
	for _, contour := range result {
		clipped = append(clipped, fromContour(contour))
	}
	return clipped
}

// Path emits the outline as an abstract path: a move, straight lines to
// every further corner, and a close when the outline is cyclic.
func (pg Polygon) Path() chartpath.Path {
	if pg.N() == 0 {
		return nil
	}
	path := make(chartpath.Path, 0, pg.N()+1)
	path = append(path, chartpath.MoveTo(pg.Z(0)))
	for i := 1; i < pg.N(); i++ {
		path = append(path, chartpath.LineTo(pg.Z(i)))
	}
	if pg.IsCycle() {
		path = append(path, chartpath.ClosePath())
	}
	return path
}

func (pg Polygon) contour() polyclip.Contour {
	contour := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.knots {
		contour = append(contour, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return contour
}

func fromContour(contour polyclip.Contour) Polygon {
	pg := NullPolygon()
	for _, p := range contour {
		pg = pg.Knot(arithm.P(p.X, p.Y))
	}
	return pg.Cycle()
}

// AsString returns the outline in MetaPost-like notation, for debugging:
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg Polygon) string {
	var s string
	for i := 0; i < pg.N(); i++ {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", pg.Z(i))
	}
	if pg.IsCycle() {
		s += " -- cycle"
	}
	return s
}
