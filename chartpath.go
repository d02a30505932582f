/*
Package chartpath generates smooth vector paths from sampled chart data.

The root package holds the abstract path model shared by all sub-packages:
a path is an ordered sequence of drawing commands (move, line, quadratic
and cubic Bezier curves, smooth cubic continuation, close), modelled as a
closed tagged variant. Sub-package interp converts point sequences into
such paths using four interpolation algorithms (uniform B-spline,
cardinal/Catmull-Rom, Fritsch-Carlson monotone, generic Hermite);
sub-package area builds clipped area-chart outlines.

Points and tangent vectors are arithm.Pair values, following the
conventions of github.com/npillmayer/arithm.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package chartpath

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'chartpath'
func tracer() tracing.Trace {
	return tracing.Select("chartpath")
}

// CommandKind discriminates the variants of a path Command.
type CommandKind int

const (
	// MoveToKind starts a new subpath at the target point.
	MoveToKind CommandKind = iota + 1
	// LineToKind draws a straight line to the target point.
	LineToKind
	// QuadToKind draws a quadratic Bezier with one control point.
	QuadToKind
	// CubicToKind draws a cubic Bezier with two control points.
	CubicToKind
	// SmoothCubicToKind draws a cubic Bezier whose first control point is
	// implied by continuity: it mirrors the previous segment's second
	// control point about the current point.
	SmoothCubicToKind
	// ClosePathKind closes the current subpath.
	ClosePathKind
)

// Command is one drawing command of an abstract path. The control point
// slots in use depend on Kind: QuadToKind stores its single control point
// in C1, SmoothCubicToKind stores its explicit (second) control point in
// C2, CubicToKind uses both. To is the target point for every kind except
// ClosePathKind.
type Command struct {
	Kind CommandKind
	C1   arithm.Pair
	C2   arithm.Pair
	To   arithm.Pair
}

// MoveTo starts a new subpath at p.
func MoveTo(p arithm.Pair) Command {
	return Command{Kind: MoveToKind, To: p}
}

// LineTo draws a straight line to p.
func LineTo(p arithm.Pair) Command {
	return Command{Kind: LineToKind, To: p}
}

// QuadTo draws a quadratic Bezier with control point c, ending at p.
func QuadTo(c, p arithm.Pair) Command {
	return Command{Kind: QuadToKind, C1: c, To: p}
}

// CubicTo draws a cubic Bezier with control points c1 and c2, ending at p.
func CubicTo(c1, c2, p arithm.Pair) Command {
	return Command{Kind: CubicToKind, C1: c1, C2: c2, To: p}
}

// SmoothCubicTo draws a cubic Bezier whose first control point is implied
// by continuity with the previous segment, with explicit second control
// point c2, ending at p.
func SmoothCubicTo(c2, p arithm.Pair) Command {
	return Command{Kind: SmoothCubicToKind, C2: c2, To: p}
}

// ClosePath closes the current subpath.
func ClosePath() Command {
	return Command{Kind: ClosePathKind}
}

func (c Command) String() string {
	switch c.Kind {
	case MoveToKind:
		return "MoveTo" + c.To.String()
	case LineToKind:
		return "LineTo" + c.To.String()
	case QuadToKind:
		return "QuadTo[" + c.C1.String() + " -> " + c.To.String() + "]"
	case CubicToKind:
		return "CubicTo[" + c.C1.String() + " and " + c.C2.String() + " -> " + c.To.String() + "]"
	case SmoothCubicToKind:
		return "SmoothCubicTo[and " + c.C2.String() + " -> " + c.To.String() + "]"
	case ClosePathKind:
		return "ClosePath"
	}
	return "InvalidCommand"
}

// IsValid checks kind and coordinates: commands containing NaN or Inf
// coordinates in an occupied slot are invalid.
func (c Command) IsValid() bool {
	valid := func(p arithm.Pair) bool {
		x, y := p.F()
		return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
	}
	switch c.Kind {
	case MoveToKind, LineToKind:
		return valid(c.To)
	case QuadToKind:
		return valid(c.C1) && valid(c.To)
	case CubicToKind:
		return valid(c.C1) && valid(c.C2) && valid(c.To)
	case SmoothCubicToKind:
		return valid(c.C2) && valid(c.To)
	case ClosePathKind:
		return true
	}
	return false
}

// Transform returns the command with all occupied point slots mapped
// through the affine transform m.
func (c Command) Transform(m arithm.AT) Command {
	switch c.Kind {
	case MoveToKind:
		return MoveTo(m.Transform(c.To))
	case LineToKind:
		return LineTo(m.Transform(c.To))
	case QuadToKind:
		return QuadTo(m.Transform(c.C1), m.Transform(c.To))
	case CubicToKind:
		return CubicTo(m.Transform(c.C1), m.Transform(c.C2), m.Transform(c.To))
	case SmoothCubicToKind:
		return SmoothCubicTo(m.Transform(c.C2), m.Transform(c.To))
	case ClosePathKind:
		return ClosePath()
	}
	return Command{}
}

// Path is an ordered sequence of drawing commands. Curve generators in
// sub-package interp produce either one continuous Path (without a
// leading MoveTo, so paths may be concatenated after an external move) or
// a slice of small standalone Paths, one per curve segment.
type Path []Command

// IsEmpty is true for paths without commands. Generators signal
// nothing-to-draw with an empty path rather than an error.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Transform returns a new path with every command transformed by m.
// The receiver is unchanged.
func (p Path) Transform(m arithm.AT) Path {
	q := make(Path, len(p))
	for i, c := range p {
		q[i] = c.Transform(m)
	}
	return q
}

// SVG serializes the path into the SVG path mini-language. Coordinates
// are emitted with full floating-point precision and concatenated with
// commas, without any rounding.
//
// Example, one quadratic and one smooth cubic command:
//
//	Q0.5,1,1,1S2.5,0,3,1
func (p Path) SVG() string {
	var b strings.Builder
	for _, c := range p {
		if !c.IsValid() {
			tracer().Errorf("dropping invalid path command %v", c)
			continue
		}
		switch c.Kind {
		case MoveToKind:
			b.WriteByte('M')
			writePair(&b, c.To)
		case LineToKind:
			b.WriteByte('L')
			writePair(&b, c.To)
		case QuadToKind:
			b.WriteByte('Q')
			writePair(&b, c.C1)
			b.WriteByte(',')
			writePair(&b, c.To)
		case CubicToKind:
			b.WriteByte('C')
			writePair(&b, c.C1)
			b.WriteByte(',')
			writePair(&b, c.C2)
			b.WriteByte(',')
			writePair(&b, c.To)
		case SmoothCubicToKind:
			b.WriteByte('S')
			writePair(&b, c.C2)
			b.WriteByte(',')
			writePair(&b, c.To)
		case ClosePathKind:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePair(b *strings.Builder, p arithm.Pair) {
	b.WriteString(strconv.FormatFloat(p.X(), 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(p.Y(), 'g', -1, 64))
}
