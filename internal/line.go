package internal

import (
	"math"

	"github.com/pkg/errors"
)

func NewLine(slope, intercept float64) Line {
	return Line{Slope: slope, Intercept: intercept}
}

func VerticalLine(x float64) Line {
	return Line{Slope: math.Inf(1), Intercept: x}
}

func LineFromPointSlope(p Point, slope float64) Line {
	if math.IsInf(slope, 0) {
		return VerticalLine(p.X)
	}
	return Line{Slope: slope, Intercept: p.Y - slope*p.X}
}

// The line through two points. Points sharing an x value produce a vertical
// line.
func LineThrough(p, q Point) Line {
	if p.X == q.X {
		return VerticalLine(p.X)
	}
	slope := (q.Y - p.Y) / (q.X - p.X)
	return LineFromPointSlope(p, slope)
}

func (l Line) IsVertical() bool {
	return math.IsInf(l.Slope, 0)
}

// Evaluate the line at x. Vertical lines have no single value, so this returns
// NaN for them.
func (l Line) At(x float64) float64 {
	if l.IsVertical() {
		return math.NaN()
	}
	return l.Slope*x + l.Intercept
}

func (l Line) IsParallelTo(other Line, eps float64) bool {
	if l.IsVertical() || other.IsVertical() {
		return l.IsVertical() && other.IsVertical()
	}
	return EqualWithin(l.Slope, other.Slope, eps)
}

// Signed vertical offset of p from the line: positive above, negative below.
// For a vertical line, positive means right of it.
func (l Line) Offset(p Point) float64 {
	if l.IsVertical() {
		return p.X - l.Intercept
	}
	return p.Y - l.At(p.X)
}

// Signed perpendicular distance of p from the line, with the sign of Offset.
// Rounding in the vertical offset grows with the slope, so tolerance tests use
// this instead.
func (l Line) Distance(p Point) float64 {
	if l.IsVertical() {
		return l.Offset(p)
	}
	return l.Offset(p) / math.Hypot(1, l.Slope)
}

func PointOnLine(p Point, l Line, eps float64) bool {
	return math.Abs(l.Distance(p)) <= eps
}

// Which side of the line p is on: 1 above (or right of a vertical line), -1
// below, 0 on it.
func (l Line) Side(p Point, eps float64) int {
	return sign(l.Distance(p), eps)
}

// Intersect two lines analytically. Parallel lines (including coincident ones)
// fail with ErrParallelLines.
func IntersectLines(a, b Line, eps float64) (Point, error) {
	if a.IsParallelTo(b, eps) {
		return Point{}, errors.Wrapf(ErrParallelLines, "lines %v and %v do not intersect", a, b)
	}
	if a.IsVertical() {
		return Point{a.Intercept, b.At(a.Intercept)}, nil
	}
	if b.IsVertical() {
		return Point{b.Intercept, a.At(b.Intercept)}, nil
	}
	x := (b.Intercept - a.Intercept) / (a.Slope - b.Slope)
	return Point{x, a.At(x)}, nil
}

// Intersect a line with a bounded segment, endpoints included.
func (l Line) IntersectSegment(s Segment, eps float64) (Point, bool) {
	startOffset := l.Distance(s.Start)
	endOffset := l.Distance(s.End)
	startSign := sign(startOffset, eps)
	endSign := sign(endOffset, eps)
	switch {
	case startSign == 0:
		return s.Start, true
	case endSign == 0:
		return s.End, true
	case startSign == endSign:
		return Point{}, false
	}
	t := startOffset / (startOffset - endOffset)
	return Point{
		X: s.Start.X + t*(s.End.X-s.Start.X),
		Y: s.Start.Y + t*(s.End.Y-s.Start.Y),
	}, true
}

func (s Segment) Line() Line {
	return LineThrough(s.Start, s.End)
}

func (s Segment) Length() float64 {
	return math.Sqrt(s.Start.DistanceSquared(s.End))
}
