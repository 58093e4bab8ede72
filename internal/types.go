package internal

type Point struct {
	X float64
	Y float64
}

// Lines are kept in slope/intercept form. A vertical line has an infinite
// slope, and its Intercept holds the x coordinate it passes through, since it
// never crosses the y axis.
type Line struct {
	Slope     float64
	Intercept float64
}

type Segment struct {
	Start Point
	End   Point
}

// Polygons are convex, wind counterclockwise, and do not repeat the first
// vertex at the end.
type Polygon struct {
	Points []Point
}

// Colors are dense indexes into Colors. Every color owns its own slice, so
// splitting a set never aliases the parent's storage.
type ColorPointSet struct {
	Colors [][]Point
	Domain Polygon
}

type Region struct {
	Polygon Polygon
	Points  *ColorPointSet
	Level   int
	Index   int
}

// The chord is the part of the cut that lies inside the region being split.
// This, rather than the infinite line, is what gets drawn.
type CutRecord struct {
	Line   Line
	Chord  Segment
	Level  int
	Region int
}

type Interval struct {
	Left, Right float64
}

func (i Interval) Width() float64 {
	return i.Right - i.Left
}

func (i Interval) Mid() float64 {
	return i.Left + (i.Right-i.Left)/2
}

// Open interval membership
func (i Interval) ContainsStrictly(x float64) bool {
	return x > i.Left && x < i.Right
}
