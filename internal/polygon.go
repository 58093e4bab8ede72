package internal

import (
	"math"

	"github.com/jbeda/geom"
	"github.com/pkg/errors"
)

// Axis aligned rectangle, wound counterclockwise starting at the lower left.
func RectanglePolygon(minX, minY, maxX, maxY float64) Polygon {
	return Polygon{Points: []Point{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}}
}

func RectPolygon(r geom.Rect) Polygon {
	return RectanglePolygon(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.Points))
	for i, vertex := range poly.Points {
		edges[i] = Segment{vertex, poly.Points[CircularIndex(i+1, len(poly.Points))]}
	}
	return edges
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.Cross(q)
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Mean of the vertices. For a convex polygon this is always interior, which is
// all the CCW sort needs.
func Centroid(points []Point) Point {
	var c Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(points))
	return Point{c.X / n, c.Y / n}
}

func BoundsOf(points []Point) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	first := geom.Coord{X: points[0].X, Y: points[0].Y}
	bounds := geom.Rect{Min: first, Max: first}
	for _, p := range points[1:] {
		bounds.ExpandToContainCoord(geom.Coord{X: p.X, Y: p.Y})
	}
	return bounds
}

func (poly Polygon) Bounds() geom.Rect {
	return BoundsOf(poly.Points)
}

// Is the point within eps of any edge?
func (poly Polygon) OnBoundary(p Point, eps float64) bool {
	for _, edge := range poly.Edges() {
		if edge.ContainsPoint(p, eps) {
			return true
		}
	}
	return false
}

// Even-odd point-in-polygon. Points on the boundary are never contained; the
// splitter deals with those through incidence tests so that nothing gets
// counted twice.
func (poly Polygon) ContainsPoint(p Point, eps float64) bool {
	if poly.OnBoundary(p, eps) {
		return false
	}
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. Counts edges crossing the
// horizontal ray running right from p.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, edge := range poly.Edges() {
		a, b := edge.Start, edge.End
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if p.X < x {
			crossingCount++
		}
	}
	return crossingCount
}

// Intersect a line with the polygon boundary. The line is first clipped to the
// bounding box, and the hits are then collected edge by edge, so they come
// back in boundary order. A convex polygon is crossed exactly twice; anything
// else is a degenerate cut.
func (poly Polygon) IntersectLine(line Line, eps float64) (Point, Point, error) {
	clip, ok := ClipLineToRect(line, poly.Bounds(), eps)
	if !ok {
		return Point{}, Point{}, errors.Wrapf(ErrDegenerateCut, "line %v misses polygon bounds", line)
	}

	var hits []Point
edgeLoop:
	for _, edge := range poly.Edges() {
		hit, ok := line.IntersectSegment(edge, eps)
		if !ok || !clip.boundsContain(hit, eps) {
			continue
		}
		// A line through a vertex hits both edges sharing it
		for _, existing := range hits {
			if existing.Equals(hit, eps) {
				continue edgeLoop
			}
		}
		hits = append(hits, hit)
	}

	if len(hits) != 2 {
		return Point{}, Point{}, errors.Wrapf(ErrDegenerateCut, "line %v crosses polygon boundary %d times", line, len(hits))
	}
	return hits[0], hits[1], nil
}

// Clip a line to a rectangle, returning the bounded segment inside it.
func ClipLineToRect(line Line, r geom.Rect, eps float64) (Segment, bool) {
	box := RectPolygon(r)
	var hits []Point
	for _, edge := range box.Edges() {
		hit, ok := line.IntersectSegment(edge, eps)
		if !ok {
			continue
		}
		duplicate := false
		for _, existing := range hits {
			if existing.Equals(hit, eps) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			hits = append(hits, hit)
		}
	}
	if len(hits) < 2 {
		return Segment{}, false
	}
	return Segment{hits[0], hits[1]}, true
}

// Is p on the segment, within eps?
func (s Segment) ContainsPoint(p Point, eps float64) bool {
	if !s.boundsContain(p, eps) {
		return false
	}
	d := s.End.Sub(s.Start)
	length := math.Sqrt(d.X*d.X + d.Y*d.Y)
	if length <= eps {
		return p.Equals(s.Start, eps)
	}
	// Distance from the supporting line
	return math.Abs(d.Cross(p.Sub(s.Start)))/length <= eps
}

func (s Segment) boundsContain(p Point, eps float64) bool {
	minX, maxX := math.Min(s.Start.X, s.End.X), math.Max(s.Start.X, s.End.X)
	minY, maxY := math.Min(s.Start.Y, s.End.Y), math.Max(s.Start.Y, s.End.Y)
	return p.X >= minX-eps && p.X <= maxX+eps && p.Y >= minY-eps && p.Y <= maxY+eps
}
