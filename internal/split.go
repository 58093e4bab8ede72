package internal

import (
	"github.com/pkg/errors"
)

type SplitResult struct {
	Chord Segment
	// Children on either side of the cut
	Below, Above *Region
	// Points of each color found on the cut, indexed by color
	OnCut [][]Point
	// How many on-cut points were copied into both children
	Reinjected int
}

// Split a convex polygon along the chord between two of its boundary points.
// The chord points are merged into the vertex cycle, the cycle is re-sorted,
// and the two arcs between the chord points become the children. Both children
// keep both chord points.
func SplitPolygon(poly Polygon, i1, i2 Point, eps float64) (Polygon, Polygon) {
	points := append([]Point{}, poly.Points...)
	points = appendDistinct(points, i1, eps)
	points = appendDistinct(points, i2, eps)
	sorted := SortCCW(points)

	idx1 := indexOfPoint(sorted, i1, eps)
	idx2 := indexOfPoint(sorted, i2, eps)
	if idx1 < 0 || idx2 < 0 {
		fatalf("chord point missing from vertex cycle: %v, %v", i1, i2)
	}
	if idx1 == idx2 {
		fatalWrapf(ErrDegenerateCut, "chord endpoints coincide at %v", i1)
	}
	if idx1 > idx2 {
		idx1, idx2 = idx2, idx1
	}

	first := append(append([]Point{}, sorted[:idx1+1]...), sorted[idx2:]...)
	second := append([]Point{}, sorted[idx1:idx2+1]...)
	if len(first) < 3 || len(second) < 3 {
		fatalWrapf(ErrDegenerateCut, "chord %v-%v runs along the boundary", i1, i2)
	}
	return Polygon{SortCCW(first)}, Polygon{SortCCW(second)}
}

func appendDistinct(points []Point, p Point, eps float64) []Point {
	if indexOfPoint(points, p, eps) >= 0 {
		return points
	}
	return append(points, p)
}

func indexOfPoint(points []Point, p Point, eps float64) int {
	for i, q := range points {
		if q.Equals(p, eps) {
			return i
		}
	}
	return -1
}

// Which side of the line the polygon lies on, judged by its centroid. Chord
// vertices sit on the line only up to rounding, which on steep lines can
// exceed eps, so no single vertex can be trusted.
func polygonSide(poly Polygon, line Line, eps float64) int {
	return line.Side(Centroid(poly.Points), eps)
}

// Split a region along a cut, dividing its points between the children.
// Points on the cut are classified first, so the containment tests never see
// them. The parent region is left untouched. Children are indexed by their
// position in the full binary tree: 2i below and 2i+1 above.
func SplitRegion(region *Region, cut Line, opts Options) (split *SplitResult, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			split = nil
			err = recoveredErr
		}
	}()
	eps := opts.Epsilon
	i1, i2, err := region.Polygon.IntersectLine(cut, eps)
	if err != nil {
		return nil, err
	}
	first, second := SplitPolygon(region.Polygon, i1, i2, eps)
	belowPoly, abovePoly := first, second
	switch {
	case polygonSide(first, cut, eps) > 0 && polygonSide(second, cut, eps) < 0:
		belowPoly, abovePoly = second, first
	case polygonSide(first, cut, eps) < 0 && polygonSide(second, cut, eps) > 0:
	default:
		return nil, errors.Wrapf(ErrDegenerateCut, "cut %v does not separate %s", cut, region.DbgName())
	}

	parent := region.Points
	split = &SplitResult{
		Chord: Segment{i1, i2},
		OnCut: make([][]Point, len(parent.Colors)),
	}
	belowSet := &ColorPointSet{Colors: make([][]Point, len(parent.Colors)), Domain: belowPoly}
	aboveSet := &ColorPointSet{Colors: make([][]Point, len(parent.Colors)), Domain: abovePoly}

	for color, points := range parent.Colors {
		var below, above, onCut []Point
		for _, p := range points {
			switch {
			case PointOnLine(p, cut, eps):
				onCut = append(onCut, p)
			case belowPoly.ContainsPoint(p, eps):
				below = append(below, p)
			case abovePoly.ContainsPoint(p, eps):
				above = append(above, p)
			case region.Polygon.OnBoundary(p, eps):
				// On the parent's outer boundary, so on the boundary of one child as
				// well. The cut decides which.
				if cut.Side(p, eps) < 0 {
					below = append(below, p)
				} else {
					above = append(above, p)
				}
			default:
				return nil, errors.Wrapf(ErrPointOutsideRegion, "color %d point %v is outside %s", color, p, region.DbgName())
			}
		}

		if len(below) != len(above) {
			return nil, errors.Wrapf(ErrParityViolation, "color %d: %d below the cut but %d above",
				color, len(below), len(above))
		}

		if opts.OnCut == ReinjectOnCut && len(onCut) == 1 && len(below)%2 == 0 {
			below = append(below, onCut[0])
			above = append(above, onCut[0])
			split.Reinjected++
		}

		split.OnCut[color] = onCut
		belowSet.Colors[color] = below
		aboveSet.Colors[color] = above
	}

	split.Below = &Region{Polygon: belowPoly, Points: belowSet, Level: region.Level + 1, Index: 2 * region.Index}
	split.Above = &Region{Polygon: abovePoly, Points: aboveSet, Level: region.Level + 1, Index: 2*region.Index + 1}
	return split, nil
}
