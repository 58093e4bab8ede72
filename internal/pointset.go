package internal

import (
	"github.com/jbeda/geom"
)

// Build a point set from per-color point lists. The domain is the bounding box
// of the points, padded by margin so that no point sits on its boundary.
func NewColorPointSet(margin float64, colors ...[]Point) *ColorPointSet {
	set := &ColorPointSet{Colors: make([][]Point, len(colors))}
	for i, points := range colors {
		set.Colors[i] = append([]Point(nil), points...)
	}
	bounds := BoundsOf(set.AllPoints())
	set.Domain = RectanglePolygon(
		bounds.Min.X-margin,
		bounds.Min.Y-margin,
		bounds.Max.X+margin,
		bounds.Max.Y+margin,
	)
	return set
}

// All points, color by color, in a fresh slice.
func (set *ColorPointSet) AllPoints() []Point {
	var all []Point
	for _, points := range set.Colors {
		all = append(all, points...)
	}
	return all
}

func (set *ColorPointSet) Len() int {
	n := 0
	for _, points := range set.Colors {
		n += len(points)
	}
	return n
}

func (set *ColorPointSet) ColorCounts() []int {
	counts := make([]int, len(set.Colors))
	for i, points := range set.Colors {
		counts[i] = len(points)
	}
	return counts
}

// Bounds of the defining domain, which contains every point.
func (set *ColorPointSet) Bounds() geom.Rect {
	return set.Domain.Bounds()
}

// Index of the first color with no points left, or -1.
func (set *ColorPointSet) EmptyColor() int {
	for i, points := range set.Colors {
		if len(points) == 0 {
			return i
		}
	}
	return -1
}
