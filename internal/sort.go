package internal

import "sort"

// Sort points counterclockwise around their centroid. Points left of the
// centroid come first, so the order starts just past the top and sweeps down
// the left side, then back up the right side.
func SortCCW(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	if len(sorted) < 2 {
		return sorted
	}
	center := Centroid(sorted)
	sort.SliceStable(sorted, func(i, j int) bool {
		return clockwiseCompare(sorted[i], sorted[j], center) < 0
	})
	return sorted
}

// Returns -1 if p1 comes before p2, 1 if after, and 0 if they are the same
// point.
func clockwiseCompare(p1, p2, center Point) int {
	if p1 == p2 {
		return 0
	}
	d1 := p1.Sub(center)
	d2 := p2.Sub(center)

	// Bucket by half plane. The right half includes the vertical through the
	// center.
	if d1.X >= 0 && d2.X < 0 {
		return 1
	}
	if d1.X < 0 && d2.X >= 0 {
		return -1
	}
	if d1.X == 0 && d2.X == 0 {
		// Both on the vertical. Going counterclockwise through the right half, the
		// bottom comes first.
		if d1.Y == d2.Y {
			return 0
		}
		if d1.Y < d2.Y {
			return -1
		}
		return 1
	}

	det := d1.Cross(d2)
	if det > 0 {
		return -1
	}
	if det < 0 {
		return 1
	}

	// Same ray from the center, so the closer point goes first
	if p1.DistanceSquared(center) < p2.DistanceSquared(center) {
		return -1
	}
	return 1
}
