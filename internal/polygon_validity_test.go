package internal

// This contains no actual tests. It is just a helper for testing that a
// decomposition's regions are valid.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that the regions of a decomposition tile its domain. The
// rules are:
// 1. Every region is counterclockwise and convex
// 2. No region has zero area
// 3. The sum of the areas of all regions is equal to the area of the domain
// 4. Sampled points of the domain lie inside exactly one region, unless they
// are on some region's boundary
func AssertValidDecomposition(t *testing.T, d *Decomposition) {
	t.Helper()
	var regionArea float64
	for _, region := range d.Regions {
		require.True(t, region.Polygon.IsCCW(), "clockwise region: %s", region)
		require.True(t, isConvex(region.Polygon), "concave region: %s", region)
		require.Greater(t, region.Polygon.Area(), Epsilon, "empty region: %s", region)
		regionArea += region.Polygon.Area()
	}
	require.InDelta(t, d.Domain.Area(), regionArea, 1e-6, "sum of the areas of all regions is equal to the area of the domain")
	validateRegionsBySampling(t, d)
}

func isConvex(poly Polygon) bool {
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		r := poly.Points[CircularIndex(i+2, n)]
		if q.Sub(p).Cross(r.Sub(q)) < -Epsilon {
			return false
		}
	}
	return true
}

func validateRegionsBySampling(t *testing.T, d *Decomposition) {
	bounds := d.Domain.Bounds()
	// Offset the grid so samples rarely land on a chord
	step := math.Max(bounds.Width(), bounds.Height()) / 53
	for y := bounds.Min.Y + step/math.Pi; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X + step/math.E; x < bounds.Max.X; x += step {
			p := Point{X: x, Y: y}
			inside, onBoundary := 0, false
			for _, region := range d.Regions {
				if region.Polygon.ContainsPoint(p, Epsilon) {
					inside++
				} else if region.Polygon.OnBoundary(p, Epsilon) {
					onBoundary = true
				}
			}
			if onBoundary {
				assert.LessOrEqual(t, inside, 1, "point %v is inside overlapping regions", p)
			} else {
				assert.Equal(t, 1, inside, "point %v should be in exactly one region", p)
			}
		}
	}
}
