package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handCutSet() *ColorPointSet {
	return NewColorPointSet(1,
		[]Point{{-1, 0}, {0, 1}, {1, 0}},
		[]Point{{-2, 5}, {5, -1}, {-6, 5}},
	)
}

func TestSplitPolygon(t *testing.T) {
	square := RectanglePolygon(-1, -1, 1, 1)

	t.Run("across the middle", func(t *testing.T) {
		first, second := SplitPolygon(square, Point{-1, 0}, Point{1, 0}, Epsilon)
		for _, child := range []Polygon{first, second} {
			assert.Len(t, child.Points, 4)
			assert.True(t, child.IsCCW())
			assert.InDelta(t, 2, child.Area(), Epsilon)
		}
	})

	t.Run("corner to edge", func(t *testing.T) {
		first, second := SplitPolygon(square, Point{-1, -1}, Point{1, 0}, Epsilon)
		assert.InDelta(t, 4, first.Area()+second.Area(), Epsilon)
		assert.ElementsMatch(t, []int{3, 4}, []int{len(first.Points), len(second.Points)})
	})

	t.Run("along an edge", func(t *testing.T) {
		split := func() (err error) {
			defer func() {
				if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
					err = recoveredErr
				}
			}()
			SplitPolygon(square, Point{-1, -1}, Point{1, -1}, Epsilon)
			return nil
		}
		assert.True(t, errors.Is(split(), ErrDegenerateCut))
	})
}

func TestSplitRegion(t *testing.T) {
	t.Run("hand computed cut", func(t *testing.T) {
		set := handCutSet()
		region := NewRootRegion(set)
		cut := NewLine(-2, 1)
		split, err := SplitRegion(region, cut, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, [][]Point{{{0, 1}}, {{-2, 5}}}, split.OnCut)
		assert.Equal(t, [][]Point{{{-1, 0}}, {{-6, 5}}}, split.Below.Points.Colors)
		assert.Equal(t, [][]Point{{{1, 0}}, {{5, -1}}}, split.Above.Points.Colors)
		assert.Equal(t, -1, polygonSide(split.Below.Polygon, cut, Epsilon))
		assert.Equal(t, 1, polygonSide(split.Above.Polygon, cut, Epsilon))
		assert.InDelta(t, region.Polygon.Area(), split.Below.Polygon.Area()+split.Above.Polygon.Area(), 1e-9)
		assert.Equal(t, 1, split.Below.Level)
		assert.True(t, split.Below.ContainsItsPoints(Epsilon))
		assert.True(t, split.Above.ContainsItsPoints(Epsilon))
		// The parent is untouched
		assert.Len(t, region.Points.Colors[0], 3)
	})

	t.Run("conservation on random sets", func(t *testing.T) {
		for seed := int64(1); seed <= 10; seed++ {
			set := RandomColorPointSet(seed, 11, 7)
			solution, err := SolveCut(set, DefaultOptions())
			require.NoError(t, err)
			split, err := SplitRegion(NewRootRegion(set), solution.Cuts[0], DefaultOptions())
			require.NoError(t, err, "seed %d", seed)
			for color, points := range set.Colors {
				below := split.Below.Points.Colors[color]
				above := split.Above.Points.Colors[color]
				assert.Equal(t, len(points), len(split.OnCut[color])+len(below)+len(above))
				assert.Equal(t, len(below), len(above))
			}
		}
	})

	t.Run("steep cuts at large coordinates", func(t *testing.T) {
		// Chord points on a line this steep are off it by more than Epsilon
		for seed := int64(1); seed <= 200; seed++ {
			set := RandomColorPointSetIn(seed, 1e4, 31, 31)
			solution, err := SolveCut(set, DefaultOptions())
			require.NoError(t, err, "seed %d", seed)
			split, err := SplitRegion(NewRootRegion(set), solution.Cuts[0], DefaultOptions())
			require.NoError(t, err, "seed %d", seed)
			assert.Equal(t, []int{15, 15}, split.Below.Points.ColorCounts(), "seed %d", seed)
			assert.Equal(t, []int{15, 15}, split.Above.Points.ColorCounts(), "seed %d", seed)
		}
	})

	t.Run("child indexes", func(t *testing.T) {
		region := NewRootRegion(handCutSet())
		region.Index = 3
		region.Level = 2
		split, err := SplitRegion(region, NewLine(-2, 1), DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, 6, split.Below.Index)
		assert.Equal(t, 7, split.Above.Index)
		assert.Equal(t, 3, split.Above.Level)
	})

	t.Run("not a ham sandwich cut", func(t *testing.T) {
		_, err := SplitRegion(NewRootRegion(handCutSet()), NewLine(0, 0.5), DefaultOptions())
		assert.True(t, errors.Is(err, ErrParityViolation))
	})

	t.Run("point outside the region", func(t *testing.T) {
		set := handCutSet()
		set.Domain = RectanglePolygon(-3, -3, 3, 3)
		_, err := SplitRegion(NewRootRegion(set), NewLine(-2, 1), DefaultOptions())
		assert.True(t, errors.Is(err, ErrPointOutsideRegion))
	})

	t.Run("cut missing the region", func(t *testing.T) {
		_, err := SplitRegion(NewRootRegion(handCutSet()), NewLine(0, 100), DefaultOptions())
		assert.True(t, errors.Is(err, ErrDegenerateCut))
	})
}

func TestPolygonSide(t *testing.T) {
	cut := NewLine(0, 0)
	t.Run("chord vertex just off the line", func(t *testing.T) {
		// The first vertex is a chord point rounded to the wrong side
		poly := Polygon{[]Point{{-1, 2e-9}, {0, -5}, {1, 0}}}
		assert.Equal(t, -1, polygonSide(poly, cut, Epsilon))
	})

	t.Run("above", func(t *testing.T) {
		poly := Polygon{[]Point{{1, 0}, {0, 5}, {-1, 0}}}
		assert.Equal(t, 1, polygonSide(poly, cut, Epsilon))
	})
}

func TestSplitRegion_Reinject(t *testing.T) {
	// Five of each leaves two on either side, which could not be cut again
	set := RandomColorPointSet(7, 5, 5)
	solution, err := SolveCut(set, DefaultOptions())
	require.NoError(t, err)
	cut := solution.Cuts[0]

	dropped, err := SplitRegion(NewRootRegion(set), cut, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, dropped.Below.Points.ColorCounts())
	assert.Equal(t, 0, dropped.Reinjected)

	opts := DefaultOptions()
	opts.OnCut = ReinjectOnCut
	reinjected, err := SplitRegion(NewRootRegion(set), cut, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, reinjected.Reinjected)
	for _, child := range []*Region{reinjected.Below, reinjected.Above} {
		assert.Equal(t, []int{3, 3}, child.Points.ColorCounts())
		for color, onCut := range reinjected.OnCut {
			require.Len(t, onCut, 1)
			assert.Contains(t, child.Points.Colors[color], onCut[0])
		}
		assert.True(t, child.ContainsItsPoints(Epsilon))
	}
}
