package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewColorPointSet(t *testing.T) {
	red := []Point{{1, 2}, {-3, 0}, {2, -1}}
	set := NewColorPointSet(1, red, []Point{{0, 5}})
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []int{3, 1}, set.ColorCounts())
	assert.Equal(t, -1, set.EmptyColor())

	// The set owns its slices
	red[0] = Point{100, 100}
	assert.Equal(t, Point{1, 2}, set.Colors[0][0])

	bounds := set.Bounds()
	assert.Equal(t, -4.0, bounds.Min.X)
	assert.Equal(t, -2.0, bounds.Min.Y)
	assert.Equal(t, 3.0, bounds.Max.X)
	assert.Equal(t, 6.0, bounds.Max.Y)

	assert.Equal(t, 1, NewColorPointSet(1, red, nil).EmptyColor())
}

func TestRootRegion(t *testing.T) {
	set := LoadFixture("scatter7")
	require.Equal(t, []int{7, 7}, set.ColorCounts())
	region := NewRootRegion(set)
	assert.True(t, region.Polygon.IsCCW())
	assert.True(t, region.ContainsItsPoints(Epsilon))
	assert.Contains(t, region.String(), "[7 7]")
	assert.Equal(t, region.DbgName(), region.DbgName())

	set.Domain = RectanglePolygon(0, 0, 1, 1)
	assert.False(t, NewRootRegion(set).ContainsItsPoints(Epsilon))
}
