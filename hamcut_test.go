package hamcut

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/osuushi/hamcut/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestCut(t *testing.T) {
	set := NewColorPointSet(
		[]Point{{X: -1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		[]Point{{X: -2, Y: 5}, {X: 5, Y: -1}, {X: -6, Y: 5}},
	)
	cut, err := Cut(set)
	assert.NoError(t, err)
	assert.InDelta(t, -2, cut.Slope, 1e-9)
	assert.InDelta(t, 1, cut.Intercept, 1e-9)

	_, err = Cut(set, WithEpsilon(-1))
	assert.True(t, errors.Is(err, advanced.ErrInvalidArgument))

	_, err = Cut(NewColorPointSet([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, []Point{{X: 2, Y: 0}}))
	assert.True(t, errors.Is(err, advanced.ErrEvenCount))
}

func TestDecompose(t *testing.T) {
	var red, blue []Point
	for i := 0; i < 7; i++ {
		x := float64(i)
		red = append(red, Point{X: x, Y: x * x / 3})
		blue = append(blue, Point{X: x + 0.5, Y: 10 - x*x/4})
	}
	set := NewColorPointSet(red, blue)

	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	d, err := Decompose(set, 2, WithWorkers(2))
	require.NoError(t, err)
	assert.False(t, d.ErrorOccurred)
	assert.Len(t, d.Regions, 4)
	assert.Len(t, d.Cuts, 3)
	assert.Contains(t, logs.String(), "cut region")

	d, err = Decompose(set, 2, WithFinalRegions(false), WithReinjectOnCut(false))
	require.NoError(t, err)
	assert.Empty(t, d.Regions)
	assert.Len(t, d.Cuts, 3)

	_, err = Decompose(set, -1)
	assert.True(t, errors.Is(err, advanced.ErrInvalidArgument))
}
