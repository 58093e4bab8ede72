package internal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// The median level of an arrangement of lines is, at each x, the median of the
// lines' y values there. It is piecewise linear, and only changes which line
// realizes it where two lines cross. Only odd arrangements have a single
// median line, so even ones are rejected.

func checkMedianPrecondition(lines []Line) error {
	if len(lines) == 0 {
		return errors.Wrap(ErrPointsExhausted, "median level of an empty arrangement")
	}
	if len(lines)%2 == 0 {
		return errors.Wrapf(ErrEvenCount, "median level of %d lines", len(lines))
	}
	return nil
}

// The line realizing the median at x. Ties are broken by slope, which orders
// the lines as they are immediately to the right of x.
func MedianLine(lines []Line, x float64) (Line, error) {
	if err := checkMedianPrecondition(lines); err != nil {
		return Line{}, err
	}
	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool {
		yi, yj := sorted[i].At(x), sorted[j].At(x)
		if yi == yj {
			return sorted[i].Slope < sorted[j].Slope
		}
		return yi < yj
	})
	return sorted[len(sorted)/2], nil
}

func MedianLevel(lines []Line, x float64) (float64, error) {
	if err := checkMedianPrecondition(lines); err != nil {
		return 0, err
	}
	values := make([]float64, len(lines))
	for i, l := range lines {
		values[i] = l.At(x)
	}
	sort.Float64s(values)
	return values[len(values)/2], nil
}

// Every pairwise intersection whose x lies strictly inside the interval,
// sorted by x. Parallel pairs never cross and are skipped.
func AllCrossingsInInterval(lines []Line, interval Interval, eps float64) []Point {
	var crossings []Point
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			p, err := IntersectLines(lines[i], lines[j], eps)
			if err != nil {
				Logger().Debug("skipping parallel dual lines; points may not be in general position",
					"a", lines[i], "b", lines[j])
				continue
			}
			if interval.ContainsStrictly(p.X) {
				crossings = append(crossings, p)
			}
		}
	}
	sort.Slice(crossings, func(i, j int) bool {
		return crossings[i].X < crossings[j].X
	})
	return crossings
}

// The x range covered by all pairwise crossings. Outside of it the order of
// the lines never changes. ok is false when no two lines cross.
func CrossingExtent(lines []Line, eps float64) (extent Interval, ok bool) {
	extent = Interval{Left: math.Inf(1), Right: math.Inf(-1)}
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			p, err := IntersectLines(lines[i], lines[j], eps)
			if err != nil {
				continue
			}
			extent.Left = math.Min(extent.Left, p.X)
			extent.Right = math.Max(extent.Right, p.X)
			ok = true
		}
	}
	return extent, ok
}

// The median level restricted to the interval, as a polyline through the
// interval's endpoints and every crossing inside it. Between consecutive
// vertices the median level is a single line, so no piece is lost.
func MedianLevelCurve(lines []Line, interval Interval, crossings []Point) ([]Point, error) {
	xs := make([]float64, 0, len(crossings)+2)
	xs = append(xs, interval.Left)
	for _, c := range crossings {
		if interval.ContainsStrictly(c.X) {
			xs = append(xs, c.X)
		}
	}
	xs = append(xs, interval.Right)
	sort.Float64s(xs)

	curve := make([]Point, 0, len(xs))
	for _, x := range xs {
		y, err := MedianLevel(lines, x)
		if err != nil {
			return nil, err
		}
		curve = append(curve, Point{x, y})
	}
	return curve, nil
}
