package internal

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// A ham-sandwich cut for two colors is a point of the dual plane lying on both
// colors' median levels. Far to the left and far to the right the median
// levels are single lines, so if those lines have different slopes the
// difference between the two levels changes sign an odd number of times
// overall. Binary search keeps whichever half still contains an odd number of
// crossings until the interval is tiny, and then the two curves are
// intersected exactly over what is left.

type SolverState int

const (
	Searching SolverState = iota
	Narrowed
	Solved
	Failed
)

func (s SolverState) String() string {
	switch s {
	case Searching:
		return "searching"
	case Narrowed:
		return "narrowed"
	case Solved:
		return "solved"
	case Failed:
		return "failed"
	}
	return "unknown"
}

type CutSolution struct {
	State           SolverState
	InitialInterval Interval
	// The interval the search narrowed down to
	Interval   Interval
	Iterations int
	// Candidate dual points, ascending by x. Usually there is exactly one.
	DualPoints []Point
	// The primal cut for each candidate, in the same order
	Cuts []Line
	Err  error
}

func (s *CutSolution) fail(err error) (*CutSolution, error) {
	s.State = Failed
	s.Err = err
	return s, err
}

// Check the input satisfies what the parity argument needs: two colors, each
// with an odd number of points, and no two points sharing an x coordinate
// (which would make their dual lines parallel).
func checkCutPreconditions(set *ColorPointSet, eps float64) error {
	if set == nil || len(set.Colors) != 2 {
		n := 0
		if set != nil {
			n = len(set.Colors)
		}
		return errors.Wrapf(ErrColorCount, "need exactly 2 colors, got %d", n)
	}
	for color, points := range set.Colors {
		if len(points) == 0 {
			return errors.Wrapf(ErrPointsExhausted, "color %d has no points", color)
		}
		if len(points)%2 == 0 {
			return errors.Wrapf(ErrEvenCount, "color %d has %d points", color, len(points))
		}
	}

	all := set.AllPoints()
	sort.Slice(all, func(i, j int) bool { return all[i].X < all[j].X })
	for i := 1; i < len(all); i++ {
		if EqualWithin(all[i-1].X, all[i].X, eps) {
			return errors.Wrapf(ErrParallelLines, "points %v and %v share an x coordinate", all[i-1], all[i])
		}
	}
	return nil
}

// Difference between the two median levels at x
func medianDifference(dualsA, dualsB []Line, x float64) (float64, error) {
	a, err := MedianLevel(dualsA, x)
	if err != nil {
		return 0, err
	}
	b, err := MedianLevel(dualsB, x)
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// Does the difference of the median levels change sign across the interval?
// A zero at either end counts, since the crossing is then on the boundary.
func ParityFlips(interval Interval, dualsA, dualsB []Line) (bool, error) {
	left, err := medianDifference(dualsA, dualsB, interval.Left)
	if err != nil {
		return false, err
	}
	right, err := medianDifference(dualsA, dualsB, interval.Right)
	if err != nil {
		return false, err
	}
	return (left <= 0 && right >= 0) || (left >= 0 && right <= 0), nil
}

// Upper bound on the bisection steps needed to get from width down to
// minSize.
func MaxSearchIterations(width, minSize float64) int {
	if width <= minSize {
		return 0
	}
	return int(math.Ceil(math.Log2(width / minSize)))
}

// Find the ham-sandwich cuts of a two color set. On failure the returned
// solution is still populated as far as the solver got, with State Failed.
func SolveCut(set *ColorPointSet, opts Options) (*CutSolution, error) {
	solution := &CutSolution{State: Searching}
	eps := opts.Epsilon
	if err := checkCutPreconditions(set, eps); err != nil {
		return solution.fail(err)
	}

	dualsA := ToDualLines(set.Colors[0])
	dualsB := ToDualLines(set.Colors[1])

	// Every crossing of either median level is a crossing of two lines in the
	// combined arrangement, so the extent of those crossings brackets them all.
	all := append(append([]Line{}, dualsA...), dualsB...)
	extent, ok := CrossingExtent(all, eps)
	if !ok {
		return solution.fail(errors.Wrap(ErrParallelLines, "no two dual lines cross"))
	}
	interval := Interval{Left: extent.Left - opts.SearchMargin, Right: extent.Right + opts.SearchMargin}
	solution.InitialInterval = interval

	flips, err := ParityFlips(interval, dualsA, dualsB)
	if err != nil {
		return solution.fail(err)
	}
	if !flips {
		return solution.fail(errors.Wrapf(ErrDegenerateCut, "median levels do not cross in %v", interval))
	}

	maxIterations := MaxSearchIterations(interval.Width(), opts.MinIntervalSize)
	for solution.Iterations < maxIterations && interval.Width() > opts.MinIntervalSize {
		mid := interval.Mid()
		left := Interval{Left: interval.Left, Right: mid}
		flips, err := ParityFlips(left, dualsA, dualsB)
		if err != nil {
			return solution.fail(err)
		}
		if flips {
			interval = left
		} else {
			interval = Interval{Left: mid, Right: interval.Right}
		}
		solution.Iterations++
	}
	solution.Interval = interval
	solution.State = Narrowed
	return solveNarrowed(solution, dualsA, dualsB, opts)
}

// Finish a narrowed search by intersecting the median levels over its
// interval.
func solveNarrowed(solution *CutSolution, dualsA, dualsB []Line, opts Options) (*CutSolution, error) {
	interval := solution.Interval
	candidates, err := intersectMedianLevels(dualsA, dualsB, interval, opts)
	if err != nil {
		return solution.fail(err)
	}
	if len(candidates) == 0 {
		return solution.fail(errors.Wrapf(ErrDegenerateCut, "median levels do not intersect in %v", interval))
	}

	solution.DualPoints = candidates
	for _, c := range candidates {
		solution.Cuts = append(solution.Cuts, PrimalLine(c))
	}
	solution.State = Solved
	return solution, nil
}

// Intersect the two median levels over the interval as piecewise linear
// curves. Both curves are linear between consecutive breakpoints of either,
// so each piece can contain at most one root, and that root is the
// intersection of the two median lines active on it.
func intersectMedianLevels(dualsA, dualsB []Line, interval Interval, opts Options) ([]Point, error) {
	eps := opts.Epsilon
	curveA, err := MedianLevelCurve(dualsA, interval, AllCrossingsInInterval(dualsA, interval, eps))
	if err != nil {
		return nil, err
	}
	curveB, err := MedianLevelCurve(dualsB, interval, AllCrossingsInInterval(dualsB, interval, eps))
	if err != nil {
		return nil, err
	}

	xs := make([]float64, 0, len(curveA)+len(curveB))
	for _, p := range curveA {
		xs = append(xs, p.X)
	}
	for _, p := range curveB {
		xs = append(xs, p.X)
	}
	sort.Float64s(xs)
	xs = dedupeSorted(xs)

	diffs := make([]float64, len(xs))
	for i, x := range xs {
		if diffs[i], err = medianDifference(dualsA, dualsB, x); err != nil {
			return nil, err
		}
	}

	var candidates []Point
	for i := 0; i+1 < len(xs); i++ {
		left, right := diffs[i], diffs[i+1]
		last := i+2 == len(xs)
		if !(left == 0 || left*right < 0 || (last && right == 0)) {
			continue
		}
		piece := Interval{Left: xs[i], Right: xs[i+1]}
		root, err := refineRoot(dualsA, dualsB, piece, eps)
		if err != nil {
			return nil, err
		}
		duplicate := false
		for _, c := range candidates {
			if EqualWithin(c.X, root.X, eps) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			candidates = append(candidates, root)
		}
	}
	// A degenerate single point interval has no pieces at all
	if len(xs) == 1 && diffs[0] == 0 {
		y, err := MedianLevel(dualsA, xs[0])
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Point{xs[0], y})
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].X < candidates[j].X })
	return candidates, nil
}

func refineRoot(dualsA, dualsB []Line, piece Interval, eps float64) (Point, error) {
	mid := piece.Mid()
	lineA, err := MedianLine(dualsA, mid)
	if err != nil {
		return Point{}, err
	}
	lineB, err := MedianLine(dualsB, mid)
	if err != nil {
		return Point{}, err
	}
	root, err := IntersectLines(lineA, lineB, eps)
	if err != nil {
		return Point{}, errors.Wrapf(err, "median levels coincide over %v", piece)
	}
	return root, nil
}

func dedupeSorted(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
