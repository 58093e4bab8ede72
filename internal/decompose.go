package internal

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// A branch of the decomposition that stopped early, and why.
type BranchFailure struct {
	Level  int
	Region int
	Err    error
}

func (f BranchFailure) String() string {
	return fmt.Sprintf("level %d region %d: %v", f.Level, f.Region, f.Err)
}

type Decomposition struct {
	// The root region's polygon
	Domain Polygon
	// Regions left after the last round, in frontier order. Empty when final
	// regions were not requested.
	Regions []*Region
	// Every cut line, in the order they were found
	Cuts []Line
	// Chords cut at each level
	Segments map[int][]Segment
	Records  []CutRecord
	// Points lying exactly on some cut
	OnCut    []Point
	Failures []BranchFailure
	// Set when any branch failed. The rest of the result is still valid, but
	// covers less of the plane than asked for.
	ErrorOccurred bool
}

// Everything one region contributes to the next level.
type regionOutcome struct {
	record   CutRecord
	onCut    []Point
	children []*Region
	err      error
}

// Run k rounds of ham-sandwich cuts. Each round cuts every region of the
// current frontier in two. A region that cannot be cut stops its own branch and
// flags the result, but the other regions carry on.
//
// The only errors returned directly are for arguments that make the whole run
// meaningless. Everything else is reported through Failures.
func Decompose(set *ColorPointSet, k int, opts Options) (*Decomposition, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if set == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil point set")
	}
	if k < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "negative round count %d", k)
	}

	root := NewRootRegion(set)
	d := &Decomposition{Domain: root.Polygon, Segments: make(map[int][]Segment)}
	frontier := []*Region{root}
	for level := 0; level < k && len(frontier) > 0; level++ {
		d.Segments[level] = []Segment{}
		split := level < k-1 || opts.CalculateFinalRegions
		outcomes := processLevel(frontier, level, split, opts)

		// Merge in frontier order, whatever order the regions finished in
		var next []*Region
		for i, outcome := range outcomes {
			region := frontier[i]
			if outcome.err != nil {
				d.ErrorOccurred = true
				failure := BranchFailure{Level: level, Region: region.Index, Err: outcome.err}
				d.Failures = append(d.Failures, failure)
				Logger().Warn("branch stopped", "region", region, "err", outcome.err)
				continue
			}
			d.Cuts = append(d.Cuts, outcome.record.Line)
			d.Segments[level] = append(d.Segments[level], outcome.record.Chord)
			d.Records = append(d.Records, outcome.record)
			d.OnCut = append(d.OnCut, outcome.onCut...)
			for _, child := range outcome.children {
				next = append(next, child.WithIndex(len(next)))
			}
		}
		frontier = next
	}

	if k == 0 || opts.CalculateFinalRegions {
		d.Regions = frontier
	}
	return d, nil
}

func processLevel(frontier []*Region, level int, split bool, opts Options) []regionOutcome {
	outcomes := make([]regionOutcome, len(frontier))
	if opts.Workers <= 1 {
		for i, region := range frontier {
			outcomes[i] = processRegion(region, level, split, opts)
		}
		return outcomes
	}

	// Regions of a level share nothing, so they can be cut in parallel. Each
	// goroutine writes only its own slot.
	sem := make(chan struct{}, opts.Workers)
	var wg sync.WaitGroup
	for i, region := range frontier {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, region *Region) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = processRegion(region, level, split, opts)
		}(i, region)
	}
	wg.Wait()
	return outcomes
}

func processRegion(region *Region, level int, split bool, opts Options) (outcome regionOutcome) {
	defer func() {
		if err := HandlePanicRecover(recover()); err != nil {
			outcome = regionOutcome{err: err}
		}
	}()

	if color := region.Points.EmptyColor(); color >= 0 {
		return regionOutcome{err: errors.Wrapf(ErrPointsExhausted,
			"ran out of color %d points at level %d; more points are needed for this many rounds", color, level)}
	}

	solution, err := SolveCut(region.Points, opts)
	if err != nil {
		return regionOutcome{err: err}
	}
	cut := chooseCut(region, solution)
	Logger().Debug("cut region",
		"region", region, "line", cut, "iterations", solution.Iterations)

	outcome.record = CutRecord{Line: cut, Level: level, Region: region.Index}
	if split {
		result, err := SplitRegion(region, cut, opts)
		if err != nil {
			return regionOutcome{err: err}
		}
		outcome.record.Chord = result.Chord
		for _, points := range result.OnCut {
			outcome.onCut = append(outcome.onCut, points...)
		}
		outcome.children = []*Region{result.Below, result.Above}
		return outcome
	}

	// Last round without final regions: the chord and on-cut points are still
	// reported.
	i1, i2, err := region.Polygon.IntersectLine(cut, opts.Epsilon)
	if err != nil {
		return regionOutcome{err: err}
	}
	outcome.record.Chord = Segment{i1, i2}
	for _, points := range region.Points.Colors {
		for _, p := range points {
			if PointOnLine(p, cut, opts.Epsilon) {
				outcome.onCut = append(outcome.onCut, p)
			}
		}
	}
	return outcome
}

// Several cuts can bisect the same region. Take the one with the lowest dual
// x, which is the first, and say how many were passed over.
func chooseCut(region *Region, solution *CutSolution) Line {
	if len(solution.Cuts) > 1 {
		Logger().Warn("found several cuts, using the first",
			"region", region, "discarded", len(solution.Cuts)-1)
	}
	return solution.Cuts[0]
}
