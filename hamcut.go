// Ham-sandwich cuts for two-colored point sets in the plane.
//
// A ham-sandwich cut is a single line that bisects both colors at once. Cutting
// every region again, round after round, decomposes the plane into convex
// regions that each hold an equal share of both colors.
//
// Each color needs an odd number of points, and no two points (of any color)
// may share an x coordinate.
package hamcut

import (
	"log/slog"

	"github.com/osuushi/hamcut/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Line = advanced.Line
type ColorPointSet = advanced.ColorPointSet
type Region = advanced.Region
type Decomposition = advanced.Decomposition
type Options = advanced.Options

// Configures a cut or decomposition
type Option func(*Options)

// Replace every setting at once, for example with options loaded from YAML by
// advanced.ParseOptions.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

func WithMinIntervalSize(size float64) Option {
	return func(o *Options) { o.MinIntervalSize = size }
}

// Process up to n regions of the same round at once
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// Points lying on a cut are normally dropped from both sides. With reinject,
// they are copied into both sides whenever that keeps the sides cuttable.
func WithReinjectOnCut(reinject bool) Option {
	return func(o *Options) {
		if reinject {
			o.OnCut = advanced.ReinjectOnCut
		} else {
			o.OnCut = advanced.DropOnCut
		}
	}
}

// Whether the last round splits its regions, or only records its cuts
func WithFinalRegions(calculate bool) Option {
	return func(o *Options) { o.CalculateFinalRegions = calculate }
}

func buildOptions(options []Option) Options {
	opts := advanced.DefaultOptions()
	for _, option := range options {
		option(&opts)
	}
	return opts
}

// Group points by color into a set. The set's domain is their bounding box,
// padded slightly.
func NewColorPointSet(colors ...[]Point) *ColorPointSet {
	return advanced.NewColorPointSet(advanced.DefaultOptions().DomainMargin, colors...)
}

// Find a line that bisects both colors of the set. One point of each color
// lies on the line, and the rest are split evenly. When there are several such
// lines, only one is returned.
func Cut(set *ColorPointSet, options ...Option) (cut Line, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			cut = Line{}
			err = recoveredErr
		}
	}()
	opts := buildOptions(options)
	if err := opts.Validate(); err != nil {
		return Line{}, err
	}
	solution, err := advanced.SolveCut(set, opts)
	if err != nil {
		return Line{}, errors.Wrap(err, "finding cut")
	}
	return solution.Cuts[0], nil
}

// Cut the set's domain in k rounds, producing up to 2^k regions.
//
// A region that cannot be cut (usually because it ran out of points) stops its
// own branch without stopping the others. The result reports this through
// ErrorOccurred and Failures, so check those before trusting the region count.
// The returned error is only for unusable arguments.
func Decompose(set *ColorPointSet, k int, options ...Option) (result *Decomposition, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.Decompose(set, k, buildOptions(options))
}

// Send diagnostics to l. Nothing is logged by default, and nil restores that.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}
