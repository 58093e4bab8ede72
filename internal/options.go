package internal

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// What to do with a point lying exactly on a cut when its region is split.
type OnCutPolicy int

const (
	// The point belongs to neither child. It is only reported in the
	// decomposition's on-cut list.
	DropOnCut OnCutPolicy = iota
	// When dropping the point would leave both children with an even number of
	// points, copy it into both children instead, so they can be cut again.
	ReinjectOnCut
)

func (p OnCutPolicy) String() string {
	switch p {
	case DropOnCut:
		return "drop"
	case ReinjectOnCut:
		return "reinject"
	}
	return fmt.Sprintf("OnCutPolicy(%d)", int(p))
}

func (p OnCutPolicy) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

func (p *OnCutPolicy) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "drop", "":
		*p = DropOnCut
	case "reinject":
		*p = ReinjectOnCut
	default:
		return errors.Wrapf(ErrInvalidArgument, "unknown on_cut policy %q", node.Value)
	}
	return nil
}

type Options struct {
	// Tolerance for every geometric comparison
	Epsilon float64 `yaml:"epsilon"`
	// The binary search over dual x stops once the interval is this narrow
	MinIntervalSize float64 `yaml:"min_interval_size"`
	// Added on both sides of the crossing extent to form the initial search
	// interval
	SearchMargin float64 `yaml:"search_margin"`
	// Padding between the points and the domain built by NewColorPointSet
	DomainMargin float64 `yaml:"domain_margin"`
	// Split the regions on the last round too, so the result has 2^k regions
	CalculateFinalRegions bool        `yaml:"calculate_final_regions"`
	OnCut                 OnCutPolicy `yaml:"on_cut"`
	// Regions of one level processed at once. One or less means sequential.
	Workers int `yaml:"workers"`
}

func DefaultOptions() Options {
	return Options{
		Epsilon:               Epsilon,
		MinIntervalSize:       1e-8,
		SearchMargin:          1,
		DomainMargin:          1,
		CalculateFinalRegions: true,
		OnCut:                 DropOnCut,
		Workers:               1,
	}
}

// Parse YAML options. Keys missing from the document keep their defaults.
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, errors.Wrap(err, "parsing options")
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.Epsilon <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "epsilon must be positive, got %g", o.Epsilon)
	}
	if o.MinIntervalSize <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "min_interval_size must be positive, got %g", o.MinIntervalSize)
	}
	if o.SearchMargin < 0 || o.DomainMargin < 0 {
		return errors.Wrapf(ErrInvalidArgument, "margins must not be negative")
	}
	if o.OnCut != DropOnCut && o.OnCut != ReinjectOnCut {
		return errors.Wrapf(ErrInvalidArgument, "unknown on-cut policy %v", o.OnCut)
	}
	return nil
}
