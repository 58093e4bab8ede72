package internal

import (
	"fmt"
	"log/slog"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/hamcut/internal/dbg"
)

// The region covering a whole point set, before any cut.
func NewRootRegion(set *ColorPointSet) *Region {
	return &Region{
		Polygon: Polygon{Points: SortCCW(set.Domain.Points)},
		Points:  set,
	}
}

// A copy of the region at another frontier position. Regions are read-only
// once created, so renumbering makes a new one.
func (r *Region) WithIndex(index int) *Region {
	c := *r
	c.Index = index
	return &c
}

// Does every point of the region's set lie inside or on its polygon?
func (r *Region) ContainsItsPoints(eps float64) bool {
	for _, points := range r.Points.Colors {
		for _, p := range points {
			if !r.Polygon.ContainsPoint(p, eps) && !r.Polygon.OnBoundary(p, eps) {
				return false
			}
		}
	}
	return true
}

func (r *Region) String() string {
	return fmt.Sprintf("Region %s (level %d, #%d) %v <%d vertices>",
		r.DbgName(),
		r.Level,
		r.Index,
		r.Points.ColorCounts(),
		len(r.Polygon.Points),
	)
}

func (r *Region) DbgName() string {
	// Regions which have run out of some color are red, since they cannot be
	// cut again
	name := dbg.Name(r)
	if r.Points.EmptyColor() >= 0 {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}

// Regions are logged by readable name. This only runs for records that are
// actually written, so disabled logging never names anything.
func (r *Region) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", dbg.Name(r)),
		slog.Int("level", r.Level),
		slog.Int("index", r.Index),
	)
}
