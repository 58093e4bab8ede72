// Lower level steps of a ham-sandwich decomposition: duality, median levels,
// the cut solver and the region splitter. Use these to drive cuts by hand or
// to inspect intermediate results. Most callers want the hamcut package.
package advanced

import "github.com/osuushi/hamcut/internal"

type (
	Point         = internal.Point
	Line          = internal.Line
	Segment       = internal.Segment
	Polygon       = internal.Polygon
	Interval      = internal.Interval
	ColorPointSet = internal.ColorPointSet
	Region        = internal.Region
	CutRecord     = internal.CutRecord
	Options       = internal.Options
	OnCutPolicy   = internal.OnCutPolicy
	SolverState   = internal.SolverState
	CutSolution   = internal.CutSolution
	SplitResult   = internal.SplitResult
	Decomposition = internal.Decomposition
	BranchFailure = internal.BranchFailure
)

const (
	DropOnCut     = internal.DropOnCut
	ReinjectOnCut = internal.ReinjectOnCut

	Searching = internal.Searching
	Narrowed  = internal.Narrowed
	Solved    = internal.Solved
	Failed    = internal.Failed

	Epsilon = internal.Epsilon
)

var (
	ErrDegenerateCut      = internal.ErrDegenerateCut
	ErrParallelLines      = internal.ErrParallelLines
	ErrPointsExhausted    = internal.ErrPointsExhausted
	ErrParityViolation    = internal.ErrParityViolation
	ErrEvenCount          = internal.ErrEvenCount
	ErrColorCount         = internal.ErrColorCount
	ErrPointOutsideRegion = internal.ErrPointOutsideRegion
	ErrInvalidArgument    = internal.ErrInvalidArgument
)

var (
	NewColorPointSet = internal.NewColorPointSet
	NewRootRegion    = internal.NewRootRegion
	DefaultOptions   = internal.DefaultOptions
	ParseOptions     = internal.ParseOptions

	NewLine            = internal.NewLine
	VerticalLine       = internal.VerticalLine
	LineThrough        = internal.LineThrough
	LineFromPointSlope = internal.LineFromPointSlope
	IntersectLines     = internal.IntersectLines
	PointOnLine        = internal.PointOnLine
	SortCCW            = internal.SortCCW

	ToDualLine  = internal.ToDualLine
	ToDualPoint = internal.ToDualPoint
	PrimalLine  = internal.PrimalLine

	MedianLevel            = internal.MedianLevel
	MedianLine             = internal.MedianLine
	AllCrossingsInInterval = internal.AllCrossingsInInterval
	MedianLevelCurve       = internal.MedianLevelCurve

	ParityFlips         = internal.ParityFlips
	MaxSearchIterations = internal.MaxSearchIterations
	SolveCut            = internal.SolveCut

	SplitPolygon = internal.SplitPolygon
	SplitRegion  = internal.SplitRegion
	Decompose    = internal.Decompose

	SetLogger          = internal.SetLogger
	HandlePanicRecover = internal.HandlePanicRecover
)
