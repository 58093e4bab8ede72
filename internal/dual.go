package internal

// Point/line duality. The point (a, b) is dual to the line y = a*x - b, so a
// point lies above a line exactly when the line's dual lies above the point's
// dual. That turns "how many points are on each side of this line" into "how
// many lines pass below this point", which is what the median level answers.

func ToDualLine(p Point) Line {
	return Line{Slope: p.X, Intercept: -p.Y}
}

func ToDualPoint(l Line) Point {
	return Point{X: l.Slope, Y: -l.Intercept}
}

func ToDualLines(points []Point) []Line {
	lines := make([]Line, len(points))
	for i, p := range points {
		lines[i] = ToDualLine(p)
	}
	return lines
}

func ToDualPoints(lines []Line) []Point {
	points := make([]Point, len(lines))
	for i, l := range lines {
		points[i] = ToDualPoint(l)
	}
	return points
}

// The transform is symmetric in incidence: p lies on the line dual to q iff q
// lies on the line dual to p. A point found in the dual plane therefore maps
// back to the primal cut through the same transform.
func PrimalLine(dualPoint Point) Line {
	return ToDualLine(dualPoint)
}
