package internal

import "math"

// Default tolerance for geometric comparisons. Options.Epsilon overrides it
// for everything that runs inside a decomposition.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func EqualWithin(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func (p Point) Equals(q Point, eps float64) bool {
	return EqualWithin(p.X, q.X, eps) && EqualWithin(p.Y, q.Y, eps)
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// 2D cross product of the vectors p and q
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) DistanceSquared(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func sign(v, eps float64) int {
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	}
	return 0
}
