// Package heuristic provides distance and similarity functions between
// two points on an integer grid, meant to be used as pathfinding
// heuristics.
//
// Every function takes its coordinates in the order x0, x1, y0, y1 and
// none of them validate their input. Overflow wraps and division by
// zero produces the usual IEEE-754 results, so the functions are safe
// to call in tight per-frame loops.
package heuristic

import (
	"math"

	"deedles.dev/gameutil/geom"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

func deltas[T geom.Signed](x0, x1, y0, y1 T) (dx, dy T) {
	return geom.Abs(x1 - x0), geom.Abs(y1 - y0)
}

// Manhattan returns the number of cells between two points in a grid
// where diagonal movement is not allowed.
func Manhattan[T geom.Signed](x0, x1, y0, y1 T) T {
	dx, dy := deltas(x0, x1, y0, y1)
	return dx + dy
}

// Chebyshev returns the number of cells between two points in a grid
// where a diagonal move costs the same as a straight one.
func Chebyshev[T geom.Signed](x0, x1, y0, y1 T) T {
	dx, dy := deltas(x0, x1, y0, y1)
	return max(dx, dy)
}

// Octile returns the distance between two points in a grid where a
// diagonal move costs √2.
func Octile[T geom.Signed](x0, x1, y0, y1 T) float64 {
	return DiagonalDistance(x0, x1, y0, y1, 1, math.Sqrt2)
}

// DiagonalDistance generalizes [Chebyshev] and [Octile]. With a
// straight and diagonal cost of 1 it is Chebyshev, and with a straight
// cost of 1 and a diagonal cost of √2 it is Octile.
func DiagonalDistance[T geom.Signed](x0, x1, y0, y1 T, straightCost, diagonalCost float64) float64 {
	dx, dy := deltas(x0, x1, y0, y1)
	return straightCost*float64(max(dx, dy)) + (diagonalCost-straightCost)*float64(min(dx, dy))
}

// Euclidean returns the straight-line distance between two points.
func Euclidean[T geom.Signed](x0, x1, y0, y1 T) float64 {
	return math.Sqrt(float64(EuclideanSquared(x0, x1, y0, y1)))
}

// EuclideanSquared returns the square of [Euclidean]. It avoids the
// square root, but the result is only meaningful when compared against
// other squared distances.
func EuclideanSquared[T geom.Signed](x0, x1, y0, y1 T) T {
	dx, dy := deltas(x0, x1, y0, y1)
	return dx*dx + dy*dy
}

// CosineSimilarity returns the cosine of the angle between the vectors
// from the origin to (x0, y0) and to (x1, y1). The result is NaN if
// either point is the origin.
func CosineSimilarity[T geom.Signed](x0, x1, y0, y1 T) float64 {
	v0 := r2.Vec{X: float64(x0), Y: float64(y0)}
	v1 := r2.Vec{X: float64(x1), Y: float64(y1)}
	return r2.Dot(v0, v1) / (r2.Norm(v0) * r2.Norm(v1))
}

// Minkowski returns the p-norm distance between two points. A p of 1
// is [Manhattan], 2 is [Euclidean], and positive infinity is
// [Chebyshev]. It is considerably slower than any of those, so prefer
// them when p is known ahead of time.
func Minkowski[T geom.Signed](x0, x1, y0, y1 T, p float64) float64 {
	return floats.Distance(
		[]float64{float64(x0), float64(y0)},
		[]float64{float64(x1), float64(y1)},
		p,
	)
}
