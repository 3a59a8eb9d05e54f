package geom

import "math"

// Point is a two-dimensional vector. It is used both for positions and
// for offsets.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// ConvertPoint converts a point from one scalar type to another using
// normal Go conversion rules.
func ConvertPoint[To, From Scalar](p Point[From]) Point[To] {
	return Point[To]{X: To(p.X), Y: To(p.Y)}
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) Mul(n T) Point[T] {
	return Point[T]{X: p.X * n, Y: p.Y * n}
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the Euclidean length of p.
func (p Point[T]) Len() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// Lerp linearly interpolates between p and q. A t of 0 returns p and a
// t of 1 returns q. Values of t outside of [0, 1] extrapolate.
func Lerp[T Scalar](p, q Point[T], t float64) Point[T] {
	return Point[T]{
		X: T(float64(p.X) + (float64(q.X)-float64(p.X))*t),
		Y: T(float64(p.Y) + (float64(q.Y)-float64(p.Y))*t),
	}
}
