// Package direction classifies positions relative to a center into the
// eight compass directions of a grid.
//
// Coordinates follow screen conventions: x grows to the right and y
// grows downwards, so [Top] is (0, -1).
package direction

import (
	"iter"
	"math"

	"deedles.dev/gameutil/geom"
)

// Vec is a unit step on a grid. Both components are always -1, 0, or 1.
type Vec struct {
	X, Y int
}

// Components of the named directions.
const (
	top    = -1
	bottom = 1
	left   = -1
	right  = 1
)

var (
	None = Vec{}

	Top    = Vec{Y: top}
	Right  = Vec{X: right}
	Bottom = Vec{Y: bottom}
	Left   = Vec{X: left}

	BottomLeft  = Vec{X: left, Y: bottom}
	BottomRight = Vec{X: right, Y: bottom}
	TopLeft     = Vec{X: left, Y: top}
	TopRight    = Vec{X: right, Y: top}
)

var all = [...]Vec{None, Top, Right, Bottom, Left, TopLeft, TopRight, BottomLeft, BottomRight}

// All yields every named direction, starting with [None].
func All() iter.Seq[Vec] {
	return func(yield func(Vec) bool) {
		for _, v := range all {
			if !yield(v) {
				return
			}
		}
	}
}

// IsDiagonal reports whether v moves along both axes.
func (v Vec) IsDiagonal() bool { return v.X != 0 && v.Y != 0 }

// IsStraight reports whether v moves along at most one axis. [None]
// counts as straight.
func (v Vec) IsStraight() bool { return v.X == 0 || v.Y == 0 }

// Neg returns the opposite direction.
func (v Vec) Neg() Vec { return Vec{X: -v.X, Y: -v.Y} }

// Point returns v as a geom.Point.
func (v Vec) Point() geom.Point[int] { return geom.Pt(v.X, v.Y) }

// Edges returns the sides of a cell that v points towards.
func (v Vec) Edges() (e geom.Edges) {
	switch v.Y {
	case top:
		e |= geom.EdgeTop
	case bottom:
		e |= geom.EdgeBottom
	}
	switch v.X {
	case left:
		e |= geom.EdgeLeft
	case right:
		e |= geom.EdgeRight
	}
	return e
}

func (v Vec) String() string {
	switch v {
	case None:
		return "None"
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	}
	return "Vec(invalid)"
}

// angleFrom returns the angle, in [0, 2π], of the vector pointing from
// center to pos.
func angleFrom(pos, center geom.Point[float64]) float64 {
	return math.Atan2(center.Y-pos.Y, center.X-pos.X) + math.Pi
}

// FromPosition returns the direction among all eight that most closely
// matches the direction from center to pos. A pos equal to center
// returns [None].
func FromPosition(pos, center geom.Point[float64]) Vec {
	if pos == center {
		return None
	}

	rad := angleFrom(pos, center)
	return Vec{
		X: int(math.Round(math.Cos(rad))),
		Y: int(math.Round(math.Sin(rad))),
	}
}

// FloatFromPosition returns the unit vector pointing from center to
// pos.
func FloatFromPosition(pos, center geom.Point[float64]) geom.Point[float64] {
	rad := angleFrom(pos, center)
	return geom.Pt(math.Cos(rad), math.Sin(rad))
}

// RoundedFromPosition is like [FloatFromPosition] but rounds each
// component to the given number of decimal places.
func RoundedFromPosition(decimals int, pos, center geom.Point[float64]) geom.Point[float64] {
	p := FloatFromPosition(pos, center)
	scale := math.Pow10(decimals)
	return geom.Pt(
		math.Round(p.X*scale)/scale,
		math.Round(p.Y*scale)/scale,
	)
}

// Diagonal returns the diagonal direction of the quadrant that pos is
// in relative to center. Positions exactly above or below center
// resolve to the right-hand diagonal, and positions exactly to the
// right resolve downwards.
func Diagonal(pos, center geom.Point[float64]) Vec {
	rad := math.Atan2(pos.Y-center.Y, pos.X-center.X)
	if rad < 0 {
		if rad >= -math.Pi/2 {
			return TopRight
		}
		return TopLeft
	}

	if rad <= math.Pi/2 {
		return BottomRight
	}
	return BottomLeft
}

// Straight returns the straight direction whose 90° band contains the
// direction from center to pos. Positions exactly on a band boundary
// go to the earlier band in the order Right, Top, Left, Bottom.
func Straight(pos, center geom.Point[float64]) Vec {
	const band = math.Pi / 4

	rad := math.Pi - math.Atan2(center.Y-pos.Y, center.X-pos.X)
	switch {
	case rad <= band:
		return Right
	case rad <= band*3:
		return Top
	case rad <= band*5:
		return Left
	case rad <= band*7:
		return Bottom
	default:
		return Right
	}
}
