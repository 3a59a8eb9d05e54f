package heuristic

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strings"

	"deedles.dev/gameutil/geom"
	"deedles.dev/xiter"
)

// ErrUnknown is returned when parsing a name that does not correspond
// to any Heuristic.
var ErrUnknown = errors.New("unknown heuristic")

// Heuristic identifies one of the distance functions in this package.
type Heuristic int

const (
	KindManhattan Heuristic = iota
	KindChebyshev
	KindOctile
	KindDiagonal
	KindEuclidean
	KindEuclideanSquared
	KindCosineSimilarity
	KindMinkowski
)

var names = [...]string{
	KindManhattan:        "Manhattan",
	KindChebyshev:        "Chebyshev",
	KindOctile:           "Octile",
	KindDiagonal:         "Diagonal",
	KindEuclidean:        "Euclidean",
	KindEuclideanSquared: "EuclideanSquared",
	KindCosineSimilarity: "CosineSimilarity",
	KindMinkowski:        "Minkowski",
}

// All returns every Heuristic in declaration order.
func All() iter.Seq[Heuristic] {
	return func(yield func(Heuristic) bool) {
		for h := range Heuristic(len(names)) {
			if !yield(h) {
				return
			}
		}
	}
}

func (h Heuristic) String() string {
	if h < 0 || int(h) >= len(names) {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return names[h]
}

// Parse returns the Heuristic with the given name. Matching ignores
// case, spaces, dashes, and underscores, so "euclidean_squared" and
// "Euclidean Squared" both work.
func Parse(name string) (Heuristic, error) {
	key := canonical(name)
	for h, n := range names {
		if canonical(n) == key {
			return Heuristic(h), nil
		}
	}
	return 0, fmt.Errorf("parse %q: %w", name, ErrUnknown)
}

func canonical(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, name)
	return strings.ToLower(name)
}

func (h Heuristic) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Heuristic) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Metric is a Heuristic along with the parameters that some of them
// need. The zero value is the Manhattan distance.
type Metric struct {
	Heuristic Heuristic

	// P is the exponent used by Minkowski.
	P float64

	// StraightCost and DiagonalCost are used by Diagonal.
	StraightCost, DiagonalCost float64
}

// Between returns the distance from a to b according to m. Unknown
// heuristics yield NaN.
func (m Metric) Between(a, b geom.Point[int]) float64 {
	x0, x1, y0, y1 := a.X, b.X, a.Y, b.Y
	switch m.Heuristic {
	case KindManhattan:
		return float64(Manhattan(x0, x1, y0, y1))
	case KindChebyshev:
		return float64(Chebyshev(x0, x1, y0, y1))
	case KindOctile:
		return Octile(x0, x1, y0, y1)
	case KindDiagonal:
		return DiagonalDistance(x0, x1, y0, y1, m.StraightCost, m.DiagonalCost)
	case KindEuclidean:
		return Euclidean(x0, x1, y0, y1)
	case KindEuclideanSquared:
		return float64(EuclideanSquared(x0, x1, y0, y1))
	case KindCosineSimilarity:
		return CosineSimilarity(x0, x1, y0, y1)
	case KindMinkowski:
		return Minkowski(x0, x1, y0, y1, m.P)
	default:
		return math.NaN()
	}
}

// PathCost sums the distances between each consecutive pair of points
// in path. A path with fewer than two points costs nothing.
func PathCost(m Metric, path iter.Seq[geom.Point[int]]) (cost float64) {
	var prev geom.Point[int]
	for i, p := range xiter.Enumerate(path) {
		if i > 0 {
			cost += m.Between(prev, p)
		}
		prev = p
	}
	return cost
}
