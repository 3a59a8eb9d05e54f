// Package geom provides small generic value types shared by the other
// packages in this module.
//
// It is patterned after image.Point, but works with any numeric type
// and carries no dependencies on a particular engine's vector types.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is a constraint for signed integer types, which are the ones
// that grid distances are measured in.
type Signed interface {
	constraints.Signed
}

// Edges is a bitmask representing zero or more edges of a rectangle,
// or equivalently the sides of a cell that a direction points to.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether all of the edges in o are set in e.
func (e Edges) Has(o Edges) bool {
	return e&o == o
}

func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}

	var buf []byte
	for _, n := range [...]struct {
		edge Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e&n.edge == 0 {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '|')
		}
		buf = append(buf, n.name...)
	}
	return string(buf)
}

// Abs returns the absolute value of v. It does not guard against the
// minimum value of a signed type, which stays negative.
func Abs[T Scalar](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
