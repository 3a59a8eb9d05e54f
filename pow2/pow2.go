// Package pow2 provides Power2, an unsigned integer that is always
// rounded up to a power of two. It is useful for sizing buckets,
// textures, and other capacities that need to be powers of two.
package pow2

import (
	"cmp"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// Power2 holds either zero or a power of two that fits in 32 bits. The
// zero value is the zero sentinel.
type Power2 struct {
	value uint32
}

// New returns 1<<exponent. Exponents above 31 shift out of range and
// produce zero. A negative exponent panics, as with any Go shift.
func New(exponent int) Power2 {
	return Power2{value: uint32(1) << exponent}
}

// From returns the smallest power of two that is greater than or equal
// to v. Non-positive values produce zero, as do values too large to
// round up within 32 bits.
func From(v int) Power2 {
	var p Power2
	p.SetInt(v)
	return p
}

// FromUint is like [From] but takes an unsigned value.
func FromUint(v uint32) Power2 {
	return Power2{value: Normalize(v)}
}

// Normalize rounds v up to the nearest power of two. Zero, and values
// above 1<<31, wrap around to zero.
func Normalize(v uint32) uint32 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}

// Set assigns v to p, rounding it up to a power of two.
func (p *Power2) Set(v uint32) {
	p.value = Normalize(v)
}

// SetInt is like Set, but takes a signed value. Non-positive values set
// p to zero.
func (p *Power2) SetInt(v int) {
	switch {
	case v <= 0:
		p.value = 0
	case uint64(v) > math.MaxUint32:
		p.value = 0
	default:
		p.Set(uint32(v))
	}
}

// Exponent returns the base-2 logarithm of p, or -1 if p is zero.
func (p Power2) Exponent() int {
	return bits.Len32(p.value) - 1
}

func (p Power2) IsZero() bool { return p.value == 0 }

func (p Power2) Int() int { return int(p.value) }

func (p Power2) Uint() uint { return uint(p.value) }

func (p Power2) Uint32() uint32 { return p.value }

// Compare returns -1, 0, or 1 depending on whether p is less than,
// equal to, or greater than q.
func (p Power2) Compare(q Power2) int {
	return cmp.Compare(p.value, q.value)
}

func (p Power2) Equal(q Power2) bool { return p.value == q.value }

func (p Power2) Less(q Power2) bool { return p.value < q.value }

func (p Power2) String() string {
	return strconv.FormatUint(uint64(p.value), 10)
}

func (p Power2) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(p.value), 10), nil
}

// UnmarshalText parses a decimal integer and rounds it up to a power
// of two.
func (p *Power2) UnmarshalText(text []byte) error {
	v, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("parse power of two: %w", err)
	}
	p.SetInt(int(v))
	return nil
}
