// Package xcolor provides a floating-point RGBA color type along with
// helpers for picking readable text colors, generating random colors,
// and converting to and from hex strings and packed pixel formats.
package xcolor

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"unicode/utf16"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a six digit hex color.
var ErrInvalidHex = errors.New("invalid hex color")

// Color is a non-premultiplied color with each channel in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA is shorthand for Color{R: r, G: g, B: b, A: a}.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Index names a channel of a Color.
type Index int

const (
	R Index = iota
	G
	B
	A
)

// At returns the channel of c named by i. It panics if i is not one of
// the four channel indices.
func (c Color) At(i Index) float32 {
	switch i {
	case R:
		return c.R
	case G:
		return c.G
	case B:
		return c.B
	case A:
		return c.A
	}
	panic(fmt.Errorf("channel index %d out of range", i))
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R) * a / 0xFFFF
	g = channel16(c.G) * a / 0xFFFF
	b = channel16(c.B) * a / 0xFFFF
	return
}

func channel16(v float32) uint32 {
	return uint32(math.Round(float64(min(max(v, 0), 1)) * 0xFFFF))
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates every channel between a and b.
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// IsHex reports whether s is six hex digits with an optional leading
// '#'. Neither the three digit shorthand nor an alpha channel are
// accepted.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ParseHex parses a color accepted by [IsHex]. The result is opaque.
func ParseHex(s string) (Color, error) {
	if !IsHex(s) {
		return Color{}, fmt.Errorf("parse %q: %w", s, ErrInvalidHex)
	}
	if s[0] != '#' {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse %q: %w", s, errors.Join(ErrInvalidHex, err))
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// Hex returns c as a lower-case "#rrggbb" string, ignoring alpha.
func (c Color) Hex() string {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex()
}

// Random returns a color with uniformly random red, green, and blue
// channels and the given alpha.
func Random(alpha float32) Color {
	return Color{R: rand.Float32(), G: rand.Float32(), B: rand.Float32(), A: alpha}
}

// RandomFrom is like [Random] but draws from r.
func RandomFrom(r *rand.Rand, alpha float32) Color {
	return Color{R: r.Float32(), G: r.Float32(), B: r.Float32(), A: alpha}
}

// PseudoRandom derives a color from s. The same string always yields
// the same color, which makes it handy for coloring things like player
// names or tags. The channels are derived from the UTF-16 code units
// of s, so characters outside of the Basic Multilingual Plane
// contribute both halves of their surrogate pair.
func PseudoRandom(s string, alpha float32) Color {
	var r, g, b int64
	for _, c := range utf16.Encode([]rune(s)) {
		r += int64(c)
		g += int64(c) * 2
		b += int64(c) * 3
	}
	return Color{
		R: float32(r%255) / 255,
		G: float32(g%255) / 255,
		B: float32(b%255) / 255,
		A: alpha,
	}
}
