package xstrings

import (
	"math/rand/v2"
	"strings"
)

// Character sets used by GenerateID.
const (
	NumberChars = "0123456789"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// CharClass is a bitmask of the kinds of characters that GenerateID
// may use.
type CharClass uint8

const (
	Numbers CharClass = 1 << iota
	Lower
	Upper

	Alphanumeric = Numbers | Lower | Upper
)

func (c CharClass) chars() string {
	var s string
	if c&Numbers != 0 {
		s += NumberChars
	}
	if c&Lower != 0 {
		s += LowerChars
	}
	if c&Upper != 0 {
		s += UpperChars
	}
	return s
}

// GenerateID returns a random string of length n made up of characters
// from classes. It is not suitable for anything security sensitive.
// If n is not positive or classes is empty, the result is empty.
func GenerateID(n int, classes CharClass) string {
	return generateID(rand.IntN, n, classes)
}

// GenerateIDFrom is like [GenerateID] but draws from r.
func GenerateIDFrom(r *rand.Rand, n int, classes CharClass) string {
	return generateID(r.IntN, n, classes)
}

func generateID(intn func(int) int, n int, classes CharClass) string {
	chars := classes.chars()
	if n <= 0 || chars == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(chars[intn(len(chars))])
	}
	return sb.String()
}
