// Package xstrings contains string helpers for displaying identifiers
// and numbers to players.
package xstrings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"deedles.dev/gameutil/geom"
	"github.com/dustin/go-humanize"
)

// ContainsFold reports whether substr is within s[start:], ignoring
// case. A start outside of s is clamped to its bounds.
func ContainsFold(s, substr string, start int) bool {
	s = tail(s, start)
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ContainsRune reports whether r is within s[start:]. A start outside
// of s is clamped to its bounds.
func ContainsRune(s string, r rune, start int) bool {
	return strings.ContainsRune(tail(s, start), r)
}

func tail(s string, start int) string {
	return s[min(max(start, 0), len(s)):]
}

// NumberWithSign formats v as a whole number with an explicit sign.
// Zero, including values that round to zero, has no sign.
func NumberWithSign[T geom.Scalar](v T) string {
	n := math.Round(float64(v))
	switch {
	case n > 0:
		return "+" + strconv.FormatFloat(n, 'f', 0, 64)
	case n < 0:
		return strconv.FormatFloat(n, 'f', 0, 64)
	default:
		return "0"
	}
}

// LowPrecisePercentage formats v, which is already a percentage, with
// at most two decimal places and a trailing percent sign. The value
// is rounded half away from zero and trailing zeros are dropped, so
// 12.345 yields "12.35%" and 0.999 yields "1%".
func LowPrecisePercentage(v float64) string {
	return humanize.FtoaWithDigits(roundDecimals(v, 2), 2) + "%"
}

// roundDecimals rounds v to the given number of decimal places. The
// intermediate rounding to six further places absorbs float noise, so
// that 12.345, stored as 12.3449999..., still rounds up.
func roundDecimals(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(math.Round(v*scale*1e6)/1e6) / scale
}

// PrecisePercentage truncates the fraction v to two decimal places and
// returns it formatted as a whole percentage along with the truncated
// value itself. For example, 0.1299 yields "12%" and 0.12.
func PrecisePercentage(v float64) (string, float64) {
	// Rounding to eight places first keeps values like 0.29, whose
	// float64 representation is slightly below 0.29, from truncating a
	// whole percent lower.
	pct := math.Floor(math.Round(v*1e8) / 1e6)
	return strconv.FormatFloat(pct, 'f', 0, 64) + "%", pct / 100
}

// EnumName returns a human readable version of v.String(). See
// [Prettify].
func EnumName(v fmt.Stringer) string {
	return Prettify(v.String())
}

// Prettify turns an identifier such as "HalfGreen" or "top_left" into
// words by replacing underscores with spaces and inserting a space
// before every upper case letter and digit. A leading character that
// is neither a letter nor a digit is dropped.
func Prettify(name string) string {
	if name == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(name) + len(name)/2)

	first, size := utf8.DecodeRuneInString(name)
	if unicode.IsLetter(first) || unicode.IsDigit(first) {
		sb.WriteRune(first)
	}
	for _, c := range name[size:] {
		switch {
		case c == '_':
			sb.WriteByte(' ')
		case unicode.IsUpper(c), unicode.IsDigit(c):
			sb.WriteByte(' ')
			sb.WriteRune(c)
		default:
			sb.WriteRune(c)
		}
	}

	return sb.String()
}

// NicifyVariableName turns a variable name such as "maxHealth" or
// "_spawnPoint" into a title such as "Max Health" or "Spawn Point".
// Runs of capitals are kept together, so "HTTPServer" becomes
// "HTTP Server".
func NicifyVariableName(name string) string {
	rs := []rune(strings.TrimSpace(name))
	if len(rs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(name) + len(name)/2)

	i := 1
	switch {
	case unicode.IsLetter(rs[0]):
		sb.WriteRune(unicode.ToUpper(rs[0]))
	case rs[0] == '_' && len(rs) > 1:
		sb.WriteRune(unicode.ToUpper(rs[1]))
		i++
	}

	for ; i < len(rs); i++ {
		c := rs[i]
		if unicode.IsUpper(c) && i+1 < len(rs) {
			next := rs[i+1]
			if (unicode.IsLetter(next) || unicode.IsDigit(next)) && !unicode.IsUpper(next) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(c)
	}

	return sb.String()
}

// SplitAndReplace splits s at every run of sep and removes sep from
// the resulting pieces. A separator at the very start of s never
// begins a split. An empty s returns nil, and an s with no split
// points is returned whole, separators and all.
func SplitAndReplace(s string, sep rune) []string {
	if s == "" {
		return nil
	}

	var cuts []int
	was := false
	for i, c := range s {
		if i == 0 {
			continue
		}
		is := c == sep
		if is && !was {
			cuts = append(cuts, i)
		}
		was = is
	}
	if len(cuts) == 0 {
		return []string{s}
	}

	strip := func(piece string) string {
		return strings.ReplaceAll(piece, string(sep), "")
	}

	split := make([]string, 0, len(cuts)+1)
	start := 0
	for _, cut := range cuts {
		split = append(split, strip(s[start:cut]))
		start = cut + utf8.RuneLen(sep)
	}
	return append(split, strip(s[start:]))
}

// EnumHint joins names with commas for use as an editor hint listing
// the possible values of an enumeration. If there are no names, a
// placeholder is returned instead.
func EnumHint(names ...string) string {
	if len(names) == 0 {
		return "Invalid Enum Type"
	}
	return strings.Join(names, ",")
}

// EnumHintOf is like [EnumHint] but uses the String methods of values.
func EnumHintOf[E fmt.Stringer](values ...E) string {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, v.String())
	}
	return EnumHint(names...)
}
