package xcolor_test

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"deedles.dev/gameutil/xcolor"
	"github.com/stretchr/testify/require"
)

func TestIsHex(t *testing.T) {
	require.True(t, xcolor.IsHex("#1A2B3C"))
	require.True(t, xcolor.IsHex("1a2b3c"))
	require.False(t, xcolor.IsHex("1A2B3"))
	require.False(t, xcolor.IsHex("#GG0000"))
	require.False(t, xcolor.IsHex("#FFF"))
	require.False(t, xcolor.IsHex("#1A2B3C4D"))
	require.False(t, xcolor.IsHex(""))
}

func TestParseHex(t *testing.T) {
	c, err := xcolor.ParseHex("1A2B3C")
	require.Nil(t, err)
	require.Equal(t, float32(1), c.A)
	require.Equal(t, "#1a2b3c", c.Hex())

	c, err = xcolor.ParseHex("#ff8000")
	require.Nil(t, err)
	require.InDelta(t, 1, c.R, 1e-6)
	require.InDelta(t, 128.0/255, c.G, 1e-6)
	require.InDelta(t, 0, c.B, 1e-6)

	_, err = xcolor.ParseHex("#GG0000")
	require.ErrorIs(t, err, xcolor.ErrInvalidHex)

	require.Equal(t, "#ff8000", xcolor.Orange.Hex())
}

func TestTextColor(t *testing.T) {
	light, dark := xcolor.White, xcolor.Black

	require.Equal(t, dark, xcolor.TextColor(xcolor.White, light, dark))
	require.Equal(t, dark, xcolor.TextColor(xcolor.Yellow, light, dark))
	require.Equal(t, light, xcolor.TextColor(xcolor.Black, light, dark))
	require.Equal(t, light, xcolor.TextColor(xcolor.Gray, light, dark))

	require.Equal(t, dark, xcolor.TextColorAdvanced(xcolor.Gray, light, dark))
	require.Equal(t, dark, xcolor.TextColorAdvanced(xcolor.Red, light, dark))
	require.Equal(t, light, xcolor.TextColorAdvanced(xcolor.Blue, light, dark))
	require.Equal(t, light, xcolor.TextColorAdvanced(xcolor.Navy, light, dark))

	mid := xcolor.TextColorLerp(xcolor.Gray, light, dark)
	require.InDelta(t, 0.5, mid.R, 1e-6)
	require.InDelta(t, 0.5, mid.G, 1e-6)
	require.InDelta(t, 0.5, mid.B, 1e-6)
	require.Equal(t, float32(1), mid.A)
}

func TestLuminance(t *testing.T) {
	require.InDelta(t, 1, xcolor.Luminance(xcolor.White), 1e-6)
	require.InDelta(t, 0, xcolor.Luminance(xcolor.Black), 1e-6)
	require.InDelta(t, 0.299, xcolor.Luminance(xcolor.Red), 1e-6)

	require.InDelta(t, 1, xcolor.RelativeLuminance(xcolor.White), 1e-6)
	require.InDelta(t, 0.0722, xcolor.RelativeLuminance(xcolor.Blue), 1e-6)
	require.InDelta(t, 0.02/12.92*0.2126, xcolor.RelativeLuminance(xcolor.RGBA(0.02, 0, 0, 1)), 1e-7)
}

func TestPseudoRandom(t *testing.T) {
	c := xcolor.PseudoRandom("abc", 0.5)
	require.InDelta(t, 39.0/255, c.R, 1e-6)
	require.InDelta(t, 78.0/255, c.G, 1e-6)
	require.InDelta(t, 117.0/255, c.B, 1e-6)
	require.Equal(t, float32(0.5), c.A)

	require.Equal(t, c, xcolor.PseudoRandom("abc", 0.5))
	require.Equal(t, xcolor.RGBA(0, 0, 0, 1), xcolor.PseudoRandom("", 1))

	// U+1F600 is the surrogate pair 0xD83D 0xDE00.
	e := xcolor.PseudoRandom("\U0001F600", 1)
	require.InDelta(t, 244.0/255, e.R, 1e-6)
	require.InDelta(t, 233.0/255, e.G, 1e-6)
	require.InDelta(t, 222.0/255, e.B, 1e-6)
}

func TestRandom(t *testing.T) {
	a := xcolor.RandomFrom(rand.New(rand.NewPCG(1, 2)), 0.25)
	b := xcolor.RandomFrom(rand.New(rand.NewPCG(1, 2)), 0.25)
	require.Equal(t, a, b)

	for range 100 {
		c := xcolor.Random(1)
		for _, v := range []float32{c.R, c.G, c.B} {
			require.GreaterOrEqual(t, v, float32(0))
			require.Less(t, v, float32(1))
		}
		require.Equal(t, float32(1), c.A)
	}
}

func TestColorInterface(t *testing.T) {
	var c color.Color = xcolor.RGBA(1, 0, 0, 0.5)
	r, g, b, a := c.RGBA()
	require.Equal(t, uint32(32768), a)
	require.Equal(t, uint32(32768), r)
	require.Equal(t, uint32(0), g)
	require.Equal(t, uint32(0), b)

	require.Equal(t, xcolor.Red, xcolor.FromColor(color.RGBA{R: 255, A: 255}))
	require.Equal(t, xcolor.Color{}, xcolor.FromColor(color.Transparent))
	require.Equal(t, xcolor.Teal, xcolor.Model.Convert(xcolor.Teal))

	require.Equal(t, float32(0.75), xcolor.Silver.At(xcolor.G))
	require.Panics(t, func() { xcolor.Silver.At(7) })
}

func TestLerp(t *testing.T) {
	require.Equal(t, xcolor.Black, xcolor.Lerp(xcolor.Black, xcolor.White, 0))
	require.Equal(t, xcolor.White, xcolor.Lerp(xcolor.Black, xcolor.White, 1))
	require.Equal(t, xcolor.Transparent.WithAlpha(1), xcolor.White)
	require.Len(t, xcolor.Named, 25)
}
