package xcolor_test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"deedles.dev/gameutil/xcolor"
	"github.com/stretchr/testify/require"
)

func TestFormatRoundTrip(t *testing.T) {
	colors := []xcolor.Color{
		xcolor.Red,
		xcolor.Gold,
		xcolor.GreenBlue,
		xcolor.RGBA(0.1, 0.2, 0.3, 1),
		xcolor.RGBA(1, 0.5, 0, 0.5),
	}

	tests := []struct {
		format xcolor.Format
		opaque bool
	}{
		{format: xcolor.ARGB8888},
		{format: xcolor.XRGB8888, opaque: true},
	}
	for _, test := range tests {
		t.Run(fmt.Sprint(test.format), func(t *testing.T) {
			buf := make([]byte, test.format.Size())
			for _, c := range colors {
				want := c
				if test.opaque {
					want = xcolor.RGBA(c.R*c.A, c.G*c.A, c.B*c.A, 1)
				}

				c.Encode(test.format, buf)
				got := xcolor.Decode(test.format, buf)
				require.InDelta(t, want.R, got.R, 2.0/255, "red of %v", c)
				require.InDelta(t, want.G, got.G, 2.0/255, "green of %v", c)
				require.InDelta(t, want.B, got.B, 2.0/255, "blue of %v", c)
				require.InDelta(t, want.A, got.A, 2.0/255, "alpha of %v", c)
			}
		})
	}
}

func TestFormatLayout(t *testing.T) {
	var data [4]byte
	xcolor.RGBA(1, 0.2, 0, 1).Encode(xcolor.ARGB8888, data[:])
	require.Equal(t, uint32(0xFFFF3300), binary.LittleEndian.Uint32(data[:]))

	xcolor.ARGB8888.Write(data[:], 0x1111, 0x2222, 0x3333, 0)
	require.Equal(t, [4]byte{}, data)

	binary.LittleEndian.PutUint32(data[:], 0x00FF8000)
	r, g, b, a := xcolor.XRGB8888.Read(data[:])
	require.Equal(t, [4]uint32{0xFFFF, 0x8080, 0, 0xFFFF}, [4]uint32{r, g, b, a})

	r, g, b, a = xcolor.ARGB8888.Read(data[:])
	require.Equal(t, [4]uint32{0, 0, 0, 0}, [4]uint32{r, g, b, a})
}

func TestEncode(t *testing.T) {
	var data [4]byte
	xcolor.Red.Encode(xcolor.ARGB8888, data[:])
	require.Equal(t, [...]byte{0x00, 0x00, 0xFF, 0xFF}, data)
	require.Equal(t, xcolor.Red, xcolor.Decode(xcolor.ARGB8888, data[:]))

	xcolor.Transparent.Encode(xcolor.ARGB8888, data[:])
	require.Equal(t, [4]byte{}, data)
	require.Equal(t, xcolor.Color{}, xcolor.Decode(xcolor.ARGB8888, data[:]))

	xcolor.Transparent.Encode(xcolor.XRGB8888, data[:])
	require.Equal(t, [...]byte{0x00, 0x00, 0x00, 0xFF}, data)

	xcolor.Blue.Encode(xcolor.XRGB8888, data[:])
	require.Equal(t, [...]byte{0xFF, 0x00, 0x00, 0xFF}, data)
	require.Equal(t, xcolor.Blue, xcolor.Decode(xcolor.XRGB8888, data[:]))
}
