package xcolor

import (
	"encoding/binary"
	"image/color"
)

// Format is a packed pixel format that a Color can be encoded into.
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Predefined Formats. Both pack a pixel into a little-endian 32-bit
// word laid out as 0xAARRGGBB. XRGB8888 ignores alpha, writing the
// premultiplied color as if composited over black and reading every
// pixel back as opaque.
var (
	ARGB8888 = word8888{name: "ARGB8888"}
	XRGB8888 = word8888{name: "XRGB8888", opaque: true}
)

type word8888 struct {
	name   string
	opaque bool
}

func (f word8888) String() string { return f.name }

func (word8888) Size() int { return 4 }

func (f word8888) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = widen(n >> 24)
	if f.opaque {
		a = 0xFFFF
	}
	r = widen(n>>16&0xFF) * a / 0xFFFF
	g = widen(n>>8&0xFF) * a / 0xFFFF
	b = widen(n&0xFF) * a / 0xFFFF
	return
}

func (f word8888) Write(buf []byte, r, g, b, a uint32) {
	if f.opaque {
		a = 0xFFFF
	}
	if a == 0 {
		binary.LittleEndian.PutUint32(buf, 0)
		return
	}

	n := narrow(a)<<24 | narrow(r*0xFFFF/a)<<16 | narrow(g*0xFFFF/a)<<8 | narrow(b*0xFFFF/a)
	binary.LittleEndian.PutUint32(buf, n)
}

// widen scales an 8-bit channel to 16 bits.
func widen(v uint32) uint32 { return v * 0x101 }

// narrow scales a 16-bit channel down to 8 bits, truncating.
func narrow(v uint32) uint32 { return min(v, 0xFFFF) * 0xFF / 0xFFFF }

// Encode writes c into buf using f. buf must be at least f.Size()
// bytes long.
func (c Color) Encode(f Format, buf []byte) {
	r, g, b, a := c.RGBA()
	f.Write(buf, r, g, b, a)
}

// Decode reads a Color from buf using f.
func Decode(f Format, buf []byte) Color {
	r, g, b, a := f.Read(buf)
	return FromColor(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)})
}

// FromColor converts any color.Color, un-premultiplying it.
func FromColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}

	r, g, b, a := c.RGBA()
	if a == 0 {
		return Color{}
	}
	return Color{
		R: float32(r) / float32(a),
		G: float32(g) / float32(a),
		B: float32(b) / float32(a),
		A: float32(a) / 0xFFFF,
	}
}

// Model converts arbitrary colors into Colors.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color { return FromColor(c) })
