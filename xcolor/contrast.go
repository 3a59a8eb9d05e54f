package xcolor

import "math"

// Luminance returns the perceived brightness of c using the ITU-R
// BT.601 weights.
func Luminance(c Color) float32 {
	return c.R*0.299 + c.G*0.587 + c.B*0.114
}

// RelativeLuminance returns the WCAG 2.0 relative luminance of c.
func RelativeLuminance(c Color) float32 {
	mult := [...]float32{0.2126, 0.7152, 0.0722}

	var l float32
	for i, m := range mult {
		v := c.At(Index(i))
		if v < 0.03928 {
			v /= 12.92
		} else {
			v = float32(math.Pow(float64((v+0.055)/1.055), 2.4))
		}
		l += v * m
	}
	return l
}

// TextColor returns whichever of light and dark is more readable on
// top of bg.
func TextColor(bg, light, dark Color) Color {
	if Luminance(bg) > 0.729 {
		return dark
	}
	return light
}

// TextColorLerp blends between light and dark by the luminance of bg
// instead of picking one of them.
func TextColorLerp(bg, light, dark Color) Color {
	return Lerp(light, dark, Luminance(bg))
}

// TextColorAdvanced is like [TextColor] but uses [RelativeLuminance],
// which tracks human perception more closely for saturated colors.
func TextColorAdvanced(bg, light, dark Color) Color {
	if RelativeLuminance(bg) > 0.179 {
		return dark
	}
	return light
}
