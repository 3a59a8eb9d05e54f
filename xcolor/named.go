package xcolor

// Basic colors.
var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{1, 1, 1, 0}

	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}

	Yellow  = Color{1, 1, 0, 1}
	Magenta = Color{1, 0, 1, 1} // Fuchsia
	Cyan    = Color{0, 1, 1, 1} // Aqua
)

// Colors with a half-intensity channel.
var (
	Orange   = Color{1, 0.5, 0, 1}
	DeepPink = Color{1, 0, 0.5, 1} // Rose

	GreenYellow = Color{0.5, 1, 0, 1}
	GreenBlue   = Color{0, 1, 0.5, 1} // SpringGreen

	Violet = Color{0.5, 0, 1, 1} // ElectricViolet
	Azure  = Color{0, 0.5, 1, 1}

	Maroon    = Color{0.5, 0, 0, 1}
	HalfGreen = Color{0, 0.5, 0, 1}
	Navy      = Color{0, 0, 0.5, 1}

	Olive  = Color{0.5, 0.5, 0, 1}
	Purple = Color{0.5, 0, 0.5, 1}
	Teal   = Color{0, 0.5, 0.5, 1}

	Gray = Color{0.5, 0.5, 0.5, 1}
)

// Metallic colors.
var (
	Copper = Color{0.72, 0.45, 0.2, 1}
	Silver = Color{0.75, 0.75, 0.75, 1}
	Gold   = Color{1, 0.84, 0, 1}
)

// Named maps lower-case names to the predefined colors.
var Named = map[string]Color{
	"white":       White,
	"black":       Black,
	"transparent": Transparent,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"magenta":     Magenta,
	"cyan":        Cyan,
	"orange":      Orange,
	"deeppink":    DeepPink,
	"greenyellow": GreenYellow,
	"greenblue":   GreenBlue,
	"violet":      Violet,
	"azure":       Azure,
	"maroon":      Maroon,
	"halfgreen":   HalfGreen,
	"navy":        Navy,
	"olive":       Olive,
	"purple":      Purple,
	"teal":        Teal,
	"gray":        Gray,
	"copper":      Copper,
	"silver":      Silver,
	"gold":        Gold,
}
